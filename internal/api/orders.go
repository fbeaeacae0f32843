package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/safar/go-sql-shop/internal/models"
	"go.uber.org/zap"
)

type orderPayload struct {
	UserID    *intField `json:"user_id" validate:"required"`
	ProductID *intField `json:"product_id" validate:"required"`
}

func (s *Server) createOrder(c echo.Context) error {
	var payload orderPayload
	if err := bindPayload(c, &payload); err != nil {
		return err
	}

	order, err := s.store.CreateOrder(c.Request().Context(), models.OrderCreate{
		UserID:    int64(*payload.UserID),
		ProductID: int64(*payload.ProductID),
	})
	if err != nil {
		return err
	}

	zap.L().Info("order created",
		zap.Int64("id", order.ID),
		zap.Int64("user_id", order.UserID),
		zap.Int64("product_id", order.ProductID))
	return c.JSON(http.StatusOK, order)
}

func (s *Server) listOrders(c echo.Context) error {
	orders, err := s.store.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}

	zap.L().Info("orders listed", zap.Int("count", len(orders)))
	return c.JSON(http.StatusOK, orders)
}
