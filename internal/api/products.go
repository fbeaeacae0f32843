package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/safar/go-sql-shop/internal/models"
	"go.uber.org/zap"
)

type productPayload struct {
	Name        *stringField  `json:"name" validate:"required"`
	Description *stringField  `json:"description" validate:"required"`
	Price       *models.Price `json:"price" validate:"required"`
}

// createProduct answers with name, description and price as stored, so the
// price matches what a later listing returns. The assigned id is logged but
// not part of the response body.
func (s *Server) createProduct(c echo.Context) error {
	var payload productPayload
	if err := bindPayload(c, &payload); err != nil {
		return err
	}

	product, err := s.store.CreateProduct(c.Request().Context(), models.ProductCreate{
		Name:        string(*payload.Name),
		Description: string(*payload.Description),
		Price:       *payload.Price,
	})
	if err != nil {
		return err
	}

	zap.L().Info("product created", zap.Int64("id", product.ID), zap.String("name", product.Name))
	return c.JSON(http.StatusOK, models.ProductCreate{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
	})
}

func (s *Server) listProducts(c echo.Context) error {
	products, err := s.store.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}

	zap.L().Info("products listed", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}
