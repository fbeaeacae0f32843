package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/safar/go-sql-shop/internal/models"
	"go.uber.org/zap"
)

type userPayload struct {
	FName    *stringField `json:"f_name" validate:"required"`
	LName    *stringField `json:"l_name" validate:"required"`
	Email    *stringField `json:"email" validate:"required"`
	Password *stringField `json:"password" validate:"required"`
}

func (s *Server) createUser(c echo.Context) error {
	var payload userPayload
	if err := bindPayload(c, &payload); err != nil {
		return err
	}

	user, err := s.store.CreateUser(c.Request().Context(), models.UserCreate{
		FName:    string(*payload.FName),
		LName:    string(*payload.LName),
		Email:    string(*payload.Email),
		Password: string(*payload.Password),
	})
	if err != nil {
		return err
	}

	zap.L().Info("user created", zap.Int64("id", user.ID), zap.String("email", user.Email))
	return c.JSON(http.StatusOK, user)
}

func (s *Server) listUsers(c echo.Context) error {
	users, err := s.store.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	zap.L().Info("users listed", zap.Int("count", len(users)))
	return c.JSON(http.StatusOK, users)
}
