// Package api exposes the users, products and orders resources over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/safar/go-sql-shop/internal/database"
	"github.com/safar/go-sql-shop/internal/models"
	"go.uber.org/zap"
)

// Store is the storage the handlers need. *store.Store satisfies it.
type Store interface {
	CreateUser(ctx context.Context, in models.UserCreate) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateProduct(ctx context.Context, in models.ProductCreate) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateOrder(ctx context.Context, in models.OrderCreate) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}

type Server struct {
	echo  *echo.Echo
	store Store
}

func NewServer(st Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &payloadValidator{validate: validator.New()}

	s := &Server{echo: e, store: st}
	e.HTTPErrorHandler = s.handleError

	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Debug("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	e.POST("/users/", s.createUser)
	e.GET("/users/", s.listUsers)
	e.POST("/products/", s.createProduct)
	e.GET("/products/", s.listProducts)
	e.POST("/orders/", s.createOrder)
	e.GET("/orders/", s.listOrders)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// handleError logs storage faults, then leaves the response body to echo's
// default handler: HTTPErrors keep their status, anything else becomes a 500.
func (s *Server) handleError(err error, c echo.Context) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		zap.L().Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.String("class", database.ClassifyError(err).String()),
			zap.Error(err))
	}
	s.echo.DefaultHTTPErrorHandler(err, c)
}

type payloadValidator struct {
	validate *validator.Validate
}

func (v *payloadValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// bindPayload decodes the JSON body into dst and checks required fields.
// Type mismatches come back from echo's binder as 400s.
func bindPayload(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return err
	}
	return c.Validate(dst)
}
