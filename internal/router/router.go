package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"paybridge/internal/handler/api"
	"paybridge/internal/middleware"
	"paybridge/internal/paypro"
)

// Setup configures all routes for the Echo server.
func Setup(
	e *echo.Echo,
	tokens *paypro.TokenSource,
	gateway *paypro.Client,
	auditor api.OrderAuditor,
	notifier api.OrderNotifier,
	deduper middleware.RequestDeduper,
	logger *zap.Logger,
) {
	// Global middleware
	e.Use(echomw.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger(logger))

	authHandler := api.NewAuthHandler(tokens, logger)
	orderHandler := api.NewOrderHandler(gateway, auditor, notifier, logger)

	apiGroup := e.Group("/api")
	apiGroup.GET("/auth", authHandler.Handle)
	apiGroup.POST("/order", orderHandler.Handle, middleware.Idempotency(deduper))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}
