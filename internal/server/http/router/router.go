package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/okunev/orderdesk/internal/server/http/handlers"
	"github.com/okunev/orderdesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.OrderDeskFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	statusHandler := handlers.NewStatusHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)

	api := engine.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(facade))
	protected.POST("/orders", orderHandler.Create)
	protected.GET("/orders", orderHandler.List)
	protected.GET("/orders/:id", orderHandler.Get)
	protected.POST("/orders/:id/payment", paymentHandler.Collect)
	protected.POST("/orders/:id/status", statusHandler.Change)
	protected.POST("/notifications/confirm", statusHandler.ConfirmNotification)
	protected.POST("/customers", customerHandler.Create)
	protected.GET("/customers/:id", customerHandler.Get)
	protected.POST("/customers/import", customerHandler.Import)

	return engine
}
