package api

import (
	v1 "github.com/billinglens/billinglens/internal/api/v1"
	"github.com/billinglens/billinglens/internal/config"
	"github.com/billinglens/billinglens/internal/rest/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Health       *v1.HealthHandler
	Subscription *v1.SubscriptionHandler
	Invoice      *v1.InvoiceHandler
	Payment      *v1.PaymentHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.SentryMiddleware(cfg),
		middleware.ErrorHandler(),
	)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.Health.Health)
	router.GET("/config", handlers.Payment.GetConfig)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	subscriptions := router.Group("/subscriptions")
	{
		subscriptions.GET("/summary", handlers.Subscription.GetSummary)
		subscriptions.GET("/active", handlers.Subscription.ListActive)
		subscriptions.POST("/metrics", handlers.Subscription.GetMetrics)
		subscriptions.POST("/cycle-progress", handlers.Subscription.GetCycleProgress)
	}

	invoices := router.Group("/invoices")
	{
		invoices.GET("/payment-intent", handlers.Invoice.GetPaymentIntent)
		invoices.GET("/out-of-band", handlers.Invoice.CheckOutOfBand)
		invoices.GET("/by-payment-intent", handlers.Invoice.GetByPaymentIntent)
	}

	paymentIntents := router.Group("/payment-intents")
	{
		paymentIntents.POST("", handlers.Payment.CreatePaymentIntent)
		paymentIntents.GET("/details", handlers.Payment.GetPaymentDetails)
		paymentIntents.GET("/latest-charge", handlers.Payment.GetLatestCharge)
		paymentIntents.POST("/status", handlers.Payment.CheckPaymentStatus)
	}
}
