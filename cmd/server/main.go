package main

import (
	"context"
	"time"

	_ "github.com/billinglens/billinglens/docs/swagger"
	"github.com/billinglens/billinglens/internal/api"
	v1 "github.com/billinglens/billinglens/internal/api/v1"
	"github.com/billinglens/billinglens/internal/config"
	"github.com/billinglens/billinglens/internal/logger"
	"github.com/billinglens/billinglens/internal/schema"
	"github.com/billinglens/billinglens/internal/sentry"
	"github.com/billinglens/billinglens/internal/service"
	"github.com/billinglens/billinglens/internal/upstream"
	"github.com/billinglens/billinglens/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// @title BillingLens API
// @version 1.0
// @description Billing reports over payment platform data across schema versions
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	opts = append(opts,
		// Validator
		fx.Invoke(validator.NewValidator),
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// Upstream platform client and schema adapter
			provideUpstreamClient,
			schema.NewAdapter,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewSubscriptionReportService,
			service.NewInvoicePaymentService,
			service.NewChargeReportService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideUpstreamClient(cfg *config.Configuration, log *logger.Logger) (upstream.Client, error) {
	return upstream.NewStripeClient(cfg, log)
}

func provideHandlers(
	logger *logger.Logger,
	subscriptionService service.SubscriptionReportService,
	invoiceService service.InvoicePaymentService,
	chargeService service.ChargeReportService,
	client upstream.Client,
) api.Handlers {
	return api.Handlers{
		Health:       v1.NewHealthHandler(logger),
		Subscription: v1.NewSubscriptionHandler(subscriptionService, logger),
		Invoice:      v1.NewInvoiceHandler(invoiceService, logger),
		Payment:      v1.NewPaymentHandler(chargeService, client, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration) *gin.Engine {
	return api.NewRouter(handlers, cfg)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
