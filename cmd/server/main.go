package main

import (
	"context"
	"time"

	"github.com/cityledger/invoicegateway/internal/api"
	v1 "github.com/cityledger/invoicegateway/internal/api/v1"
	"github.com/cityledger/invoicegateway/internal/config"
	"github.com/cityledger/invoicegateway/internal/integration/datawarehousereader"
	"github.com/cityledger/invoicegateway/internal/integration/invoicecache"
	"github.com/cityledger/invoicegateway/internal/logger"
	"github.com/cityledger/invoicegateway/internal/service"
	"github.com/cityledger/invoicegateway/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// @title Invoice Gateway API
// @version 1.0
// @description Read-only aggregation API over municipal invoice backends
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			validator.NewValidator,
			config.NewConfig,
			provideLogger,

			provideDataWarehouseReaderClient,
			provideInvoiceCacheClient,

			service.NewInvoiceService,

			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)
	app.Run()
}

func provideLogger(cfg *config.Configuration) (*logger.Logger, error) {
	return logger.NewLogger(cfg.Logging.Level)
}

func provideDataWarehouseReaderClient(cfg *config.Configuration, log *logger.Logger) datawarehousereader.Client {
	return datawarehousereader.NewClient(cfg.DataWarehouseReader, log)
}

func provideInvoiceCacheClient(cfg *config.Configuration, log *logger.Logger) invoicecache.Client {
	return invoicecache.NewClient(cfg.InvoiceCache, log)
}

func provideHandlers(
	invoiceService service.InvoiceService,
	log *logger.Logger,
) api.Handlers {
	return api.Handlers{
		Invoice: v1.NewInvoiceHandler(invoiceService, log),
		Health:  v1.NewHealthHandler(),
	}
}

func provideRouter(handlers api.Handlers) *gin.Engine {
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server on %s", cfg.Server.Address)
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
