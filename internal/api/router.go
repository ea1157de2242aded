package api

import (
	v1 "github.com/cityledger/invoicegateway/internal/api/v1"
	"github.com/cityledger/invoicegateway/internal/rest/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Invoice *v1.InvoiceHandler
	Health  *v1.HealthHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.Health.Health)

	registerInvoiceRoutes(router, handlers)

	return router
}

func registerInvoiceRoutes(router *gin.Engine, handlers Handlers) {
	invoices := router.Group("/:municipalityId/:invoiceOrigin")
	{
		invoices.GET("", handlers.Invoice.GetInvoices)
		invoices.GET("/:organizationNumber/:invoiceNumber/details", handlers.Invoice.GetInvoiceDetails)
		invoices.GET("/:organizationNumber/:invoiceNumber/pdf", handlers.Invoice.GetPdfInvoice)
	}
}
