package v1

import (
	"net/http"

	"github.com/cityledger/invoicegateway/internal/api/dto"
	ierr "github.com/cityledger/invoicegateway/internal/errors"
	"github.com/cityledger/invoicegateway/internal/logger"
	"github.com/cityledger/invoicegateway/internal/service"
	"github.com/cityledger/invoicegateway/internal/types"
	"github.com/cityledger/invoicegateway/internal/validator"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
	logger         *logger.Logger
}

func NewInvoiceHandler(invoiceService service.InvoiceService, logger *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// GetInvoices godoc
// @Summary Search invoices
// @Description Returns invoices matching sent in search parameters
// @Tags Invoices
// @Produce json
// @Param municipalityId path string true "Municipality ID" example(2281)
// @Param invoiceOrigin path string true "Invoice origin" Enums(COMMERCIAL, PUBLIC_ADMINISTRATION)
// @Param params query dto.InvoicesParameters false "Search parameters"
// @Success 200 {object} dto.InvoicesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 502 {object} ierr.ErrorResponse
// @Router /{municipalityId}/{invoiceOrigin} [get]
func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	municipalityID := c.Param("municipalityId")
	if err := validator.ValidateMunicipalityID(municipalityID); err != nil {
		c.Error(err)
		return
	}

	origin, err := types.ParseInvoiceOrigin(c.Param("invoiceOrigin"))
	if err != nil {
		c.Error(err)
		return
	}

	var params dto.InvoicesParameters
	if err := c.ShouldBindQuery(&params); err != nil {
		h.logger.Errorw("failed to bind query parameters", "error", err)
		c.Error(ierr.WithError(err).WithHint("Invalid query parameters").Mark(ierr.ErrValidation))
		return
	}

	params.Normalize()
	if err := params.Validate(); err != nil {
		c.Error(err)
		return
	}

	response, err := h.invoiceService.GetInvoices(c.Request.Context(), municipalityID, origin, params)
	if err != nil {
		h.logger.Errorw("failed to get invoices", "error", err, "origin", origin)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetInvoiceDetails godoc
// @Summary Get invoice details
// @Description Returns invoice-details of an invoice
// @Tags Invoices
// @Produce json
// @Param municipalityId path string true "Municipality ID" example(2281)
// @Param invoiceOrigin path string true "Invoice origin" Enums(COMMERCIAL)
// @Param organizationNumber path string true "Organization number of invoice issuer" example(5565272225)
// @Param invoiceNumber path string true "Id of invoice" example(333444)
// @Success 200 {object} dto.InvoiceDetailsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 502 {object} ierr.ErrorResponse
// @Router /{municipalityId}/{invoiceOrigin}/{organizationNumber}/{invoiceNumber}/details [get]
func (h *InvoiceHandler) GetInvoiceDetails(c *gin.Context) {
	municipalityID := c.Param("municipalityId")
	if err := validator.ValidateMunicipalityID(municipalityID); err != nil {
		c.Error(err)
		return
	}

	// Invoice details exist only for commercial invoices.
	origin, err := types.ParseInvoiceOrigin(c.Param("invoiceOrigin"))
	if err != nil {
		c.Error(err)
		return
	}
	if origin != types.InvoiceOriginCommercial {
		c.Error(ierr.NewErrorf("invoice details are only available for origin %s", types.InvoiceOriginCommercial).
			WithHintf("Invoice details are only available for origin %s", types.InvoiceOriginCommercial).
			Mark(ierr.ErrValidation))
		return
	}

	organizationNumber := c.Param("organizationNumber")
	if err := validator.ValidateOrganizationNumber(organizationNumber); err != nil {
		c.Error(err)
		return
	}

	details, err := h.invoiceService.GetInvoiceDetails(c.Request.Context(), municipalityID, organizationNumber, c.Param("invoiceNumber"))
	if err != nil {
		h.logger.Errorw("failed to get invoice details", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.InvoiceDetailsResponse{Details: details})
}

// GetPdfInvoice godoc
// @Summary Get invoice pdf
// @Description Returns invoice in pdf-format
// @Tags Invoices
// @Produce json
// @Param municipalityId path string true "Municipality ID" example(2281)
// @Param invoiceOrigin path string true "Invoice origin" Enums(COMMERCIAL, PUBLIC_ADMINISTRATION)
// @Param organizationNumber path string true "Organization number of invoice issuer" example(5565272225)
// @Param invoiceNumber path string true "Id of invoice" example(333444)
// @Param invoiceType query string false "Invoice type filter"
// @Success 200 {object} dto.PdfInvoice
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 501 {object} ierr.ErrorResponse
// @Failure 502 {object} ierr.ErrorResponse
// @Router /{municipalityId}/{invoiceOrigin}/{organizationNumber}/{invoiceNumber}/pdf [get]
func (h *InvoiceHandler) GetPdfInvoice(c *gin.Context) {
	municipalityID := c.Param("municipalityId")
	if err := validator.ValidateMunicipalityID(municipalityID); err != nil {
		c.Error(err)
		return
	}

	origin, err := types.ParseInvoiceOrigin(c.Param("invoiceOrigin"))
	if err != nil {
		c.Error(err)
		return
	}

	organizationNumber := c.Param("organizationNumber")
	if err := validator.ValidateOrganizationNumber(organizationNumber); err != nil {
		c.Error(err)
		return
	}

	var invoiceType types.InvoiceType
	if value := c.Query("invoiceType"); value != "" {
		invoiceType = types.InvoiceType(value)
		if err := invoiceType.Validate(); err != nil {
			c.Error(err)
			return
		}
	}

	pdf, err := h.invoiceService.GetPdfInvoice(c.Request.Context(), municipalityID, origin, organizationNumber, c.Param("invoiceNumber"), invoiceType)
	if err != nil {
		h.logger.Errorw("failed to get invoice pdf", "error", err, "origin", origin)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, pdf)
}
