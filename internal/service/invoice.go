package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/cityledger/invoicegateway/internal/api/dto"
	ierr "github.com/cityledger/invoicegateway/internal/errors"
	"github.com/cityledger/invoicegateway/internal/integration/datawarehousereader"
	"github.com/cityledger/invoicegateway/internal/integration/invoicecache"
	"github.com/cityledger/invoicegateway/internal/logger"
	"github.com/cityledger/invoicegateway/internal/types"
	"github.com/samber/lo"
)

// InvoiceService is the routing and orchestration layer: it selects a backend
// from the invoice origin, performs any required pre-fetch, and maps backend
// responses to the unified model. It holds no state between requests and
// never retries; each request fully succeeds or fully fails.
type InvoiceService interface {
	GetInvoices(ctx context.Context, municipalityID string, origin types.InvoiceOrigin, params dto.InvoicesParameters) (*dto.InvoicesResponse, error)
	GetInvoiceDetails(ctx context.Context, municipalityID, organizationNumber, invoiceNumber string) ([]dto.InvoiceDetail, error)
	GetPdfInvoice(ctx context.Context, municipalityID string, origin types.InvoiceOrigin, organizationNumber, invoiceNumber string, invoiceType types.InvoiceType) (*dto.PdfInvoice, error)
}

type invoiceService struct {
	dataWarehouseReader datawarehousereader.Client
	invoiceCache        invoicecache.Client
	logger              *logger.Logger
}

// NewInvoiceService creates the orchestration service
func NewInvoiceService(
	dataWarehouseReader datawarehousereader.Client,
	invoiceCache invoicecache.Client,
	logger *logger.Logger,
) InvoiceService {
	return &invoiceService{
		dataWarehouseReader: dataWarehouseReader,
		invoiceCache:        invoiceCache,
		logger:              logger,
	}
}

func (s *invoiceService) GetInvoices(ctx context.Context, municipalityID string, origin types.InvoiceOrigin, params dto.InvoicesParameters) (*dto.InvoicesResponse, error) {
	switch origin {
	case types.InvoiceOriginCommercial:
		return s.getCommercialInvoices(ctx, municipalityID, params)
	case types.InvoiceOriginPublicAdministration:
		return s.getPublicAdministrationInvoices(ctx, municipalityID, params)
	default:
		return nil, ierr.NewErrorf("invalid value for enum InvoiceOrigin: '%s'", origin).
			WithHintf("Invalid value for enum InvoiceOrigin: '%s'", origin).
			Mark(ierr.ErrValidation)
	}
}

// getCommercialInvoices is a two-step sequence: the party ids are first
// resolved to customer numbers through the engagement lookup, and only a
// successful resolution proceeds to the invoice search.
func (s *invoiceService) getCommercialInvoices(ctx context.Context, municipalityID string, params dto.InvoicesParameters) (*dto.InvoicesResponse, error) {
	customerNumbers, err := s.getCustomerNumbers(ctx, municipalityID, params.PartyID)
	if err != nil {
		return nil, err
	}

	searchParams, err := toDataWarehouseReaderParameters(customerNumbers, params)
	if err != nil {
		return nil, err
	}

	response, err := s.dataWarehouseReader.GetInvoices(ctx, municipalityID, searchParams)
	if err != nil {
		return nil, err
	}
	return toInvoicesResponseFromDataWarehouseReader(response), nil
}

func (s *invoiceService) getPublicAdministrationInvoices(ctx context.Context, municipalityID string, params dto.InvoicesParameters) (*dto.InvoicesResponse, error) {
	response, err := s.invoiceCache.GetInvoices(ctx, municipalityID, toInvoiceCacheParameters(params))
	if err != nil {
		return nil, err
	}
	return toInvoicesResponseFromInvoiceCache(response), nil
}

// getCustomerNumbers translates party identity into the commercial backend's
// customer-number space. This is the only place that translation happens.
func (s *invoiceService) getCustomerNumbers(ctx context.Context, municipalityID string, partyIDs []string) ([]string, error) {
	engagements, err := s.dataWarehouseReader.GetCustomerEngagements(ctx, municipalityID, partyIDs)
	if err != nil {
		return nil, err
	}

	customerNumbers := lo.Uniq(lo.Map(engagements.CustomerEngagements, func(engagement datawarehousereader.CustomerEngagement, _ int) string {
		return engagement.CustomerNumber
	}))

	if len(customerNumbers) == 0 {
		return nil, ierr.NewErrorf("no engagements found for partyIds: '%s'", strings.Join(partyIDs, ", ")).
			WithHintf("No engagements found for partyIds: '%s'", strings.Join(partyIDs, ", ")).
			Mark(ierr.ErrNotFound)
	}
	return customerNumbers, nil
}

// GetInvoiceDetails returns the line items of one commercial invoice. Invoice
// details exist only for commercial invoices in this design.
func (s *invoiceService) GetInvoiceDetails(ctx context.Context, municipalityID, organizationNumber, invoiceNumber string) ([]dto.InvoiceDetail, error) {
	parsedInvoiceNumber, err := strconv.ParseInt(invoiceNumber, 10, 64)
	if err != nil || parsedInvoiceNumber < 0 {
		return nil, ierr.NewErrorf("invalid invoice number '%s'", invoiceNumber).
			WithHintf("Invalid invoice number '%s', expected a non-negative number", invoiceNumber).
			Mark(ierr.ErrValidation)
	}

	details, err := s.dataWarehouseReader.GetInvoiceDetails(ctx, municipalityID, organizationNumber, parsedInvoiceNumber)
	if err != nil {
		return nil, err
	}
	return toInvoiceDetails(details), nil
}

func (s *invoiceService) GetPdfInvoice(ctx context.Context, municipalityID string, origin types.InvoiceOrigin, organizationNumber, invoiceNumber string, invoiceType types.InvoiceType) (*dto.PdfInvoice, error) {
	switch origin {
	case types.InvoiceOriginPublicAdministration:
		return s.getPublicAdministrationPdf(ctx, municipalityID, organizationNumber, invoiceNumber, invoiceType)
	case types.InvoiceOriginCommercial:
		// Deliberate placeholder until the commercial PDF source is integrated.
		return nil, ierr.NewError("pdf retrieval for origin COMMERCIAL is not implemented yet").
			WithHint("Invoice pdf retrieval is not implemented yet for origin COMMERCIAL").
			Mark(ierr.ErrNotImplemented)
	default:
		return nil, ierr.NewErrorf("invalid value for enum InvoiceOrigin: '%s'", origin).
			WithHintf("Invalid value for enum InvoiceOrigin: '%s'", origin).
			Mark(ierr.ErrValidation)
	}
}

func (s *invoiceService) getPublicAdministrationPdf(ctx context.Context, municipalityID, organizationNumber, invoiceNumber string, invoiceType types.InvoiceType) (*dto.PdfInvoice, error) {
	pdf, err := s.invoiceCache.GetInvoicePdf(ctx, municipalityID, organizationNumber, invoiceNumber, toInvoiceCacheInvoiceType(invoiceType))
	if err != nil {
		return nil, err
	}

	mapped, err := toPdfInvoice(pdf)
	if err != nil {
		s.logger.Errorw("failed to decode invoice pdf content", "error", err, "invoice_number", invoiceNumber)
		return nil, ierr.WithError(err).
			WithHint("The invoice data source returned an unexpected response").
			Mark(ierr.ErrBadGateway)
	}
	return mapped, nil
}
