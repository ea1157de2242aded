package testutil

import (
	"context"

	"github.com/cityledger/invoicegateway/internal/integration/datawarehousereader"
	"github.com/cityledger/invoicegateway/internal/integration/invoicecache"
)

// MockDataWarehouseReaderClient is a recording fake for the commercial backend
type MockDataWarehouseReaderClient struct {
	EngagementsResponse *datawarehousereader.CustomerEngagementResponse
	EngagementsErr      error
	InvoicesResponse    *datawarehousereader.InvoiceResponse
	InvoicesErr         error
	DetailsResponse     []datawarehousereader.InvoiceDetail
	DetailsErr          error

	EngagementCalls []EngagementCall
	InvoiceCalls    []InvoiceCall
	DetailCalls     []DetailCall
}

type EngagementCall struct {
	MunicipalityID string
	PartyIDs       []string
}

type InvoiceCall struct {
	MunicipalityID string
	Params         datawarehousereader.InvoiceParameters
}

type DetailCall struct {
	MunicipalityID     string
	OrganizationNumber string
	InvoiceNumber      int64
}

func (m *MockDataWarehouseReaderClient) GetCustomerEngagements(ctx context.Context, municipalityID string, partyIDs []string) (*datawarehousereader.CustomerEngagementResponse, error) {
	m.EngagementCalls = append(m.EngagementCalls, EngagementCall{MunicipalityID: municipalityID, PartyIDs: partyIDs})
	if m.EngagementsErr != nil {
		return nil, m.EngagementsErr
	}
	return m.EngagementsResponse, nil
}

func (m *MockDataWarehouseReaderClient) GetInvoices(ctx context.Context, municipalityID string, params datawarehousereader.InvoiceParameters) (*datawarehousereader.InvoiceResponse, error) {
	m.InvoiceCalls = append(m.InvoiceCalls, InvoiceCall{MunicipalityID: municipalityID, Params: params})
	if m.InvoicesErr != nil {
		return nil, m.InvoicesErr
	}
	return m.InvoicesResponse, nil
}

func (m *MockDataWarehouseReaderClient) GetInvoiceDetails(ctx context.Context, municipalityID, organizationNumber string, invoiceNumber int64) ([]datawarehousereader.InvoiceDetail, error) {
	m.DetailCalls = append(m.DetailCalls, DetailCall{MunicipalityID: municipalityID, OrganizationNumber: organizationNumber, InvoiceNumber: invoiceNumber})
	if m.DetailsErr != nil {
		return nil, m.DetailsErr
	}
	return m.DetailsResponse, nil
}

// MockInvoiceCacheClient is a recording fake for the public-administration
// backend
type MockInvoiceCacheClient struct {
	InvoicesResponse *invoicecache.InvoicesResponse
	InvoicesErr      error
	PdfResponse      *invoicecache.InvoicePdf
	PdfErr           error

	FilterCalls []FilterCall
	PdfCalls    []PdfCall
}

type FilterCall struct {
	MunicipalityID string
	Filter         invoicecache.InvoiceFilterRequest
}

type PdfCall struct {
	MunicipalityID string
	IssuerLegalID  string
	InvoiceNumber  string
	InvoiceType    *invoicecache.InvoiceType
}

func (m *MockInvoiceCacheClient) GetInvoices(ctx context.Context, municipalityID string, filter invoicecache.InvoiceFilterRequest) (*invoicecache.InvoicesResponse, error) {
	m.FilterCalls = append(m.FilterCalls, FilterCall{MunicipalityID: municipalityID, Filter: filter})
	if m.InvoicesErr != nil {
		return nil, m.InvoicesErr
	}
	return m.InvoicesResponse, nil
}

func (m *MockInvoiceCacheClient) GetInvoicePdf(ctx context.Context, municipalityID, issuerLegalID, invoiceNumber string, invoiceType *invoicecache.InvoiceType) (*invoicecache.InvoicePdf, error) {
	m.PdfCalls = append(m.PdfCalls, PdfCall{MunicipalityID: municipalityID, IssuerLegalID: issuerLegalID, InvoiceNumber: invoiceNumber, InvoiceType: invoiceType})
	if m.PdfErr != nil {
		return nil, m.PdfErr
	}
	return m.PdfResponse, nil
}
