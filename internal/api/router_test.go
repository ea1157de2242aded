package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cityledger/invoicegateway/internal/api"
	v1 "github.com/cityledger/invoicegateway/internal/api/v1"
	"github.com/cityledger/invoicegateway/internal/api/dto"
	ierr "github.com/cityledger/invoicegateway/internal/errors"
	"github.com/cityledger/invoicegateway/internal/logger"
	"github.com/cityledger/invoicegateway/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPartyID = "ac653c32-b26c-47e8-8c2e-3b18c1b5879c"

// stubInvoiceService lets each test pin the service outcome
type stubInvoiceService struct {
	invoicesResponse *dto.InvoicesResponse
	invoicesErr      error
	details          []dto.InvoiceDetail
	detailsErr       error
	pdf              *dto.PdfInvoice
	pdfErr           error

	lastOrigin types.InvoiceOrigin
	lastParams dto.InvoicesParameters
}

func (s *stubInvoiceService) GetInvoices(ctx context.Context, municipalityID string, origin types.InvoiceOrigin, params dto.InvoicesParameters) (*dto.InvoicesResponse, error) {
	s.lastOrigin = origin
	s.lastParams = params
	return s.invoicesResponse, s.invoicesErr
}

func (s *stubInvoiceService) GetInvoiceDetails(ctx context.Context, municipalityID, organizationNumber, invoiceNumber string) ([]dto.InvoiceDetail, error) {
	return s.details, s.detailsErr
}

func (s *stubInvoiceService) GetPdfInvoice(ctx context.Context, municipalityID string, origin types.InvoiceOrigin, organizationNumber, invoiceNumber string, invoiceType types.InvoiceType) (*dto.PdfInvoice, error) {
	return s.pdf, s.pdfErr
}

func newTestRouter(stub *stubInvoiceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return api.NewRouter(api.Handlers{
		Invoice: v1.NewInvoiceHandler(stub, logger.L),
		Health:  v1.NewHealthHandler(),
	})
}

func doRequest(router *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubInvoiceService{})
	w := doRequest(router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetInvoicesEndpoint(t *testing.T) {
	stub := &stubInvoiceService{
		invoicesResponse: &dto.InvoicesResponse{
			Meta: dto.MetaData{Page: 1, Limit: 100, Count: 1, TotalRecords: 1, TotalPages: 1},
			Invoices: []dto.Invoice{
				{
					InvoiceNumber: lo.ToPtr("333444"),
					InvoiceStatus: types.InvoiceStatusPaid,
					InvoiceOrigin: types.InvoiceOriginCommercial,
					Currency:      "SEK",
				},
			},
		},
	}
	router := newTestRouter(stub)

	w := doRequest(router, "/2281/COMMERCIAL?partyId="+validPartyID)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.InvoicesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Invoices, 1)
	assert.Equal(t, "333444", *response.Invoices[0].InvoiceNumber)
	assert.Equal(t, 1, response.Meta.Page)

	// Defaults are applied before the service call.
	assert.Equal(t, types.InvoiceOriginCommercial, stub.lastOrigin)
	assert.Equal(t, dto.DefaultPage, stub.lastParams.Page)
	assert.Equal(t, dto.DefaultLimit, stub.lastParams.Limit)
}

func TestGetInvoicesEndpointValidation(t *testing.T) {
	router := newTestRouter(&stubInvoiceService{})

	testCases := []struct {
		name string
		url  string
	}{
		{"bad_municipality_id", "/12/COMMERCIAL?partyId=" + validPartyID},
		{"bad_origin", "/2281/SOMETHING?partyId=" + validPartyID},
		{"missing_party_id", "/2281/COMMERCIAL"},
		{"party_id_not_uuid", "/2281/COMMERCIAL?partyId=333"},
		{"limit_out_of_range", "/2281/COMMERCIAL?partyId=" + validPartyID + "&limit=1001"},
		{"malformed_date", "/2281/COMMERCIAL?partyId=" + validPartyID + "&invoiceDateFrom=June"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, tc.url)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetInvoicesEndpointNotFound(t *testing.T) {
	stub := &stubInvoiceService{
		invoicesErr: ierr.NewError("no engagements found").
			WithHint("No engagements found for partyIds: '" + validPartyID + "'").
			Mark(ierr.ErrNotFound),
	}
	router := newTestRouter(stub)

	w := doRequest(router, "/2281/COMMERCIAL?partyId="+validPartyID)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response ierr.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Contains(t, response.Error.Display, "No engagements found")
}

func TestGetInvoicesEndpointUpstreamFailure(t *testing.T) {
	stub := &stubInvoiceService{
		invoicesErr: ierr.NewError("upstream failed").
			WithHint("The invoice data source could not be reached").
			Mark(ierr.ErrBadGateway),
	}
	router := newTestRouter(stub)

	w := doRequest(router, "/2281/PUBLIC_ADMINISTRATION?partyId="+validPartyID)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetInvoiceDetailsEndpoint(t *testing.T) {
	stub := &stubInvoiceService{details: []dto.InvoiceDetail{{Description: lo.ToPtr("Elförbrukning")}}}
	router := newTestRouter(stub)

	w := doRequest(router, "/2281/COMMERCIAL/5560360793/333444/details")
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.InvoiceDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Details, 1)
	assert.Equal(t, "Elförbrukning", *response.Details[0].Description)
}

func TestGetInvoiceDetailsEndpointRejectsWrongOrigin(t *testing.T) {
	router := newTestRouter(&stubInvoiceService{})

	w := doRequest(router, "/2281/PUBLIC_ADMINISTRATION/5560360793/333444/details")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetInvoiceDetailsEndpointRejectsBadOrganizationNumber(t *testing.T) {
	router := newTestRouter(&stubInvoiceService{})

	w := doRequest(router, "/2281/COMMERCIAL/123/333444/details")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPdfInvoiceEndpoint(t *testing.T) {
	stub := &stubInvoiceService{
		pdf: &dto.PdfInvoice{FileName: "faktura-98765.pdf", File: []byte("%PDF")},
	}
	router := newTestRouter(stub)

	w := doRequest(router, "/2281/PUBLIC_ADMINISTRATION/5560360793/98765/pdf")
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.PdfInvoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "faktura-98765.pdf", response.FileName)
	assert.Equal(t, []byte("%PDF"), response.File)
}

func TestGetPdfInvoiceEndpointInvalidType(t *testing.T) {
	router := newTestRouter(&stubInvoiceService{})

	w := doRequest(router, "/2281/PUBLIC_ADMINISTRATION/5560360793/98765/pdf?invoiceType=FAKTURA")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPdfInvoiceEndpointNotImplemented(t *testing.T) {
	stub := &stubInvoiceService{
		pdfErr: ierr.NewError("pdf retrieval for origin COMMERCIAL is not implemented yet").
			WithHint("Invoice pdf retrieval is not implemented yet for origin COMMERCIAL").
			Mark(ierr.ErrNotImplemented),
	}
	router := newTestRouter(stub)

	w := doRequest(router, "/2281/COMMERCIAL/5560360793/333444/pdf")
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}
