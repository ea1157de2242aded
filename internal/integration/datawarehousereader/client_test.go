package datawarehousereader_test

import (
	"context"
	"net/http"
	"testing"

	ierr "github.com/cityledger/invoicegateway/internal/errors"
	"github.com/cityledger/invoicegateway/internal/integration/datawarehousereader"
	"github.com/cityledger/invoicegateway/internal/logger"
	"github.com/cityledger/invoicegateway/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(mock *testutil.MockHTTPClient) datawarehousereader.Client {
	return datawarehousereader.NewClientWithHTTP("http://datawarehousereader", mock, logger.L)
}

func TestGetCustomerEngagements(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	mock.RegisterJSONResponse("/2281/customer/engagements", http.StatusOK, map[string]any{
		"_meta": map[string]any{"page": 1, "limit": 100, "count": 1, "totalRecords": 1, "totalPages": 1},
		"customerEngagements": []map[string]any{
			{"customerNumber": "111111", "partyId": "p1", "organizationName": "Sundsvall Energi"},
		},
	})

	response, err := newTestClient(mock).GetCustomerEngagements(context.Background(), "2281", []string{"p1", "p2"})
	require.NoError(t, err)
	require.Len(t, response.CustomerEngagements, 1)
	assert.Equal(t, "111111", response.CustomerEngagements[0].CustomerNumber)

	requests := mock.Requests()
	require.Len(t, requests, 1)
	assert.Contains(t, requests[0].URL, "partyId=p1")
	assert.Contains(t, requests[0].URL, "partyId=p2")
}

func TestGetInvoices(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	mock.RegisterJSONResponse("/2281/invoices", http.StatusOK, map[string]any{
		"_meta": map[string]any{"page": 1, "limit": 100, "count": 1, "totalRecords": 1, "totalPages": 1},
		"invoices": []map[string]any{
			{"invoiceNumber": 333444, "invoiceStatus": "Betalad", "currency": "SEK"},
		},
	})

	params := datawarehousereader.InvoiceParameters{
		CustomerNumber: []string{"111111"},
		SortBy:         []string{"invoiceDate"},
		SortDirection:  datawarehousereader.DirectionDesc,
		Page:           1,
		Limit:          100,
	}

	response, err := newTestClient(mock).GetInvoices(context.Background(), "2281", params)
	require.NoError(t, err)
	require.Len(t, response.Invoices, 1)
	assert.Equal(t, int64(333444), *response.Invoices[0].InvoiceNumber)

	requests := mock.Requests()
	require.Len(t, requests, 1)
	assert.Contains(t, requests[0].URL, "sortBy=invoiceDate")
	assert.Contains(t, requests[0].URL, "sortDirection=DESC")
}

func TestGetInvoiceDetails(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	mock.RegisterJSONResponse("/2281/invoices/5560360793/333444/details/", http.StatusOK, []map[string]any{
		{"amount": 250, "productCode": 4911},
	})

	details, err := newTestClient(mock).GetInvoiceDetails(context.Background(), "2281", "5560360793", 333444)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, 4911, *details[0].ProductCode)
}

func TestBackendErrorsMapToBadGateway(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	mock.RegisterResponse("/2281/invoices", testutil.MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       []byte(`{"title":"Internal Server Error","detail":"secret backend state"}`),
	})

	_, err := newTestClient(mock).GetInvoices(context.Background(), "2281", datawarehousereader.InvoiceParameters{})
	require.Error(t, err)
	assert.True(t, ierr.IsBadGateway(err))

	// The backend error body must never leak into the caller-facing message.
	assert.NotContains(t, err.Error(), "secret backend state")
}

func TestMalformedBodyMapsToBadGateway(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	mock.RegisterResponse("/2281/invoices", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       []byte("<html>not json</html>"),
	})

	_, err := newTestClient(mock).GetInvoices(context.Background(), "2281", datawarehousereader.InvoiceParameters{})
	require.Error(t, err)
	assert.True(t, ierr.IsBadGateway(err))
}
