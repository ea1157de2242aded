package datawarehousereader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cityledger/invoicegateway/internal/config"
	ierr "github.com/cityledger/invoicegateway/internal/errors"
	"github.com/cityledger/invoicegateway/internal/httpclient"
	"github.com/cityledger/invoicegateway/internal/logger"
)

// Client defines the commercial backend operations consumed by the gateway
type Client interface {
	GetCustomerEngagements(ctx context.Context, municipalityID string, partyIDs []string) (*CustomerEngagementResponse, error)
	GetInvoices(ctx context.Context, municipalityID string, params InvoiceParameters) (*InvoiceResponse, error)
	GetInvoiceDetails(ctx context.Context, municipalityID, organizationNumber string, invoiceNumber int64) ([]InvoiceDetail, error)
}

type client struct {
	baseURL    string
	httpClient httpclient.Client
	logger     *logger.Logger
}

// NewClient creates a data-warehouse-reader client
func NewClient(cfg config.IntegrationConfig, logger *logger.Logger) Client {
	return &client{
		baseURL:    cfg.URL,
		httpClient: httpclient.NewClient(cfg.ClientConfig()),
		logger:     logger,
	}
}

// NewClientWithHTTP creates a client with a custom http client, used in tests
func NewClientWithHTTP(baseURL string, httpClient httpclient.Client, logger *logger.Logger) Client {
	return &client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *client) GetCustomerEngagements(ctx context.Context, municipalityID string, partyIDs []string) (*CustomerEngagementResponse, error) {
	values := url.Values{}
	for _, partyID := range partyIDs {
		values.Add("partyId", partyID)
	}

	var response CustomerEngagementResponse
	requestURL := fmt.Sprintf("%s/%s/customer/engagements?%s", c.baseURL, municipalityID, values.Encode())
	if err := c.get(ctx, requestURL, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *client) GetInvoices(ctx context.Context, municipalityID string, params InvoiceParameters) (*InvoiceResponse, error) {
	var response InvoiceResponse
	requestURL := fmt.Sprintf("%s/%s/invoices?%s", c.baseURL, municipalityID, params.Values().Encode())
	if err := c.get(ctx, requestURL, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *client) GetInvoiceDetails(ctx context.Context, municipalityID, organizationNumber string, invoiceNumber int64) ([]InvoiceDetail, error) {
	var details []InvoiceDetail
	requestURL := fmt.Sprintf("%s/%s/invoices/%s/%d/details/", c.baseURL, municipalityID, organizationNumber, invoiceNumber)
	if err := c.get(ctx, requestURL, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// get performs a request and decodes the JSON body. Backend error bodies are
// logged but never propagated to callers.
func (c *client) get(ctx context.Context, requestURL string, out any) error {
	resp, err := c.httpClient.Send(ctx, &httpclient.Request{
		Method: http.MethodGet,
		URL:    requestURL,
		Headers: map[string]string{
			"Accept": "application/json",
		},
	})
	if err != nil {
		if httpErr, ok := httpclient.IsHTTPError(err); ok {
			c.logger.Errorw("data-warehouse-reader returned an error response",
				"status_code", httpErr.StatusCode,
				"url", requestURL)
		} else {
			c.logger.Errorw("data-warehouse-reader request failed", "error", err, "url", requestURL)
		}
		return ierr.WithError(err).
			WithHint("The invoice data source could not be reached").
			Mark(ierr.ErrBadGateway)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		c.logger.Errorw("failed to decode data-warehouse-reader response", "error", err, "url", requestURL)
		return ierr.WithError(err).
			WithHint("The invoice data source returned an unexpected response").
			Mark(ierr.ErrBadGateway)
	}
	return nil
}
