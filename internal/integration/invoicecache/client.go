package invoicecache

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

// Client defines the public-administration backend operations consumed by
// the gateway
type Client interface {
	GetInvoices(ctx context.Context, municipalityID string, filter InvoiceFilterRequest) (*InvoicesResponse, error)
	GetInvoicePdf(ctx context.Context, municipalityID, issuerLegalID, invoiceNumber string, invoiceType *InvoiceType) (*InvoicePdf, error)
}

type client struct {
	baseURL    string
	httpClient httpclient.Client
	logger     *logger.Logger
}

// NewClient creates an invoice-cache client
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

func (c *client) GetInvoices(ctx context.Context, municipalityID string, filter InvoiceFilterRequest) (*InvoicesResponse, error) {
	var response InvoicesResponse
	requestURL := fmt.Sprintf("%s/%s/invoices?%s", c.baseURL, municipalityID, filter.Values().Encode())
	if err := c.get(ctx, requestURL, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *client) GetInvoicePdf(ctx context.Context, municipalityID, issuerLegalID, invoiceNumber string, invoiceType *InvoiceType) (*InvoicePdf, error) {
	values := url.Values{}
	if invoiceType != nil {
		values.Set("invoiceType", string(*invoiceType))
	}

	requestURL := fmt.Sprintf("%s/%s/invoices/%s/%s/pdf", c.baseURL, municipalityID, issuerLegalID, invoiceNumber)
	if encoded := values.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	var pdf InvoicePdf
	if err := c.get(ctx, requestURL, &pdf); err != nil {
		return nil, err
	}
	return &pdf, nil
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
			c.logger.Errorw("invoice-cache returned an error response",
				"status_code", httpErr.StatusCode,
				"url", requestURL)
		} else {
			c.logger.Errorw("invoice-cache request failed", "error", err, "url", requestURL)
		}
		return ierr.WithError(err).
			WithHint("The invoice data source could not be reached").
			Mark(ierr.ErrBadGateway)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		c.logger.Errorw("failed to decode invoice-cache response", "error", err, "url", requestURL)
		return ierr.WithError(err).
			WithHint("The invoice data source returned an unexpected response").
			Mark(ierr.ErrBadGateway)
	}
	return nil
}
