package idata

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cityledger/invoicegateway/internal/config"
	ierr "github.com/cityledger/invoicegateway/internal/errors"
	"github.com/cityledger/invoicegateway/internal/httpclient"
	"github.com/cityledger/invoicegateway/internal/logger"
)

// Client fetches raw invoice PDFs from the legacy IDATA backend. Every
// request is signed with the IDATA HMAC authorization scheme.
type Client interface {
	GetInvoice(ctx context.Context, invoiceNumber string) ([]byte, error)
}

type client struct {
	baseURL        string
	customerNumber string
	auth           authorizer
	httpClient     httpclient.Client
	logger         *logger.Logger
}

// NewClient creates an IDATA client
func NewClient(cfg config.IdataConfig, httpClient httpclient.Client, logger *logger.Logger) Client {
	return &client{
		baseURL:        cfg.URL,
		customerNumber: cfg.CustomerNumber,
		auth: authorizer{
			apiKey:    cfg.APIKey,
			secretKey: cfg.SecretKey,
		},
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *client) GetInvoice(ctx context.Context, invoiceNumber string) ([]byte, error) {
	query := url.Values{}
	query.Set("customerno", c.customerNumber)
	query.Set("invoiceno", invoiceNumber)

	resp, err := c.httpClient.Send(ctx, &httpclient.Request{
		Method: http.MethodGet,
		URL:    c.baseURL + "?" + query.Encode(),
		Headers: map[string]string{
			"Authorization": c.auth.AuthorizationHeader(query),
		},
	})
	if err != nil {
		c.logger.Errorw("idata request failed", "error", err, "invoice_number", invoiceNumber)
		return nil, ierr.WithError(err).
			WithHint("The invoice data source could not be reached").
			Mark(ierr.ErrBadGateway)
	}
	return resp.Body, nil
}
