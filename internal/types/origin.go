package types

import (
	ierr "github.com/cityledger/invoicegateway/internal/errors"
	"github.com/samber/lo"
)

// InvoiceOrigin is the discriminator selecting which backend system services
// a request. It is always stamped on returned invoices by the mapping layer
// and never accepted from invoice payloads.
type InvoiceOrigin string

const (
	// InvoiceOriginCommercial routes to the data-warehouse-reader backend
	InvoiceOriginCommercial InvoiceOrigin = "COMMERCIAL"
	// InvoiceOriginPublicAdministration routes to the invoice-cache backend
	InvoiceOriginPublicAdministration InvoiceOrigin = "PUBLIC_ADMINISTRATION"
)

func (o InvoiceOrigin) String() string {
	return string(o)
}

func (o InvoiceOrigin) Validate() error {
	allowed := []InvoiceOrigin{
		InvoiceOriginCommercial,
		InvoiceOriginPublicAdministration,
	}
	if !lo.Contains(allowed, o) {
		return ierr.NewErrorf("invalid value for enum InvoiceOrigin: '%s'", o).
			WithHintf("Invalid value for enum InvoiceOrigin: '%s'", o).
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ParseInvoiceOrigin parses an origin path segment
func ParseInvoiceOrigin(value string) (InvoiceOrigin, error) {
	origin := InvoiceOrigin(value)
	if err := origin.Validate(); err != nil {
		return "", err
	}
	return origin, nil
}
