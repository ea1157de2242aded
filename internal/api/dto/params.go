package dto

import (
	ierr "github.com/cityledger/invoicegateway/internal/errors"
	"github.com/cityledger/invoicegateway/internal/types"
	"github.com/cityledger/invoicegateway/internal/validator"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
	MaxLimit     = 1000
)

// InvoicesParameters is the single search parameter shape accepted regardless
// of origin. Fields unsupported by a given origin are silently ignored by
// that origin's mapper.
type InvoicesParameters struct {
	Page               int                 `form:"page"`
	Limit              int                 `form:"limit"`
	PartyID            []string            `form:"partyId"`
	FacilityIDs        []string            `form:"facilityId"`
	InvoiceNumber      string              `form:"invoiceNumber"`
	InvoiceDateFrom    *types.Date         `form:"invoiceDateFrom"`
	InvoiceDateTo      *types.Date         `form:"invoiceDateTo"`
	InvoiceName        string              `form:"invoiceName"`
	InvoiceType        types.InvoiceType   `form:"invoiceType"`
	InvoiceStatus      types.InvoiceStatus `form:"invoiceStatus"`
	OcrNumber          string              `form:"ocrNumber"`
	DueDateFrom        *types.Date         `form:"dueDateFrom"`
	DueDateTo          *types.Date         `form:"dueDateTo"`
	OrganizationNumber string              `form:"organizationNumber"`
	OrganizationGroup  string              `form:"organizationGroup"`
}

// Normalize applies pagination defaults
func (p *InvoicesParameters) Normalize() {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
}

// Validate enforces the parameter contract. It never reaches out to any
// backend; validation failures short-circuit before orchestration runs.
func (p InvoicesParameters) Validate() error {
	if p.Page < 1 {
		return ierr.NewError("page must be greater than or equal to 1").
			WithHint("page must be greater than or equal to 1").
			Mark(ierr.ErrValidation)
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return ierr.NewErrorf("limit must be between 1 and %d", MaxLimit).
			WithHintf("limit must be between 1 and %d", MaxLimit).
			Mark(ierr.ErrValidation)
	}
	if err := validator.ValidatePartyIDs(p.PartyID); err != nil {
		return err
	}
	if p.OrganizationNumber != "" {
		if err := validator.ValidateOrganizationNumber(p.OrganizationNumber); err != nil {
			return err
		}
	}
	if p.InvoiceType != "" {
		if err := p.InvoiceType.Validate(); err != nil {
			return err
		}
	}
	if p.InvoiceStatus != "" {
		if err := p.InvoiceStatus.Validate(); err != nil {
			return err
		}
	}
	return nil
}
