package types

import (
	ierr "github.com/cityledger/invoicegateway/internal/errors"
	"github.com/samber/lo"
)

// InvoiceStatus represents the unified payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPaid           InvoiceStatus = "PAID"
	InvoiceStatusPartiallyPaid  InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPaidTooMuch    InvoiceStatus = "PAID_TOO_MUCH"
	InvoiceStatusDebtCollection InvoiceStatus = "DEBT_COLLECTION"
	InvoiceStatusReminder       InvoiceStatus = "REMINDER"
	InvoiceStatusSent           InvoiceStatus = "SENT"
	InvoiceStatusVoid           InvoiceStatus = "VOID"
	InvoiceStatusCredited       InvoiceStatus = "CREDITED"
	InvoiceStatusWrittenOff     InvoiceStatus = "WRITTEN_OFF"
	InvoiceStatusUnknown        InvoiceStatus = "UNKNOWN"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusPaid,
		InvoiceStatusPartiallyPaid,
		InvoiceStatusPaidTooMuch,
		InvoiceStatusDebtCollection,
		InvoiceStatusReminder,
		InvoiceStatusSent,
		InvoiceStatusVoid,
		InvoiceStatusCredited,
		InvoiceStatusWrittenOff,
		InvoiceStatusUnknown,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHintf("Invalid value for enum InvoiceStatus: '%s'", s).
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// InvoiceType categorizes the nature of an invoice
type InvoiceType string

const (
	InvoiceTypeInvoice             InvoiceType = "INVOICE"
	InvoiceTypeCreditInvoice       InvoiceType = "CREDIT_INVOICE"
	InvoiceTypeStartInvoice        InvoiceType = "START_INVOICE"
	InvoiceTypeFinalInvoice        InvoiceType = "FINAL_INVOICE"
	InvoiceTypeDirectDebit         InvoiceType = "DIRECT_DEBIT"
	InvoiceTypeSelfInvoice         InvoiceType = "SELF_INVOICE"
	InvoiceTypeReminder            InvoiceType = "REMINDER"
	InvoiceTypeConsolidatedInvoice InvoiceType = "CONSOLIDATED_INVOICE"
	InvoiceTypeInternalInvoice     InvoiceType = "INTERNAL_INVOICE"
	InvoiceTypeOffsetInvoice       InvoiceType = "OFFSET_INVOICE"
	InvoiceTypeUnknown             InvoiceType = "UNKNOWN"
)

func (t InvoiceType) String() string {
	return string(t)
}

func (t InvoiceType) Validate() error {
	allowed := []InvoiceType{
		InvoiceTypeInvoice,
		InvoiceTypeCreditInvoice,
		InvoiceTypeStartInvoice,
		InvoiceTypeFinalInvoice,
		InvoiceTypeDirectDebit,
		InvoiceTypeSelfInvoice,
		InvoiceTypeReminder,
		InvoiceTypeConsolidatedInvoice,
		InvoiceTypeInternalInvoice,
		InvoiceTypeOffsetInvoice,
		InvoiceTypeUnknown,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid invoice type").
			WithHintf("Invalid value for enum InvoiceType: '%s'", t).
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
