package invoicecache

import (
	"net/url"
	"strconv"

	"github.com/cityledger/invoicegateway/internal/types"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the closed status vocabulary of the invoice-cache backend
type InvoiceStatus string

const (
	StatusPaid           InvoiceStatus = "PAID"
	StatusUnpaid         InvoiceStatus = "UNPAID"
	StatusSent           InvoiceStatus = "SENT"
	StatusPartiallyPaid  InvoiceStatus = "PARTIALLY_PAID"
	StatusDebtCollection InvoiceStatus = "DEBT_COLLECTION"
	StatusPaidTooMuch    InvoiceStatus = "PAID_TOO_MUCH"
	StatusReminder       InvoiceStatus = "REMINDER"
	StatusVoid           InvoiceStatus = "VOID"
	StatusUnknown        InvoiceStatus = "UNKNOWN"
)

// InvoiceType is the closed type vocabulary of the invoice-cache backend.
// Unlike the status enum it carries no UNKNOWN value.
type InvoiceType string

const (
	TypeInvoice             InvoiceType = "INVOICE"
	TypeCreditInvoice       InvoiceType = "CREDIT_INVOICE"
	TypeDirectDebit         InvoiceType = "DIRECT_DEBIT"
	TypeFinalInvoice        InvoiceType = "FINAL_INVOICE"
	TypeReminder            InvoiceType = "REMINDER"
	TypeSelfInvoice         InvoiceType = "SELF_INVOICE"
	TypeConsolidatedInvoice InvoiceType = "CONSOLIDATED_INVOICE"
)

// InvoiceFilterRequest is the invoice search filter sent as query parameters
type InvoiceFilterRequest struct {
	InvoiceNumbers  []string
	InvoiceDateFrom *types.Date
	InvoiceDateTo   *types.Date
	DueDateFrom     *types.Date
	DueDateTo       *types.Date
	PartyIDs        []string
	OcrNumber       string
	Page            int
	Limit           int
}

// Values encodes the filter as backend query parameters
func (r InvoiceFilterRequest) Values() url.Values {
	values := url.Values{}
	for _, invoiceNumber := range r.InvoiceNumbers {
		values.Add("invoiceNumbers", invoiceNumber)
	}
	if r.InvoiceDateFrom != nil {
		values.Set("invoiceDateFrom", r.InvoiceDateFrom.String())
	}
	if r.InvoiceDateTo != nil {
		values.Set("invoiceDateTo", r.InvoiceDateTo.String())
	}
	if r.DueDateFrom != nil {
		values.Set("dueDateFrom", r.DueDateFrom.String())
	}
	if r.DueDateTo != nil {
		values.Set("dueDateTo", r.DueDateTo.String())
	}
	for _, partyID := range r.PartyIDs {
		values.Add("partyIds", partyID)
	}
	if r.OcrNumber != "" {
		values.Set("ocrNumber", r.OcrNumber)
	}
	if r.Page > 0 {
		values.Set("page", strconv.Itoa(r.Page))
	}
	if r.Limit > 0 {
		values.Set("limit", strconv.Itoa(r.Limit))
	}
	return values
}

// Address is the nested invoice address
type Address struct {
	Street   *string `json:"street,omitempty"`
	Postcode *string `json:"postcode,omitempty"`
	City     *string `json:"city,omitempty"`
	CareOf   *string `json:"careOf,omitempty"`
}

// Invoice is the backend invoice representation. The backend carries no
// currency field.
type Invoice struct {
	InvoiceDueDate     *types.Date      `json:"invoiceDueDate,omitempty"`
	TotalAmount        *decimal.Decimal `json:"totalAmount,omitempty"`
	AmountVatExcluded  *decimal.Decimal `json:"amountVatExcluded,omitempty"`
	Vat                *decimal.Decimal `json:"vat,omitempty"`
	InvoiceDate        *types.Date      `json:"invoiceDate,omitempty"`
	InvoiceDescription *string          `json:"invoiceDescription,omitempty"`
	InvoiceNumber      *string          `json:"invoiceNumber,omitempty"`
	OcrNumber          *string          `json:"ocrNumber,omitempty"`
	InvoiceStatus      *InvoiceStatus   `json:"invoiceStatus,omitempty"`
	InvoiceType        *InvoiceType     `json:"invoiceType,omitempty"`
	InvoiceAddress     *Address         `json:"invoiceAddress,omitempty"`
}

// MetaData is the backend pagination echo
type MetaData struct {
	Page         int `json:"page"`
	Limit        int `json:"limit"`
	Count        int `json:"count"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

// InvoicesResponse is the invoice search envelope
type InvoicesResponse struct {
	Meta     MetaData  `json:"_meta"`
	Invoices []Invoice `json:"invoices"`
}

// InvoicePdf is a PDF payload with base64 encoded content
type InvoicePdf struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content,omitempty"`
}
