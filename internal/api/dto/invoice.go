package dto

import (
	"github.com/cityledger/invoicegateway/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice is the unified invoice model returned to API callers regardless of
// which backend produced it. InvoiceOrigin is stamped by the mapping layer
// and never accepted from input.
type Invoice struct {
	DueDate            *types.Date         `json:"dueDate,omitempty"`
	TotalAmount        decimal.Decimal     `json:"totalAmount"`
	AmountVatIncluded  decimal.Decimal     `json:"amountVatIncluded"`
	AmountVatExcluded  decimal.Decimal     `json:"amountVatExcluded"`
	VatEligibleAmount  decimal.Decimal     `json:"vatEligibleAmount"`
	Rounding           decimal.Decimal     `json:"rounding"`
	Vat                decimal.Decimal     `json:"vat"`
	ReversedVat        *bool               `json:"reversedVat,omitempty"`
	PdfAvailable       *bool               `json:"pdfAvailable,omitempty"`
	Currency           string              `json:"currency,omitempty"`
	InvoiceDate        *types.Date         `json:"invoiceDate,omitempty"`
	FromDate           *types.Date         `json:"fromDate,omitempty"`
	ToDate             *types.Date         `json:"toDate,omitempty"`
	InvoiceNumber      *string             `json:"invoiceNumber,omitempty"`
	InvoiceStatus      types.InvoiceStatus `json:"invoiceStatus,omitempty"`
	OcrNumber          *string             `json:"ocrNumber,omitempty"`
	OrganizationNumber *string             `json:"organizationNumber,omitempty"`
	InvoiceName        *string             `json:"invoiceName,omitempty"`
	InvoiceType        types.InvoiceType   `json:"invoiceType,omitempty"`
	InvoiceDescription *string             `json:"invoiceDescription,omitempty"`
	InvoiceAddress     *Address            `json:"invoiceAddress,omitempty"`
	FacilityID         *string             `json:"facilityId,omitempty"`
	InvoiceOrigin      types.InvoiceOrigin `json:"invoiceOrigin"`
}

// InvoiceDetail is a period level line item of one commercial invoice
type InvoiceDetail struct {
	Amount            decimal.Decimal `json:"amount"`
	AmountVatExcluded decimal.Decimal `json:"amountVatExcluded"`
	Vat               decimal.Decimal `json:"vat"`
	VatRate           decimal.Decimal `json:"vatRate"`
	Quantity          decimal.Decimal `json:"quantity"`
	Unit              *string         `json:"unit,omitempty"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	Description       *string         `json:"description,omitempty"`
	ProductCode       *string         `json:"productCode,omitempty"`
	ProductName       *string         `json:"productName,omitempty"`
	FromDate          *types.Date     `json:"fromDate,omitempty"`
	ToDate            *types.Date     `json:"toDate,omitempty"`
	FacilityID        *string         `json:"facilityId,omitempty"`
	Administration    *string         `json:"administration,omitempty"`
}

// Address is an invoice delivery address. It is nil when the backend carries
// no address information at all.
type Address struct {
	Street   *string `json:"street,omitempty"`
	Postcode *string `json:"postcode,omitempty"`
	City     *string `json:"city,omitempty"`
	CareOf   *string `json:"careOf,omitempty"`
}

// MetaData is the pagination echo from whichever backend answered
type MetaData struct {
	Page         int `json:"page"`
	Limit        int `json:"limit"`
	Count        int `json:"count"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

// InvoicesResponse is the search response envelope
type InvoicesResponse struct {
	Invoices []Invoice `json:"invoices"`
	Meta     MetaData  `json:"_meta"`
}

// InvoiceDetailsResponse is the detail lookup response envelope
type InvoiceDetailsResponse struct {
	Details []InvoiceDetail `json:"details"`
}

// PdfInvoice carries a retrieved invoice PDF. The file is base64 encoded on
// the wire by the standard json encoding of []byte.
type PdfInvoice struct {
	FileName string `json:"fileName,omitempty"`
	File     []byte `json:"file,omitempty"`
}
