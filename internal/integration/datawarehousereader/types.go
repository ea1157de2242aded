package datawarehousereader

import (
	"net/url"
	"strconv"

	"github.com/cityledger/invoicegateway/internal/types"
	"github.com/shopspring/decimal"
)

// Direction is the sort direction accepted by the invoice search
type Direction string

const (
	DirectionAsc  Direction = "ASC"
	DirectionDesc Direction = "DESC"
)

// CustomerEngagement links a party id to a customer number
type CustomerEngagement struct {
	CustomerNumber   string `json:"customerNumber"`
	PartyID          string `json:"partyId,omitempty"`
	OrganizationName string `json:"organizationName,omitempty"`
}

// CustomerEngagementResponse is the engagement lookup envelope
type CustomerEngagementResponse struct {
	Meta                PagingAndSortingMetaData `json:"_meta"`
	CustomerEngagements []CustomerEngagement     `json:"customerEngagements"`
}

// InvoiceParameters is the invoice search filter sent as query parameters
type InvoiceParameters struct {
	CustomerNumber     []string
	FacilityIDs        []string
	InvoiceName        string
	InvoiceNumber      *int64
	OrganizationGroup  string
	OrganizationNumber string
	InvoiceDateFrom    *types.Date
	InvoiceDateTo      *types.Date
	DueDateFrom        *types.Date
	DueDateTo          *types.Date
	InvoiceType        *string
	InvoiceStatus      *string
	OcrNumber          *int64
	Page               int
	Limit              int
	SortBy             []string
	SortDirection      Direction
}

// Values encodes the filter as backend query parameters
func (p InvoiceParameters) Values() url.Values {
	values := url.Values{}
	for _, customerNumber := range p.CustomerNumber {
		values.Add("customerNumber", customerNumber)
	}
	for _, facilityID := range p.FacilityIDs {
		values.Add("facilityId", facilityID)
	}
	if p.InvoiceName != "" {
		values.Set("invoiceName", p.InvoiceName)
	}
	if p.InvoiceNumber != nil {
		values.Set("invoiceNumber", strconv.FormatInt(*p.InvoiceNumber, 10))
	}
	if p.OrganizationGroup != "" {
		values.Set("organizationGroup", p.OrganizationGroup)
	}
	if p.OrganizationNumber != "" {
		values.Set("organizationNumber", p.OrganizationNumber)
	}
	if p.InvoiceDateFrom != nil {
		values.Set("invoiceDateFrom", p.InvoiceDateFrom.String())
	}
	if p.InvoiceDateTo != nil {
		values.Set("invoiceDateTo", p.InvoiceDateTo.String())
	}
	if p.DueDateFrom != nil {
		values.Set("dueDateFrom", p.DueDateFrom.String())
	}
	if p.DueDateTo != nil {
		values.Set("dueDateTo", p.DueDateTo.String())
	}
	if p.InvoiceType != nil {
		values.Set("invoiceType", *p.InvoiceType)
	}
	if p.InvoiceStatus != nil {
		values.Set("invoiceStatus", *p.InvoiceStatus)
	}
	if p.OcrNumber != nil {
		values.Set("ocrNumber", strconv.FormatInt(*p.OcrNumber, 10))
	}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	for _, sortBy := range p.SortBy {
		values.Add("sortBy", sortBy)
	}
	if p.SortDirection != "" {
		values.Set("sortDirection", string(p.SortDirection))
	}
	return values
}

// Invoice is the backend invoice representation. Monetary fields are nullable
// on the wire; address fields are flattened onto the invoice.
type Invoice struct {
	DueDate             *types.Date      `json:"dueDate,omitempty"`
	TotalAmount         *decimal.Decimal `json:"totalAmount,omitempty"`
	AmountVatIncluded   *decimal.Decimal `json:"amountVatIncluded,omitempty"`
	AmountVatExcluded   *decimal.Decimal `json:"amountVatExcluded,omitempty"`
	VatEligibleAmount   *decimal.Decimal `json:"vatEligibleAmount,omitempty"`
	Rounding            *decimal.Decimal `json:"rounding,omitempty"`
	Vat                 *decimal.Decimal `json:"vat,omitempty"`
	ReversedVat         *bool            `json:"reversedVat,omitempty"`
	PdfAvailable        *bool            `json:"pdfAvailable,omitempty"`
	Currency            string           `json:"currency,omitempty"`
	InvoiceDate         *types.Date      `json:"invoiceDate,omitempty"`
	InvoiceNumber       *int64           `json:"invoiceNumber,omitempty"`
	InvoiceStatus       *string          `json:"invoiceStatus,omitempty"`
	OcrNumber           *int64           `json:"ocrNumber,omitempty"`
	OrganizationNumber  *string          `json:"organizationNumber,omitempty"`
	InvoiceName         *string          `json:"invoiceName,omitempty"`
	InvoiceType         *string          `json:"invoiceType,omitempty"`
	InvoiceDescriptions []string         `json:"invoiceDescriptions,omitempty"`
	FacilityIDs         []string         `json:"facilityIds,omitempty"`
	Street              *string          `json:"street,omitempty"`
	CareOf              *string          `json:"careOf,omitempty"`
	City                *string          `json:"city,omitempty"`
	PostCode            *string          `json:"postCode,omitempty"`
}

// InvoiceDetail is one backend invoice line item
type InvoiceDetail struct {
	Amount            *decimal.Decimal `json:"amount,omitempty"`
	AmountVatExcluded *decimal.Decimal `json:"amountVatExcluded,omitempty"`
	Vat               *decimal.Decimal `json:"vat,omitempty"`
	VatRate           *decimal.Decimal `json:"vatRate,omitempty"`
	Quantity          *decimal.Decimal `json:"quantity,omitempty"`
	Unit              *string          `json:"unit,omitempty"`
	UnitPrice         *decimal.Decimal `json:"unitPrice,omitempty"`
	Description       *string          `json:"description,omitempty"`
	ProductCode       *int             `json:"productCode,omitempty"`
	ProductName       *string          `json:"productName,omitempty"`
	PeriodFrom        *string          `json:"periodFrom,omitempty"`
	PeriodTo          *string          `json:"periodTo,omitempty"`
	FacilityID        *string          `json:"facilityId,omitempty"`
	Administration    *string          `json:"administration,omitempty"`
}

// PagingAndSortingMetaData is the backend pagination echo
type PagingAndSortingMetaData struct {
	Page         int `json:"page"`
	Limit        int `json:"limit"`
	Count        int `json:"count"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

// InvoiceResponse is the invoice search envelope
type InvoiceResponse struct {
	Meta     PagingAndSortingMetaData `json:"_meta"`
	Invoices []Invoice                `json:"invoices"`
}
