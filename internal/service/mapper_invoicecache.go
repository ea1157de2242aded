package service

import (
	"encoding/base64"

	"github.com/cityledger/invoicegateway/internal/api/dto"
	"github.com/cityledger/invoicegateway/internal/integration/invoicecache"
	"github.com/cityledger/invoicegateway/internal/types"
	"github.com/samber/lo"
)

// Mapping between the unified model and the invoice-cache (public
// administration) wire schema. Unlike the commercial backend this one speaks
// closed enums, so the switches below cover every backend value explicitly
// instead of funnelling strays into UNKNOWN; mapper tests assert totality
// over each vocabulary.

// toInvoiceCacheParameters builds the backend filter. Party ids pass through
// natively, the single invoice number is wrapped in a one-element list, and
// no sort order is set so the backend default ordering applies.
func toInvoiceCacheParameters(params dto.InvoicesParameters) invoicecache.InvoiceFilterRequest {
	var invoiceNumbers []string
	if params.InvoiceNumber != "" {
		invoiceNumbers = []string{params.InvoiceNumber}
	}

	return invoicecache.InvoiceFilterRequest{
		InvoiceNumbers:  invoiceNumbers,
		InvoiceDateFrom: params.InvoiceDateFrom,
		InvoiceDateTo:   params.InvoiceDateTo,
		DueDateFrom:     params.DueDateFrom,
		DueDateTo:       params.DueDateTo,
		PartyIDs:        params.PartyID,
		OcrNumber:       params.OcrNumber,
		Page:            params.Page,
		Limit:           params.Limit,
	}
}

// toInvoiceCacheInvoiceType translates the unified type for PDF filtering.
// Types without an equivalent on this backend (START_INVOICE,
// INTERNAL_INVOICE, OFFSET_INVOICE, UNKNOWN) degrade to no filter at all
// rather than an error.
func toInvoiceCacheInvoiceType(invoiceType types.InvoiceType) *invoicecache.InvoiceType {
	switch invoiceType {
	case types.InvoiceTypeInvoice:
		return lo.ToPtr(invoicecache.TypeInvoice)
	case types.InvoiceTypeCreditInvoice:
		return lo.ToPtr(invoicecache.TypeCreditInvoice)
	case types.InvoiceTypeFinalInvoice:
		return lo.ToPtr(invoicecache.TypeFinalInvoice)
	case types.InvoiceTypeDirectDebit:
		return lo.ToPtr(invoicecache.TypeDirectDebit)
	case types.InvoiceTypeSelfInvoice:
		return lo.ToPtr(invoicecache.TypeSelfInvoice)
	case types.InvoiceTypeReminder:
		return lo.ToPtr(invoicecache.TypeReminder)
	case types.InvoiceTypeConsolidatedInvoice:
		return lo.ToPtr(invoicecache.TypeConsolidatedInvoice)
	default:
		return nil
	}
}

func toInvoiceStatusFromInvoiceCache(status *invoicecache.InvoiceStatus) types.InvoiceStatus {
	if status == nil {
		return ""
	}
	switch *status {
	case invoicecache.StatusPaid:
		return types.InvoiceStatusPaid
	case invoicecache.StatusUnpaid:
		return types.InvoiceStatusSent
	case invoicecache.StatusSent:
		return types.InvoiceStatusSent
	case invoicecache.StatusPartiallyPaid:
		return types.InvoiceStatusPartiallyPaid
	case invoicecache.StatusDebtCollection:
		return types.InvoiceStatusDebtCollection
	case invoicecache.StatusPaidTooMuch:
		return types.InvoiceStatusPaidTooMuch
	case invoicecache.StatusReminder:
		return types.InvoiceStatusReminder
	case invoicecache.StatusVoid:
		return types.InvoiceStatusVoid
	case invoicecache.StatusUnknown:
		return types.InvoiceStatusUnknown
	}
	return ""
}

func toInvoiceTypeFromInvoiceCache(invoiceType *invoicecache.InvoiceType) types.InvoiceType {
	if invoiceType == nil {
		return ""
	}
	switch *invoiceType {
	case invoicecache.TypeInvoice:
		return types.InvoiceTypeInvoice
	case invoicecache.TypeCreditInvoice:
		return types.InvoiceTypeCreditInvoice
	case invoicecache.TypeFinalInvoice:
		return types.InvoiceTypeFinalInvoice
	case invoicecache.TypeDirectDebit:
		return types.InvoiceTypeDirectDebit
	case invoicecache.TypeSelfInvoice:
		return types.InvoiceTypeSelfInvoice
	case invoicecache.TypeReminder:
		return types.InvoiceTypeReminder
	case invoicecache.TypeConsolidatedInvoice:
		return types.InvoiceTypeConsolidatedInvoice
	}
	return ""
}

func toInvoicesResponseFromInvoiceCache(response *invoicecache.InvoicesResponse) *dto.InvoicesResponse {
	return &dto.InvoicesResponse{
		Meta: toMetaDataFromInvoiceCache(response.Meta),
		Invoices: lo.Map(response.Invoices, func(invoice invoicecache.Invoice, _ int) dto.Invoice {
			return toInvoiceFromInvoiceCache(invoice)
		}),
	}
}

// toInvoiceFromInvoiceCache maps one backend invoice. This backend carries no
// currency field, so the currency is hardcoded to SEK, and no VAT-included
// amount, so it is derived as amountVatExcluded + vat.
func toInvoiceFromInvoiceCache(invoice invoicecache.Invoice) dto.Invoice {
	amountVatExcluded := decimalOrZero(invoice.AmountVatExcluded)
	vat := decimalOrZero(invoice.Vat)

	return dto.Invoice{
		Currency:           "SEK",
		DueDate:            invoice.InvoiceDueDate,
		TotalAmount:        decimalOrZero(invoice.TotalAmount),
		AmountVatIncluded:  amountVatExcluded.Add(vat),
		AmountVatExcluded:  amountVatExcluded,
		Vat:                vat,
		InvoiceDate:        invoice.InvoiceDate,
		InvoiceDescription: invoice.InvoiceDescription,
		InvoiceNumber:      invoice.InvoiceNumber,
		OcrNumber:          invoice.OcrNumber,
		InvoiceStatus:      toInvoiceStatusFromInvoiceCache(invoice.InvoiceStatus),
		InvoiceType:        toInvoiceTypeFromInvoiceCache(invoice.InvoiceType),
		InvoiceAddress:     toAddressFromInvoiceCache(invoice.InvoiceAddress),
		InvoiceOrigin:      types.InvoiceOriginPublicAdministration,
	}
}

func toAddressFromInvoiceCache(address *invoicecache.Address) *dto.Address {
	if address == nil {
		return nil
	}
	return &dto.Address{
		Street:   address.Street,
		Postcode: address.Postcode,
		City:     address.City,
		CareOf:   address.CareOf,
	}
}

func toMetaDataFromInvoiceCache(meta invoicecache.MetaData) dto.MetaData {
	return dto.MetaData{
		Page:         meta.Page,
		Limit:        meta.Limit,
		Count:        meta.Count,
		TotalRecords: meta.TotalRecords,
		TotalPages:   meta.TotalPages,
	}
}

// toPdfInvoice decodes the base64 transport encoding of the PDF content. A
// missing content yields a nil file while the file name is preserved.
func toPdfInvoice(pdf *invoicecache.InvoicePdf) (*dto.PdfInvoice, error) {
	if pdf == nil {
		return nil, nil
	}

	var file []byte
	if pdf.Content != "" {
		decoded, err := base64.StdEncoding.DecodeString(pdf.Content)
		if err != nil {
			return nil, err
		}
		file = decoded
	}

	return &dto.PdfInvoice{
		FileName: pdf.Name,
		File:     file,
	}, nil
}

// toPdfInvoiceFromBytes wraps a raw PDF payload fetched from the legacy
// backend, which returns bytes without a file name.
func toPdfInvoiceFromBytes(file []byte, invoiceNumber string) *dto.PdfInvoice {
	if file == nil {
		return nil
	}
	return &dto.PdfInvoice{
		FileName: invoiceNumber + ".pdf",
		File:     file,
	}
}
