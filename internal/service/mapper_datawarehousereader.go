package service

import (
	"github.com/cityledger/invoicegateway/internal/api/dto"
	"github.com/cityledger/invoicegateway/internal/integration/datawarehousereader"
	"github.com/cityledger/invoicegateway/internal/types"
	"github.com/samber/lo"
)

// Mapping between the unified model and the data-warehouse-reader (commercial)
// wire schema. The backend speaks Swedish status and type strings, an open
// vocabulary, so unrecognized values degrade to UNKNOWN while absence is
// preserved as absence.

var dataWarehouseReaderStatuses = map[string]types.InvoiceStatus{
	"Betalad":    types.InvoiceStatusPaid,
	"Krediterad": types.InvoiceStatusCredited,
	"Inkasso":    types.InvoiceStatusDebtCollection,
	"Påminnelse": types.InvoiceStatusReminder,
	"Avskriven":  types.InvoiceStatusWrittenOff,
	"Skickad":    types.InvoiceStatusSent,
	"Makulerad":  types.InvoiceStatusVoid,
}

var dataWarehouseReaderTypes = map[string]types.InvoiceType{
	"Faktura":         types.InvoiceTypeInvoice,
	"Kreditfaktura":   types.InvoiceTypeCreditInvoice,
	"Startfaktura":    types.InvoiceTypeStartInvoice,
	"Slutfaktura":     types.InvoiceTypeFinalInvoice,
	"Kvittning":       types.InvoiceTypeOffsetInvoice,
	"Internfaktura":   types.InvoiceTypeInternalInvoice,
	"Samlingsfaktura": types.InvoiceTypeConsolidatedInvoice,
}

// Reverse tables are the exact inverse for the values that have a backend
// representation; UNKNOWN and unmapped values yield nil so the filter is
// omitted rather than inventing a backend string.
var unifiedStatusesToDataWarehouseReader = lo.Invert(dataWarehouseReaderStatuses)

var unifiedTypesToDataWarehouseReader = lo.Invert(dataWarehouseReaderTypes)

func toInvoiceStatusFromDataWarehouseReader(status *string) types.InvoiceStatus {
	if status == nil {
		return ""
	}
	if unified, ok := dataWarehouseReaderStatuses[*status]; ok {
		return unified
	}
	return types.InvoiceStatusUnknown
}

func toInvoiceTypeFromDataWarehouseReader(invoiceType *string) types.InvoiceType {
	if invoiceType == nil {
		return ""
	}
	if unified, ok := dataWarehouseReaderTypes[*invoiceType]; ok {
		return unified
	}
	return types.InvoiceTypeUnknown
}

func toDataWarehouseReaderInvoiceStatus(status types.InvoiceStatus) *string {
	if backend, ok := unifiedStatusesToDataWarehouseReader[status]; ok {
		return &backend
	}
	return nil
}

func toDataWarehouseReaderInvoiceType(invoiceType types.InvoiceType) *string {
	if backend, ok := unifiedTypesToDataWarehouseReader[invoiceType]; ok {
		return &backend
	}
	return nil
}

// toDataWarehouseReaderParameters builds the backend search filter from the
// resolved customer numbers and the unified parameters. The sort order is a
// hard contract of the commercial integration: by invoice date, descending,
// regardless of caller input.
func toDataWarehouseReaderParameters(customerNumbers []string, params dto.InvoicesParameters) (datawarehousereader.InvoiceParameters, error) {
	invoiceNumber, err := parseOptionalInt64("invoiceNumber", params.InvoiceNumber)
	if err != nil {
		return datawarehousereader.InvoiceParameters{}, err
	}
	ocrNumber, err := parseOptionalInt64("ocrNumber", params.OcrNumber)
	if err != nil {
		return datawarehousereader.InvoiceParameters{}, err
	}

	return datawarehousereader.InvoiceParameters{
		CustomerNumber:     customerNumbers,
		FacilityIDs:        params.FacilityIDs,
		InvoiceName:        params.InvoiceName,
		InvoiceNumber:      invoiceNumber,
		OrganizationGroup:  params.OrganizationGroup,
		OrganizationNumber: params.OrganizationNumber,
		InvoiceDateFrom:    params.InvoiceDateFrom,
		InvoiceDateTo:      params.InvoiceDateTo,
		DueDateFrom:        params.DueDateFrom,
		DueDateTo:          params.DueDateTo,
		InvoiceType:        toDataWarehouseReaderInvoiceType(params.InvoiceType),
		InvoiceStatus:      toDataWarehouseReaderInvoiceStatus(params.InvoiceStatus),
		OcrNumber:          ocrNumber,
		Page:               params.Page,
		Limit:              params.Limit,
		SortBy:             []string{"invoiceDate"},
		SortDirection:      datawarehousereader.DirectionDesc,
	}, nil
}

func toInvoicesResponseFromDataWarehouseReader(response *datawarehousereader.InvoiceResponse) *dto.InvoicesResponse {
	return &dto.InvoicesResponse{
		Meta:     toMetaDataFromDataWarehouseReader(response.Meta),
		Invoices: lo.Map(response.Invoices, func(invoice datawarehousereader.Invoice, _ int) dto.Invoice {
			return toInvoiceFromDataWarehouseReader(invoice)
		}),
	}
}

func toInvoiceFromDataWarehouseReader(invoice datawarehousereader.Invoice) dto.Invoice {
	return dto.Invoice{
		DueDate:            invoice.DueDate,
		TotalAmount:        decimalOrZero(invoice.TotalAmount),
		AmountVatIncluded:  decimalOrZero(invoice.AmountVatIncluded),
		AmountVatExcluded:  decimalOrZero(invoice.AmountVatExcluded),
		VatEligibleAmount:  decimalOrZero(invoice.VatEligibleAmount),
		Rounding:           decimalOrZero(invoice.Rounding),
		Vat:                decimalOrZero(invoice.Vat),
		ReversedVat:        invoice.ReversedVat,
		PdfAvailable:       invoice.PdfAvailable,
		Currency:           invoice.Currency,
		InvoiceDate:        invoice.InvoiceDate,
		InvoiceNumber:      int64ToStringPtr(invoice.InvoiceNumber),
		InvoiceStatus:      toInvoiceStatusFromDataWarehouseReader(invoice.InvoiceStatus),
		OcrNumber:          int64ToStringPtr(invoice.OcrNumber),
		OrganizationNumber: invoice.OrganizationNumber,
		InvoiceName:        invoice.InvoiceName,
		InvoiceType:        toInvoiceTypeFromDataWarehouseReader(invoice.InvoiceType),
		InvoiceDescription: firstOrNil(invoice.InvoiceDescriptions),
		FacilityID:         firstOrNil(invoice.FacilityIDs),
		InvoiceAddress:     toAddressFromDataWarehouseReader(invoice),
		InvoiceOrigin:      types.InvoiceOriginCommercial,
	}
}

// toAddressFromDataWarehouseReader assembles the address from the flattened
// backend fields; nil when the invoice carries no address at all.
func toAddressFromDataWarehouseReader(invoice datawarehousereader.Invoice) *dto.Address {
	if invoice.Street == nil && invoice.CareOf == nil && invoice.City == nil && invoice.PostCode == nil {
		return nil
	}
	return &dto.Address{
		Street:   invoice.Street,
		CareOf:   invoice.CareOf,
		City:     invoice.City,
		Postcode: invoice.PostCode,
	}
}

// toInvoiceDetails maps backend line items; a nil or empty backend result is
// an empty list, never nil.
func toInvoiceDetails(details []datawarehousereader.InvoiceDetail) []dto.InvoiceDetail {
	mapped := make([]dto.InvoiceDetail, 0, len(details))
	for _, detail := range details {
		mapped = append(mapped, toInvoiceDetail(detail))
	}
	return mapped
}

func toInvoiceDetail(detail datawarehousereader.InvoiceDetail) dto.InvoiceDetail {
	return dto.InvoiceDetail{
		Amount:            decimalOrZero(detail.Amount),
		AmountVatExcluded: decimalOrZero(detail.AmountVatExcluded),
		Vat:               decimalOrZero(detail.Vat),
		VatRate:           decimalOrZero(detail.VatRate),
		Quantity:          decimalOrZero(detail.Quantity),
		Unit:              detail.Unit,
		UnitPrice:         decimalOrZero(detail.UnitPrice),
		Description:       detail.Description,
		ProductCode:       intToStringPtr(detail.ProductCode),
		ProductName:       detail.ProductName,
		FromDate:          parseDatePtr(detail.PeriodFrom),
		ToDate:            parseDatePtr(detail.PeriodTo),
		FacilityID:        detail.FacilityID,
		Administration:    detail.Administration,
	}
}

func toMetaDataFromDataWarehouseReader(meta datawarehousereader.PagingAndSortingMetaData) dto.MetaData {
	return dto.MetaData{
		Page:         meta.Page,
		Limit:        meta.Limit,
		Count:        meta.Count,
		TotalRecords: meta.TotalRecords,
		TotalPages:   meta.TotalPages,
	}
}
