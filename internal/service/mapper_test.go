package service

import (
	"testing"

	"github.com/cityledger/invoicegateway/internal/api/dto"
	"github.com/cityledger/invoicegateway/internal/integration/datawarehousereader"
	"github.com/cityledger/invoicegateway/internal/integration/invoicecache"
	"github.com/cityledger/invoicegateway/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDataWarehouseReaderStatusMapping(t *testing.T) {
	testCases := []struct {
		backend string
		unified types.InvoiceStatus
	}{
		{"Betalad", types.InvoiceStatusPaid},
		{"Krediterad", types.InvoiceStatusCredited},
		{"Inkasso", types.InvoiceStatusDebtCollection},
		{"Påminnelse", types.InvoiceStatusReminder},
		{"Avskriven", types.InvoiceStatusWrittenOff},
		{"Skickad", types.InvoiceStatusSent},
		{"Makulerad", types.InvoiceStatusVoid},
	}

	for _, tc := range testCases {
		t.Run(tc.backend, func(t *testing.T) {
			assert.Equal(t, tc.unified, toInvoiceStatusFromDataWarehouseReader(&tc.backend))

			// The reverse table is the exact inverse for mapped values.
			reversed := toDataWarehouseReaderInvoiceStatus(tc.unified)
			assert.NotNil(t, reversed)
			assert.Equal(t, tc.backend, *reversed)
		})
	}
}

func TestDataWarehouseReaderStatusUnrecognizedAndAbsent(t *testing.T) {
	assert.Equal(t, types.InvoiceStatusUnknown, toInvoiceStatusFromDataWarehouseReader(lo.ToPtr("Okänd status")))
	assert.Equal(t, types.InvoiceStatus(""), toInvoiceStatusFromDataWarehouseReader(nil))

	// UNKNOWN has no backend representation, so the filter is omitted.
	assert.Nil(t, toDataWarehouseReaderInvoiceStatus(types.InvoiceStatusUnknown))
	assert.Nil(t, toDataWarehouseReaderInvoiceStatus(types.InvoiceStatusPartiallyPaid))
}

func TestDataWarehouseReaderTypeMapping(t *testing.T) {
	testCases := []struct {
		backend string
		unified types.InvoiceType
	}{
		{"Faktura", types.InvoiceTypeInvoice},
		{"Kreditfaktura", types.InvoiceTypeCreditInvoice},
		{"Startfaktura", types.InvoiceTypeStartInvoice},
		{"Slutfaktura", types.InvoiceTypeFinalInvoice},
		{"Kvittning", types.InvoiceTypeOffsetInvoice},
		{"Internfaktura", types.InvoiceTypeInternalInvoice},
		{"Samlingsfaktura", types.InvoiceTypeConsolidatedInvoice},
	}

	for _, tc := range testCases {
		t.Run(tc.backend, func(t *testing.T) {
			assert.Equal(t, tc.unified, toInvoiceTypeFromDataWarehouseReader(&tc.backend))

			reversed := toDataWarehouseReaderInvoiceType(tc.unified)
			assert.NotNil(t, reversed)
			assert.Equal(t, tc.backend, *reversed)
		})
	}

	assert.Equal(t, types.InvoiceTypeUnknown, toInvoiceTypeFromDataWarehouseReader(lo.ToPtr("Okänd")))
	assert.Equal(t, types.InvoiceType(""), toInvoiceTypeFromDataWarehouseReader(nil))
	assert.Nil(t, toDataWarehouseReaderInvoiceType(types.InvoiceTypeUnknown))
	assert.Nil(t, toDataWarehouseReaderInvoiceType(types.InvoiceTypeDirectDebit))
}

func TestInvoiceCacheStatusMappingIsTotal(t *testing.T) {
	expected := map[invoicecache.InvoiceStatus]types.InvoiceStatus{
		invoicecache.StatusPaid:           types.InvoiceStatusPaid,
		invoicecache.StatusUnpaid:         types.InvoiceStatusSent,
		invoicecache.StatusSent:           types.InvoiceStatusSent,
		invoicecache.StatusPartiallyPaid:  types.InvoiceStatusPartiallyPaid,
		invoicecache.StatusDebtCollection: types.InvoiceStatusDebtCollection,
		invoicecache.StatusPaidTooMuch:    types.InvoiceStatusPaidTooMuch,
		invoicecache.StatusReminder:       types.InvoiceStatusReminder,
		invoicecache.StatusVoid:           types.InvoiceStatusVoid,
		invoicecache.StatusUnknown:        types.InvoiceStatusUnknown,
	}

	for backend, unified := range expected {
		assert.Equal(t, unified, toInvoiceStatusFromInvoiceCache(&backend), "status %s", backend)
	}
	assert.Equal(t, types.InvoiceStatus(""), toInvoiceStatusFromInvoiceCache(nil))
}

func TestInvoiceCacheTypeMappingIsTotal(t *testing.T) {
	expected := map[invoicecache.InvoiceType]types.InvoiceType{
		invoicecache.TypeInvoice:             types.InvoiceTypeInvoice,
		invoicecache.TypeCreditInvoice:       types.InvoiceTypeCreditInvoice,
		invoicecache.TypeDirectDebit:         types.InvoiceTypeDirectDebit,
		invoicecache.TypeFinalInvoice:        types.InvoiceTypeFinalInvoice,
		invoicecache.TypeReminder:            types.InvoiceTypeReminder,
		invoicecache.TypeSelfInvoice:         types.InvoiceTypeSelfInvoice,
		invoicecache.TypeConsolidatedInvoice: types.InvoiceTypeConsolidatedInvoice,
	}

	for backend, unified := range expected {
		assert.Equal(t, unified, toInvoiceTypeFromInvoiceCache(&backend), "type %s", backend)

		// Round trip back to the backend vocabulary.
		reversed := toInvoiceCacheInvoiceType(unified)
		assert.NotNil(t, reversed)
		assert.Equal(t, backend, *reversed)
	}
	assert.Equal(t, types.InvoiceType(""), toInvoiceTypeFromInvoiceCache(nil))
}

func TestInvoiceCacheTypeFilterDegradation(t *testing.T) {
	unsupported := []types.InvoiceType{
		types.InvoiceTypeStartInvoice,
		types.InvoiceTypeInternalInvoice,
		types.InvoiceTypeOffsetInvoice,
		types.InvoiceTypeUnknown,
		"",
	}
	for _, invoiceType := range unsupported {
		assert.Nil(t, toInvoiceCacheInvoiceType(invoiceType), "type %s", invoiceType)
	}
}

func TestToInvoiceFromDataWarehouseReaderDefaults(t *testing.T) {
	invoice := toInvoiceFromDataWarehouseReader(datawarehousereader.Invoice{})

	assert.True(t, invoice.TotalAmount.IsZero())
	assert.True(t, invoice.AmountVatIncluded.IsZero())
	assert.True(t, invoice.Rounding.IsZero())
	assert.Nil(t, invoice.InvoiceNumber)
	assert.Nil(t, invoice.OcrNumber)
	assert.Nil(t, invoice.ReversedVat)
	assert.Nil(t, invoice.InvoiceAddress)
	assert.Equal(t, types.InvoiceStatus(""), invoice.InvoiceStatus)
	assert.Equal(t, types.InvoiceType(""), invoice.InvoiceType)
	assert.Equal(t, types.InvoiceOriginCommercial, invoice.InvoiceOrigin)
}

func TestToInvoiceFromDataWarehouseReaderPicksFirstOfSets(t *testing.T) {
	invoice := toInvoiceFromDataWarehouseReader(datawarehousereader.Invoice{
		InvoiceDescriptions: []string{"El", "Fjärrvärme"},
		FacilityIDs:         []string{"735999", "735998"},
	})

	assert.Equal(t, "El", *invoice.InvoiceDescription)
	assert.Equal(t, "735999", *invoice.FacilityID)
}

func TestToAddressFromDataWarehouseReader(t *testing.T) {
	assert.Nil(t, toAddressFromDataWarehouseReader(datawarehousereader.Invoice{}))

	address := toAddressFromDataWarehouseReader(datawarehousereader.Invoice{
		Street:   lo.ToPtr("Storgatan 1"),
		City:     lo.ToPtr("Sundsvall"),
		PostCode: lo.ToPtr("85230"),
	})
	assert.NotNil(t, address)
	assert.Equal(t, "Storgatan 1", *address.Street)
	assert.Equal(t, "85230", *address.Postcode)
	assert.Nil(t, address.CareOf)
}

func TestToInvoiceFromInvoiceCacheDerivesVatIncluded(t *testing.T) {
	invoice := toInvoiceFromInvoiceCache(invoicecache.Invoice{
		AmountVatExcluded: lo.ToPtr(decimal.NewFromFloat(13.37)),
		Vat:               lo.ToPtr(decimal.NewFromFloat(13.41)),
	})

	assert.True(t, invoice.AmountVatIncluded.Equal(decimal.NewFromFloat(26.78)))
	assert.Equal(t, "SEK", invoice.Currency)
	assert.Equal(t, types.InvoiceOriginPublicAdministration, invoice.InvoiceOrigin)
}

func TestToInvoiceCacheParameters(t *testing.T) {
	params := dto.InvoicesParameters{
		PartyID:       []string{"p1", "p2"},
		InvoiceNumber: "98765",
		OcrNumber:     "1234567",
		Page:          2,
		Limit:         50,
	}

	filter := toInvoiceCacheParameters(params)
	assert.Equal(t, []string{"98765"}, filter.InvoiceNumbers)
	assert.Equal(t, []string{"p1", "p2"}, filter.PartyIDs)
	assert.Equal(t, "1234567", filter.OcrNumber)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 50, filter.Limit)

	empty := toInvoiceCacheParameters(dto.InvoicesParameters{})
	assert.Nil(t, empty.InvoiceNumbers)
}

func TestParseOptionalInt64(t *testing.T) {
	value, err := parseOptionalInt64("invoiceNumber", "")
	assert.NoError(t, err)
	assert.Nil(t, value)

	value, err = parseOptionalInt64("invoiceNumber", "333444")
	assert.NoError(t, err)
	assert.Equal(t, int64(333444), *value)

	_, err = parseOptionalInt64("invoiceNumber", "abc")
	assert.Error(t, err)
}

func TestToPdfInvoiceFromBytes(t *testing.T) {
	assert.Nil(t, toPdfInvoiceFromBytes(nil, "333444"))

	pdf := toPdfInvoiceFromBytes([]byte("%PDF"), "333444")
	assert.Equal(t, "333444.pdf", pdf.FileName)
	assert.Equal(t, []byte("%PDF"), pdf.File)
}

func TestToPdfInvoiceMissingContent(t *testing.T) {
	pdf, err := toPdfInvoice(&invoicecache.InvoicePdf{Name: "faktura.pdf"})
	assert.NoError(t, err)
	assert.Equal(t, "faktura.pdf", pdf.FileName)
	assert.Nil(t, pdf.File)

	pdf, err = toPdfInvoice(nil)
	assert.NoError(t, err)
	assert.Nil(t, pdf)
}
