package dto

import (
	"testing"

	ierr "github.com/cityledger/invoicegateway/internal/errors"
	"github.com/cityledger/invoicegateway/internal/types"
	"github.com/stretchr/testify/assert"
)

const validPartyID = "ac653c32-b26c-47e8-8c2e-3b18c1b5879c"

func TestInvoicesParametersNormalize(t *testing.T) {
	params := InvoicesParameters{}
	params.Normalize()
	assert.Equal(t, DefaultPage, params.Page)
	assert.Equal(t, DefaultLimit, params.Limit)

	params = InvoicesParameters{Page: 3, Limit: 25}
	params.Normalize()
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.Limit)
}

func TestInvoicesParametersValidate(t *testing.T) {
	testCases := []struct {
		name          string
		params        InvoicesParameters
		expectedError bool
	}{
		{
			name: "valid_defaults",
			params: InvoicesParameters{
				Page:    1,
				Limit:   100,
				PartyID: []string{validPartyID},
			},
		},
		{
			name: "missing_party_ids",
			params: InvoicesParameters{
				Page:  1,
				Limit: 100,
			},
			expectedError: true,
		},
		{
			name: "party_id_not_uuid",
			params: InvoicesParameters{
				Page:    1,
				Limit:   100,
				PartyID: []string{"12345"},
			},
			expectedError: true,
		},
		{
			name: "page_below_minimum",
			params: InvoicesParameters{
				Page:    0,
				Limit:   100,
				PartyID: []string{validPartyID},
			},
			expectedError: true,
		},
		{
			name: "limit_above_maximum",
			params: InvoicesParameters{
				Page:    1,
				Limit:   MaxLimit + 1,
				PartyID: []string{validPartyID},
			},
			expectedError: true,
		},
		{
			name: "invalid_organization_number",
			params: InvoicesParameters{
				Page:               1,
				Limit:              100,
				PartyID:            []string{validPartyID},
				OrganizationNumber: "123",
			},
			expectedError: true,
		},
		{
			name: "valid_organization_number",
			params: InvoicesParameters{
				Page:               1,
				Limit:              100,
				PartyID:            []string{validPartyID},
				OrganizationNumber: "5560360793",
			},
		},
		{
			name: "invalid_invoice_type",
			params: InvoicesParameters{
				Page:        1,
				Limit:       100,
				PartyID:     []string{validPartyID},
				InvoiceType: types.InvoiceType("FAKTURA"),
			},
			expectedError: true,
		},
		{
			name: "invalid_invoice_status",
			params: InvoicesParameters{
				Page:          1,
				Limit:         100,
				PartyID:       []string{validPartyID},
				InvoiceStatus: types.InvoiceStatus("BETALD"),
			},
			expectedError: true,
		},
		{
			name: "valid_enums",
			params: InvoicesParameters{
				Page:          1,
				Limit:         100,
				PartyID:       []string{validPartyID},
				InvoiceType:   types.InvoiceTypeInvoice,
				InvoiceStatus: types.InvoiceStatusPaid,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			if tc.expectedError {
				assert.Error(t, err)
				assert.True(t, ierr.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
