package service

import (
	"strconv"
	"strings"

	ierr "github.com/cityledger/invoicegateway/internal/errors"
	"github.com/cityledger/invoicegateway/internal/types"
	"github.com/shopspring/decimal"
)

// Shared mapping helpers. A monetary field that is absent on the wire always
// maps to the reproducible default for that field (zero or nil), never NaN.

func decimalOrZero(value *decimal.Decimal) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return *value
}

func int64ToStringPtr(value *int64) *string {
	if value == nil {
		return nil
	}
	s := strconv.FormatInt(*value, 10)
	return &s
}

func intToStringPtr(value *int) *string {
	if value == nil {
		return nil
	}
	s := strconv.Itoa(*value)
	return &s
}

// parseOptionalInt64 parses a numeric filter value. Blank input means the
// filter is unset, not zero.
func parseOptionalInt64(field, value string) (*int64, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Invalid value '%s' for parameter %s, expected a number", value, field).
			Mark(ierr.ErrValidation)
	}
	return &parsed, nil
}

// firstOrNil picks the first element of a backend set when building the
// single-valued unified field. The pick is deterministic, not arbitrary.
func firstOrNil(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	return &values[0]
}

func parseDatePtr(value *string) *types.Date {
	if value == nil {
		return nil
	}
	parsed, err := types.ParseDate(*value)
	if err != nil {
		return nil
	}
	return &parsed
}
