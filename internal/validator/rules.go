package validator

import (
	"regexp"
	"strings"

	ierr "github.com/cityledger/invoicegateway/internal/errors"
	"github.com/google/uuid"
)

var municipalityIDPattern = regexp.MustCompile(`^[1-9]\d{3}$`)

// IsMunicipalityID reports whether value is a valid four digit municipality id
func IsMunicipalityID(value string) bool {
	return municipalityIDPattern.MatchString(value)
}

// ValidateMunicipalityID validates a municipality id path parameter
func ValidateMunicipalityID(value string) error {
	if !IsMunicipalityID(value) {
		return ierr.NewErrorf("invalid municipality id '%s'", value).
			WithHintf("Invalid municipality id '%s'", value).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsOrganizationNumber reports whether value is a valid Swedish organization
// number: ten digits (optionally preceded by a century) with a dash allowed
// before the last four, ending in a Luhn check digit.
func IsOrganizationNumber(value string) bool {
	digits := strings.ReplaceAll(value, "-", "")
	if len(digits) == 12 {
		digits = digits[2:]
	}
	if len(digits) != 10 {
		return false
	}
	return luhnValid(digits)
}

// ValidateOrganizationNumber validates an organization number path parameter
func ValidateOrganizationNumber(value string) error {
	if !IsOrganizationNumber(value) {
		return ierr.NewErrorf("invalid organization number '%s'", value).
			WithHintf("Invalid organization number '%s'", value).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ValidatePartyIDs validates that the list is non empty and every entry is a UUID
func ValidatePartyIDs(partyIDs []string) error {
	if len(partyIDs) == 0 {
		return ierr.NewError("partyId must not be empty").
			WithHint("At least one partyId must be provided").
			Mark(ierr.ErrValidation)
	}
	for _, partyID := range partyIDs {
		if _, err := uuid.Parse(partyID); err != nil {
			return ierr.WithError(err).
				WithHintf("Invalid partyId '%s', not a valid UUID", partyID).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func luhnValid(digits string) bool {
	sum := 0
	for i, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
		n := int(r - '0')
		if i%2 == 0 {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
	}
	return sum%10 == 0
}
