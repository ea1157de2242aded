package types

import (
	"encoding/json"
	"time"

	ierr "github.com/cityledger/invoicegateway/internal/errors"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals to and from
// the ISO format YYYY-MM-DD and implements encoding.TextUnmarshaler so it can
// be bound directly from query parameters.
type Date struct {
	time.Time
}

// NewDate creates a Date truncated to the day in UTC
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in YYYY-MM-DD format
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, ierr.WithError(err).
			WithHintf("Invalid date '%s', expected format YYYY-MM-DD", value).
			Mark(ierr.ErrValidation)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalParam implements gin's query/form binding for custom types
func (d *Date) UnmarshalParam(param string) error {
	return d.UnmarshalText([]byte(param))
}
