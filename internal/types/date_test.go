package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-06-15")
	assert.NoError(t, err)
	assert.Equal(t, "2024-06-15", date.String())

	_, err = ParseDate("15/06/2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-06-15T00:00:00Z")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	date := NewDate(2024, time.June, 15)

	data, err := json.Marshal(date)
	assert.NoError(t, err)
	assert.Equal(t, `"2024-06-15"`, string(data))

	var parsed Date
	assert.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, date.String(), parsed.String())
}

func TestDateUnmarshalParam(t *testing.T) {
	var date Date
	assert.NoError(t, date.UnmarshalParam("2024-01-31"))
	assert.Equal(t, "2024-01-31", date.String())

	assert.Error(t, date.UnmarshalParam("yesterday"))
}
