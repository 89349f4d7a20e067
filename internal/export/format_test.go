package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234.5, "$1,234.50"},
		{0, "$0.00"},
		{1000000, "$1,000,000.00"},
		{999.999, "$1,000.00"},
		{0.5, "$0.50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCurrency(tc.in))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "5.5%", FormatPercent(5.5))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "12.3%", FormatPercent(12.34))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Paid", Capitalize("paid"))
	assert.Equal(t, "PENDING", Capitalize("PENDING"))
	assert.Equal(t, "On hold", Capitalize("on hold"))
	assert.Equal(t, "-", Capitalize("-"))
	assert.Equal(t, "", Capitalize(""))
}
