package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{".5", 50, true},
		{"1.005", 101, true}, // half-up rounding
		{"1.004", 100, true},
		{" 2.50 ", 250, true},
		{"3.", 300, true},
		{"1234567.899", 123456790, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"0", 0, false},
		{"0.004", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"1e3", 0, false},
		{".", 0, false},
		{"1 000", 0, false},
		{"", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			assert.NoError(t, err, "%q", tc.in)
			assert.Equal(t, tc.out, got, "%q", tc.in)
		} else {
			assert.ErrorIs(t, err, ErrInvalidAmount, "%q", tc.in)
		}
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "12.34", FormatCents(1234))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "100.00", FormatCents(10000))
	assert.Equal(t, "-7.50", FormatCents(-750))
	assert.Equal(t, "12.34", Money{Cents: 1234}.String())
}
