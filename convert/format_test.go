package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFiat(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{79, "79.00"},
		{18000, "18,000.00"},
		{14220, "14,220.00"},
		{1250000.756, "1,250,000.76"},
		{0.5, "0.50"},
		{0, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFiat(tt.value))
		})
	}
}

func TestFormatCrypto(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		// at least 2 fraction digits, at most 8, trailing zeros trimmed
		{0.002, "0.002"},
		{2, "2.00"},
		{0.5, "0.50"},
		{0.000044, "0.000044"},
		{0.12345678, "0.12345678"},
		{0.123456789, "0.12345679"},
		{1234.5, "1,234.50"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCrypto(tt.value))
		})
	}
}
