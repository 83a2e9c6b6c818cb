package utils_test

import (
	"testing"

	"github.com/SscSPs/cashclose_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "R$ 0,00"},
		{in: "5", want: "R$ 5,00"},
		{in: "150", want: "R$ 150,00"},
		{in: "1200.5", want: "R$ 1.200,50"},
		{in: "1234567.891", want: "R$ 1.234.567,89"},
		{in: "-3", want: "-R$ 3,00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatBRL(decimal.RequireFromString(tt.in)))
		})
	}
}
