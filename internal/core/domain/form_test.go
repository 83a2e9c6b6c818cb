package domain_test

import (
	"testing"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "0"},
		{in: "   ", want: "0"},
		{in: "abc", want: "0"},
		{in: "12abc", want: "0"},
		{in: "1200.50", want: "1200.5"},
		{in: "1200,50", want: "1200.5"},
		{in: "1.200,50", want: "1200.5"},
		{in: "R$ 1.200,50", want: "1200.5"},
		{in: " 42 ", want: "42"},
		{in: "-5", want: "-5"},
		{in: "1e3", want: "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := domain.CoerceAmount(tt.in)
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestRawClosingForm_Coerce(t *testing.T) {
	form := domain.RawClosingForm{
		Date:           "2023-10-25",
		OpeningBalance: "150",
		CreditCard:     "1200.50",
		DebitCard:      "",
		Pix:            "oops",
		Cash:           "320",
		Boleto:         "0",
		Notes:          "sem ocorrências",
	}

	in, err := form.Coerce()

	require.NoError(t, err)
	assert.Equal(t, "2023-10-25", in.Date.Format(domain.DateLayout))
	assert.True(t, dec("1200.50").Equal(in.CreditCard))
	assert.True(t, in.DebitCard.IsZero())
	assert.True(t, in.Pix.IsZero())
	assert.True(t, dec("1520.50").Equal(in.TotalRevenue()))
	assert.True(t, dec("1670.50").Equal(in.FinalBalance()))
	assert.Equal(t, "sem ocorrências", in.Notes)
}

func TestRawClosingForm_Coerce_Date(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{name: "missing", date: ""},
		{name: "blank", date: "  "},
		{name: "wrong layout", date: "25/10/2023"},
		{name: "impossible day", date: "2023-02-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.RawClosingForm{Date: tt.date, Cash: "10"}.Coerce()
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestRawClosingForm_NegativePassesCoercionButFailsValidation(t *testing.T) {
	in, err := domain.RawClosingForm{Date: "2024-01-01", Cash: "-10"}.Coerce()
	require.NoError(t, err)
	assert.True(t, in.Cash.IsNegative())
	assert.ErrorIs(t, in.Validate(), apperrors.ErrValidation)
}

func TestDateRange(t *testing.T) {
	r, err := domain.NewDateRange("2024-01-10", "2024-01-20")
	require.NoError(t, err)
	require.NoError(t, r.Validate())

	assert.True(t, r.Contains(day("2024-01-10")))
	assert.True(t, r.Contains(day("2024-01-20")))
	assert.False(t, r.Contains(day("2024-01-09")))
	assert.False(t, r.Contains(day("2024-01-21")))

	open, err := domain.NewDateRange("", "")
	require.NoError(t, err)
	assert.True(t, open.Contains(day("1999-12-31")))

	inverted, err := domain.NewDateRange("2024-02-01", "2024-01-01")
	require.NoError(t, err)
	assert.ErrorIs(t, inverted.Validate(), apperrors.ErrValidation)

	_, err = domain.NewDateRange("yesterday", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
