package domain

import (
	"strings"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

var errMissingDate = apperrors.NewValidationError("closing date is required")

// RawClosingForm holds the closing form exactly as typed.
type RawClosingForm struct {
	Date           string
	OpeningBalance string
	CreditCard     string
	DebitCard      string
	Pix            string
	Cash           string
	Boleto         string
	Notes          string
}

// Coerce turns the raw form into a ClosingInput.
// Blank or unparsable amounts become zero; only a missing or malformed date is rejected.
// Negative amounts pass through untouched and are caught by ClosingInput.Validate.
func (f RawClosingForm) Coerce() (ClosingInput, error) {
	if strings.TrimSpace(f.Date) == "" {
		return ClosingInput{}, errMissingDate
	}
	day, err := ParseDay(f.Date)
	if err != nil {
		return ClosingInput{}, err
	}
	return ClosingInput{
		Date:           day,
		OpeningBalance: CoerceAmount(f.OpeningBalance),
		CreditCard:     CoerceAmount(f.CreditCard),
		DebitCard:      CoerceAmount(f.DebitCard),
		Pix:            CoerceAmount(f.Pix),
		Cash:           CoerceAmount(f.Cash),
		Boleto:         CoerceAmount(f.Boleto),
		Notes:          f.Notes,
	}, nil
}

// CoerceAmount parses s leniently. Both "1200.50" and the pt-BR "1.200,50" are understood.
// Anything that does not parse yields zero.
func CoerceAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
