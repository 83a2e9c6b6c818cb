package domain

import (
	"time"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DateRange bounds a period by calendar day. Nil bounds are open; set bounds are inclusive.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// NewDateRange parses optional YYYY-MM-DD bounds. Blank strings leave the bound open.
func NewDateRange(start, end string) (DateRange, error) {
	var r DateRange
	if start != "" {
		d, err := ParseDay(start)
		if err != nil {
			return DateRange{}, err
		}
		r.Start = &d
	}
	if end != "" {
		d, err := ParseDay(end)
		if err != nil {
			return DateRange{}, err
		}
		r.End = &d
	}
	return r, nil
}

// Validate rejects a range whose start falls after its end.
func (r DateRange) Validate() error {
	if r.Start != nil && r.End != nil && Day(*r.Start).After(Day(*r.End)) {
		return apperrors.NewValidationError("start date must not be after end date")
	}
	return nil
}

// Contains compares by calendar day only.
func (r DateRange) Contains(t time.Time) bool {
	day := Day(t)
	if r.Start != nil && day.Before(Day(*r.Start)) {
		return false
	}
	if r.End != nil && day.After(Day(*r.End)) {
		return false
	}
	return true
}

// PaymentMethod names a bucket in the payment breakdown.
type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "Crédito"
	PaymentDebit  PaymentMethod = "Débito"
	PaymentPix    PaymentMethod = "PIX"
	PaymentCash   PaymentMethod = "Dinheiro"
	PaymentBoleto PaymentMethod = "Boleto"
)

// PaymentSlice is one non-zero bucket of the breakdown chart.
type PaymentSlice struct {
	Method PaymentMethod   `json:"name"`
	Value  decimal.Decimal `json:"value"`
}

// SeriesPoint is one bar of the per-day chart.
type SeriesPoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
	Pix   decimal.Decimal `json:"pix"`
	Cards decimal.Decimal `json:"cards"`
}

// PeriodTotals sums the filtered records.
type PeriodTotals struct {
	Revenue        decimal.Decimal `json:"revenue"`
	Pix            decimal.Decimal `json:"pix"`
	Cards          decimal.Decimal `json:"cards"`
	Cash           decimal.Decimal `json:"cash"`
	CreditCard     decimal.Decimal `json:"creditCard"`
	DebitCard      decimal.Decimal `json:"debitCard"`
	Boleto         decimal.Decimal `json:"boleto"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	FinalBalance   decimal.Decimal `json:"finalBalance"`
	Count          int             `json:"count"`
}

// PeriodSummary is the dashboard view of a date range.
type PeriodSummary struct {
	Range     DateRange       `json:"range"`
	Records   []ClosingRecord `json:"records"`
	Totals    PeriodTotals    `json:"totals"`
	Breakdown []PaymentSlice  `json:"breakdown"`
	Series    []SeriesPoint   `json:"series"`
}
