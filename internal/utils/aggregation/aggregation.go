package aggregation

import (
	"slices"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SeriesLength caps the chart series to the most recent records.
const SeriesLength = 7

// Filter returns the records inside r, newest first. The input slice is not modified.
func Filter(records []domain.ClosingRecord, r domain.DateRange) []domain.ClosingRecord {
	out := make([]domain.ClosingRecord, 0, len(records))
	for _, rec := range records {
		if r.Contains(rec.Date) {
			out = append(out, rec)
		}
	}
	domain.SortClosingsDesc(out)
	return out
}

// CalculateTotals sums the records. Cards is credit plus debit.
func CalculateTotals(records []domain.ClosingRecord) domain.PeriodTotals {
	t := domain.PeriodTotals{
		Revenue:        decimal.Zero,
		Pix:            decimal.Zero,
		Cards:          decimal.Zero,
		Cash:           decimal.Zero,
		CreditCard:     decimal.Zero,
		DebitCard:      decimal.Zero,
		Boleto:         decimal.Zero,
		OpeningBalance: decimal.Zero,
		FinalBalance:   decimal.Zero,
	}
	for _, rec := range records {
		t.Revenue = t.Revenue.Add(rec.TotalRevenue)
		t.Pix = t.Pix.Add(rec.Pix)
		t.Cash = t.Cash.Add(rec.Cash)
		t.CreditCard = t.CreditCard.Add(rec.CreditCard)
		t.DebitCard = t.DebitCard.Add(rec.DebitCard)
		t.Boleto = t.Boleto.Add(rec.Boleto)
		t.OpeningBalance = t.OpeningBalance.Add(rec.OpeningBalance)
		t.FinalBalance = t.FinalBalance.Add(rec.FinalBalance)
	}
	t.Cards = t.CreditCard.Add(t.DebitCard)
	t.Count = len(records)
	return t
}

// Breakdown lists the payment buckets in display order, omitting the ones that sum to zero.
func Breakdown(t domain.PeriodTotals) []domain.PaymentSlice {
	all := []domain.PaymentSlice{
		{Method: domain.PaymentCredit, Value: t.CreditCard},
		{Method: domain.PaymentDebit, Value: t.DebitCard},
		{Method: domain.PaymentPix, Value: t.Pix},
		{Method: domain.PaymentCash, Value: t.Cash},
		{Method: domain.PaymentBoleto, Value: t.Boleto},
	}
	out := make([]domain.PaymentSlice, 0, len(all))
	for _, s := range all {
		if s.Value.IsPositive() {
			out = append(out, s)
		}
	}
	return out
}

// Series expects records newest first and returns the last SeriesLength of them oldest first.
func Series(newestFirst []domain.ClosingRecord) []domain.SeriesPoint {
	ordered := slices.Clone(newestFirst)
	slices.Reverse(ordered)
	if len(ordered) > SeriesLength {
		ordered = ordered[len(ordered)-SeriesLength:]
	}
	points := make([]domain.SeriesPoint, 0, len(ordered))
	for _, rec := range ordered {
		points = append(points, domain.SeriesPoint{
			Date:  rec.DateString(),
			Total: rec.TotalRevenue,
			Pix:   rec.Pix,
			Cards: rec.CreditCard.Add(rec.DebitCard),
		})
	}
	return points
}

// Summarize filters the records to r and derives totals, breakdown and series from the result.
func Summarize(records []domain.ClosingRecord, r domain.DateRange) domain.PeriodSummary {
	filtered := Filter(records, r)
	totals := CalculateTotals(filtered)
	return domain.PeriodSummary{
		Range:     r,
		Records:   filtered,
		Totals:    totals,
		Breakdown: Breakdown(totals),
		Series:    Series(filtered),
	}
}
