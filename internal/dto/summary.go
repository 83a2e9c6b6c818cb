package dto

import (
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentSliceResponse is one breakdown bucket.
type PaymentSliceResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// SummaryResponse is the dashboard payload for a period.
type SummaryResponse struct {
	StartDate string                 `json:"startDate,omitempty"`
	EndDate   string                 `json:"endDate,omitempty"`
	Totals    domain.PeriodTotals    `json:"totals"`
	Breakdown []PaymentSliceResponse `json:"breakdown"`
	Series    []domain.SeriesPoint   `json:"series"`
	Records   []ClosingResponse      `json:"records"`
}

// ToSummaryResponse converts a domain summary.
func ToSummaryResponse(s *domain.PeriodSummary) SummaryResponse {
	resp := SummaryResponse{
		Totals:    s.Totals,
		Breakdown: make([]PaymentSliceResponse, len(s.Breakdown)),
		Series:    s.Series,
		Records:   ToListClosingsResponse(s.Records).Records,
	}
	if s.Range.Start != nil {
		resp.StartDate = s.Range.Start.Format(domain.DateLayout)
	}
	if s.Range.End != nil {
		resp.EndDate = s.Range.End.Format(domain.DateLayout)
	}
	for i, b := range s.Breakdown {
		resp.Breakdown[i] = PaymentSliceResponse{Name: string(b.Method), Value: b.Value}
	}
	if resp.Series == nil {
		resp.Series = []domain.SeriesPoint{}
	}
	return resp
}
