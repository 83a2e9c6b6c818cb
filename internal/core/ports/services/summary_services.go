package services

import (
	"context"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
)

// SummarySvc builds the dashboard view of a period.
type SummarySvc interface {
	// Summarize follows ListClosings semantics: on ErrStoreUnavailable the summary of the
	// last-known records is returned alongside the error.
	Summarize(ctx context.Context, r domain.DateRange) (*domain.PeriodSummary, error)
}
