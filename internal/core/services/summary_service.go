package services

import (
	"context"
	"errors"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashclose_app/internal/core/ports/services"
	"github.com/SscSPs/cashclose_app/internal/utils/aggregation"
)

type summaryService struct {
	BaseService
	closings portssvc.ClosingReaderSvc
}

// NewSummaryService builds period summaries on top of the closing reader.
func NewSummaryService(closings portssvc.ClosingReaderSvc) portssvc.SummarySvc {
	return &summaryService{closings: closings}
}

var _ portssvc.SummarySvc = (*summaryService)(nil)

func (s *summaryService) Summarize(ctx context.Context, r domain.DateRange) (*domain.PeriodSummary, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	records, err := s.closings.ListClosings(ctx, r)
	if err != nil && !errors.Is(err, apperrors.ErrStoreUnavailable) {
		return nil, err
	}

	summary := aggregation.Summarize(records, r)
	return &summary, err
}
