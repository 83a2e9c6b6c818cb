package services

import (
	"context"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
)

// AnalysisSvc produces and stores the narrative for a record.
type AnalysisSvc interface {
	// AnalyzeClosing returns the stored narrative, or generates, attaches and returns a new one.
	// Generation failures come back as a fallback outcome, not an error.
	AnalyzeClosing(ctx context.Context, closingID string) (*domain.AnalysisOutcome, error)
}
