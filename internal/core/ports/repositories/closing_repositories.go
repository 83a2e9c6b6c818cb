package repositories

import (
	"context"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
)

// ClosingReader defines read operations for closing records
type ClosingReader interface {
	// ListClosings returns every record, date descending.
	ListClosings(ctx context.Context) ([]domain.ClosingRecord, error)

	// FindClosingByID retrieves one record or apperrors.ErrNotFound.
	FindClosingByID(ctx context.Context, closingID string) (*domain.ClosingRecord, error)
}

// ClosingWriter defines write operations for closing records
type ClosingWriter interface {
	// SaveClosing inserts a new record and returns it as stored.
	SaveClosing(ctx context.Context, record domain.ClosingRecord) (*domain.ClosingRecord, error)

	// AttachAnalysis sets ai_analysis only if it is still empty.
	// It returns attached=false when a value was already present, and apperrors.ErrNotFound for an unknown id.
	AttachAnalysis(ctx context.Context, closingID string, analysis string) (attached bool, err error)
}

// ClosingRepositoryFacade combines all closing-related repository interfaces
type ClosingRepositoryFacade interface {
	ClosingReader
	ClosingWriter
}
