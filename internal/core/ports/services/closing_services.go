package services

import (
	"context"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
)

// ClosingReaderSvc defines read operations for closing records
type ClosingReaderSvc interface {
	// ListClosings returns the records inside r, newest first.
	// When the store is unreachable it returns the last successfully loaded records
	// together with an error wrapping apperrors.ErrStoreUnavailable.
	ListClosings(ctx context.Context, r domain.DateRange) ([]domain.ClosingRecord, error)

	// GetClosingByID retrieves a single record.
	GetClosingByID(ctx context.Context, closingID string) (*domain.ClosingRecord, error)
}

// ClosingWriterSvc defines write operations for closing records
type ClosingWriterSvc interface {
	// CreateClosing coerces the raw form, derives totals and stores a new record.
	CreateClosing(ctx context.Context, form domain.RawClosingForm, createdBy domain.Role) (*domain.ClosingRecord, error)
}

// ClosingSvcFacade combines all closing-related service interfaces
type ClosingSvcFacade interface {
	ClosingReaderSvc
	ClosingWriterSvc
}
