package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashclose_app/internal/core/ports/repositories"
)

// ClosingRepository keeps closing records in process memory.
// It is safe for concurrent use and loses everything on restart.
type ClosingRepository struct {
	mu      sync.RWMutex
	records map[string]domain.ClosingRecord
}

var (
	_ portsrepo.ClosingRepositoryFacade = (*ClosingRepository)(nil)
	_ portsrepo.StoreLifecycle          = (*ClosingRepository)(nil)
)

func NewClosingRepository(seed ...domain.ClosingRecord) *ClosingRepository {
	r := &ClosingRepository{records: make(map[string]domain.ClosingRecord, len(seed))}
	for _, rec := range seed {
		r.records[rec.ID] = rec
	}
	return r
}

// NewRepositoryProvider exposes a fresh in-memory store through the service-facing provider.
func NewRepositoryProvider(seed ...domain.ClosingRecord) portsrepo.RepositoryProvider {
	repo := NewClosingRepository(seed...)
	return portsrepo.RepositoryProvider{ClosingRepo: repo, Store: repo}
}

func (r *ClosingRepository) Ping(context.Context) error { return nil }

func (r *ClosingRepository) Close() error { return nil }

func (r *ClosingRepository) SaveClosing(ctx context.Context, record domain.ClosingRecord) (*domain.ClosingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; exists {
		return nil, fmt.Errorf("closing %s: %w", record.ID, apperrors.ErrDuplicate)
	}
	r.records[record.ID] = record
	return &record, nil
}

func (r *ClosingRepository) FindClosingByID(ctx context.Context, closingID string) (*domain.ClosingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[closingID]
	if !ok {
		return nil, apperrors.NewNotFoundError("closing " + closingID)
	}
	return &rec, nil
}

func (r *ClosingRepository) ListClosings(ctx context.Context) ([]domain.ClosingRecord, error) {
	r.mu.RLock()
	out := make([]domain.ClosingRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	r.mu.RUnlock()

	domain.SortClosingsDesc(out)
	return out, nil
}

func (r *ClosingRepository) AttachAnalysis(ctx context.Context, closingID string, analysis string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[closingID]
	if !ok {
		return false, apperrors.NewNotFoundError("closing " + closingID)
	}
	if rec.AIAnalysis != nil {
		return false, nil
	}
	rec.AIAnalysis = &analysis
	r.records[closingID] = rec
	return true, nil
}
