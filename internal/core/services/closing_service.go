package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/SscSPs/cashclose_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/cashclose_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashclose_app/internal/core/ports/services"
	"github.com/SscSPs/cashclose_app/internal/utils/aggregation"
	"github.com/google/uuid"
)

// closingService implements the ClosingSvcFacade interface
type closingService struct {
	BaseService
	closingRepo portsrepo.ClosingRepositoryFacade
	now         func() time.Time
	newID       func() string

	mu        sync.RWMutex
	lastKnown []domain.ClosingRecord
}

// ClosingServiceOption is a functional option for configuring the closing service
type ClosingServiceOption func(*closingService)

// WithClosingEventPublisher adds an event publisher notified after each create
func WithClosingEventPublisher(p clients.EventPublisher) ClosingServiceOption {
	return func(s *closingService) {
		s.Publisher = p
	}
}

// WithClock overrides the time source used for created_at
func WithClock(now func() time.Time) ClosingServiceOption {
	return func(s *closingService) {
		s.now = now
	}
}

// WithIDGenerator overrides the record id generator
func WithIDGenerator(newID func() string) ClosingServiceOption {
	return func(s *closingService) {
		s.newID = newID
	}
}

// NewClosingService creates a new closing service with the provided options
func NewClosingService(repo portsrepo.ClosingRepositoryFacade, options ...ClosingServiceOption) portssvc.ClosingSvcFacade {
	svc := &closingService{
		closingRepo: repo,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure closingService implements the ClosingSvcFacade interface
var _ portssvc.ClosingSvcFacade = (*closingService)(nil)

func (s *closingService) CreateClosing(ctx context.Context, form domain.RawClosingForm, createdBy domain.Role) (*domain.ClosingRecord, error) {
	input, err := form.Coerce()
	if err != nil {
		s.LogDebug(ctx, "Closing form rejected", slog.String("error", err.Error()))
		return nil, err
	}
	input.CreatedBy = createdBy.String()

	if err := input.Validate(); err != nil {
		s.LogDebug(ctx, "Closing input failed validation", slog.String("error", err.Error()))
		return nil, err
	}

	record := domain.NewClosingRecord(s.newID(), input, s.now())

	saved, err := s.closingRepo.SaveClosing(ctx, record)
	if err != nil {
		s.LogError(ctx, err, "Failed to save closing", slog.String("closing_id", record.ID))
		return nil, fmt.Errorf("failed to create closing in service: %w", err)
	}

	s.rememberCreated(*saved)
	s.LogInfo(ctx, "Closing created",
		slog.String("closing_id", saved.ID),
		slog.String("date", saved.DateString()),
		slog.String("total_revenue", saved.TotalRevenue.String()))

	s.PublishEvent(ctx, clients.ClosingEvent{
		Type:       clients.EventClosingCreated,
		ClosingID:  saved.ID,
		Date:       saved.DateString(),
		OccurredAt: s.now().UTC(),
	})

	return saved, nil
}

func (s *closingService) ListClosings(ctx context.Context, r domain.DateRange) ([]domain.ClosingRecord, error) {
	records, err := s.closingRepo.ListClosings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			snapshot := s.snapshot()
			s.LogError(ctx, err, "Record store unavailable, serving last-known records",
				slog.Int("last_known_count", len(snapshot)))
			return aggregation.Filter(snapshot, r), fmt.Errorf("failed to list closings in service: %w", err)
		}
		return nil, fmt.Errorf("failed to list closings in service: %w", err)
	}

	s.remember(records)
	return aggregation.Filter(records, r), nil
}

func (s *closingService) GetClosingByID(ctx context.Context, closingID string) (*domain.ClosingRecord, error) {
	record, err := s.closingRepo.FindClosingByID(ctx, closingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get closing in service: %w", err)
	}
	return record, nil
}

func (s *closingService) remember(records []domain.ClosingRecord) {
	s.mu.Lock()
	s.lastKnown = slices.Clone(records)
	s.mu.Unlock()
}

func (s *closingService) rememberCreated(record domain.ClosingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastKnown = append(s.lastKnown, record)
	domain.SortClosingsDesc(s.lastKnown)
}

func (s *closingService) snapshot() []domain.ClosingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.lastKnown)
}
