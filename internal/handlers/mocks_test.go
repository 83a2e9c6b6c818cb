package handlers_test

import (
	"context"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashclose_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClosingService ---
type MockClosingService struct {
	mock.Mock
}

func (m *MockClosingService) CreateClosing(ctx context.Context, form domain.RawClosingForm, createdBy domain.Role) (*domain.ClosingRecord, error) {
	args := m.Called(ctx, form, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingRecord), args.Error(1)
}

func (m *MockClosingService) ListClosings(ctx context.Context, r domain.DateRange) ([]domain.ClosingRecord, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosingRecord), args.Error(1)
}

func (m *MockClosingService) GetClosingByID(ctx context.Context, closingID string) (*domain.ClosingRecord, error) {
	args := m.Called(ctx, closingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingRecord), args.Error(1)
}

var _ portssvc.ClosingSvcFacade = (*MockClosingService)(nil)

// --- Mock SummaryService ---
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) Summarize(ctx context.Context, r domain.DateRange) (*domain.PeriodSummary, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodSummary), args.Error(1)
}

var _ portssvc.SummarySvc = (*MockSummaryService)(nil)

// --- Mock AnalysisService ---
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) AnalyzeClosing(ctx context.Context, closingID string) (*domain.AnalysisOutcome, error) {
	args := m.Called(ctx, closingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisOutcome), args.Error(1)
}

var _ portssvc.AnalysisSvc = (*MockAnalysisService)(nil)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, secret string) (*domain.Session, error) {
	args := m.Called(ctx, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) Restore(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

var _ portssvc.SessionSvc = (*MockSessionService)(nil)

// --- Stub store ---
type stubStore struct {
	pingErr error
}

func (s stubStore) Ping(context.Context) error { return s.pingErr }
func (s stubStore) Close() error               { return nil }
