package services_test

import (
	"context"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/SscSPs/cashclose_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/cashclose_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClosingRepository ---
type MockClosingRepository struct {
	mock.Mock
}

func (m *MockClosingRepository) ListClosings(ctx context.Context) ([]domain.ClosingRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosingRecord), args.Error(1)
}

func (m *MockClosingRepository) FindClosingByID(ctx context.Context, closingID string) (*domain.ClosingRecord, error) {
	args := m.Called(ctx, closingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingRecord), args.Error(1)
}

func (m *MockClosingRepository) SaveClosing(ctx context.Context, record domain.ClosingRecord) (*domain.ClosingRecord, error) {
	args := m.Called(ctx, record)
	if fn, ok := args.Get(0).(func(context.Context, domain.ClosingRecord) *domain.ClosingRecord); ok {
		return fn(ctx, record), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingRecord), args.Error(1)
}

func (m *MockClosingRepository) AttachAnalysis(ctx context.Context, closingID string, analysis string) (bool, error) {
	args := m.Called(ctx, closingID, analysis)
	return args.Bool(0), args.Error(1)
}

var _ portsrepo.ClosingRepositoryFacade = (*MockClosingRepository)(nil)

// --- Mock TextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

var _ clients.TextGenerator = (*MockTextGenerator)(nil)

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event clients.ClosingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var _ clients.EventPublisher = (*MockEventPublisher)(nil)
