package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/SscSPs/cashclose_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/cashclose_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashclose_app/internal/core/ports/services"
	"golang.org/x/sync/singleflight"
)

type analysisService struct {
	BaseService
	closingRepo portsrepo.ClosingRepositoryFacade
	generator   clients.TextGenerator

	// inflight collapses concurrent requests for the same record into one generation call.
	inflight singleflight.Group
}

// AnalysisServiceOption is a functional option for configuring the analysis service
type AnalysisServiceOption func(*analysisService)

// WithAnalysisEventPublisher adds an event publisher notified after a narrative is attached
func WithAnalysisEventPublisher(p clients.EventPublisher) AnalysisServiceOption {
	return func(s *analysisService) {
		s.Publisher = p
	}
}

// NewAnalysisService creates the analysis service. A nil generator behaves as one without credentials.
func NewAnalysisService(repo portsrepo.ClosingRepositoryFacade, generator clients.TextGenerator, options ...AnalysisServiceOption) portssvc.AnalysisSvc {
	svc := &analysisService{
		closingRepo: repo,
		generator:   generator,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AnalysisSvc = (*analysisService)(nil)

func (s *analysisService) AnalyzeClosing(ctx context.Context, closingID string) (*domain.AnalysisOutcome, error) {
	// Callers joining the flight must not inherit the first caller's cancellation.
	flightCtx := context.WithoutCancel(ctx)
	v, err, shared := s.inflight.Do(closingID, func() (interface{}, error) {
		return s.analyze(flightCtx, closingID)
	})
	if shared {
		s.LogDebug(ctx, "Joined in-flight analysis", slog.String("closing_id", closingID))
	}

	outcome, _ := v.(*domain.AnalysisOutcome)
	if outcome == nil {
		return nil, err
	}
	// Each caller gets its own copy.
	result := *outcome
	return &result, err
}

func (s *analysisService) analyze(ctx context.Context, closingID string) (*domain.AnalysisOutcome, error) {
	record, err := s.closingRepo.FindClosingByID(ctx, closingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load closing for analysis: %w", err)
	}
	if record.HasAnalysis() {
		return &domain.AnalysisOutcome{ClosingID: closingID, Text: *record.AIAnalysis, Source: domain.AnalysisStored}, nil
	}

	text, ok := s.generate(ctx, *record)
	if !ok {
		return &domain.AnalysisOutcome{ClosingID: closingID, Text: text, Source: domain.AnalysisFallback}, nil
	}

	generated := &domain.AnalysisOutcome{ClosingID: closingID, Text: text, Source: domain.AnalysisGenerated}

	attached, err := s.closingRepo.AttachAnalysis(ctx, closingID, text)
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			s.LogError(ctx, err, "Generated analysis could not be stored", slog.String("closing_id", closingID))
			return generated, fmt.Errorf("failed to attach analysis: %w", err)
		}
		return nil, fmt.Errorf("failed to attach analysis: %w", err)
	}

	if !attached {
		// Another writer stored a narrative first; that one wins.
		current, err := s.closingRepo.FindClosingByID(ctx, closingID)
		if err != nil {
			return generated, fmt.Errorf("failed to reload closing after analysis: %w", err)
		}
		if current.HasAnalysis() {
			return &domain.AnalysisOutcome{ClosingID: closingID, Text: *current.AIAnalysis, Source: domain.AnalysisStored}, nil
		}
		return generated, nil
	}

	s.LogInfo(ctx, "Analysis attached", slog.String("closing_id", closingID))
	s.PublishEvent(ctx, clients.ClosingEvent{
		Type:       clients.EventClosingAnalyzed,
		ClosingID:  closingID,
		Date:       record.DateString(),
		OccurredAt: time.Now().UTC(),
	})
	return generated, nil
}

// generate calls the text generator once. ok is false when text is a fallback message.
func (s *analysisService) generate(ctx context.Context, record domain.ClosingRecord) (text string, ok bool) {
	if s.generator == nil {
		return domain.FallbackMissingCredentials, false
	}

	out, err := s.generator.Generate(ctx, BuildAnalysisPrompt(record))
	switch {
	case errors.Is(err, apperrors.ErrMissingCredentials):
		s.LogInfo(ctx, "Analysis requested without text generation credentials")
		return domain.FallbackMissingCredentials, false
	case err != nil:
		s.LogError(ctx, err, "Text generation failed", slog.String("closing_id", record.ID))
		return domain.FallbackServiceError, false
	}

	if strings.TrimSpace(out) == "" {
		s.LogInfo(ctx, "Text generation returned no content", slog.String("closing_id", record.ID))
		return domain.FallbackEmptyResponse, false
	}
	return out, true
}
