package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/cashclose_app/internal/core/ports/clients"
	"github.com/SscSPs/cashclose_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Publisher clients.EventPublisher
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// PublishEvent sends event if a publisher is configured. A failed publish is logged and otherwise ignored.
func (s *BaseService) PublishEvent(ctx context.Context, event clients.ClosingEvent) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish closing event",
			slog.String("event_type", event.Type),
			slog.String("closing_id", event.ClosingID))
	}
}
