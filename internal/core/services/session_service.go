package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashclose_app/internal/core/ports/services"
	"github.com/SscSPs/cashclose_app/internal/utils"
)

// SessionSettings are the token parameters of issued sessions.
type SessionSettings struct {
	JWTSecret string
	Issuer    string
	Expiry    time.Duration
}

type sessionService struct {
	BaseService
	verifier portssvc.CredentialVerifier
	settings SessionSettings
}

// NewSessionService issues signed role sessions for secrets accepted by verifier.
func NewSessionService(verifier portssvc.CredentialVerifier, settings SessionSettings) portssvc.SessionSvc {
	return &sessionService{verifier: verifier, settings: settings}
}

var _ portssvc.SessionSvc = (*sessionService)(nil)

func (s *sessionService) Login(ctx context.Context, secret string) (*domain.Session, error) {
	role, err := s.verifier.Verify(ctx, secret)
	if err != nil {
		s.LogInfo(ctx, "Login rejected")
		// Callers only ever see the generic rejection.
		return nil, apperrors.ErrInvalidCredential
	}

	token, expiresAt, err := utils.GenerateSessionJWT(role.String(), s.settings.JWTSecret, s.settings.Expiry, s.settings.Issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token")
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.LogInfo(ctx, "Login accepted", slog.String("role", role.String()))
	return &domain.Session{Role: role, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *sessionService) Restore(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}
	claims, err := utils.ParseSessionJWT(token, s.settings.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}

	session := &domain.Session{Role: role, Token: token}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
