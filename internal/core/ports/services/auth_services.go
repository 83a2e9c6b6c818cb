package services

import (
	"context"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
)

// CredentialVerifier maps a presented secret to a role.
// Any secret that is not recognised yields apperrors.ErrInvalidCredential.
type CredentialVerifier interface {
	Verify(ctx context.Context, secret string) (domain.Role, error)
}

// SessionSvc issues and restores role sessions.
type SessionSvc interface {
	// Login verifies the secret and returns a signed session.
	Login(ctx context.Context, secret string) (*domain.Session, error)

	// Restore validates a previously issued token and returns its session.
	Restore(ctx context.Context, token string) (*domain.Session, error)
}
