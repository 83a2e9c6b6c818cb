package dto

import (
	"time"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
)

// LoginRequest carries the shared secret typed on the login screen.
type LoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// SessionResponse describes an authenticated session. Token is only set on login.
type SessionResponse struct {
	Role      string    `json:"role"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ToSessionResponse converts a domain session.
func ToSessionResponse(s *domain.Session, includeToken bool) SessionResponse {
	resp := SessionResponse{Role: s.Role.String(), ExpiresAt: s.ExpiresAt}
	if includeToken {
		resp.Token = s.Token
	}
	return resp
}
