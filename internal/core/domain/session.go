package domain

import "time"

// Session is an authenticated role together with the token that proves it.
type Session struct {
	Role      Role      `json:"role"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}
