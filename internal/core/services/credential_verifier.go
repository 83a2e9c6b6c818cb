package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashclose_app/internal/core/ports/services"
	"github.com/SscSPs/cashclose_app/internal/utils"
)

// SharedSecretVerifier recognises one shared secret per role, held only as bcrypt hashes.
type SharedSecretVerifier struct {
	// checked in order; admin first so that identical secrets resolve to admin
	roles  []domain.Role
	hashes map[domain.Role]string
}

var _ portssvc.CredentialVerifier = (*SharedSecretVerifier)(nil)

// RoleSecret configures one role. Hash, when set, is used as-is; otherwise Secret is hashed.
// A role with neither is disabled.
type RoleSecret struct {
	Role   domain.Role
	Secret string
	Hash   string
}

// NewSharedSecretVerifier hashes the configured secrets once.
func NewSharedSecretVerifier(secrets ...RoleSecret) (*SharedSecretVerifier, error) {
	v := &SharedSecretVerifier{hashes: make(map[domain.Role]string)}
	for _, rs := range secrets {
		hash := strings.TrimSpace(rs.Hash)
		if hash == "" && rs.Secret != "" {
			h, err := utils.HashSecret(rs.Secret)
			if err != nil {
				return nil, fmt.Errorf("hash %s secret: %w", rs.Role, err)
			}
			hash = h
		}
		if hash == "" {
			continue
		}
		v.roles = append(v.roles, rs.Role)
		v.hashes[rs.Role] = hash
	}
	return v, nil
}

// Verify returns the role whose secret matches, or ErrInvalidCredential.
func (v *SharedSecretVerifier) Verify(_ context.Context, secret string) (domain.Role, error) {
	if secret == "" {
		return "", apperrors.ErrInvalidCredential
	}
	for _, role := range v.roles {
		if utils.CheckSecretHash(secret, v.hashes[role]) {
			return role, nil
		}
	}
	return "", apperrors.ErrInvalidCredential
}

// EnabledRoles lists the roles that can currently log in.
func (v *SharedSecretVerifier) EnabledRoles() []domain.Role {
	return append([]domain.Role(nil), v.roles...)
}
