package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
)

// sessionKey is the single key of the session file.
const sessionKey = "cashclose_role"

// SessionFile persists the logged-in role between CLI invocations.
type SessionFile struct {
	path string
}

// NewSessionFile returns a session file stored at path.
func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

// DefaultSessionPath is cashclose/session.json under the user config dir.
func DefaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".cashclose_session.json"
	}
	return filepath.Join(dir, "cashclose", "session.json")
}

// Path returns the file location.
func (s *SessionFile) Path() string { return s.path }

// Load returns the stored role, or apperrors.ErrUnauthorized when nobody is logged in.
func (s *SessionFile) Load() (domain.Role, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", apperrors.ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("read session file: %w", err)
	}

	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", fmt.Errorf("%w: corrupt session file", apperrors.ErrUnauthorized)
	}
	role, err := domain.ParseRole(data[sessionKey])
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	return role, nil
}

// Save writes role, readable by the owner only.
func (s *SessionFile) Save(role domain.Role) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	raw, err := json.Marshal(map[string]string{sessionKey: role.String()})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear removes the file. A missing file is not an error.
func (s *SessionFile) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
