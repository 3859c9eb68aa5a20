package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"storefront/domain"
)

// SessionStore persists the signed-in user between invocations as a
// single JSON file, the way the browser front end kept it in session
// storage. The core stores no session data themselves.
type SessionStore struct {
	mu   sync.Mutex
	path string
}

// NewSessionStore constructs a SessionStore at the given path. The file
// is created lazily on first Save.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Save writes the user to the session file, replacing any previous
// session. The write goes through a temp file and rename so a crash
// never leaves a half-written session behind.
func (s *SessionStore) Save(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Load reads the persisted user. A missing or empty file means no
// session and is not an error.
func (s *SessionStore) Load() (domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	if len(b) == 0 {
		return domain.User{}, false, nil
	}
	var user domain.User
	if err := json.Unmarshal(b, &user); err != nil {
		return domain.User{}, false, err
	}
	return user, true, nil
}

// Clear removes the session file. A missing file is a no-op.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
