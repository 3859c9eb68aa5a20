package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/domain"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s := NewSessionStore(path)

	user := domain.User{ID: "u1", Email: "jane@example.com", Name: "jane", Role: domain.RoleCustomer}
	require.NoError(t, s.Save(user))

	got, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, got)

	// no temp file left behind
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestSessionLoadMissingFile(t *testing.T) {
	s := NewSessionStore(filepath.Join(t.TempDir(), "absent.json"))

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionSaveReplaces(t *testing.T) {
	s := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, s.Save(domain.User{ID: "u1", Role: domain.RoleCustomer}))
	require.NoError(t, s.Save(domain.User{ID: "u2", Role: domain.RoleOwner}))

	got, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u2", got.ID)
	assert.Equal(t, domain.RoleOwner, got.Role)
}

func TestSessionClear(t *testing.T) {
	s := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, s.Clear(), "clearing a missing session is a no-op")

	require.NoError(t, s.Save(domain.User{ID: "u1"}))
	require.NoError(t, s.Clear())

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	s := NewSessionStore(path)
	_, ok, err := s.Load()
	assert.Error(t, err)
	assert.False(t, ok)
}
