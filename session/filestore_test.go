package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vetdesk/client-go/session"
)

func TestFileStore(t *testing.T) {
	t.Run("round trips values through files", func(t *testing.T) {
		store := session.NewFileStore(t.TempDir())

		store.Save(session.KeyToken, testToken)
		value, ok := store.Load(session.KeyToken)
		require.True(t, ok)
		require.Equal(t, testToken, value)
	})

	t.Run("creates the directory on first save", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "state")
		store := session.NewFileStore(dir)

		store.Save(session.KeyTenant, testTenant)
		value, ok := store.Load(session.KeyTenant)
		require.True(t, ok)
		require.Equal(t, testTenant, value)
	})

	t.Run("missing key reports absence", func(t *testing.T) {
		store := session.NewFileStore(t.TempDir())
		_, ok := store.Load(session.KeyUser)
		require.False(t, ok)
	})

	t.Run("remove deletes one key and tolerates repeats", func(t *testing.T) {
		store := session.NewFileStore(t.TempDir())
		store.Save(session.KeyToken, testToken)

		store.Remove(session.KeyToken)
		_, ok := store.Load(session.KeyToken)
		require.False(t, ok)

		store.Remove(session.KeyToken) // no-op, must not log a spurious failure
	})

	t.Run("clear removes every session key", func(t *testing.T) {
		store := session.NewFileStore(t.TempDir())
		store.Save(session.KeyToken, testToken)
		store.Save(session.KeyUser, `{"email":"jane.doe@example.com"}`)
		store.Save(session.KeyTenant, testTenant)

		store.Clear()

		for _, key := range []string{session.KeyToken, session.KeyUser, session.KeyTenant} {
			_, ok := store.Load(key)
			require.False(t, ok)
		}
	})

	t.Run("unusable directory degrades silently", func(t *testing.T) {
		// A regular file where the directory should be makes every
		// operation fail underneath; none of that may surface.
		blocked := filepath.Join(t.TempDir(), "blocked")
		require.NoError(t, os.WriteFile(blocked, []byte("file"), 0o600))

		store := session.NewFileStore(filepath.Join(blocked, "state"))
		store.Save(session.KeyToken, testToken)
		_, ok := store.Load(session.KeyToken)
		require.False(t, ok)
		store.Clear()
	})

	t.Run("user record round trips through the manager", func(t *testing.T) {
		dir := t.TempDir()

		first := newRestoredManager(t, session.NewFileStore(dir))
		first.Login(session.Data{User: testUser(), Token: testToken})

		second := newRestoredManager(t, session.NewFileStore(dir))
		require.True(t, second.IsAuthenticated())
		require.Equal(t, testUser(), second.User())
		require.Equal(t, testToken, second.Token())
	})
}
