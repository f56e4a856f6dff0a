package profile_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vetdesk/client-go/api"
	"github.com/vetdesk/client-go/internal/apierrors"
	"github.com/vetdesk/client-go/profile"
	"github.com/vetdesk/client-go/users"
)

type testFixture struct {
	service  *profile.Service
	requests []*http.Request
	bodies   []map[string]any
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, r)
		body := map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.bodies = append(f.bodies, body)

		w.Header().Set("Content-Type", "application/json")
		user := currentUser()
		if name, ok := body["full_name"].(string); ok {
			user.FullName = name
		}
		if email, ok := body["email"].(string); ok {
			user.Email = email
		}
		_ = json.NewEncoder(w).Encode(user)
	}))
	t.Cleanup(server.Close)

	apiClient, err := api.NewClient(server.URL, "cityclinic")
	require.NoError(t, err)
	f.service, err = profile.NewService(apiClient)
	require.NoError(t, err)
	return f
}

func currentUser() *users.User {
	return &users.User{
		ID:       7,
		Email:    "jane.doe@example.com",
		FullName: "Jane Doe",
	}
}

func TestGet(t *testing.T) {
	f := setupTestFixture(t)

	user, err := f.service.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "jane.doe@example.com", user.Email)
	require.Equal(t, "/auth/me", f.requests[0].URL.Path)
}

func TestUpdate(t *testing.T) {
	t.Run("sends only changed fields", func(t *testing.T) {
		f := setupTestFixture(t)

		updated, err := f.service.Update(context.Background(), currentUser(), profile.UpdateInput{
			FullName: "Jane A. Doe",
			Email:    "jane.doe@example.com", // unchanged, must be diffed away
		})
		require.NoError(t, err)
		require.Equal(t, "Jane A. Doe", updated.FullName)

		require.Equal(t, http.MethodPatch, f.requests[0].Method)
		require.Equal(t, "/auth/me", f.requests[0].URL.Path)
		require.Equal(t, map[string]any{"full_name": "Jane A. Doe"}, f.bodies[0])
	})

	t.Run("no changes means no request", func(t *testing.T) {
		f := setupTestFixture(t)

		current := currentUser()
		user, err := f.service.Update(context.Background(), current, profile.UpdateInput{
			FullName: current.FullName,
			Email:    current.Email,
		})
		require.NoError(t, err)
		require.Equal(t, current, user)
		require.Empty(t, f.requests)
	})

	t.Run("rejects a malformed email before any network call", func(t *testing.T) {
		f := setupTestFixture(t)

		_, err := f.service.Update(context.Background(), currentUser(), profile.UpdateInput{
			Email: "not-an-email",
		})
		require.Error(t, err)
		require.Empty(t, f.requests)
	})

	t.Run("requires the current user", func(t *testing.T) {
		f := setupTestFixture(t)

		_, err := f.service.Update(context.Background(), nil, profile.UpdateInput{FullName: "X"})
		require.ErrorIs(t, err, apierrors.ErrNotAuthenticated)
		require.Empty(t, f.requests)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("submits old and new password", func(t *testing.T) {
		f := setupTestFixture(t)

		_, err := f.service.ChangePassword(context.Background(), "OldPass123", "NewPass456")
		require.NoError(t, err)

		require.Equal(t, http.MethodPatch, f.requests[0].Method)
		require.Equal(t, "/auth/me/password", f.requests[0].URL.Path)
		require.Equal(t, map[string]any{
			"old_password": "OldPass123",
			"new_password": "NewPass456",
		}, f.bodies[0])
	})

	t.Run("requires the current password", func(t *testing.T) {
		f := setupTestFixture(t)

		_, err := f.service.ChangePassword(context.Background(), "", "NewPass456")
		require.Error(t, err)
		require.Empty(t, f.requests)
	})

	t.Run("enforces strength on the new password only", func(t *testing.T) {
		f := setupTestFixture(t)

		_, err := f.service.ChangePassword(context.Background(), "weak-but-accepted", "weak")
		require.Error(t, err)
		require.Empty(t, f.requests)
	})
}
