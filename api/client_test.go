package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vetdesk/client-go/api"
	"github.com/vetdesk/client-go/internal/apierrors"
)

const (
	testTenant  = "cityclinic"
	testToken   = "test-token-abc"
	otherTenant = "northside"
)

func TestClientHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	t.Run("standard headers without a session", func(t *testing.T) {
		client, err := api.NewClient(server.URL, testTenant)
		require.NoError(t, err)

		_, err = client.Get(context.Background(), "/patients")
		require.NoError(t, err)

		require.Equal(t, "application/json", got.Get("Content-Type"))
		require.Equal(t, testTenant, got.Get("X-Tenant-ID"))
		require.NotEmpty(t, got.Get("X-Request-ID"))
		require.Empty(t, got.Get("Authorization"))
	})

	t.Run("token and tenant sources win over the default", func(t *testing.T) {
		client, err := api.NewClient(server.URL, testTenant,
			api.WithTokenSource(func() string { return testToken }),
			api.WithTenantSource(func() string { return otherTenant }),
		)
		require.NoError(t, err)

		_, err = client.Get(context.Background(), "/patients")
		require.NoError(t, err)

		require.Equal(t, "Bearer "+testToken, got.Get("Authorization"))
		require.Equal(t, otherTenant, got.Get("X-Tenant-ID"))
	})

	t.Run("empty tenant source falls back to the default", func(t *testing.T) {
		client, err := api.NewClient(server.URL, testTenant,
			api.WithTenantSource(func() string { return "" }),
		)
		require.NoError(t, err)

		_, err = client.Get(context.Background(), "/appointments")
		require.NoError(t, err)
		require.Equal(t, testTenant, got.Get("X-Tenant-ID"))
	})

	t.Run("caller headers win on conflict", func(t *testing.T) {
		client, err := api.NewClient(server.URL, testTenant,
			api.WithTokenSource(func() string { return testToken }),
		)
		require.NoError(t, err)

		_, err = client.Get(context.Background(), "/patients",
			api.WithHeader("Authorization", "Bearer other-token"),
			api.WithHeader("X-Tenant-ID", otherTenant),
		)
		require.NoError(t, err)

		require.Equal(t, "Bearer other-token", got.Get("Authorization"))
		require.Equal(t, otherTenant, got.Get("X-Tenant-ID"))
	})

	t.Run("base URL is required", func(t *testing.T) {
		_, err := api.NewClient("   ", testTenant)
		require.Error(t, err)
	})
}

func TestClientRequestBody(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL, testTenant)
	require.NoError(t, err)

	raw, err := client.Post(context.Background(), "/patients", map[string]any{"pet_name": "Rex"})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"pet_name": "Rex"}, received)

	var echoed map[string]any
	require.NoError(t, api.DecodeJSON(raw, &echoed))
	require.Equal(t, "Rex", echoed["pet_name"])
}

func TestClientResponseHandling(t *testing.T) {
	newServer := func(status int, body string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			if body != "" {
				_, _ = io.WriteString(w, body)
			}
		}))
	}

	newClient := func(t *testing.T, server *httptest.Server) *api.Client {
		t.Helper()
		client, err := api.NewClient(server.URL, testTenant)
		require.NoError(t, err)
		return client
	}

	t.Run("204 yields nil with no parse attempt", func(t *testing.T) {
		server := newServer(http.StatusNoContent, "")
		defer server.Close()

		raw, err := newClient(t, server).Delete(context.Background(), "/patients/1")
		require.NoError(t, err)
		require.Nil(t, raw)
	})

	t.Run("error message extracted from detail field", func(t *testing.T) {
		server := newServer(http.StatusUnauthorized, `{"detail": "Invalid credentials"}`)
		defer server.Close()

		_, err := newClient(t, server).Post(context.Background(), "/auth/login", map[string]string{})
		require.Error(t, err)
		require.Equal(t, "Invalid credentials", err.Error())

		var apiErr *api.Error
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})

	t.Run("detail wins over message and error", func(t *testing.T) {
		server := newServer(http.StatusBadRequest, `{"error": "c", "message": "b", "detail": "a"}`)
		defer server.Close()

		_, err := newClient(t, server).Get(context.Background(), "/patients")
		require.EqualError(t, err, "a")
	})

	t.Run("message field used when detail is absent", func(t *testing.T) {
		server := newServer(http.StatusBadRequest, `{"message": "try again"}`)
		defer server.Close()

		_, err := newClient(t, server).Get(context.Background(), "/patients")
		require.EqualError(t, err, "try again")
	})

	t.Run("error field used last", func(t *testing.T) {
		server := newServer(http.StatusConflict, `{"error": "duplicate chip number"}`)
		defer server.Close()

		_, err := newClient(t, server).Get(context.Background(), "/patients")
		require.EqualError(t, err, "duplicate chip number")
	})

	t.Run("plain string body used verbatim", func(t *testing.T) {
		server := newServer(http.StatusForbidden, `"tenant mismatch"`)
		defer server.Close()

		_, err := newClient(t, server).Get(context.Background(), "/patients")
		require.EqualError(t, err, "tenant mismatch")
	})

	t.Run("message synthesized when the body has nothing usable", func(t *testing.T) {
		server := newServer(http.StatusInternalServerError, `{}`)
		defer server.Close()

		_, err := newClient(t, server).Get(context.Background(), "/patients")
		require.EqualError(t, err, "request failed with status 500")
	})

	t.Run("non-JSON success body becomes invalid response", func(t *testing.T) {
		server := newServer(http.StatusOK, `<html>oops</html>`)
		defer server.Close()

		_, err := newClient(t, server).Get(context.Background(), "/patients")
		require.ErrorIs(t, err, apierrors.ErrInvalidResponse)
	})

	t.Run("non-JSON error body becomes invalid response", func(t *testing.T) {
		server := newServer(http.StatusBadGateway, `<html>bad gateway</html>`)
		defer server.Close()

		_, err := newClient(t, server).Get(context.Background(), "/patients")
		require.ErrorIs(t, err, apierrors.ErrInvalidResponse)
	})

	t.Run("no response at all becomes a network error", func(t *testing.T) {
		server := newServer(http.StatusOK, `{}`)
		server.Close() // connection refused from here on

		_, err := newClient(t, server).Get(context.Background(), "/patients")
		require.ErrorIs(t, err, apierrors.ErrNetwork)
		require.Equal(t, "network error, check your connection", err.Error())
	})
}
