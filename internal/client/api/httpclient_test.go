package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/rosterkeeper/internal/logging"
)

func newTestLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewHTTPClient(srv.URL, 2*time.Second, newTestLogger())
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestHTTPClient_Activities(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/activities", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"Chess Club": map[string]any{
				"description":      "Learn strategies",
				"schedule":         "Fridays",
				"max_participants": 12,
				"participants":     []string{"michael@mergington.edu"},
			},
		})
	}))

	snap, err := c.Activities(context.Background())
	require.NoError(t, err)
	require.Len(t, snap, 1)

	chess := snap["Chess Club"]
	assert.Equal(t, "Chess Club", chess.Name)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu"}, chess.Participants)
}

func TestHTTPClient_Activities_MalformedBody(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))

	_, err := c.Activities(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Verify(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify", r.URL.Path)
		if r.Header.Get("Authorization") == "Bearer good" {
			writeJSON(t, w, http.StatusOK, map[string]any{"authenticated": true, "username": "rodriguez"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"authenticated": false})
	}))

	res, err := c.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.True(t, res.Authenticated)
	assert.Equal(t, "rodriguez", res.Username)

	res, err = c.Verify(context.Background(), "stale")
	require.NoError(t, err)
	assert.False(t, res.Authenticated)
	assert.Empty(t, res.Username)
}

func TestHTTPClient_Login(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))

		if creds.Password != "s3cret" {
			writeJSON(t, w, http.StatusUnauthorized, map[string]any{"detail": "Invalid credentials"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"token": "tok123", "username": creds.Username, "message": "Login successful",
		})
	}))

	res, err := c.Login(context.Background(), "rodriguez", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok123", res.Token)
	assert.Equal(t, "rodriguez", res.Username)

	_, err = c.Login(context.Background(), "rodriguez", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Detail)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClient_Signup(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/activities/Chess Club/signup", r.URL.Path)
		require.Equal(t, "b@x.com", r.URL.Query().Get("email"))

		if r.Header.Get("Authorization") != "Bearer tok123" {
			writeJSON(t, w, http.StatusForbidden, map[string]any{"detail": "Authentication required"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"message": "Signed up b@x.com for Chess Club"})
	}))

	msg, err := c.Signup(context.Background(), "tok123", "Chess Club", "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Signed up b@x.com for Chess Club", msg)

	_, err = c.Signup(context.Background(), "", "Chess Club", "b@x.com")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClient_Unregister_ServerRejection(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/activities/Chess Club/unregister", r.URL.Path)
		writeJSON(t, w, http.StatusBadRequest, map[string]any{"detail": "Student is not signed up for this activity"})
	}))

	_, err := c.Unregister(context.Background(), "tok123", "Chess Club", "ghost@x.com")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Student is not signed up for this activity", apiErr.Detail)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClient_RejectionWithoutDetail(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.Activities(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "an unexpected error occurred", apiErr.Detail)
}

func TestHTTPClient_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second, newTestLogger())
	_, err := c.Activities(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDetail(t *testing.T) {
	assert.Equal(t, "Invalid credentials", Detail(&APIError{Status: 401, Detail: "Invalid credentials"}))
	assert.Equal(t, "could not reach the server", Detail(ErrUnavailable))
	assert.Equal(t, "an unexpected error occurred", Detail(assert.AnError))
}
