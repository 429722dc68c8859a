package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/mergington/rosterkeeper/internal/client/api"
	"github.com/mergington/rosterkeeper/internal/client/models"
	"github.com/mergington/rosterkeeper/internal/client/repositories/tokens"
	"github.com/mergington/rosterkeeper/internal/logging"
)

// SessionService owns the authentication token: persistence across runs,
// verification against the server, and teardown.
//
// Contract:
//   - Restore: adopt a persisted token if the server still accepts it;
//     otherwise fail closed and clear it.
//   - Login: establish a fresh session and persist its token.
//   - Logout: best-effort server invalidation, unconditional local cleanup.
//   - Verified/Username/Token: read the current session state.
//
// All methods must honor context cancellation/timeouts.
type SessionService interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Verified() bool
	Username() string
	Token() string
	Close(ctx context.Context) error
}

// sessionService is the concrete SessionService backed by a remote Client
// and a local repository for the persisted token.
type sessionService struct {
	client api.Client
	tokens tokens.Repository
	log    logging.Logger

	mu      sync.RWMutex
	current models.Session
}

// NewSessionService constructs a SessionService bound to the given API
// client and token repository.
func NewSessionService(client api.Client, tokens tokens.Repository, log logging.Logger) SessionService {
	return &sessionService{
		client: client,
		tokens: tokens,
		log:    log.With("component", "session"),
	}
}

// Restore loads any persisted token and verifies it against the server.
// Ambiguity resolves to "not authenticated": any verification failure,
// transport error or malformed response clears the persisted token and
// resets the in-memory session. A missing token is not an error.
func (s *sessionService) Restore(ctx context.Context) error {
	token, err := s.tokens.Get(ctx)
	if err != nil {
		return fmt.Errorf("load persisted token: %w", err)
	}
	if token == "" {
		return nil
	}

	res, err := s.client.Verify(ctx, token)
	if err != nil || !res.Authenticated {
		if err != nil {
			s.log.Warn(ctx, "token verification failed", "error", err)
		} else {
			s.log.Info(ctx, "persisted token no longer valid")
		}
		s.discard(ctx)
		return nil
	}

	s.mu.Lock()
	s.current = models.Session{Token: token, Username: res.Username, Verified: true}
	s.mu.Unlock()
	s.log.Info(ctx, "session restored", "username", res.Username)
	return nil
}

// Login exchanges credentials for a token, persists it and adopts the new
// session. On failure the previous persisted state is left untouched and the
// error is returned for the caller to surface.
func (s *sessionService) Login(ctx context.Context, username, password string) error {
	res, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := s.tokens.Set(ctx, res.Token); err != nil {
		// The session still works for this run; it just won't survive
		// a restart.
		s.log.Warn(ctx, "could not persist token", "error", err)
	}

	s.mu.Lock()
	s.current = models.Session{Token: res.Token, Username: res.Username, Verified: true}
	s.mu.Unlock()
	s.log.Info(ctx, "login ok", "username", res.Username)
	return nil
}

// Logout invalidates the token server-side on a best-effort basis and always
// clears persisted and in-memory state, whatever the network outcome.
func (s *sessionService) Logout(ctx context.Context) error {
	token := s.Token()
	if token != "" {
		if err := s.client.Logout(ctx, token); err != nil {
			s.log.Warn(ctx, "server-side logout failed", "error", err)
		}
	}
	s.discard(ctx)
	return nil
}

// discard clears the persisted token and resets the in-memory session.
func (s *sessionService) discard(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn(ctx, "could not clear persisted token", "error", err)
	}
	s.mu.Lock()
	s.current = models.Session{}
	s.mu.Unlock()
}

func (s *sessionService) Verified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Verified
}

func (s *sessionService) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Username
}

func (s *sessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// Close releases resources held by the underlying client.
func (s *sessionService) Close(ctx context.Context) error {
	return s.client.Close()
}
