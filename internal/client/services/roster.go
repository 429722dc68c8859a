package services

import (
	"context"
	"sync"

	"github.com/mergington/rosterkeeper/internal/client/api"
	"github.com/mergington/rosterkeeper/internal/client/models"
	"github.com/mergington/rosterkeeper/internal/logging"
)

// RosterService caches server roster state and exposes the two mutations.
//
// The service never predicts server state: a successful mutation is followed
// by exactly one full refresh, so the cache always reflects an authoritative
// read. One extra round trip buys strict consistency.
type RosterService interface {
	// Refresh fetches the full activity list and replaces the cached
	// snapshot atomically, returning the new snapshot.
	Refresh(ctx context.Context) (models.Snapshot, error)

	// Register signs a participant up and returns the server's message.
	// Denied by the gate before any network call when no verified session
	// exists.
	Register(ctx context.Context, activity, email string) (string, error)

	// Unregister removes a participant; symmetric to Register.
	Unregister(ctx context.Context, activity, email string) (string, error)

	// Snapshot returns a copy of the cached snapshot; nil before the first
	// successful refresh.
	Snapshot() models.Snapshot

	// Stale reports whether the cached snapshot survived a failed refresh
	// and may no longer match server state.
	Stale() bool
}

type rosterService struct {
	client  api.Client
	session SessionService
	gate    *Gate
	log     logging.Logger

	mu       sync.RWMutex
	snapshot models.Snapshot
	stale    bool
}

// NewRosterService constructs a RosterService. The session service supplies
// the bearer token for mutations; the gate decides whether they may proceed.
func NewRosterService(client api.Client, session SessionService, gate *Gate, log logging.Logger) RosterService {
	return &rosterService{
		client:  client,
		session: session,
		gate:    gate,
		log:     log.With("component", "roster"),
	}
}

func (r *rosterService) Refresh(ctx context.Context) (models.Snapshot, error) {
	snapshot, err := r.client.Activities(ctx)
	if err != nil {
		r.mu.Lock()
		if r.snapshot != nil {
			// Keep stale data rather than blanking the list; the
			// flag lets the rendering layer warn the user.
			r.stale = true
		}
		r.mu.Unlock()
		r.log.Warn(ctx, "roster refresh failed", "error", err)
		return nil, err
	}

	r.mu.Lock()
	r.snapshot = snapshot
	r.stale = false
	r.mu.Unlock()
	r.log.Debug(ctx, "roster refreshed", "activities", len(snapshot))
	return snapshot.Clone(), nil
}

func (r *rosterService) Register(ctx context.Context, activity, email string) (string, error) {
	return r.mutate(ctx, activity, email, r.client.Signup)
}

func (r *rosterService) Unregister(ctx context.Context, activity, email string) (string, error) {
	return r.mutate(ctx, activity, email, r.client.Unregister)
}

// mutate runs the shared gate -> call -> refresh pipeline for both mutations.
func (r *rosterService) mutate(ctx context.Context, activity, email string,
	call func(ctx context.Context, token, activity, email string) (string, error)) (string, error) {

	if err := r.gate.Check(); err != nil {
		return "", err
	}

	msg, err := call(ctx, r.session.Token(), activity, email)
	if err != nil {
		return "", err
	}

	// The write succeeded; a failed re-read only leaves the cache stale,
	// it does not undo the action.
	if _, err := r.Refresh(ctx); err != nil {
		r.log.Warn(ctx, "refresh after mutation failed", "activity", activity, "error", err)
	}
	return msg, nil
}

func (r *rosterService) Snapshot() models.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot.Clone()
}

func (r *rosterService) Stale() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stale
}
