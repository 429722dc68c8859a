package api

import (
	"context"

	"github.com/mergington/rosterkeeper/internal/client/models"
)

// VerifyResult is the server's answer to a token verification request.
// Username is only populated when Authenticated is true.
type VerifyResult struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
}

// LoginResult is the server's answer to a successful login.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// Client is the API contract used by the session and roster services.
// The token is owned by the session layer and passed in explicitly on
// every authenticated call; implementations hold no credential state.
type Client interface {
	Close() error
	Activities(ctx context.Context) (models.Snapshot, error)
	Verify(ctx context.Context, token string) (VerifyResult, error)
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Logout(ctx context.Context, token string) error
	Signup(ctx context.Context, token, activity, email string) (string, error)
	Unregister(ctx context.Context, token, activity, email string) (string, error)
}
