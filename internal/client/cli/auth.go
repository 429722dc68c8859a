package cli

import (
	"context"
	"os"

	"github.com/mergington/rosterkeeper/internal/client/api"
	"github.com/mergington/rosterkeeper/internal/client/notify"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and tries to establish a session.
//
// On success the token is persisted by the session service and a success
// notification is shown. On rejection the server's detail string (e.g.
// "Invalid credentials") is surfaced as an error notification; persisted
// state stays untouched. I/O errors reading input are returned unchanged.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.session.Login(rctx, username, password); err != nil {
		a.notices.Show(api.Detail(err), notify.KindError, notify.SessionNoticeTTL)
		return nil
	}

	a.notices.Show("Login successful", notify.KindSuccess, notify.SessionNoticeTTL)
	return nil
}

// Logout ends the session. Server-side invalidation is best-effort; local
// state is always cleared, so the outcome is reported as a success.
func (a *App) Logout(ctx context.Context) error {
	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.session.Logout(rctx); err != nil {
		return err
	}

	a.notices.Show("Logged out", notify.KindSuccess, notify.SessionNoticeTTL)
	return nil
}
