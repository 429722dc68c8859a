package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mergington/rosterkeeper/internal/client/api"
	"github.com/mergington/rosterkeeper/internal/client/notify"
	"github.com/mergington/rosterkeeper/internal/client/services"
)

// List prints the cached activity list with capacity and participants,
// fetching it first if nothing is cached yet.
func (a *App) List(ctx context.Context) error {
	snapshot := a.roster.Snapshot()
	if snapshot == nil {
		if err := a.Refresh(ctx); err != nil {
			return err
		}
		snapshot = a.roster.Snapshot()
	}

	if a.roster.Stale() {
		fmt.Fprintln(a.out, "Warning: showing cached data; the last refresh failed.")
	}

	for _, name := range snapshot.Names() {
		activity := snapshot[name]
		fmt.Fprintf(a.out, "%s — %s\n", activity.Name, activity.Schedule)
		fmt.Fprintf(a.out, "  %s\n", activity.Description)
		fmt.Fprintf(a.out, "  Enrolled %d/%d (%d spots left)\n",
			len(activity.Participants), activity.MaxParticipants, activity.SpotsLeft())
		for _, email := range activity.Participants {
			fmt.Fprintf(a.out, "    - %s\n", email)
		}
	}
	return nil
}

// Refresh re-fetches the activity list. Failures are reported through a
// notification; the cached snapshot (if any) is kept and flagged stale.
func (a *App) Refresh(ctx context.Context) error {
	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	if _, err := a.roster.Refresh(rctx); err != nil {
		a.notices.Show(api.Detail(err), notify.KindError, notify.RosterNoticeTTL)
		return err
	}
	return nil
}

// Signup prompts for an activity and an email and registers the participant.
func (a *App) Signup(ctx context.Context) error {
	return a.mutateRoster(ctx, "Activity to sign up for", a.roster.Register)
}

// Unregister prompts for an activity and an email and removes the participant.
func (a *App) Unregister(ctx context.Context) error {
	return a.mutateRoster(ctx, "Activity to unregister from", a.roster.Unregister)
}

// mutateRoster runs the shared prompt -> action -> notify flow for both
// roster mutations. Every outcome, including gate denial, becomes a
// notification; only input I/O errors are returned.
func (a *App) mutateRoster(ctx context.Context, prompt string,
	action func(ctx context.Context, activity, email string) (string, error)) error {

	activity, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Participant email", os.Stdout)
	if err != nil {
		return err
	}

	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	msg, err := action(rctx, activity, email)
	if err != nil {
		if errors.Is(err, services.ErrLoginRequired) {
			a.notices.Show(err.Error(), notify.KindError, notify.RosterNoticeTTL)
			return nil
		}
		a.notices.Show(api.Detail(err), notify.KindError, notify.RosterNoticeTTL)
		return nil
	}

	a.notices.Show(msg, notify.KindSuccess, notify.RosterNoticeTTL)
	return nil
}
