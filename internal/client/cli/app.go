package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mergington/rosterkeeper/internal/client/api"
	"github.com/mergington/rosterkeeper/internal/client/config"
	"github.com/mergington/rosterkeeper/internal/client/notify"
	"github.com/mergington/rosterkeeper/internal/client/repositories/tokens"
	"github.com/mergington/rosterkeeper/internal/client/services"
	"github.com/mergington/rosterkeeper/internal/client/storage"
	"github.com/mergington/rosterkeeper/internal/logging"

	_ "modernc.org/sqlite"
)

// App owns the wired client components and implements the REPL commands.
type App struct {
	config  *config.Config
	session services.SessionService
	roster  services.RosterService
	notices *notify.Channel
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, log)
	tokenRepo := tokens.NewSQLiteTokenRepository(db)

	session := services.NewSessionService(apiClient, tokenRepo, log)
	gate := services.NewGate(session)
	roster := services.NewRosterService(apiClient, session, gate, log)

	app := &App{
		config:  c,
		session: session,
		roster:  roster,
		notices: notify.NewChannel(),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	app.notices.SetListener(app.printNotice)
	return app, nil
}

// printNotice renders a notification the moment it is shown.
func (a *App) printNotice(n notify.Notification) {
	fmt.Fprintf(a.out, "[%s] %s\n", n.Kind, n.Text)
}

// requestCtx derives a per-request context honoring the configured timeout.
func (a *App) requestCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout > 0 {
		return context.WithTimeout(ctx, a.config.RequestTimeout)
	}
	return context.WithCancel(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Verified()
}

// getStatus renders the prompt suffix: the operator name when a verified
// session exists, "guest" otherwise.
func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return a.session.Username()
	}
	return "guest"
}

// Run restores any persisted session, performs the initial roster fetch
// (viewing requires no authentication) and hands control to the REPL.
// Blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.session.Close(ctx)

	rctx, cancel := a.requestCtx(ctx)
	if err := a.session.Restore(rctx); err != nil {
		a.log.Warn(rctx, "session restore failed", "error", err)
	}
	cancel()

	if err := a.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "Failed to load activities. Try 'refresh' later.")
	}

	fmt.Fprintln(a.out, "Mergington High School activities (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
