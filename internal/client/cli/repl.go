package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Signup(ctx context.Context) error
	Unregister(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the roster client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - list | l       — show activities, capacity and participants
//	  - refresh        — re-fetch the activity list
//	  - login          — authenticate as an operator
//	  - exit | quit    — leave the program
//
//	Logged in (additionally):
//	  - signup         — register a participant by email
//	  - unregister     — remove a participant by email
//	  - logout         — end the session
//
// Signup and unregister still dispatch while logged out; the action gate
// denies them and the user sees the login-required notice. Hiding them from
// help mirrors the hidden delete affordances of the web UI.
//
// Any errors returned by command handlers are ignored here; handlers report
// outcomes through notifications. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("roster (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, refresh, signup, unregister, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, refresh, login, exit")
			}

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "unregister":
			_ = a.Unregister(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
