package services

import "errors"

// ErrLoginRequired is returned when a mutating action is attempted without a
// verified session. Callers surface it as a notification and make no network
// call.
var ErrLoginRequired = errors.New("please log in to modify activity rosters")

// sessionState is the single bit of session state the gate needs.
type sessionState interface {
	Verified() bool
}

// Gate is the pre-check evaluated synchronously before every mutating
// action. It is advisory only: the server independently enforces
// authorization, the gate merely saves a doomed round trip.
type Gate struct {
	session sessionState
}

func NewGate(session sessionState) *Gate {
	return &Gate{session: session}
}

// Allow reports whether mutating actions are currently permitted.
func (g *Gate) Allow() bool {
	return g.session.Verified()
}

// Check returns nil when allowed, ErrLoginRequired otherwise.
func (g *Gate) Check() error {
	if !g.Allow() {
		return ErrLoginRequired
	}
	return nil
}
