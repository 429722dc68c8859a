package models

// Session is the in-memory authentication state. Only the token is ever
// persisted; Verified is re-derived on every startup by calling the server's
// verify endpoint, never stored.
type Session struct {
	Token    string
	Username string
	Verified bool
}

// Active reports whether the session may authorize mutating actions.
// Verified implies both token and username are present; Active double-checks
// rather than trusting that invariant blindly.
func (s Session) Active() bool {
	return s.Verified && s.Token != "" && s.Username != ""
}
