// Package tokens persists the operator's bearer token between runs.
//
// The token is the only durable client state; the session's verified flag and
// username are re-derived from the server on every startup. The storage is a
// single-row key/value table in the local SQLite database, keyed by a fixed
// name, cleared on logout or failed verification.
package tokens
