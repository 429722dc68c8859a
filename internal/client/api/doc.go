// Package api contains the transport layer of the roster client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) for the
//     activities backend: fetch the roster, verify/establish/invalidate a
//     session, and register or unregister a participant.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that carries the
//     bearer token in the Authorization header, tags every request with a
//     correlation id, and maps failures onto sentinel and typed errors.
//
// # Error Handling
//
// Transport and decode failures are exposed as ErrUnavailable. Server-side
// rejections carry the HTTP status and the server's detail string as an
// *APIError; rejections with status 401 or 403 additionally match
// ErrUnauthorized via errors.Is.
//
// The client performs no retries. Every call is attempted exactly once; the
// caller decides whether to re-trigger.
package api
