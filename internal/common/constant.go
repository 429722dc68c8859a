// Package common contains shared constants used across client components.
package common

// AuthHeaderName is the HTTP header carrying the bearer token on
// authenticated requests.
const AuthHeaderName = "Authorization"

// BearerPrefix is prepended to the token in the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries a per-request correlation id so client logs
// can be matched against server logs.
const RequestIDHeaderName = "X-Request-Id"
