package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable covers transport failures and unparseable responses.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks rejections caused by a missing or invalid session.
	ErrUnauthorized = errors.New("unauthorized")
)

// genericDetail is used when a rejection carries no usable detail string.
const genericDetail = "an unexpected error occurred"

// APIError is a server-side rejection: a non-2xx status together with the
// detail string from the response body, surfaced verbatim to the user.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Detail)
}

// Unwrap lets auth rejections match ErrUnauthorized via errors.Is.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}

// Detail extracts the user-facing message from any error returned by this
// package, falling back to a generic message for transport failures.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	if errors.Is(err, ErrUnavailable) {
		return "could not reach the server"
	}
	return genericDetail
}
