package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mergington/rosterkeeper/internal/client/models"
	"github.com/mergington/rosterkeeper/internal/common"
	"github.com/mergington/rosterkeeper/internal/logging"
)

// HTTPClient talks JSON over HTTP to the activities backend.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the given base URL, e.g.
// "http://localhost:8000". A zero timeout means no client-side deadline
// beyond what the per-call context imposes.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

// Close releases idle connections held by the underlying transport.
func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// do performs one request and decodes a 2xx response into out (if non-nil).
// Non-2xx responses become *APIError with the server's detail string;
// transport and decode failures map to ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, token string, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := genericDetail
		var dr detailResponse
		if err := json.NewDecoder(resp.Body).Decode(&dr); err == nil && dr.Detail != "" {
			detail = dr.Detail
		}
		c.log.Debug(ctx, "request rejected", "method", method, "path", path,
			"request_id", requestID, "status", resp.StatusCode, "detail", detail)
		return &APIError{Status: resp.StatusCode, Detail: detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Warn(ctx, "malformed response", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: malformed response: %w", method, path, ErrUnavailable)
	}
	return nil
}

// Activities fetches the full roster. No authentication is required;
// viewing is public.
func (c *HTTPClient) Activities(ctx context.Context) (models.Snapshot, error) {
	var raw map[string]models.Activity
	if err := c.do(ctx, http.MethodGet, "/activities", nil, "", nil, &raw); err != nil {
		return nil, err
	}

	snapshot := make(models.Snapshot, len(raw))
	for name, a := range raw {
		a.Name = name
		snapshot[name] = a
	}
	return snapshot, nil
}

// Verify asks the server whether the token is still a valid session.
func (c *HTTPClient) Verify(ctx context.Context, token string) (VerifyResult, error) {
	var res VerifyResult
	if err := c.do(ctx, http.MethodGet, "/auth/verify", nil, token, nil, &res); err != nil {
		return VerifyResult{}, err
	}
	return res, nil
}

// Login exchanges credentials for a session token.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var res LoginResult
	req := loginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, "", req, &res); err != nil {
		return LoginResult{}, err
	}
	return res, nil
}

// Logout invalidates the token server-side. The response body is ignored.
func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, token, nil, nil)
}

// Signup registers a participant for an activity and returns the server's
// confirmation message.
func (c *HTTPClient) Signup(ctx context.Context, token, activity, email string) (string, error) {
	var res messageResponse
	path := "/activities/" + url.PathEscape(activity) + "/signup"
	query := url.Values{"email": {email}}
	if err := c.do(ctx, http.MethodPost, path, query, token, nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

// Unregister removes a participant from an activity and returns the server's
// confirmation message.
func (c *HTTPClient) Unregister(ctx context.Context, token, activity, email string) (string, error) {
	var res messageResponse
	path := "/activities/" + url.PathEscape(activity) + "/unregister"
	query := url.Values{"email": {email}}
	if err := c.do(ctx, http.MethodDelete, path, query, token, nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}
