// Package backend is the HTTP client for the users REST service.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tipulim/directory-web/internal/api/metrics"
	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/pkg/requestid"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 1 << 20
)

// Config captures the settings for reaching the backend.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// BaseClient sends JSON requests to the backend and maps failures to the
// domain error kinds. Requests are never retried.
type BaseClient struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewBaseClient creates a client for cfg.BaseURL. A default timeout is applied
// when none is provided.
func NewBaseClient(cfg Config, log zerolog.Logger) *BaseClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &BaseClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// BaseURL returns the backend root the client talks to.
func (c *BaseClient) BaseURL() string { return c.baseURL }

// Get sends a GET request. token is sent as a bearer credential when non-empty.
func (c *BaseClient) Get(ctx context.Context, path, token string) (*http.Response, error) {
	return c.send(ctx, http.MethodGet, path, token, nil)
}

// Post sends body as JSON.
func (c *BaseClient) Post(ctx context.Context, path string, body any, token string) (*http.Response, error) {
	return c.send(ctx, http.MethodPost, path, token, body)
}

// Put sends body as JSON.
func (c *BaseClient) Put(ctx context.Context, path string, body any, token string) (*http.Response, error) {
	return c.send(ctx, http.MethodPut, path, token, body)
}

func (c *BaseClient) send(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if rid := requestid.From(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	return resp, nil
}

// observe records metrics for one client operation.
func observe(op string, start time.Time, err error) {
	metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	metrics.BackendRequestsTotal.WithLabelValues(op, metrics.ResultLabel(err)).Inc()
}

// DecodeResponse closes resp.Body. Non-2xx answers become *domain.ServerError;
// a 2xx body is decoded into out when out is non-nil.
func DecodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.ServerError{
			Status:  resp.StatusCode,
			Message: errorMessage(raw),
			Kind:    kindForStatus(resp.StatusCode),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode body: %v", domain.ErrUnexpectedServer, err)
	}
	return nil
}

func kindForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return domain.ErrUnexpectedServer
	}
}

// errorMessage extracts {"message": ...} or {"error": ...} from an error body.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(body.Message); msg != "" {
		return msg
	}
	return strings.TrimSpace(body.Error)
}

// Ping reports whether the backend answers HTTP at all. Any status counts as
// reachable.
func (c *BaseClient) Ping(ctx context.Context) error {
	resp, err := c.Get(ctx, "/", "")
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}
