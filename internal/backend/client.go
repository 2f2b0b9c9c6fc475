// Package backend talks to the credit-tracking REST backend. Every
// repository in this package translates HTTP failures into *domain.AppError
// so handlers can reply without knowing about the transport.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 4 << 10

// Client is a JSON client for the backend API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying *http.Client. The timeout passed
// to New is not applied to it.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for baseURL (without trailing slash).
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Ping checks that the backend answers HTTP at all. Any response, whatever
// its status, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewAppError(domain.CodeUnavailable, "backend unavailable", err)
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do sends in as JSON (when non-nil) and decodes the response into out
// (when non-nil and the body is not empty).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to encode request", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return domain.NewAppError(domain.CodeUnavailable, "backend unavailable", err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "backend request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(method, path, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.NewAppError(domain.CodeUnavailable, "invalid backend response",
			fmt.Errorf("%s %s: %w", method, path, err))
	}
	return nil
}

// errorBody covers the error payloads the backend is known to send.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// statusError converts a >= 400 response into an AppError.
func statusError(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := backendMessage(raw)
	cause := fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.NewAppError(domain.CodeNotFound, orDefault(msg, "not found"), cause)
	case resp.StatusCode == http.StatusConflict:
		return domain.NewAppError(domain.CodeAlreadyExists, orDefault(msg, "already exists"), cause)
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusUnprocessableEntity:
		return domain.NewAppError(domain.CodeValidation, orDefault(msg, "rejected by backend"), cause)
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return domain.NewAppError(domain.CodeUnavailable, "backend refused the credentials", cause)
	case resp.StatusCode >= http.StatusInternalServerError:
		return domain.NewAppError(domain.CodeUnavailable, "backend unavailable", cause)
	default:
		return domain.NewAppError(domain.CodeInternal, orDefault(msg, "unexpected backend response"), cause)
	}
}

func backendMessage(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		if m := strings.TrimSpace(eb.Message); m != "" {
			return m
		}
		return strings.TrimSpace(eb.Error)
	}
	if raw[0] == '<' {
		// HTML error page.
		return ""
	}
	return string(raw)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// notFound rewrites a not-found error with a resource specific message.
func notFound(err error, msg string) error {
	if domain.IsNotFound(err) {
		return domain.NewAppError(domain.CodeNotFound, msg, err)
	}
	return err
}
