// Package erp is the HTTP client for the remote ERP REST API. Every request
// carries the shared Basic credential; nothing is retried.
package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"kamakpos/m/pkg/logx"
)

type Config struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

func New(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// reply is a fully read response.
type reply struct {
	status int
	body   []byte
}

func (r reply) ok() bool {
	return r.status >= 200 && r.status < 300
}

func (c *Client) send(ctx context.Context, op, method string, segments []string, in any) (reply, error) {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return reply{}, fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(segments...), body)
	if err != nil {
		return reply{}, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logx.Error().Err(err).Str("op", op).Msg("erp request failed")
		return reply{}, &APIError{Op: op, Message: unreachableMessage, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return reply{}, &APIError{Op: op, Status: resp.StatusCode, Message: unreachableMessage, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logx.Warn().Str("op", op).Int("status", resp.StatusCode).Msg("erp returned an error status")
	}
	return reply{status: resp.StatusCode, body: raw}, nil
}

func (c *Client) url(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

func decode(op string, r reply, out any) error {
	if err := json.Unmarshal(r.body, out); err != nil {
		logx.Error().Err(err).Str("op", op).Msg("erp response is not valid JSON")
		return &APIError{Op: op, Status: r.status, Message: malformedMessage, Err: err}
	}
	return nil
}
