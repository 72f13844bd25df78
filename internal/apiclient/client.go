// Package apiclient is the JSON client for the profile API.
package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/vladmesh/personal-site/internal/metrics"
)

// DefaultTimeout bounds a single API request.
const DefaultTimeout = 8 * time.Second

// Config configures a Client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// Client issues JSON requests against the profile API.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// Response is a completed 2xx exchange.
type Response struct {
	Status  int
	Header  http.Header
	Body    []byte
	Payload any
}

type requestConfig struct {
	method  string
	headers http.Header
	body    []byte
	timeout time.Duration
}

// Option overrides part of a single request.
type Option func(*requestConfig)

// WithMethod sets the HTTP method (GET by default).
func WithMethod(method string) Option {
	return func(rc *requestConfig) { rc.method = method }
}

// WithHeader sets a header, replacing the JSON defaults for the same key.
func WithHeader(key, value string) Option {
	return func(rc *requestConfig) { rc.headers.Set(key, value) }
}

// WithBody sets the raw request body.
func WithBody(body []byte) Option {
	return func(rc *requestConfig) { rc.body = body }
}

// WithTimeout overrides the client timeout for one request.
func WithTimeout(d time.Duration) Option {
	return func(rc *requestConfig) { rc.timeout = d }
}

// New creates a Client. Outgoing requests are traced through otelhttp.
func New(cfg Config, logger *slog.Logger) *Client {
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		timeout: timeout,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(transport),
		},
		logger: logger.With(slog.String("component", "apiclient")),
	}
}

// BaseURL returns the configured base URL without trailing slashes.
func (c *Client) BaseURL() string { return c.baseURL }

// Do performs one request. Non-2xx responses return *APIError, requests that
// never got a response return *TransportError.
func (c *Client) Do(ctx context.Context, path string, opts ...Option) (*Response, error) {
	rc := requestConfig{
		method:  http.MethodGet,
		headers: http.Header{},
		timeout: c.timeout,
	}
	rc.headers.Set("Accept", "application/json")
	rc.headers.Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(&rc)
	}

	url, err := c.buildURL(path)
	if err != nil {
		metrics.ObserveAPIRequest(endpointLabel(path), metrics.OutcomeConfigError, 0)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, rc.timeout)
	defer cancel()

	var body io.Reader = http.NoBody
	if rc.body != nil {
		body = bytes.NewReader(rc.body)
	}
	req, err := http.NewRequestWithContext(ctx, rc.method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header = rc.headers

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveAPIRequest(endpointLabel(path), metrics.OutcomeTransportError, time.Since(start))
		return nil, &TransportError{Method: rc.method, URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, readErr := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if readErr != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		metrics.ObserveAPIRequest(endpointLabel(path), metrics.OutcomeTransportError, elapsed)
		return nil, &TransportError{Method: rc.method, URL: url, Err: fmt.Errorf("read body: %w", readErr)}
	}

	payload := safeParse(raw)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ObserveAPIRequest(endpointLabel(path), metrics.OutcomeAPIError, elapsed)
		c.logger.Debug("api_non_2xx",
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
		)
		return nil, &APIError{
			Message: fmt.Sprintf("API request failed with status %d", resp.StatusCode),
			Status:  resp.StatusCode,
			Payload: payload,
		}
	}

	metrics.ObserveAPIRequest(endpointLabel(path), metrics.OutcomeOK, elapsed)
	return &Response{
		Status:  resp.StatusCode,
		Header:  resp.Header,
		Body:    raw,
		Payload: payload,
	}, nil
}

// FetchJSON performs a request and decodes the 2xx body into T.
func FetchJSON[T any](ctx context.Context, c *Client, path string, opts ...Option) (T, error) {
	var out T
	resp, err := c.Do(ctx, path, opts...)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		var zero T
		return zero, &DecodeError{URL: c.resolveForError(path), Err: err}
	}
	return out, nil
}

func (c *Client) buildURL(path string) (string, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path, nil
	}
	if c.baseURL == "" {
		return "", ErrMissingBaseURL
	}
	if !strings.HasPrefix(path, "/") {
		return c.baseURL + "/" + path, nil
	}
	return c.baseURL + path, nil
}

func (c *Client) resolveForError(path string) string {
	url, err := c.buildURL(path)
	if err != nil {
		return path
	}
	return url
}

// safeParse never fails: JSON value, else text, else nil.
func safeParse(body []byte) any {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err == nil {
		return v
	}
	if utf8.Valid(body) {
		return string(body)
	}
	return nil
}

// endpointLabel keeps metric cardinality bounded: query strings and hosts
// are dropped.
func endpointLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		rest := path[strings.Index(path, "//")+2:]
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			return rest[i:]
		}
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

// IsTimeout reports whether err is a request that hit its deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
