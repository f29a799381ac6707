// Package http implements the GraphQL transport used by the Slate client.
// It wraps a retrying HTTP client with authentication headers and posts
// compiled query documents to the server's /graphql endpoint.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	genql "github.com/Khan/genqlient/graphql"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/fivetwenty-io/slate-client/internal/constants"
	"github.com/fivetwenty-io/slate-client/pkg/graphql"
)

// Logger is the logging interface the transport reports to. It matches the
// public client logger so callers can pass theirs through an adapter.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client posts GraphQL documents to a single server endpoint. It satisfies
// graphql.Transport.
type Client struct {
	gql      genql.Client
	endpoint string
}

type options struct {
	apiKey       string
	accessToken  string
	userAgent    string
	logger       Logger
	debug        bool
	timeout      time.Duration
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// Option configures the transport client.
type Option func(*options)

// WithAPIKey authenticates requests with a service API key sent in the
// x-api-key header. It takes precedence over an access token.
func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = key }
}

// WithAccessToken authenticates requests with a bearer session token.
func WithAccessToken(token string) Option {
	return func(o *options) { o.accessToken = token }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *options) { o.userAgent = userAgent }
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithDebug enables request and response logging through the configured
// logger.
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// WithTimeout bounds each request attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithRetryConfig retries transient failures (HTTP 5xx and 429) up to max
// times with exponential backoff between waitMin and waitMax.
func WithRetryConfig(max int, waitMin, waitMax time.Duration) Option {
	return func(o *options) {
		o.retryMax = max
		o.retryWaitMin = waitMin
		o.retryWaitMax = waitMax
	}
}

// NewClient creates a transport posting to the given GraphQL endpoint URL.
func NewClient(endpoint string, opts ...Option) *Client {
	cfg := options{
		userAgent: constants.DefaultUserAgent,
		timeout:   constants.DefaultHTTPTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = cfg.retryMax

	if cfg.retryWaitMin > 0 {
		retryClient.RetryWaitMin = cfg.retryWaitMin
	}

	if cfg.retryWaitMax > 0 {
		retryClient.RetryWaitMax = cfg.retryWaitMax
	}

	retryClient.HTTPClient.Timeout = cfg.timeout
	retryClient.HTTPClient.Transport = &authTransport{
		base:        http.DefaultTransport,
		apiKey:      cfg.apiKey,
		accessToken: cfg.accessToken,
		userAgent:   cfg.userAgent,
		logger:      cfg.logger,
		debug:       cfg.debug && cfg.logger != nil,
	}

	return &Client{
		gql:      genql.NewClient(endpoint, retryClient.StandardClient()),
		endpoint: endpoint,
	}
}

// Endpoint returns the GraphQL endpoint URL this client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Execute posts one GraphQL document. Errors reported by the server inside
// the response envelope come back in Response.Errors with a nil error, so
// the query engine can still merge whatever data arrived alongside them.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (*graphql.Response, error) {
	data := map[string]any{}
	resp := &genql.Response{Data: &data}

	err := c.gql.MakeRequest(ctx, &genql.Request{Query: query, Variables: variables}, resp)
	if err != nil {
		var gqlErrs gqlerror.List
		if errors.As(err, &gqlErrs) {
			return &graphql.Response{Data: data, Errors: gqlErrs}, nil
		}

		return nil, fmt.Errorf("posting graphql query: %w", err)
	}

	return &graphql.Response{Data: data}, nil
}

// authTransport decorates every outgoing request with authentication and
// client identification headers. Requests are cloned before mutation, as
// RoundTrippers must not modify their input.
type authTransport struct {
	base        http.RoundTripper
	apiKey      string
	accessToken string
	userAgent   string
	logger      Logger
	debug       bool
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	switch {
	case t.apiKey != "":
		req.Header.Set("x-api-key", t.apiKey)
	case t.accessToken != "":
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	req.Header.Set("Accept", "application/json")

	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	if t.debug {
		t.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL.String(),
		})
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	if t.debug {
		t.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    req.URL.String(),
		})
	}

	return resp, nil
}
