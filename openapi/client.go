// Package openapi is a client for the Tinkoff Invest OpenAPI REST surface.
//
// Every call goes through the same pipeline: the router builds the path and
// query, the transport sends it with the bearer token, the envelope codec
// classifies the status and unwraps the payload, and the payload is decoded
// into a domain record. Failures surface as *TransportError, *APIError or
// *MappingError.
//
// A Client holds no mutable state and may be shared between goroutines as
// long as the underlying Doer can.
package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/juev/tinvest/domain"
)

// DefaultTimeout bounds every request made with the default HTTP client.
const DefaultTimeout = 30 * time.Second

var errMissingHost = errors.New("missing scheme or host")

// Client is an OpenAPI client bound to one token and one base URL.
type Client struct {
	baseURL   *url.URL
	transport transport
	log       *zap.Logger
}

type options struct {
	baseURL string
	doer    Doer
	timeout time.Duration
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL overrides the environment base URL.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient replaces the default *http.Client. The client's own timeout
// settings then apply instead of WithTimeout.
func WithHTTPClient(d Doer) Option {
	return func(o *options) { o.doer = d }
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger sets the logger used for per-call debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewClient creates a client for the production environment.
func NewClient(token string, opts ...Option) (*Client, error) {
	return newClient(token, ProductionURL, opts)
}

// NewSandboxClient creates a client for the sandbox environment.
func NewSandboxClient(token string, opts ...Option) (*Client, error) {
	return newClient(token, SandboxURL, opts)
}

func newClient(token, baseURL string, opts []Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("openapi: missing token")
	}
	o := options{baseURL: baseURL, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	u, err := parseBaseURL(o.baseURL)
	if err != nil {
		return nil, err
	}
	if o.doer == nil {
		o.doer = &http.Client{Timeout: o.timeout}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return &Client{
		baseURL:   u,
		transport: transport{doer: o.doer, token: token},
		log:       o.logger,
	}, nil
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// do sends rt and classifies the status. A 2xx body is returned as is;
// any other status yields *APIError. body is JSON encoded for POST routes.
func (c *Client) do(ctx context.Context, rt route, body any) (response, error) {
	var payload []byte
	if rt.method == http.MethodPost {
		if body == nil {
			body = struct{}{}
		}
		b, err := json.Marshal(body)
		if err != nil {
			return response{}, err
		}
		payload = b
	}

	target := rt.resolve(c.baseURL)
	start := time.Now()
	resp, err := c.transport.send(ctx, rt.method, target, payload)
	if err != nil {
		c.log.Debug("openapi call failed",
			zap.String("method", rt.method),
			zap.String("path", rt.path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return response{}, err
	}

	var apiErr error
	if !successStatus(resp.status) {
		apiErr = newAPIError(resp.status, resp.body)
	}
	c.log.Debug("openapi call",
		zap.String("method", rt.method),
		zap.String("path", rt.path),
		zap.Int("status", resp.status),
		zap.String("tracking_id", trackingID(resp.body)),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(apiErr))
	if apiErr != nil {
		return response{}, apiErr
	}
	return resp, nil
}

// call runs rt through do and the envelope codec and returns the raw
// payload.
func (c *Client) call(ctx context.Context, rt route, body any) (json.RawMessage, error) {
	resp, err := c.do(ctx, rt, body)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(resp.status, resp.body)
	if err != nil {
		return nil, err
	}
	return env.Payload, nil
}

// decodePolicy selects what happens when a payload does not map onto its
// target type.
type decodePolicy int

const (
	// strictDecode surfaces the failure as *MappingError.
	strictDecode decodePolicy = iota
	// tolerantDecode swaps the failure for the zero value. Reserved for the
	// order listing; do not use it elsewhere.
	tolerantDecode
)

func decode[T any](c *Client, raw json.RawMessage, target string, policy decodePolicy) (T, error) {
	var v T
	err := domain.Decode(raw, &v)
	if err == nil {
		return v, nil
	}
	var zero T
	if policy == tolerantDecode {
		c.log.Warn("openapi payload did not decode, using empty result",
			zap.String("target", target), zap.Error(err))
		return zero, nil
	}
	return zero, &MappingError{Target: target, Err: err}
}

// fetch calls rt and decodes the payload strictly into T.
func fetch[T any](ctx context.Context, c *Client, rt route, body any, target string) (T, error) {
	raw, err := c.call(ctx, rt, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](c, raw, target, strictDecode)
}
