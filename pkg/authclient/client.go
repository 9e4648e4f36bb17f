package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/google/uuid"

	"github.com/mkovalev/sessionguard/pkg/clock"
	"github.com/mkovalev/sessionguard/pkg/credentials"
	"github.com/mkovalev/sessionguard/pkg/identity"
	"github.com/mkovalev/sessionguard/pkg/logger"
)

// Identity service endpoints.
const (
	endpointUser          = "/user"
	endpointRefresh       = "/refresh"
	endpointLogin         = "/login"
	endpointLogout        = "/logout"
	endpointPasswordReset = "/reset_password/send"
)

const csrfHeader = "X-CSRF-TOKEN"

// Client wraps outbound calls to the identity service with consistent
// credential attachment and response interpretation. It is the single writer
// of the identity cache and the credential store.
type Client struct {
	http  *http.Client
	base  *url.URL
	creds *credentials.Store
	cache *identity.Cache
	guard *identity.LogoutGuard
	clk   clock.Clock
	cfg   Config
	log   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. A cookie jar is installed on it
// if it does not already carry one, since the credential store reads the
// jar the requests actually use.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger for the client.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithClock sets the clock used for the logout guard's grace window.
func WithClock(clk clock.Clock) Option {
	return func(c *Client) {
		if clk != nil {
			c.clk = clk
		}
	}
}

// WithCache sets a pre-built identity cache. The client binds itself as the
// cache's fetch delegate and adopts the cache's logout guard.
func WithCache(cache *identity.Cache) Option {
	return func(c *Client) {
		if cache != nil {
			c.cache = cache
			c.guard = cache.Guard()
		}
	}
}

// New creates a Client for the identity service at cfg.BaseURL.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, ErrInvalidBaseURL
	}

	defaults := DefaultConfig()
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaults.RequestTimeout
	}
	if cfg.TwoFactorCodeLength <= 0 {
		cfg.TwoFactorCodeLength = defaults.TwoFactorCodeLength
	}
	if cfg.LogoutGrace <= 0 {
		cfg.LogoutGrace = defaults.LogoutGrace
	}

	c := &Client{
		base: base,
		clk:  clock.New(),
		cfg:  cfg,
		log:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{Timeout: cfg.RequestTimeout}
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.http.Jar = jar
	}

	c.creds, err = credentials.New(c.http.Jar, cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	if c.guard == nil {
		c.guard = identity.NewLogoutGuard(c.clk)
	}
	if c.cache == nil {
		c.cache = identity.NewCache(c.guard, identity.WithLogger(c.log))
	}
	c.cache.Bind(c.fetchRemote)

	return c, nil
}

// Cache exposes the identity cache for UI observers and the lifecycle
// controller. Readers never mutate it directly.
func (c *Client) Cache() *identity.Cache {
	return c.cache
}

// Credentials exposes the credential store. The store is mutated only by
// this client.
func (c *Client) Credentials() *credentials.Store {
	return c.creds
}

// do issues one request to the identity service. Every call carries
// Content-Type: application/json; non-read methods attach the anti-forgery
// token for the given credential tier.
func (c *Client) do(ctx context.Context, method, path string, body any, tier credentials.Tier) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.JoinPath(path).String(), reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if method != http.MethodGet {
		if token := c.creds.Read(tier); token != "" {
			req.Header.Set(csrfHeader, token)
		}
	}

	reqID := uuid.NewString()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "identity service request failed",
			logger.Component("authclient"),
			logger.Endpoint(path),
			slog.String("request_id", reqID),
			logger.Error(err),
		)
		return nil, err
	}

	c.log.DebugContext(ctx, "identity service request",
		logger.Component("authclient"),
		logger.Endpoint(path),
		slog.String("request_id", reqID),
		logger.StatusCode(resp.StatusCode),
	)
	return resp, nil
}

// decode drains and closes the response body into v. Unparsable bodies are
// tolerated: the server does not promise JSON on every status.
func decode(resp *http.Response, v any) {
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, v)
}

// drain discards the response body so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	resp.Body.Close()
}
