// Package weenect is a client for the weenect GPS tracker API.
//
// A Client authenticates lazily: the first authenticated call logs in
// with the configured credentials, and the resulting token is reused
// for the lifetime of the client.
package weenect

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	"github.com/weenect-community/weenect-go/internal/transport"
	"github.com/weenect-community/weenect-go/internal/types"
)

// Version is the library version.
const Version = types.Version

// Client is the main weenect API client.
type Client struct {
	// Service interfaces
	Users         UserService
	Trackers      TrackerService
	Zones         ZoneService
	Subscriptions SubscriptionService

	// Internal fields
	username  string
	password  string
	token     string
	transport Transport
	options   *ClientOptions
}

// ClientOptions configures the client.
type ClientOptions struct {
	// Username and Password for the weenect account
	Username string
	Password string

	// BaseURL overrides the default API base URL
	BaseURL string

	// HTTPClient allows using a custom HTTP client. A caller-supplied
	// client is never closed by Close.
	HTTPClient *http.Client

	// Timeout sets the per-request timeout (default 10s)
	Timeout time.Duration

	// UserAgent overrides the default user agent string
	UserAgent string

	// Logger for debug logging
	Logger Logger

	// Hooks for observability
	Hooks *Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger = types.Logger

// Hooks provides lifecycle hooks for requests
type Hooks = types.Hooks

// Transport handles HTTP communication with the weenect API.
type Transport interface {
	Do(ctx context.Context, req *types.Request) (interface{}, error)
	SetAuth(token string)
	Close()
}

// NewClient creates a new weenect client. No network activity occurs
// until the first call.
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		// Log error but don't fail client creation
		if err := sentry.Init(sentryOpts); err != nil && opts.Logger != nil {
			opts.Logger.Error("Failed to initialize Sentry", "error", err)
		}
	}

	trans := transport.NewRESTTransport(&transport.Options{
		BaseURL:    opts.BaseURL,
		UserAgent:  opts.UserAgent,
		Timeout:    opts.Timeout,
		HTTPClient: opts.HTTPClient,
		Logger:     opts.Logger,
		Hooks:      opts.Hooks,
	})

	c := &Client{
		username:  opts.Username,
		password:  opts.Password,
		transport: trans,
		options:   opts,
	}

	c.initServices()

	return c, nil
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Users = &userService{client: c}
	c.Trackers = &trackerService{client: c}
	c.Zones = &zoneService{client: c}
	c.Subscriptions = &subscriptionService{client: c}
}

// Login logs into the weenect API, retrieves a JSON web token and
// stores it for reuse on every subsequent request. Idempotent; each
// call overwrites the stored token.
func (c *Client) Login(ctx context.Context) error {
	resp, err := c.transport.Do(ctx, &types.Request{
		Method: http.MethodPost,
		Path:   types.LoginEndpoint,
		JSON: map[string]string{
			"username": c.username,
			"password": c.password,
		},
	})
	if err != nil {
		return err
	}

	if resp == nil {
		return &ConnectionError{Message: types.AuthEmptyMessage}
	}

	obj, ok := resp.(map[string]interface{})
	if !ok {
		return errors.Errorf("unexpected login response type %T", resp)
	}

	token, ok := obj["access_token"].(string)
	if !ok || token == "" {
		return errors.New("login response did not contain an access_token")
	}

	c.SetToken("JWT " + token)
	return nil
}

// SetToken sets the authentication token, bypassing Login. The value
// is sent verbatim as the Authorization header.
func (c *Client) SetToken(token string) {
	c.token = token
	c.transport.SetAuth(token)
}

// do ensures the client is authenticated, logging in once on first
// use, and executes the request.
func (c *Client) do(ctx context.Context, req *types.Request) (interface{}, error) {
	if c.token == "" {
		if err := c.Login(ctx); err != nil {
			c.captureError(ctx, req, err)
			return nil, err
		}
	}

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		c.captureError(ctx, req, err)
		return nil, err
	}
	return resp, nil
}

// captureError reports a failed call to Sentry with method and path
// tags, matching how a hub bound to the context is preferred.
func (c *Client) captureError(ctx context.Context, req *types.Request, err error) {
	if c.options.SentryDSN == "" && c.options.SentryOptions == nil {
		return
	}

	capture := func(scope *sentry.Scope) {
		scope.SetTag("http.method", req.Method)
		scope.SetTag("api.path", req.Path)
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			capture(scope)
			hub.CaptureException(err)
		})
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		capture(scope)
		sentry.CaptureException(err)
	})
}

// Close releases the HTTP client when the client created it itself and
// flushes any pending Sentry events. Safe to call multiple times; a
// caller-supplied HTTP client is never closed.
func (c *Client) Close() {
	c.transport.Close()
	if c.options.SentryDSN != "" || c.options.SentryOptions != nil {
		sentry.Flush(2 * time.Second)
	}
}

// toObject asserts that a decoded response is a JSON object. A nil
// response (204 No Content) yields a nil map.
func toObject(v interface{}) (map[string]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, errors.Errorf("unexpected response type %T", v)
	}
	return obj, nil
}

// toList asserts that a decoded response is a JSON array. A nil
// response (204 No Content) yields a nil slice.
func toList(v interface{}) ([]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, errors.Errorf("unexpected response type %T", v)
	}
	return list, nil
}
