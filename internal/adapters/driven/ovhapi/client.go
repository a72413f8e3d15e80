package ovhapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driven"
)

const (
	// DefaultUserAgent identifies the client when no other agent is set.
	DefaultUserAgent = "ovhdata-cli"

	// DefaultTimeout is the HTTP timeout the CLI applies unless configured
	// otherwise. The client itself enforces none.
	DefaultTimeout = 30 * time.Second
)

var _ driven.APIClient = (*Client)(nil)

// Client signs and sends requests to one API endpoint with one set of
// credentials. It holds no mutable state and is safe for concurrent use.
type Client struct {
	endpoint          string
	applicationKey    string
	applicationSecret string
	consumerKey       string
	httpClient        *http.Client
	timeout           time.Duration
	userAgent         string
	limiter           *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for every exchange.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the timeout of every HTTP exchange. It applies to a
// copy of the HTTP client, so a client given with WithHTTPClient is left
// untouched whatever the option order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRateLimit caps outgoing requests per second. Zero or less disables it.
// The time lookup counts as a request. Every client built with the same
// Option shares one budget, so a Factory throttles across calls.
func WithRateLimit(perSecond float64) Option {
	if perSecond <= 0 {
		return WithLimiter(nil)
	}
	return WithLimiter(rate.NewLimiter(rate.Limit(perSecond), 1))
}

// WithLimiter throttles requests with l, which may be shared by several
// clients. A nil limiter disables throttling.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// New creates a client for endpoint, e.g. https://eu.api.ovh.com/1.0.
// A trailing slash on the endpoint is ignored.
func New(endpoint, applicationKey, applicationSecret, consumerKey string, opts ...Option) (*Client, error) {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid endpoint %q", domain.ErrInvalidInput, endpoint)
	}

	c := &Client{
		endpoint:          endpoint,
		applicationKey:    applicationKey,
		applicationSecret: applicationSecret,
		consumerKey:       consumerKey,
		httpClient:        &http.Client{},
		userAgent:         DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c, nil
}

// NewFromCredentials creates a client from a credential tuple.
func NewFromCredentials(endpoint string, creds domain.Credentials, opts ...Option) (*Client, error) {
	return New(endpoint, creds.ApplicationKey, creds.ApplicationSecret, creds.ConsumerKey, opts...)
}

// Factory returns a driven.APIClientFactory applying opts to every client.
// A rate limit given in opts is shared by all of them.
func Factory(opts ...Option) driven.APIClientFactory {
	return func(endpoint string, creds domain.Credentials) (driven.APIClient, error) {
		return NewFromCredentials(endpoint, creds, opts...)
	}
}

// Endpoint returns the normalised base URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// String describes the client without its secrets.
func (c *Client) String() string {
	return fmt.Sprintf("ovhapi.Client{endpoint: %s, application: %s}", c.endpoint, c.applicationKey)
}

// GoString keeps %#v from printing the secret fields.
func (c *Client) GoString() string {
	return c.String()
}
