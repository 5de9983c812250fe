package dupr

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Client represents a DUPR API client
type Client struct {
	baseURL   string
	version   string
	timeout   time.Duration
	userAgent string
	http      *resty.Client
	logger    zerolog.Logger

	mu    sync.RWMutex
	token string

	User     *UserAPI
	Matches  *MatchesAPI
	Players  *PlayersAPI
	Clubs    *ClubsAPI
	Events   *EventsAPI
	Brackets *BracketsAPI
	Admin    *AdminAPI
}

// NewClient creates a new DUPR client
func NewClient(opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	baseURL := strings.TrimRight(strings.TrimSpace(o.baseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q must be an absolute URL", ErrInvalidConfig, o.baseURL)
	}
	if strings.TrimSpace(o.version) == "" {
		return nil, fmt.Errorf("%w: API version is required", ErrInvalidConfig)
	}
	if o.timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, o.timeout)
	}

	var session *resty.Client
	if o.httpClient != nil {
		hc := *o.httpClient
		session = resty.NewWithClient(&hc)
	} else {
		session = resty.New()
	}
	session.
		SetTimeout(o.timeout).
		SetRetryCount(0).
		SetLogger(restyLogger{logger: o.logger}).
		SetHeader("User-Agent", o.userAgent)

	c := &Client{
		baseURL:   baseURL,
		version:   o.version,
		timeout:   o.timeout,
		userAgent: o.userAgent,
		http:      session,
		logger:    o.logger,
		token:     o.token,
	}

	c.User = &UserAPI{client: c}
	c.Matches = &MatchesAPI{client: c}
	c.Players = &PlayersAPI{client: c}
	c.Clubs = &ClubsAPI{client: c}
	c.Events = &EventsAPI{client: c}
	c.Brackets = &BracketsAPI{client: c}
	c.Admin = &AdminAPI{client: c}

	return c, nil
}

// BaseURL returns the service origin without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Version returns the default API version segment.
func (c *Client) Version() string { return c.version }

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// BearerToken returns the token the next call will send, or "" when unset.
func (c *Client) BearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetBearerToken replaces the token. It takes effect on the next call;
// an empty token removes the Authorization header.
func (c *Client) SetBearerToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Headers returns the headers the next request will carry.
func (c *Client) Headers() map[string]string {
	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	if token := c.BearerToken(); token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return headers
}

// HTTPClient exposes the underlying http.Client of the shared session.
func (c *Client) HTTPClient() *http.Client {
	return c.http.GetClient()
}
