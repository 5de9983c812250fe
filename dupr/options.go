package dupr

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production DUPR backend origin.
	DefaultBaseURL = "https://backend.mydupr.com"
	// DefaultVersion is the API version segment used when no override is given.
	DefaultVersion = "v1.0"
	// DefaultTimeout bounds every request.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the client to the service.
	DefaultUserAgent = "dupr-api-client-go"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	version    string
	token      string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
	userAgent  string
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:   DefaultBaseURL,
		version:   DefaultVersion,
		timeout:   DefaultTimeout,
		logger:    zerolog.Nop(),
		userAgent: DefaultUserAgent,
	}
}

// WithBaseURL sets the service origin, e.g. a staging backend.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithVersion sets the default API version segment.
func WithVersion(version string) Option {
	return func(o *clientOptions) {
		o.version = version
	}
}

// WithBearerToken sets the initial bearer token.
func WithBearerToken(token string) Option {
	return func(o *clientOptions) {
		o.token = token
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient uses a copy of hc as the underlying transport session.
// The configured timeout replaces hc.Timeout on the copy.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// CallOption adjusts a single request.
type CallOption func(*Request)

// UseVersion overrides the API version segment for one call only.
func UseVersion(version string) CallOption {
	return func(r *Request) {
		r.Version = version
	}
}
