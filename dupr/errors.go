package dupr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind classifies an APIError.
type Kind int

const (
	// KindAPI is the generic kind: unexpected statuses, transport and decode failures
	KindAPI Kind = iota
	// KindAuthentication indicates a 401 response
	KindAuthentication
	// KindValidation indicates a 400 response
	KindValidation
	// KindNotFound indicates a 404 response
	KindNotFound
	// KindRateLimit indicates a 429 response
	KindRateLimit
	// KindServer indicates a 5xx response
	KindServer
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	default:
		return "api"
	}
}

// Sentinels for errors.Is matching against an *APIError of the same kind.
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid dupr client configuration")
	// ErrAuthentication matches 401 responses
	ErrAuthentication = errors.New("dupr: authentication failed")
	// ErrValidation matches 400 responses
	ErrValidation = errors.New("dupr: validation failed")
	// ErrNotFound matches 404 responses
	ErrNotFound = errors.New("dupr: resource not found")
	// ErrRateLimit matches 429 responses
	ErrRateLimit = errors.New("dupr: rate limit exceeded")
	// ErrServer matches 5xx responses
	ErrServer = errors.New("dupr: server error")
)

var kindSentinels = map[Kind]error{
	KindAuthentication: ErrAuthentication,
	KindValidation:     ErrValidation,
	KindNotFound:       ErrNotFound,
	KindRateLimit:      ErrRateLimit,
	KindServer:         ErrServer,
}

// APIError is the single error type returned by every client call.
//
// StatusCode is zero for transport failures. Body holds the raw response body
// when one was received.
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Body       string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("dupr API error: %s", e.Message)
	}
	return fmt.Sprintf("dupr API error: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the transport or decoding cause, if any
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *APIError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// IsAuthentication checks if the error indicates an authentication failure
func (e *APIError) IsAuthentication() bool {
	return e.Kind == KindAuthentication
}

// IsValidation checks if the error indicates a rejected request payload
func (e *APIError) IsValidation() bool {
	return e.Kind == KindValidation
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsRateLimit checks if the error indicates throttling by the service
func (e *APIError) IsRateLimit() bool {
	return e.Kind == KindRateLimit
}

// IsServer checks if the error indicates a server side failure
func (e *APIError) IsServer() bool {
	return e.Kind == KindServer
}

// Timeout reports whether the call failed because the transport timed out.
func (e *APIError) Timeout() bool {
	return e.Err != nil && isTimeout(e.Err)
}

// statusError maps a non-2xx status to its APIError.
func statusError(status int, body string) *APIError {
	var (
		kind   Kind
		prefix string
	)
	switch {
	case status == http.StatusUnauthorized:
		kind, prefix = KindAuthentication, "Authentication failed"
	case status == http.StatusBadRequest:
		kind, prefix = KindValidation, "Validation error"
	case status == http.StatusNotFound:
		kind, prefix = KindNotFound, "Resource not found"
	case status == http.StatusTooManyRequests:
		kind, prefix = KindRateLimit, "Rate limit exceeded"
	case status >= http.StatusInternalServerError:
		kind, prefix = KindServer, "Server error"
	default:
		kind, prefix = KindAPI, "API request failed"
	}

	msg := prefix
	if body != "" {
		msg = prefix + ": " + body
	}
	return &APIError{Kind: kind, StatusCode: status, Message: msg, Body: body}
}

// transportError wraps a failure that happened before any status was received.
func transportError(err error) *APIError {
	if isTimeout(err) {
		return &APIError{Kind: KindAPI, Message: "Request timeout: " + err.Error(), Err: err}
	}
	return &APIError{Kind: KindAPI, Message: "Connection error: " + err.Error(), Err: err}
}

// encodeError reports a request body that cannot be JSON-encoded. Nothing is sent.
func encodeError(err error) *APIError {
	return &APIError{Kind: KindAPI, Message: "Invalid JSON request body: " + err.Error(), Err: err}
}

func decodeError(status int, body string, err error) *APIError {
	return &APIError{
		Kind:       KindAPI,
		StatusCode: status,
		Message:    "Invalid JSON response: " + err.Error(),
		Body:       body,
		Err:        err,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
