package dupr

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// capturedRequest is what the test server saw for one call.
type capturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   string
}

// recorder answers every request with a fixed response and keeps a log.
type recorder struct {
	mu       sync.Mutex
	status   int
	body     string
	requests []capturedRequest
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	rec.mu.Lock()
	rec.requests = append(rec.requests, capturedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	status, respBody := rec.status, rec.body
	rec.mu.Unlock()

	w.WriteHeader(status)
	_, _ = io.WriteString(w, respBody)
}

func (rec *recorder) last(t *testing.T) capturedRequest {
	t.Helper()
	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.NotEmpty(t, rec.requests, "no request reached the server")
	return rec.requests[len(rec.requests)-1]
}

func (rec *recorder) count() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.requests)
}

// newTestServer starts a server answering status/body and a client pointed at it.
func newTestServer(t *testing.T, status int, body string, opts ...Option) (*Client, *recorder) {
	t.Helper()

	rec := &recorder{status: status, body: body}
	server := httptest.NewServer(rec)
	t.Cleanup(server.Close)

	opts = append([]Option{WithBaseURL(server.URL), WithBearerToken("test_token")}, opts...)
	client, err := NewClient(opts...)
	require.NoError(t, err)

	return client, rec
}
