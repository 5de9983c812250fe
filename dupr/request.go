package dupr

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// versionPlaceholder marks where the API version goes in a path template.
const versionPlaceholder = "{version}"

// Request describes one call to the service.
type Request struct {
	Method string
	// Path is relative to the base URL and may contain {version}.
	Path  string
	Query url.Values
	// Body is JSON-encoded when non-nil.
	Body any
	// Version overrides the client's default version for this call.
	Version string
}

// URL resolves the absolute request URL, without query string.
func (c *Client) URL(path, version string) string {
	if version == "" {
		version = c.version
	}
	path = strings.ReplaceAll(path, versionPlaceholder, version)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// Do executes req and decodes the response. Every call makes exactly one
// attempt and returns either a Result or an *APIError.
func (c *Client) Do(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}
	requestURL := c.URL(req.Path, req.Version)

	r := c.http.R().
		SetContext(ctx).
		SetHeaders(c.Headers())
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, encodeError(err)
		}
		r.SetBody(payload)
	}

	start := time.Now()
	resp, err := r.Execute(method, requestURL)
	if err != nil {
		apiErr := transportError(err)
		c.logger.Debug().
			Str("method", method).
			Str("url", requestURL).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("DUPR API request failed")
		return nil, apiErr
	}

	status := resp.StatusCode()
	body := resp.Body()

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Int("status", status).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("DUPR API request")

	if status < 200 || status >= 300 {
		return nil, statusError(status, string(body))
	}

	return decodeBody(status, body)
}

func decodeBody(status int, body []byte) (Result, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Result{}, nil
	}

	var out Result
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, decodeError(status, string(body), err)
	}
	if out == nil {
		out = Result{}
	}
	return out, nil
}

func (c *Client) newRequest(method, path string, query url.Values, body any, opts []CallOption) Request {
	req := Request{Method: method, Path: path, Query: query, Body: body}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values, opts ...CallOption) (Result, error) {
	return c.Do(ctx, c.newRequest(http.MethodGet, path, query, nil, opts))
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...CallOption) (Result, error) {
	return c.Do(ctx, c.newRequest(http.MethodPost, path, nil, body, opts))
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...CallOption) (Result, error) {
	return c.Do(ctx, c.newRequest(http.MethodPut, path, nil, body, opts))
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...CallOption) (Result, error) {
	return c.Do(ctx, c.newRequest(http.MethodDelete, path, nil, nil, opts))
}
