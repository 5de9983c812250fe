package dupr

import (
	"context"
	"net/url"
)

// Executor is the request pipeline shared by all namespaces.
type Executor interface {
	Do(ctx context.Context, req Request) (Result, error)
	Get(ctx context.Context, path string, query url.Values, opts ...CallOption) (Result, error)
	Post(ctx context.Context, path string, body any, opts ...CallOption) (Result, error)
	Put(ctx context.Context, path string, body any, opts ...CallOption) (Result, error)
	Delete(ctx context.Context, path string, opts ...CallOption) (Result, error)
}

// TokenHolder is implemented by clients whose credentials can be swapped at runtime.
type TokenHolder interface {
	BearerToken() string
	SetBearerToken(token string)
	Headers() map[string]string
}

var (
	_ Executor    = (*Client)(nil)
	_ TokenHolder = (*Client)(nil)
)
