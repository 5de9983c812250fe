package dupr

import "context"

// Admin endpoint paths. These require a token with administrative rights.
const (
	PathAdminUser       = "/admin/{version}/user/{userId}"
	PathAdminUserSearch = "/admin/{version}/user/search"
)

// AdminAPI manages user accounts.
type AdminAPI struct {
	client *Client
}

// GetUser retrieves any user account by ID.
func (a *AdminAPI) GetUser(ctx context.Context, userID int64, opts ...CallOption) (Result, error) {
	return a.client.Get(ctx, expand(PathAdminUser, "userId", itoa64(userID)), nil, opts...)
}

// SearchUsers finds user accounts.
func (a *AdminAPI) SearchUsers(ctx context.Context, search UserSearch, opts ...CallOption) (Result, error) {
	search.Limit = limitOrDefault(search.Limit)
	return a.client.Post(ctx, PathAdminUserSearch, search, opts...)
}

// UpdateUser changes fields of a user account.
func (a *AdminAPI) UpdateUser(ctx context.Context, userID int64, user any, opts ...CallOption) (Result, error) {
	return a.client.Put(ctx, expand(PathAdminUser, "userId", itoa64(userID)), user, opts...)
}
