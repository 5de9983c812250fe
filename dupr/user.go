package dupr

import (
	"context"
	"net/url"
	"strconv"
)

// User endpoint paths.
const (
	PathUserProfile     = "/user/{version}/profile"
	PathUserSettings    = "/user/{version}/settings"
	PathUserPreferences = "/user/{version}/preferences"
	PathUserActivities  = "/user/{version}/activities/{playerId}"
)

// UserAPI covers the authenticated user's own profile and settings.
type UserAPI struct {
	client *Client
}

// GetProfile retrieves the profile of the token's owner.
func (a *UserAPI) GetProfile(ctx context.Context, opts ...CallOption) (Result, error) {
	return a.client.Get(ctx, PathUserProfile, nil, opts...)
}

// UpdateProfile replaces profile fields, e.g. {"fullName": "..."}.
func (a *UserAPI) UpdateProfile(ctx context.Context, profile any, opts ...CallOption) (Result, error) {
	return a.client.Put(ctx, PathUserProfile, profile, opts...)
}

// GetSettings retrieves account settings.
func (a *UserAPI) GetSettings(ctx context.Context, opts ...CallOption) (Result, error) {
	return a.client.Get(ctx, PathUserSettings, nil, opts...)
}

// UpdateSettings updates account settings.
func (a *UserAPI) UpdateSettings(ctx context.Context, settings any, opts ...CallOption) (Result, error) {
	return a.client.Put(ctx, PathUserSettings, settings, opts...)
}

// UpdatePreferences updates play preferences.
func (a *UserAPI) UpdatePreferences(ctx context.Context, preferences any, opts ...CallOption) (Result, error) {
	return a.client.Put(ctx, PathUserPreferences, preferences, opts...)
}

// GetActivities lists recent activities of a player. A limit of zero
// leaves the page size to the service.
func (a *UserAPI) GetActivities(ctx context.Context, playerID int64, limit int, opts ...CallOption) (Result, error) {
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	return a.client.Get(ctx, expand(PathUserActivities, "playerId", itoa64(playerID)), query, opts...)
}
