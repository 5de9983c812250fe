package dupr

import "context"

// Player endpoint paths.
const (
	PathPlayerSearch  = "/player/{version}/search"
	PathPlayer        = "/player/{version}/{playerId}"
	PathPlayerHistory = "/player/{version}/{playerId}/history"
)

// PlayersAPI looks up players and their rating history.
type PlayersAPI struct {
	client *Client
}

// SearchPlayers finds players by name.
func (a *PlayersAPI) SearchPlayers(ctx context.Context, search PlayerSearch, opts ...CallOption) (Result, error) {
	search.Limit = limitOrDefault(search.Limit)
	return a.client.Post(ctx, PathPlayerSearch, search, opts...)
}

// GetPlayer retrieves a player by ID.
func (a *PlayersAPI) GetPlayer(ctx context.Context, playerID int64, opts ...CallOption) (Result, error) {
	return a.client.Get(ctx, expand(PathPlayer, "playerId", itoa64(playerID)), nil, opts...)
}

// GetPlayerHistory retrieves a player's rating history.
func (a *PlayersAPI) GetPlayerHistory(ctx context.Context, playerID int64, page Page, opts ...CallOption) (Result, error) {
	return a.client.Get(ctx, expand(PathPlayerHistory, "playerId", itoa64(playerID)), page.values(), opts...)
}
