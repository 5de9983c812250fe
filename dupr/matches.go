package dupr

import (
	"context"
)

// Match endpoint paths.
const (
	PathMatchSave           = "/match/{version}/save"
	PathMatchVerifiedSave   = "/match/verified/{version}/save"
	PathMatch               = "/match/{version}/{matchId}"
	PathMatchSearch         = "/match/{version}/search"
	PathMatchRatingSimulate = "/match/{version}/rating-simulator"

	// MatchUpdatePath is where UpdateMatch sends edits. The service accepts
	// updates on the save endpoint when the body carries a matchId.
	MatchUpdatePath = PathMatchSave
)

// MatchesAPI records, edits and queries matches.
type MatchesAPI struct {
	client *Client
}

// SaveMatch records a new match. The body is sent unchanged, e.g.
//
//	{"format": "singles", "team1": [{"playerId": 1}], "team2": [{"playerId": 2}]}
//
// On success the result member holds the new match ID.
func (a *MatchesAPI) SaveMatch(ctx context.Context, match any, opts ...CallOption) (Result, error) {
	return a.client.Put(ctx, PathMatchSave, match, opts...)
}

// UpdateMatch edits an existing match; match must include its matchId.
func (a *MatchesAPI) UpdateMatch(ctx context.Context, match any, opts ...CallOption) (Result, error) {
	return a.client.Put(ctx, MatchUpdatePath, match, opts...)
}

// GetMatch retrieves a match by ID.
func (a *MatchesAPI) GetMatch(ctx context.Context, matchID int64, opts ...CallOption) (Result, error) {
	return a.client.Get(ctx, expand(PathMatch, "matchId", itoa64(matchID)), nil, opts...)
}

// SearchMatches finds matches by player, club or event. Callers page
// through results themselves with Limit and Offset.
func (a *MatchesAPI) SearchMatches(ctx context.Context, search MatchSearch, opts ...CallOption) (Result, error) {
	search.Limit = limitOrDefault(search.Limit)
	return a.client.Post(ctx, PathMatchSearch, search, opts...)
}

// SaveVerifiedMatch records a match from a verified source such as a tournament.
func (a *MatchesAPI) SaveVerifiedMatch(ctx context.Context, match any, opts ...CallOption) (Result, error) {
	return a.client.Put(ctx, PathMatchVerifiedSave, match, opts...)
}

// DeleteMatch removes a match.
func (a *MatchesAPI) DeleteMatch(ctx context.Context, matchID int64, opts ...CallOption) (Result, error) {
	return a.client.Delete(ctx, expand(PathMatch, "matchId", itoa64(matchID)), opts...)
}

// GetMatchRatingImpact simulates the rating change a match would cause
// without recording it.
func (a *MatchesAPI) GetMatchRatingImpact(ctx context.Context, match any, opts ...CallOption) (Result, error) {
	return a.client.Post(ctx, PathMatchRatingSimulate, match, opts...)
}
