package dupr

import "context"

// Bracket endpoint paths.
const (
	PathBracket        = "/brackets/{version}/{bracketId}"
	PathBracketMatches = "/brackets/{version}/{bracketId}/matches"
)

// BracketsAPI reads event brackets.
type BracketsAPI struct {
	client *Client
}

// GetBracket fetches one bracket.
func (a *BracketsAPI) GetBracket(ctx context.Context, bracketID int64, opts ...CallOption) (Result, error) {
	return a.client.Get(ctx, expand(PathBracket, "bracketId", itoa64(bracketID)), nil, opts...)
}

// GetBracketMatches lists the matches of a bracket.
func (a *BracketsAPI) GetBracketMatches(ctx context.Context, bracketID int64, page Page, opts ...CallOption) (Result, error) {
	return a.client.Get(ctx, expand(PathBracketMatches, "bracketId", itoa64(bracketID)), page.values(), opts...)
}
