package dupr

import "context"

// Club endpoint paths. Membership paths carry the club ID before the version.
const (
	PathClubSearch  = "/club/{version}/search"
	PathClub        = "/club/{version}/{clubId}"
	PathClubMembers = "/club/{version}/{clubId}/members"
	PathClubJoin    = "/club/{clubId}/members/{version}/join"
	PathClubLeave   = "/club/{clubId}/members/{version}/leave"
)

// ClubsAPI searches clubs and manages membership.
type ClubsAPI struct {
	client *Client
}

// SearchClubs finds clubs by name or location.
func (a *ClubsAPI) SearchClubs(ctx context.Context, search ClubSearch, opts ...CallOption) (Result, error) {
	search.Limit = limitOrDefault(search.Limit)
	return a.client.Post(ctx, PathClubSearch, search, opts...)
}

// GetClub retrieves a club by ID.
func (a *ClubsAPI) GetClub(ctx context.Context, clubID int64, opts ...CallOption) (Result, error) {
	return a.client.Get(ctx, expand(PathClub, "clubId", itoa64(clubID)), nil, opts...)
}

// JoinClub requests membership for the token's owner.
func (a *ClubsAPI) JoinClub(ctx context.Context, clubID int64, opts ...CallOption) (Result, error) {
	return a.client.Put(ctx, expand(PathClubJoin, "clubId", itoa64(clubID)), nil, opts...)
}

// LeaveClub ends the token owner's membership.
func (a *ClubsAPI) LeaveClub(ctx context.Context, clubID int64, opts ...CallOption) (Result, error) {
	return a.client.Delete(ctx, expand(PathClubLeave, "clubId", itoa64(clubID)), opts...)
}

// GetClubMembers lists members of a club.
func (a *ClubsAPI) GetClubMembers(ctx context.Context, clubID int64, page Page, opts ...CallOption) (Result, error) {
	return a.client.Get(ctx, expand(PathClubMembers, "clubId", itoa64(clubID)), page.values(), opts...)
}
