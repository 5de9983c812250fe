package dupr

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaceBindings(t *testing.T) {
	ctx := context.Background()
	profile := map[string]any{"fullName": "John Updated"}
	match := map[string]any{
		"format": "singles",
		"team1":  []any{map[string]any{"playerId": 123}},
		"team2":  []any{map[string]any{"playerId": 456}},
	}

	tests := []struct {
		name       string
		call       func(c *Client) (Result, error)
		wantMethod string
		wantPath   string
		wantQuery  url.Values
		wantBody   string
	}{
		{
			name:       "user get profile",
			call:       func(c *Client) (Result, error) { return c.User.GetProfile(ctx) },
			wantMethod: http.MethodGet,
			wantPath:   "/user/v1.0/profile",
		},
		{
			name:       "user update profile",
			call:       func(c *Client) (Result, error) { return c.User.UpdateProfile(ctx, profile) },
			wantMethod: http.MethodPut,
			wantPath:   "/user/v1.0/profile",
			wantBody:   `{"fullName":"John Updated"}`,
		},
		{
			name:       "user get settings",
			call:       func(c *Client) (Result, error) { return c.User.GetSettings(ctx) },
			wantMethod: http.MethodGet,
			wantPath:   "/user/v1.0/settings",
		},
		{
			name: "user update settings",
			call: func(c *Client) (Result, error) {
				return c.User.UpdateSettings(ctx, map[string]any{"emailNotifications": false})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/user/v1.0/settings",
			wantBody:   `{"emailNotifications":false}`,
		},
		{
			name: "user update preferences",
			call: func(c *Client) (Result, error) {
				return c.User.UpdatePreferences(ctx, map[string]any{"preferredFormat": "doubles"})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/user/v1.0/preferences",
			wantBody:   `{"preferredFormat":"doubles"}`,
		},
		{
			name:       "user get activities",
			call:       func(c *Client) (Result, error) { return c.User.GetActivities(ctx, 12345, 10) },
			wantMethod: http.MethodGet,
			wantPath:   "/user/v1.0/activities/12345",
			wantQuery:  url.Values{"limit": {"10"}},
		},
		{
			name:       "user get activities without limit",
			call:       func(c *Client) (Result, error) { return c.User.GetActivities(ctx, 12345, 0) },
			wantMethod: http.MethodGet,
			wantPath:   "/user/v1.0/activities/12345",
			wantQuery:  url.Values{},
		},
		{
			name:       "matches save",
			call:       func(c *Client) (Result, error) { return c.Matches.SaveMatch(ctx, match) },
			wantMethod: http.MethodPut,
			wantPath:   "/match/v1.0/save",
			wantBody:   `{"format":"singles","team1":[{"playerId":123}],"team2":[{"playerId":456}]}`,
		},
		{
			name: "matches update",
			call: func(c *Client) (Result, error) {
				return c.Matches.UpdateMatch(ctx, map[string]any{"matchId": 789})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/match/v1.0/save",
			wantBody:   `{"matchId":789}`,
		},
		{
			name:       "matches get",
			call:       func(c *Client) (Result, error) { return c.Matches.GetMatch(ctx, 789) },
			wantMethod: http.MethodGet,
			wantPath:   "/match/v1.0/789",
		},
		{
			name: "matches search with all filters",
			call: func(c *Client) (Result, error) {
				return c.Matches.SearchMatches(ctx, MatchSearch{
					PlayerID: Ptr(int64(12345)),
					ClubID:   Ptr(int64(100)),
					EventID:  Ptr(int64(500)),
					Limit:    20,
				})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/match/v1.0/search",
			wantBody:   `{"playerId":12345,"clubId":100,"eventId":500,"limit":20,"offset":0}`,
		},
		{
			name: "matches search default limit",
			call: func(c *Client) (Result, error) {
				return c.Matches.SearchMatches(ctx, MatchSearch{ClubID: Ptr(int64(100))})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/match/v1.0/search",
			wantBody:   `{"clubId":100,"limit":10,"offset":0}`,
		},
		{
			name: "matches save verified",
			call: func(c *Client) (Result, error) {
				return c.Matches.SaveVerifiedMatch(ctx, map[string]any{"verificationSource": "tournament"})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/match/verified/v1.0/save",
			wantBody:   `{"verificationSource":"tournament"}`,
		},
		{
			name:       "matches delete",
			call:       func(c *Client) (Result, error) { return c.Matches.DeleteMatch(ctx, 789) },
			wantMethod: http.MethodDelete,
			wantPath:   "/match/v1.0/789",
		},
		{
			name:       "matches rating impact",
			call:       func(c *Client) (Result, error) { return c.Matches.GetMatchRatingImpact(ctx, match) },
			wantMethod: http.MethodPost,
			wantPath:   "/match/v1.0/rating-simulator",
			wantBody:   `{"format":"singles","team1":[{"playerId":123}],"team2":[{"playerId":456}]}`,
		},
		{
			name: "players search",
			call: func(c *Client) (Result, error) {
				return c.Players.SearchPlayers(ctx, PlayerSearch{Query: "John", Limit: 5})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/player/v1.0/search",
			wantBody:   `{"query":"John","limit":5,"offset":0}`,
		},
		{
			name:       "players get",
			call:       func(c *Client) (Result, error) { return c.Players.GetPlayer(ctx, 12345) },
			wantMethod: http.MethodGet,
			wantPath:   "/player/v1.0/12345",
		},
		{
			name: "players history",
			call: func(c *Client) (Result, error) {
				return c.Players.GetPlayerHistory(ctx, 12345, Page{Limit: 25, Offset: 50})
			},
			wantMethod: http.MethodGet,
			wantPath:   "/player/v1.0/12345/history",
			wantQuery:  url.Values{"limit": {"25"}, "offset": {"50"}},
		},
		{
			name: "clubs search",
			call: func(c *Client) (Result, error) {
				return c.Clubs.SearchClubs(ctx, ClubSearch{Query: "Downtown"})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/club/v1.0/search",
			wantBody:   `{"query":"Downtown","limit":10,"offset":0}`,
		},
		{
			name:       "clubs get",
			call:       func(c *Client) (Result, error) { return c.Clubs.GetClub(ctx, 100) },
			wantMethod: http.MethodGet,
			wantPath:   "/club/v1.0/100",
		},
		{
			name:       "clubs join",
			call:       func(c *Client) (Result, error) { return c.Clubs.JoinClub(ctx, 100) },
			wantMethod: http.MethodPut,
			wantPath:   "/club/100/members/v1.0/join",
		},
		{
			name:       "clubs leave",
			call:       func(c *Client) (Result, error) { return c.Clubs.LeaveClub(ctx, 100) },
			wantMethod: http.MethodDelete,
			wantPath:   "/club/100/members/v1.0/leave",
		},
		{
			name:       "clubs members",
			call:       func(c *Client) (Result, error) { return c.Clubs.GetClubMembers(ctx, 100, Page{}) },
			wantMethod: http.MethodGet,
			wantPath:   "/club/v1.0/100/members",
			wantQuery:  url.Values{},
		},
		{
			name: "events search",
			call: func(c *Client) (Result, error) {
				return c.Events.SearchEvents(ctx, EventSearch{Query: "Open", Status: Ptr("UPCOMING")})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/event/v1.0/search",
			wantBody:   `{"query":"Open","status":"UPCOMING","limit":10,"offset":0}`,
		},
		{
			name:       "events get",
			call:       func(c *Client) (Result, error) { return c.Events.GetEvent(ctx, 500) },
			wantMethod: http.MethodGet,
			wantPath:   "/event/v1.0/500",
		},
		{
			name: "events register",
			call: func(c *Client) (Result, error) {
				return c.Events.RegisterForEvent(ctx, 500, map[string]any{"bracketId": 9})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/event/v1.0/500/register",
			wantBody:   `{"bracketId":9}`,
		},
		{
			name:       "brackets get",
			call:       func(c *Client) (Result, error) { return c.Brackets.GetBracket(ctx, 9) },
			wantMethod: http.MethodGet,
			wantPath:   "/brackets/v1.0/9",
		},
		{
			name: "brackets matches",
			call: func(c *Client) (Result, error) {
				return c.Brackets.GetBracketMatches(ctx, 9, Page{Limit: 50})
			},
			wantMethod: http.MethodGet,
			wantPath:   "/brackets/v1.0/9/matches",
			wantQuery:  url.Values{"limit": {"50"}},
		},
		{
			name:       "admin get user",
			call:       func(c *Client) (Result, error) { return c.Admin.GetUser(ctx, 42) },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/v1.0/user/42",
		},
		{
			name: "admin search users",
			call: func(c *Client) (Result, error) {
				return c.Admin.SearchUsers(ctx, UserSearch{Query: "doe", Email: Ptr("john@example.com"), Limit: 3})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/admin/v1.0/user/search",
			wantBody:   `{"query":"doe","email":"john@example.com","limit":3,"offset":0}`,
		},
		{
			name: "admin update user",
			call: func(c *Client) (Result, error) {
				return c.Admin.UpdateUser(ctx, 42, map[string]any{"status": "ACTIVE"})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/admin/v1.0/user/42",
			wantBody:   `{"status":"ACTIVE"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestServer(t, http.StatusOK, `{"success": true}`)

			result, err := tt.call(client)
			require.NoError(t, err)
			assert.True(t, result.Success())

			got := rec.last(t)
			assert.Equal(t, tt.wantMethod, got.Method)
			assert.Equal(t, tt.wantPath, got.Path)
			if tt.wantQuery != nil {
				assert.Equal(t, tt.wantQuery, got.Query)
			}
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, got.Body)
			} else {
				assert.Empty(t, got.Body)
			}
		})
	}
}

func TestNamespaceVersionOverride(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"result": {}}`)
	ctx := context.Background()

	_, err := client.User.GetProfile(ctx, UseVersion("v2.0"))
	require.NoError(t, err)
	assert.Equal(t, "/user/v2.0/profile", rec.last(t).Path)

	_, err = client.Clubs.JoinClub(ctx, 100, UseVersion("v2.0"))
	require.NoError(t, err)
	assert.Equal(t, "/club/100/members/v2.0/join", rec.last(t).Path)

	_, err = client.User.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/user/v1.0/profile", rec.last(t).Path)
}

func TestGetProfileScenario(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"result":{"userId":1,"fullName":"A"}}`,
		WithBearerToken("t1"))

	result, err := client.User.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{"result": map[string]any{"userId": float64(1), "fullName": "A"}}, result)
	assert.Equal(t, "Bearer t1", rec.last(t).Header.Get("Authorization"))
}

func TestSaveMatchScenario(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"result": 555}`)
	input := `{"format":"singles","team1":[{"playerId":1}],"team2":[{"playerId":2}]}`

	match := map[string]any{
		"format": "singles",
		"team1":  []map[string]int{{"playerId": 1}},
		"team2":  []map[string]int{{"playerId": 2}},
	}
	result, err := client.Matches.SaveMatch(context.Background(), match)
	require.NoError(t, err)
	assert.Equal(t, Result{"result": float64(555)}, result)

	got := rec.last(t)
	assert.Equal(t, http.MethodPut, got.Method)
	assert.JSONEq(t, input, got.Body)
}

func TestSearchMatchesScenario(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"result": []}`)

	_, err := client.Matches.SearchMatches(context.Background(), MatchSearch{
		PlayerID: Ptr(int64(5)),
		Limit:    20,
		Offset:   0,
	})
	require.NoError(t, err)

	got := rec.last(t)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.JSONEq(t, `{"playerId":5,"limit":20,"offset":0}`, got.Body)
}

func TestGetMatchNotFoundScenario(t *testing.T) {
	client, _ := newTestServer(t, http.StatusNotFound, `{"error":"Match not found"}`)

	result, err := client.Matches.GetMatch(context.Background(), 999)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNotFound)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, `{"error":"Match not found"}`, apiErr.Body)
}
