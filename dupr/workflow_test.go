package dupr

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// route is one canned response keyed by method and path.
type route struct {
	status int
	body   string
}

// newRoutedClient serves canned responses per "METHOD /path"; unknown routes get 404.
func newRoutedClient(t *testing.T, handler func(key string, body []byte) (route, bool)) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rt, ok := handler(r.Method+" "+r.URL.Path, body)
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(rt.status)
		_, _ = io.WriteString(w, rt.body)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(WithBaseURL(server.URL), WithBearerToken("test_token"))
	require.NoError(t, err)
	return client
}

func TestUserProfileWorkflow(t *testing.T) {
	name := "John Doe"
	client := newRoutedClient(t, func(key string, body []byte) (route, bool) {
		switch key {
		case "GET /user/v1.0/profile":
			return route{200, `{"result":{"userId":12345,"fullName":"` + name + `","rating":4.5}}`}, true
		case "PUT /user/v1.0/profile":
			var update map[string]string
			if err := json.Unmarshal(body, &update); err != nil {
				return route{400, "bad body"}, true
			}
			name = update["fullName"]
			return route{200, `{"result":{"userId":12345,"fullName":"` + name + `","rating":4.5}}`}, true
		}
		return route{}, false
	})
	ctx := context.Background()

	profile, err := client.User.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", profile.Value().(map[string]any)["fullName"])

	updated, err := client.User.UpdateProfile(ctx, map[string]string{"fullName": "John Updated"})
	require.NoError(t, err)
	assert.Equal(t, "John Updated", updated.Value().(map[string]any)["fullName"])

	after, err := client.User.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "John Updated", after.Value().(map[string]any)["fullName"])
}

func TestMatchCreateAndRetrieve(t *testing.T) {
	client := newRoutedClient(t, func(key string, _ []byte) (route, bool) {
		switch key {
		case "PUT /match/v1.0/save":
			return route{200, `{"result": 99999}`}, true
		case "GET /match/v1.0/99999":
			return route{200, `{"result":{"matchId":99999,"format":"singles","status":"COMPLETED"}}`}, true
		}
		return route{}, false
	})
	ctx := context.Background()

	created, err := client.Matches.SaveMatch(ctx, map[string]any{
		"format": "singles",
		"team1":  []any{map[string]any{"playerId": 123}},
		"team2":  []any{map[string]any{"playerId": 456}},
		"scores": []any{map[string]any{"team1": 11, "team2": 5}},
	})
	require.NoError(t, err)

	matchID, ok := created.Value().(float64)
	require.True(t, ok)
	assert.Equal(t, float64(99999), matchID)

	match, err := client.Matches.GetMatch(ctx, int64(matchID))
	require.NoError(t, err)

	var details struct {
		MatchID int64  `json:"matchId"`
		Format  string `json:"format"`
	}
	require.NoError(t, match.DecodeValue(&details))
	assert.Equal(t, int64(99999), details.MatchID)
	assert.Equal(t, "singles", details.Format)

	_, err = client.Matches.GetMatch(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClubMembershipWorkflow(t *testing.T) {
	client := newRoutedClient(t, func(key string, _ []byte) (route, bool) {
		switch key {
		case "POST /club/v1.0/search":
			return route{200, `{"result":[{"clubId":100,"name":"Downtown Pickleball"}]}`}, true
		case "PUT /club/100/members/v1.0/join":
			return route{200, `{"success":true}`}, true
		case "GET /club/v1.0/100/members":
			return route{200, `{"result":[{"userId":12345,"role":"PLAYER"},{"userId":67890,"role":"DIRECTOR"}]}`}, true
		}
		return route{}, false
	})
	ctx := context.Background()

	clubs, err := client.Clubs.SearchClubs(ctx, ClubSearch{Query: "Downtown"})
	require.NoError(t, err)
	require.Len(t, clubs.Items(), 1)
	clubID := int64(clubs.Items()[0].(map[string]any)["clubId"].(float64))

	joined, err := client.Clubs.JoinClub(ctx, clubID)
	require.NoError(t, err)
	assert.True(t, joined.Success())

	members, err := client.Clubs.GetClubMembers(ctx, clubID, Page{})
	require.NoError(t, err)
	assert.Len(t, members.Items(), 2)
}

func TestManualPagination(t *testing.T) {
	client := newRoutedClient(t, func(key string, body []byte) (route, bool) {
		if key != "POST /match/v1.0/search" {
			return route{}, false
		}
		var search MatchSearch
		if err := json.Unmarshal(body, &search); err != nil {
			return route{400, err.Error()}, true
		}
		items := make([]map[string]int, 0, search.Limit)
		for i := search.Offset; i < search.Offset+search.Limit; i++ {
			items = append(items, map[string]int{"matchId": i})
		}
		out, _ := json.Marshal(map[string]any{"result": items})
		return route{200, string(out)}, true
	})
	ctx := context.Background()

	page1, err := client.Matches.SearchMatches(ctx, MatchSearch{PlayerID: Ptr(int64(12345)), Limit: 20})
	require.NoError(t, err)
	require.Len(t, page1.Items(), 20)
	assert.Equal(t, float64(0), page1.Items()[0].(map[string]any)["matchId"])

	page2, err := client.Matches.SearchMatches(ctx, MatchSearch{PlayerID: Ptr(int64(12345)), Limit: 20, Offset: 20})
	require.NoError(t, err)
	require.Len(t, page2.Items(), 20)
	assert.Equal(t, float64(20), page2.Items()[0].(map[string]any)["matchId"])
}

func TestAuthenticationFailureWorkflow(t *testing.T) {
	client := newRoutedClient(t, func(key string, _ []byte) (route, bool) {
		return route{401, `{"error":"Unauthorized"}`}, true
	})

	_, err := client.User.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrAuthentication)
}
