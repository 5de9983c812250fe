package dupr

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultLimit is the page size sent by search operations when none is given.
const DefaultLimit = 10

// Ptr returns a pointer to v, for optional filter fields.
func Ptr[T any](v T) *T {
	return &v
}

// Page selects a window of a listing. Zero values are left out of the request.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) values() url.Values {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	return q
}

// MatchSearch filters a match search. Nil filters are not sent.
type MatchSearch struct {
	PlayerID *int64 `json:"playerId,omitempty"`
	ClubID   *int64 `json:"clubId,omitempty"`
	EventID  *int64 `json:"eventId,omitempty"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

// PlayerSearch filters a player search.
type PlayerSearch struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// ClubSearch filters a club search.
type ClubSearch struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// EventSearch filters an event search.
type EventSearch struct {
	Query  string  `json:"query"`
	ClubID *int64  `json:"clubId,omitempty"`
	Status *string `json:"status,omitempty"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// UserSearch filters an administrative user search.
type UserSearch struct {
	Query  string  `json:"query"`
	Email  *string `json:"email,omitempty"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

// expand substitutes {name} segments in a path template. Pairs are name, value.
func expand(tmpl string, pairs ...string) string {
	args := make([]string, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		args = append(args, "{"+pairs[i]+"}", url.PathEscape(pairs[i+1]))
	}
	return strings.NewReplacer(args...).Replace(tmpl)
}

func itoa64(v int64) string {
	return strconv.FormatInt(v, 10)
}
