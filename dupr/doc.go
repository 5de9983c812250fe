// Package dupr provides a client for the DUPR rating service API.
//
// Every operation funnels through one executor that builds the request,
// injects authentication, performs a single HTTP attempt and maps the
// outcome to either a decoded Result or an *APIError.
//
// # Usage
//
//	client, err := dupr.NewClient(
//		dupr.WithBearerToken(os.Getenv("DUPR_API_TOKEN")),
//		dupr.WithTimeout(15*time.Second),
//		dupr.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	profile, err := client.User.GetProfile(ctx)
//
//	// Pin one call to another API version
//	profile, err = client.User.GetProfile(ctx, dupr.UseVersion("v2.0"))
//
//	matches, err := client.Matches.SearchMatches(ctx, dupr.MatchSearch{
//		PlayerID: dupr.Ptr(int64(12345)),
//		Limit:    20,
//	})
//
// # Namespaces
//
//   - User: profile, settings, preferences, activities
//   - Matches: save, update, verify, delete, search, rating simulation
//   - Players: search, lookup, history
//   - Clubs: search, membership
//   - Events and Brackets: discovery and registration
//   - Admin: account management
//
// # Error Handling
//
// All failures are *APIError. Catch broadly with errors.As or narrowly with
// the kind sentinels:
//
//	var apiErr *dupr.APIError
//	switch {
//	case errors.Is(err, dupr.ErrAuthentication):
//		// refresh the token, then dupr.Client.SetBearerToken
//	case errors.Is(err, dupr.ErrRateLimit):
//		// back off; the client never retries on its own
//	case errors.As(err, &apiErr) && apiErr.Timeout():
//		// transport timeout, StatusCode is zero
//	}
//
// The client performs no retries, caching, rate limiting or pagination.
package dupr
