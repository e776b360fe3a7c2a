// Package tmdb provides a client for the favorite and poster endpoints of
// The Movie Database (TMDB) v3 API.
//
// Every request goes through a single pipeline with fixed validation
// stages. The first failing stage ends the request with one error:
//
//  1. transport failure (connection, DNS, timeout): *TransportError
//  2. HTTP status outside 200-299: *HTTPStatusError
//  3. empty body: ErrEmptyBody
//  4. body is not JSON, when JSON is expected: *DecodeError
//
// Service-level status codes carried in a JSON body are interpreted per
// endpoint. On the favorites list any status_code is an upstream error
// (*RemoteAPIError). On the favorite endpoint status_code is the success
// discriminator: 1 or 12 confirm a favorite, 13 confirms a removal.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tmdb.NewClient(
//		tmdb.DefaultBaseURL,
//		logger,
//		tmdb.WithTimeout(10*time.Second),
//		tmdb.WithPosterSize("w500"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	creds := tmdb.Credentials{APIKey: key, SessionID: sid, UserID: uid}
//	isFavorite, err := client.CheckFavorite(ctx, movie, creds)
//
// Use Kind to classify an error:
//
//	if tmdb.Kind(err) == tmdb.KindRemoteAPI {
//		// the service rejected the call
//	}
package tmdb
