package tmdb

import (
	"context"
)

// FavoritesAPI defines the favorite operations on an account
type FavoritesAPI interface {
	// CheckFavorite reports whether the movie is in the account's favorites
	CheckFavorite(ctx context.Context, movie Movie, creds Credentials) (bool, error)

	// MutateFavorite adds or removes the movie and returns the confirmed state
	MutateFavorite(ctx context.Context, movie Movie, creds Credentials, wantFavorite bool) (FavoriteState, error)
}

// PosterAPI defines poster retrieval
type PosterAPI interface {
	// FetchPoster returns the raw poster bytes for the movie
	FetchPoster(ctx context.Context, movie Movie, imageBaseURL, sizeSegment string) ([]byte, error)
}

// DetailAPI is everything a movie-detail session needs
type DetailAPI interface {
	FavoritesAPI
	PosterAPI
}

// API defines the full client surface
type API interface {
	DetailAPI

	// ListFavorites retrieves every favorite movie of the account
	ListFavorites(ctx context.Context, creds Credentials) ([]Movie, error)

	// GetMovie loads a single movie by id
	GetMovie(ctx context.Context, movieID int, apiKey string) (*Movie, error)

	// GetConfiguration retrieves the image configuration
	GetConfiguration(ctx context.Context, apiKey string) (*Configuration, error)
}

var _ API = (*Client)(nil)
