package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// PosterURL joins imageBaseURL, sizeSegment and the movie's poster path
func PosterURL(movie Movie, imageBaseURL, sizeSegment string) (string, error) {
	if !movie.HasPoster() {
		return "", ErrNoPosterPath
	}
	u, err := url.JoinPath(imageBaseURL, sizeSegment, movie.PosterPath)
	if err != nil {
		return "", fmt.Errorf("%w: image URL %q: %v", ErrInvalidConfig, imageBaseURL, err)
	}
	return u, nil
}

// FetchPoster retrieves the raw poster bytes for movie.
// Bytes are returned undecoded; turning them into an image is up to the caller.
// Callers should skip movies without a poster path; doing so returns ErrNoPosterPath.
func (c *Client) FetchPoster(ctx context.Context, movie Movie, imageBaseURL, sizeSegment string) ([]byte, error) {
	posterURL, err := PosterURL(movie, imageBaseURL, sizeSegment)
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(ctx, RequestSpec{Method: http.MethodGet, URL: posterURL}, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch poster: %w", err)
	}

	c.logger.Debug().
		Int("movie_id", movie.ID).
		Int("bytes", len(resp.Body)).
		Msg("Fetched poster")

	return resp.Body, nil
}
