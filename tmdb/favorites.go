package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// maxFavoritePages bounds pagination against a misbehaving total_pages
const maxFavoritePages = 500

// ListFavorites retrieves every movie in the account's favorites list
func (c *Client) ListFavorites(ctx context.Context, creds Credentials) ([]Movie, error) {
	var favorites []Movie
	err := c.walkFavorites(ctx, creds, func(m Movie) bool {
		favorites = append(favorites, m)
		return true
	})
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// CheckFavorite reports whether movie is in the account's favorites list.
// A status_code in the list response is an upstream error, never a boolean.
func (c *Client) CheckFavorite(ctx context.Context, movie Movie, creds Credentials) (bool, error) {
	found := false
	err := c.walkFavorites(ctx, creds, func(m Movie) bool {
		if m.ID == movie.ID {
			found = true
			return false
		}
		return true
	})
	if err != nil {
		return false, err
	}

	c.logger.Debug().
		Int("movie_id", movie.ID).
		Bool("favorite", found).
		Msg("Resolved favorite status")

	return found, nil
}

// walkFavorites calls visit for each favorite, page by page, until visit returns false
func (c *Client) walkFavorites(ctx context.Context, creds Credentials, visit func(Movie) bool) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	for page := 1; page <= maxFavoritePages; page++ {
		params := creds.accountParams()
		if page > 1 {
			params.Set("page", strconv.Itoa(page))
		}
		path := fmt.Sprintf("/account/%d/favorite/movies", creds.UserID)

		resp, err := c.Do(ctx, getJSON(c.endpoint(path, params)), true)
		if err != nil {
			return fmt.Errorf("failed to get favorites: %w", err)
		}

		result, err := decodeFavoritesPage(resp)
		if err != nil {
			return fmt.Errorf("failed to get favorites: %w", err)
		}

		c.logger.Debug().
			Int("page", page).
			Int("count", len(result.Results)).
			Int("total_pages", result.TotalPages).
			Msg("Retrieved favorites page from TMDB")

		for _, m := range result.Results {
			if !visit(m) {
				return nil
			}
		}

		if page >= result.TotalPages {
			return nil
		}
	}
	return nil
}

// decodeFavoritesPage interprets a favorites-list body
func decodeFavoritesPage(resp *ParsedResponse) (*favoritesPage, error) {
	obj, err := resp.Object()
	if err != nil {
		return nil, err
	}

	if _, ok := obj["status_code"]; ok {
		return nil, remoteError(obj)
	}

	results, ok := obj["results"]
	if !ok || bytes.Equal(bytes.TrimSpace(results), []byte("null")) {
		return nil, &DecodeError{Reason: "cannot find key 'results'"}
	}

	var page favoritesPage
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, &DecodeError{Reason: "malformed favorites page", Err: err}
	}
	return &page, nil
}

// MutateFavorite adds (wantFavorite) or removes movie from the account's favorites.
//
// The service answers with a status_code: 1 (added) or 12 (already present)
// confirm a favorite, 13 confirms a removal. Any other code is a RemoteAPIError.
func (c *Client) MutateFavorite(ctx context.Context, movie Movie, creds Credentials, wantFavorite bool) (FavoriteState, error) {
	if err := creds.Validate(); err != nil {
		return FavoriteUnknown, err
	}

	path := fmt.Sprintf("/account/%d/favorite", creds.UserID)
	spec, err := postJSON(c.endpoint(path, creds.accountParams()), favoriteRequest{
		MediaType: MediaTypeMovie,
		MediaID:   movie.ID,
		Favorite:  wantFavorite,
	})
	if err != nil {
		return FavoriteUnknown, err
	}

	resp, err := c.Do(ctx, spec, true)
	if err != nil {
		return FavoriteUnknown, fmt.Errorf("failed to update favorite: %w", err)
	}

	code, message, err := decodeStatus(resp)
	if err != nil {
		return FavoriteUnknown, fmt.Errorf("failed to update favorite: %w", err)
	}

	state, ok := favoriteOutcome(wantFavorite, code)
	if !ok {
		return FavoriteUnknown, &RemoteAPIError{StatusCode: code, StatusMessage: message}
	}

	c.logger.Info().
		Int("movie_id", movie.ID).
		Str("title", movie.Title).
		Int("status_code", code).
		Stringer("state", state).
		Msg("Updated favorite")

	return state, nil
}

// favoriteOutcome maps a mutation status_code to the resulting state.
// The accepted codes are asymmetric: 1 and 12 for adding, only 13 for removing.
func favoriteOutcome(wantFavorite bool, code int) (FavoriteState, bool) {
	if wantFavorite {
		if code == StatusCodeSuccess || code == StatusCodeItemUpdated {
			return Favorited, true
		}
		return FavoriteUnknown, false
	}
	if code == StatusCodeItemDeleted {
		return NotFavorited, true
	}
	return FavoriteUnknown, false
}

// decodeStatus reads the integer status_code and message from a body
func decodeStatus(resp *ParsedResponse) (int, string, error) {
	obj, err := resp.Object()
	if err != nil {
		return 0, "", err
	}

	raw, ok := obj["status_code"]
	if !ok {
		return 0, "", &DecodeError{Reason: "cannot find key 'status_code'"}
	}

	var code int
	if err := json.Unmarshal(raw, &code); err != nil {
		return 0, "", &DecodeError{Reason: "status_code is not an integer", Err: err}
	}

	var message string
	if rawMsg, ok := obj["status_message"]; ok {
		_ = json.Unmarshal(rawMsg, &message)
	}
	return code, message, nil
}

