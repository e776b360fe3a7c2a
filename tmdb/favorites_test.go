package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{APIKey: "test-key", SessionID: "test-session", UserID: 99}

func TestCheckFavorite(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/account/99/favorite/movies", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "test-session", r.URL.Query().Get("session_id"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":42,"title":"A"},{"id":7,"title":"B","poster_path":null}],"total_pages":1}`))
	})

	ctx := context.Background()
	for _, id := range []int{42, 7} {
		isFavorite, err := client.CheckFavorite(ctx, Movie{ID: id}, testCreds)
		require.NoError(t, err)
		assert.True(t, isFavorite, "movie %d is in results", id)
	}

	for _, id := range []int{1, 43, 0} {
		isFavorite, err := client.CheckFavorite(ctx, Movie{ID: id}, testCreds)
		require.NoError(t, err)
		assert.False(t, isFavorite, "movie %d is not in results", id)
	}
}

func TestCheckFavoriteWithoutPaginationFields(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"id":42},{"id":7}]}`))
	})

	isFavorite, err := client.CheckFavorite(context.Background(), Movie{ID: 42, PosterPath: "/abc.jpg"}, testCreds)
	require.NoError(t, err)
	assert.True(t, isFavorite)
}

func TestCheckFavoriteErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind ErrorKind
	}{
		{name: "status_code with message", body: `{"status_code":3,"status_message":"Authentication failed"}`, wantKind: KindRemoteAPI},
		{name: "status_code alongside results", body: `{"status_code":1,"results":[{"id":42}]}`, wantKind: KindRemoteAPI},
		{name: "missing results", body: `{"page":1}`, wantKind: KindDecode},
		{name: "null results", body: `{"results":null}`, wantKind: KindDecode},
		{name: "results not an array", body: `{"results":{"id":42}}`, wantKind: KindDecode},
		{name: "malformed json", body: `{"results":[{"id":42}`, wantKind: KindDecode},
		{name: "top-level array", body: `[{"id":42}]`, wantKind: KindDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			isFavorite, err := client.CheckFavorite(context.Background(), Movie{ID: 42}, testCreds)
			require.Error(t, err)
			assert.False(t, isFavorite)
			assert.Equal(t, tt.wantKind, Kind(err))
		})
	}
}

func TestCheckFavoriteRemoteError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status_code":3,"status_message":"Authentication failed"}`))
	})

	_, err := client.CheckFavorite(context.Background(), Movie{ID: 42}, testCreds)
	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 3, apiErr.StatusCode)
	assert.Equal(t, "Authentication failed", apiErr.StatusMessage)
}

func TestCheckFavoriteInvalidCredentials(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	_, err := client.CheckFavorite(context.Background(), Movie{ID: 42}, Credentials{APIKey: "k"})
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Zero(t, calls)
}

func TestListFavoritesPaginates(t *testing.T) {
	pages := map[string]string{
		"":  `{"page":1,"results":[{"id":1},{"id":2}],"total_pages":3}`,
		"2": `{"page":2,"results":[{"id":3}],"total_pages":3}`,
		"3": `{"page":3,"results":[{"id":4,"title":"Last","poster_path":"/last.jpg"}],"total_pages":3}`,
	}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Query().Get("page")]
		assert.True(t, ok)
		_, _ = w.Write([]byte(body))
	})

	movies, err := client.ListFavorites(context.Background(), testCreds)
	require.NoError(t, err)
	require.Len(t, movies, 4)
	assert.Equal(t, "Last", movies[3].Title)
	assert.True(t, movies[3].HasPoster())

	isFavorite, err := client.CheckFavorite(context.Background(), Movie{ID: 4}, testCreds)
	require.NoError(t, err)
	assert.True(t, isFavorite)
}

func TestCheckFavoriteStopsAtMatch(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":42}],"total_pages":5}`))
	})

	isFavorite, err := client.CheckFavorite(context.Background(), Movie{ID: 42}, testCreds)
	require.NoError(t, err)
	assert.True(t, isFavorite)
	assert.Equal(t, 1, requests)
}

func TestListFavoritesErrorOnLaterPage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			_, _ = w.Write([]byte(`{"status_code":25,"status_message":"Your request count is over the allowed limit"}`))
			return
		}
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":1}],"total_pages":2}`))
	})

	movies, err := client.ListFavorites(context.Background(), testCreds)
	require.Error(t, err)
	assert.Nil(t, movies)
	assert.Equal(t, KindRemoteAPI, Kind(err))
}

func TestMutateFavorite(t *testing.T) {
	tests := []struct {
		name         string
		wantFavorite bool
		statusCode   int
		wantState    FavoriteState
		wantErr      bool
	}{
		{name: "favorite added", wantFavorite: true, statusCode: 1, wantState: Favorited},
		{name: "favorite already present", wantFavorite: true, statusCode: 12, wantState: Favorited},
		{name: "favorite rejected", wantFavorite: true, statusCode: 7, wantErr: true},
		{name: "favorite with delete code", wantFavorite: true, statusCode: 13, wantErr: true},
		{name: "unfavorite deleted", wantFavorite: false, statusCode: 13, wantState: NotFavorited},
		{name: "unfavorite with add code", wantFavorite: false, statusCode: 1, wantErr: true},
		{name: "unfavorite with updated code", wantFavorite: false, statusCode: 12, wantErr: true},
		{name: "unfavorite rejected", wantFavorite: false, statusCode: 34, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/account/99/favorite", r.URL.Path)
				assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
				assert.Equal(t, "test-session", r.URL.Query().Get("session_id"))
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.JSONEq(t, fmt.Sprintf(`{"media_type":"movie","media_id":42,"favorite":%t}`, tt.wantFavorite), string(body))

				w.WriteHeader(http.StatusCreated)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"status_code":    tt.statusCode,
					"status_message": "message",
				})
			})

			state, err := client.MutateFavorite(context.Background(), Movie{ID: 42, Title: "Answer"}, testCreds, tt.wantFavorite)
			if tt.wantErr {
				var apiErr *RemoteAPIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.statusCode, apiErr.StatusCode)
				assert.Equal(t, FavoriteUnknown, state)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, state)
		})
	}
}

func TestMutateFavoriteMalformedResponses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
	}{
		{name: "malformed json", status: 200, body: `{"status_code":`, wantKind: KindDecode},
		{name: "missing status_code", status: 200, body: `{"status_message":"ok"}`, wantKind: KindDecode},
		{name: "string status_code", status: 200, body: `{"status_code":"1"}`, wantKind: KindDecode},
		{name: "empty body", status: 200, body: ``, wantKind: KindEmptyBody},
		{name: "http failure", status: 401, body: `{"status_code":3}`, wantKind: KindHTTPStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			state, err := client.MutateFavorite(context.Background(), Movie{ID: 42}, testCreds, true)
			require.Error(t, err)
			assert.Equal(t, FavoriteUnknown, state)
			assert.Equal(t, tt.wantKind, Kind(err))
		})
	}
}

func TestFavoriteOutcome(t *testing.T) {
	for code := -1; code <= 50; code++ {
		state, ok := favoriteOutcome(true, code)
		if code == 1 || code == 12 {
			assert.True(t, ok)
			assert.Equal(t, Favorited, state)
		} else {
			assert.False(t, ok, "code %d must not confirm a favorite", code)
		}

		state, ok = favoriteOutcome(false, code)
		if code == 13 {
			assert.True(t, ok)
			assert.Equal(t, NotFavorited, state)
		} else {
			assert.False(t, ok, "code %d must not confirm a removal", code)
		}
	}
}
