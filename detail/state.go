package detail

import (
	"github.com/s0up4200/favarr/tmdb"
)

// PresentationState is what the detail view renders for one movie
type PresentationState struct {
	Favorite     tmdb.FavoriteState
	PosterLoaded bool
	PosterBytes  []byte
}

// Buttons returns which of the favorite/unfavorite controls should be visible.
// Exactly one is visible once the state is resolved; neither while loading.
func (s PresentationState) Buttons() (favoriteVisible, unfavoriteVisible bool) {
	switch s.Favorite {
	case tmdb.Favorited:
		return false, true
	case tmdb.NotFavorited:
		return true, false
	default:
		return false, false
	}
}

// Loading checks if the favorite status is still unresolved
func (s PresentationState) Loading() bool {
	return s.Favorite == tmdb.FavoriteUnknown
}

// clone returns a copy that shares no memory with s
func (s PresentationState) clone() PresentationState {
	if s.PosterBytes != nil {
		s.PosterBytes = append([]byte(nil), s.PosterBytes...)
	}
	return s
}
