package detail

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/s0up4200/favarr/tmdb"
)

// Reconciler is the only writer of a session's PresentationState.
// Every transition runs under one mutex, so outcomes from concurrent
// operations are applied one at a time in completion order.
type Reconciler struct {
	mu      sync.Mutex
	state   PresentationState
	mutated bool
	target  RenderTarget
	logger  zerolog.Logger
}

// NewReconciler creates a Reconciler in the loading state
func NewReconciler(target RenderTarget, logger zerolog.Logger) *Reconciler {
	if target == nil {
		target = NopRenderTarget{}
	}
	return &Reconciler{
		target: target,
		logger: logger,
	}
}

// State returns a snapshot of the current presentation state
func (r *Reconciler) State() PresentationState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.clone()
}

// ApplyFavoriteStatus records the result of a favorite status query.
// A status that arrives after a confirmed mutation is stale and ignored.
func (r *Reconciler) ApplyFavoriteStatus(isFavorite bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mutated {
		r.logger.Debug().
			Bool("favorite", isFavorite).
			Stringer("current", r.state.Favorite).
			Msg("Ignoring favorite status older than confirmed mutation")
		return
	}

	r.setFavoriteLocked(tmdb.FavoriteStateOf(isFavorite))
}

// ApplyMutation records a confirmed favorite mutation, overriding any prior state
func (r *Reconciler) ApplyMutation(state tmdb.FavoriteState) {
	if state == tmdb.FavoriteUnknown {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.mutated = true
	r.setFavoriteLocked(state)
}

// ApplyPoster stores the poster bytes and hands them to the render target
func (r *Reconciler) ApplyPoster(data []byte) {
	if len(data) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.PosterLoaded = true
	r.state.PosterBytes = append([]byte(nil), data...)

	r.logger.Debug().Int("bytes", len(data)).Msg("Poster ready")
	r.target.RenderPoster(data)
}

func (r *Reconciler) setFavoriteLocked(state tmdb.FavoriteState) {
	r.state.Favorite = state

	favoriteVisible, unfavoriteVisible := r.state.Buttons()
	r.logger.Debug().
		Stringer("state", state).
		Bool("favorite_visible", favoriteVisible).
		Bool("unfavorite_visible", unfavoriteVisible).
		Msg("Favorite state changed")
	r.target.RenderFavoriteButtons(favoriteVisible, unfavoriteVisible)
}
