package detail

import (
	"github.com/rs/zerolog"

	"github.com/s0up4200/favarr/tmdb"
)

// RenderTarget receives presentation updates.
// Calls are serialized by the Reconciler and must not call back into it.
type RenderTarget interface {
	// RenderPoster receives the raw poster bytes; decoding them is up to the target
	RenderPoster(data []byte)

	// RenderFavoriteButtons receives the visibility of both favorite controls
	RenderFavoriteButtons(favoriteVisible, unfavoriteVisible bool)
}

// NopRenderTarget discards every update
type NopRenderTarget struct{}

// RenderPoster implements RenderTarget
func (NopRenderTarget) RenderPoster([]byte) {}

// RenderFavoriteButtons implements RenderTarget
func (NopRenderTarget) RenderFavoriteButtons(bool, bool) {}

// Operation names a session operation for error reporting
type Operation string

const (
	OpFavoriteStatus Operation = "favorite_status"
	OpPoster         Operation = "poster"
	OpFavorite       Operation = "favorite"
	OpUnfavorite     Operation = "unfavorite"
)

// ErrorHook observes failed operations. The presentation state is unchanged when it runs.
type ErrorHook func(op Operation, err error)

// LogErrors returns an ErrorHook that logs failures as warnings
func LogErrors(logger zerolog.Logger) ErrorHook {
	return func(op Operation, err error) {
		logger.Warn().
			Err(err).
			Str("operation", string(op)).
			Stringer("kind", tmdb.Kind(err)).
			Msg("Movie detail operation failed")
	}
}
