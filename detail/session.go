package detail

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/favarr/tmdb"
)

// ErrMutationInFlight is returned when a favorite mutation is requested
// while another one for the same session has not completed.
var ErrMutationInFlight = errors.New("favorite mutation already in flight")

// Session drives the detail view of one movie
type Session struct {
	id           string
	api          tmdb.DetailAPI
	credentials  tmdb.CredentialsProvider
	movie        tmdb.Movie
	imageBaseURL string
	posterSize   string
	reconciler   *Reconciler
	onError      ErrorHook
	logger       zerolog.Logger
	mutating     atomic.Bool
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithErrorHook sets the hook that observes failed operations
func WithErrorHook(hook ErrorHook) SessionOption {
	return func(s *Session) {
		if hook != nil {
			s.onError = hook
		}
	}
}

// WithPosterSource sets the image base URL and size segment used for the poster
func WithPosterSource(imageBaseURL, sizeSegment string) SessionOption {
	return func(s *Session) {
		if imageBaseURL != "" {
			s.imageBaseURL = imageBaseURL
		}
		if sizeSegment != "" {
			s.posterSize = sizeSegment
		}
	}
}

// NewSession creates a session for movie in the loading state
func NewSession(api tmdb.DetailAPI, credentials tmdb.CredentialsProvider, movie tmdb.Movie, target RenderTarget, logger zerolog.Logger, opts ...SessionOption) *Session {
	id := uuid.NewString()
	logger = logger.With().
		Str("session", id).
		Int("movie_id", movie.ID).
		Logger()

	s := &Session{
		id:           id,
		api:          api,
		credentials:  credentials,
		movie:        movie,
		imageBaseURL: tmdb.DefaultImageBaseURL,
		posterSize:   tmdb.DefaultPosterSize,
		reconciler:   NewReconciler(target, logger),
		logger:       logger,
	}
	s.onError = LogErrors(logger)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier used in log lines
func (s *Session) ID() string {
	return s.id
}

// Movie returns the movie the session shows
func (s *Session) Movie() tmdb.Movie {
	return s.movie
}

// State returns a snapshot of the presentation state
func (s *Session) State() PresentationState {
	return s.reconciler.State()
}

// Activate resolves the favorite status and fetches the poster concurrently.
// Each outcome is applied as soon as it completes; a failure of one does not
// stop the other. The poster is skipped for movies without a poster path.
// Failures are reported to the error hook and returned joined.
func (s *Session) Activate(ctx context.Context) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)

	fail := func(op Operation, err error) {
		s.onError(op, err)
		mu.Lock()
		errs = append(errs, fmt.Errorf("%s: %w", op, err))
		mu.Unlock()
	}

	g.Go(func() error {
		creds, err := s.credentials.Credentials()
		if err != nil {
			fail(OpFavoriteStatus, err)
			return nil
		}

		isFavorite, err := s.api.CheckFavorite(ctx, s.movie, creds)
		if err != nil {
			fail(OpFavoriteStatus, err)
			return nil
		}

		s.reconciler.ApplyFavoriteStatus(isFavorite)
		return nil
	})

	if s.movie.HasPoster() {
		g.Go(func() error {
			data, err := s.api.FetchPoster(ctx, s.movie, s.imageBaseURL, s.posterSize)
			if err != nil {
				fail(OpPoster, err)
				return nil
			}

			s.reconciler.ApplyPoster(data)
			return nil
		})
	} else {
		s.logger.Debug().Msg("Movie has no poster path, skipping poster fetch")
	}

	_ = g.Wait()
	return errors.Join(errs...)
}

// Favorite adds the movie to the account's favorites
func (s *Session) Favorite(ctx context.Context) error {
	return s.SetFavorite(ctx, true)
}

// Unfavorite removes the movie from the account's favorites
func (s *Session) Unfavorite(ctx context.Context) error {
	return s.SetFavorite(ctx, false)
}

// SetFavorite mutates the favorite relation and applies the confirmed state.
// Only one mutation runs at a time; a concurrent call gets ErrMutationInFlight.
// On failure the presentation state is left unchanged.
func (s *Session) SetFavorite(ctx context.Context, wantFavorite bool) error {
	if !s.mutating.CompareAndSwap(false, true) {
		return ErrMutationInFlight
	}
	defer s.mutating.Store(false)

	op := OpUnfavorite
	if wantFavorite {
		op = OpFavorite
	}

	creds, err := s.credentials.Credentials()
	if err != nil {
		s.onError(op, err)
		return err
	}

	state, err := s.api.MutateFavorite(ctx, s.movie, creds, wantFavorite)
	if err != nil {
		s.onError(op, err)
		return err
	}

	s.reconciler.ApplyMutation(state)
	return nil
}

// Busy checks if a favorite mutation is in flight, e.g. to disable the controls
func (s *Session) Busy() bool {
	return s.mutating.Load()
}
