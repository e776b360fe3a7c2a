package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"github.com/s0up4200/favarr/detail"
	"github.com/s0up4200/favarr/tmdb"
)

// consoleRenderer prints detail view updates and saves the poster to disk
type consoleRenderer struct {
	out       io.Writer
	movie     tmdb.Movie
	posterDir string

	mu         sync.Mutex
	posterPath string
	err        error
}

var _ detail.RenderTarget = (*consoleRenderer)(nil)

func newConsoleRenderer(out io.Writer, movie tmdb.Movie, posterDir string) *consoleRenderer {
	return &consoleRenderer{
		out:       out,
		movie:     movie,
		posterDir: posterDir,
	}
}

// RenderPoster writes the poster next to other posters, named after the movie id
// with an extension matching the detected image type.
func (r *consoleRenderer) RenderPoster(data []byte) {
	mtype := mimetype.Detect(data)

	if r.posterDir == "" {
		fmt.Fprintf(r.out, "Poster: %s, %d bytes\n", mtype.String(), len(data))
		return
	}

	name := strconv.Itoa(r.movie.ID) + mtype.Extension()
	path := filepath.Join(r.posterDir, name)
	err := os.WriteFile(path, data, 0o644)

	r.mu.Lock()
	r.posterPath, r.err = path, err
	r.mu.Unlock()

	if err != nil {
		fmt.Fprintf(r.out, "Poster: failed to save: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Poster: %s (%s)\n", path, mtype.String())
}

// RenderFavoriteButtons prints the control the view would offer
func (r *consoleRenderer) RenderFavoriteButtons(favoriteVisible, unfavoriteVisible bool) {
	switch {
	case favoriteVisible:
		fmt.Fprintln(r.out, "Favorite: no  [favorite]")
	case unfavoriteVisible:
		fmt.Fprintln(r.out, "Favorite: yes [unfavorite]")
	default:
		fmt.Fprintln(r.out, "Favorite: loading")
	}
}

// PosterFile returns where the poster was saved and the write error, if any
func (r *consoleRenderer) PosterFile() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.posterPath, r.err
}

func printMovieHeader(out io.Writer, movie tmdb.Movie) {
	title := movie.Title
	if title == "" {
		title = "Untitled"
	}
	if len(movie.ReleaseDate) >= 4 {
		fmt.Fprintf(out, "%s (%s) [tmdb:%d]\n", title, movie.ReleaseDate[:4], movie.ID)
	} else {
		fmt.Fprintf(out, "%s [tmdb:%d]\n", title, movie.ID)
	}
	if !movie.HasPoster() {
		fmt.Fprintln(out, "Poster: no poster")
	}
}
