package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/favarr/detail"
	"github.com/s0up4200/favarr/tmdb"
)

var posterDir string

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <movie-id>",
	Short: "Show a movie's poster and favorite status",
	Long: `Load a movie, then fetch its poster and check whether it is in the
account's favorites list. Both lookups run at the same time and are printed as
they complete.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&posterDir, "poster-dir", "", "save the poster into this directory")
}

func runShow(cmd *cobra.Command, args []string) error {
	movieID, err := parseMovieID(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	resolveImageBase(ctx)

	movie, err := tmdbClient.GetMovie(ctx, movieID, cfg.TMDB.APIKey)
	if err != nil {
		return fmt.Errorf("failed to load movie %d: %w", movieID, err)
	}

	out := cmd.OutOrStdout()
	printMovieHeader(out, *movie)

	session := newDetailSession(*movie, newConsoleRenderer(out, *movie, posterDir))
	if err := session.Activate(ctx); err != nil {
		return fmt.Errorf("movie detail incomplete: %w", err)
	}

	return nil
}

func newDetailSession(movie tmdb.Movie, target detail.RenderTarget) *detail.Session {
	return detail.NewSession(tmdbClient, cfg.TMDB, movie, target, logger,
		detail.WithPosterSource(tmdbClient.ImageBaseURL(), tmdbClient.PosterSize()),
	)
}

func parseMovieID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid movie id: %q", arg)
	}
	return id, nil
}
