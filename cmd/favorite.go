package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/favarr/tmdb"
)

// favoriteCmd represents the favorite command
var favoriteCmd = &cobra.Command{
	Use:   "favorite <movie-id>",
	Short: "Add a movie to the account's favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetFavorite(cmd, args[0], true)
	},
}

// unfavoriteCmd represents the unfavorite command
var unfavoriteCmd = &cobra.Command{
	Use:   "unfavorite <movie-id>",
	Short: "Remove a movie from the account's favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetFavorite(cmd, args[0], false)
	},
}

func runSetFavorite(cmd *cobra.Command, arg string, wantFavorite bool) error {
	movieID, err := parseMovieID(arg)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	out := cmd.OutOrStdout()
	movie := tmdb.Movie{ID: movieID}
	session := newDetailSession(movie, newConsoleRenderer(out, movie, ""))

	if err := session.SetFavorite(ctx, wantFavorite); err != nil {
		if wantFavorite {
			return fmt.Errorf("failed to favorite movie %d: %w", movieID, err)
		}
		return fmt.Errorf("failed to unfavorite movie %d: %w", movieID, err)
	}

	if wantFavorite {
		fmt.Fprintf(out, "✓ Movie %d added to favorites\n", movieID)
	} else {
		fmt.Fprintf(out, "✓ Movie %d removed from favorites\n", movieID)
	}
	return nil
}
