package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/favarr/config"
	"github.com/s0up4200/favarr/filter"
)

var (
	filterExpr string
	preset     string
)

// favoritesCmd represents the favorites command
var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List the account's favorite movies",
	Long: `List every movie in the account's favorites list, optionally narrowed
by a filter expression such as:

  Year < 1990 and HasPoster
  hasText(Title, "matrix") or VoteAverage >= 8`,
	RunE: runFavorites,
}

func init() {
	favoritesCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	favoritesCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a named filter from config")
}

func runFavorites(cmd *cobra.Command, args []string) error {
	expression, err := filterExpression(cfg.Filter, filterExpr, preset)
	if err != nil {
		return err
	}

	var movieFilter filter.Filter
	if expression != "" {
		compiled, err := filter.ParseAndCreateFilter(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		movieFilter = compiled
		logger.Debug().Str("filter", expression).Msg("Filtering favorites")
	}

	creds, err := cfg.TMDB.Credentials()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	favorites, err := tmdbClient.ListFavorites(ctx, creds)
	if err != nil {
		return fmt.Errorf("failed to list favorites: %w", err)
	}
	movies := filter.Apply(movieFilter, favorites)

	out := cmd.OutOrStdout()
	if len(movies) == 0 {
		fmt.Fprintln(out, "No favorite movies found.")
		return nil
	}

	fmt.Fprintf(out, "\nFound %d of %d favorite movies:\n", len(movies), len(favorites))
	fmt.Fprintln(out, strings.Repeat("-", 80))
	for _, movie := range movies {
		fmt.Fprintf(out, "• %s", movie.Title)
		if len(movie.ReleaseDate) >= 4 {
			fmt.Fprintf(out, " (%s)", movie.ReleaseDate[:4])
		}
		fmt.Fprintf(out, " [tmdb:%d]", movie.ID)
		if !movie.HasPoster() {
			fmt.Fprint(out, " [NO POSTER]")
		}
		fmt.Fprintln(out)
	}

	return nil
}

// filterExpression picks the command line filter over a named one; neither means no filter
func filterExpression(filters config.FilterConfig, expression, name string) (string, error) {
	if expression != "" {
		return expression, nil
	}
	if name != "" {
		if named, ok := filters[name]; ok {
			return named, nil
		}
		return "", fmt.Errorf("filter '%s' not found in config", name)
	}
	return "", nil
}
