package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to TMDB",
	Long:  `Test the API key against TMDB and, when account details are configured, read the favorites list.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to TMDB at %s...\n", cfg.TMDB.URL)

	conf, err := tmdbClient.GetConfiguration(ctx, cfg.TMDB.APIKey)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Fprintln(out, "✓ Connection successful!")

	fmt.Fprintf(out, "\nImages:\n")
	fmt.Fprintf(out, "- Base URL: %s\n", conf.Images.SecureBaseURL)
	fmt.Fprintf(out, "- Poster sizes: %s\n", strings.Join(conf.Images.PosterSizes, ", "))
	fmt.Fprintf(out, "- Configured poster size: %s (%s)\n", cfg.TMDB.PosterSize, boolToStatus(conf.Images.HasPosterSize(cfg.TMDB.PosterSize), "available", "not advertised"))

	creds, err := cfg.TMDB.Credentials()
	if err != nil {
		fmt.Fprintf(out, "\nAccount: not configured (%v)\n", err)
		return nil
	}

	favorites, err := tmdbClient.ListFavorites(ctx, creds)
	if err != nil {
		return fmt.Errorf("failed to read favorites for account %d: %w", creds.UserID, err)
	}
	fmt.Fprintf(out, "\nAccount %d:\n", creds.UserID)
	fmt.Fprintf(out, "- Favorite movies: %d\n", len(favorites))

	return nil
}

func boolToStatus(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}
