package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/favarr/config"
	"github.com/s0up4200/favarr/tmdb"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	tmdbClient *tmdb.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "favarr",
	Short: "Show movie details and manage your TMDB favorites",
	Long: `favarr is a CLI for the movie detail view of a TMDB account. It shows a
movie's poster and favorite status, and adds or removes the movie from the
account's favorites list.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(unfavoriteCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp initializes the configuration and the TMDB client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging, os.Stderr)

	tmdbClient, err = tmdb.NewClient(cfg.TMDB.URL, logger,
		tmdb.WithTimeout(cfg.TMDB.Timeout),
		tmdb.WithImageBaseURL(cfg.TMDB.ImageURL),
		tmdb.WithPosterSize(cfg.TMDB.PosterSize),
		tmdb.WithUserAgent("favarr/"+version),
	)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	return nil
}

// resolveImageBase reads the image base URL from /configuration when none is configured.
// Failures keep the built-in default.
func resolveImageBase(ctx context.Context) {
	if cfg.TMDB.ImageURL != "" {
		return
	}

	conf, err := tmdbClient.GetConfiguration(ctx, cfg.TMDB.APIKey)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to read image configuration, using default image URL")
		return
	}

	tmdbClient.SetImageBaseURL(conf.Images.SecureBaseURL)
	if !conf.Images.HasPosterSize(tmdbClient.PosterSize()) {
		logger.Warn().
			Str("poster_size", tmdbClient.PosterSize()).
			Strs("available", conf.Images.PosterSizes).
			Msg("Configured poster size is not advertised by the service")
	}
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// commandContext is cancelled on interrupt
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
