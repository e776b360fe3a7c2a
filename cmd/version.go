package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repositorySlug = "s0up4200/favarr"

var (
	version   = "dev"
	buildTime = "unknown"

	checkOnly bool
)

// SetVersion records the build information reported by the version command
func SetVersion(v, built string) {
	if v != "" {
		version = v
	}
	if built != "" {
		buildTime = built
	}
}

// skipInit overrides the root pre-run so these commands work without a config file
func skipInit(*cobra.Command, []string) error { return nil }

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version",
	PersistentPreRunE: skipInit,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "favarr %s (built %s)\n", version, buildTime)
	},
}

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:               "update",
	Short:             "Update favarr to the latest release",
	PersistentPreRunE: skipInit,
	RunE:              runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot update a development build (version %q)", version)
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	release, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repositorySlug))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}

	out := cmd.OutOrStdout()
	if !found {
		fmt.Fprintln(out, "No release found for this platform.")
		return nil
	}

	latest, err := semver.ParseTolerant(release.Version())
	if err != nil {
		return fmt.Errorf("invalid release version %q: %w", release.Version(), err)
	}

	if !needsUpdate(current, latest) {
		fmt.Fprintf(out, "✓ favarr %s is up to date\n", current)
		return nil
	}

	if checkOnly {
		fmt.Fprintf(out, "Update available: %s -> %s\n", current, latest)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, release.AssetURL, release.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(out, "✓ Updated favarr %s -> %s\n", current, latest)
	return nil
}

func needsUpdate(current, latest semver.Version) bool {
	return latest.GT(current)
}
