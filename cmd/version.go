package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/offsetkeyz/dupr-api-client/dupr"
)

const repoSlug = "offsetkeyz/dupr-api-client"

var updateCheckOnly bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	// No config or token is needed to print the version.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "dupr %s\n", displayVersion(appVersion))
		fmt.Fprintf(out, "  built:       %s\n", appBuilt)
		fmt.Fprintf(out, "  go:          %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "  api default: %s\n", dupr.DefaultVersion)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:               "update",
	Short:             "Update dupr to the latest release",
	Args:              cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		current, err := parseBuildVersion(appVersion)
		if err != nil {
			return err
		}

		latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
		if err != nil {
			return fmt.Errorf("failed to detect latest release: %w", err)
		}
		if !found {
			return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
		}

		out := cmd.OutOrStdout()
		if latest.LessOrEqual(current.String()) {
			fmt.Fprintf(out, "✓ dupr %s is up to date\n", current)
			return nil
		}

		if updateCheckOnly {
			fmt.Fprintf(out, "→ dupr %s is available (current %s)\n", latest.Version(), current)
			return nil
		}

		exe, err := selfupdate.ExecutablePath()
		if err != nil {
			return fmt.Errorf("failed to locate executable: %w", err)
		}

		if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
			return fmt.Errorf("failed to update binary: %w", err)
		}

		fmt.Fprintf(out, "✓ Updated dupr %s → %s\n", current, latest.Version())
		return nil
	},
}

// parseBuildVersion parses the linker-injected version, tolerating a leading "v".
// Development builds cannot be updated in place.
func parseBuildVersion(v string) (semver.Version, error) {
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return semver.Version{}, fmt.Errorf("cannot update a development build (version %q)", v)
	}
	return parsed, nil
}

// displayVersion normalizes release versions and leaves anything else as is
func displayVersion(v string) string {
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return v
	}
	return "v" + parsed.String()
}

func init() {
	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "only report whether an update is available")

	rootCmd.AddCommand(versionCmd, updateCmd)
}
