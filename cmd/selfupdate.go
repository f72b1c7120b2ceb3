package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is used when the configuration names no repository.
const githubRepoSlug = "huectl/huectl"

func newSelfUpdateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update huectl to the latest version",
		Long: `Checks for the latest release of huectl on GitHub and
replaces the running binary when a newer version is available.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := githubRepoSlug
			if a, err := opts.application(); err == nil && a.Config().Update.Repository != "" {
				repo = a.Config().Update.Repository
			}
			return runSelfUpdate(cmd.Context(), cmd.OutOrStdout(), cmd.Root().Version, repo)
		},
	}
}

func runSelfUpdate(ctx context.Context, out io.Writer, currentVersion, repo string) error {
	if currentVersion == "" || currentVersion == "dev" {
		return errors.New("cannot self-update a development version")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintf(out, "Current version: %s\n", currentVersion)
	fmt.Fprintln(out, "Checking for updates...")

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found in %s", runtime.GOOS, runtime.GOARCH, repo)
	}

	if latest.LessOrEqual(currentVersion) {
		fmt.Fprintf(out, "Current version (%s) is the latest\n", currentVersion)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to version %s\n", latest.Version())
	return nil
}
