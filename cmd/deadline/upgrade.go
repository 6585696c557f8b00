package main

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/garrettladley/deadline/internal/client/github"
	"github.com/garrettladley/deadline/internal/version"
)

func upgradeCmd(opts ...github.Option) *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Check for updates and install if available",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := github.NewClient(opts...)
			defer func() { _ = client.Close() }()

			return runUpgrade(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), client, version.Get())
		},
	}
}

func runUpgrade(ctx context.Context, out, errOut io.Writer, client *github.Client, currentVersion string) error {
	latest, err := client.GetLatestRelease(ctx, "garrettladley", "deadline")
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	if !version.IsNewer(currentVersion, latest.TagName) {
		_, _ = fmt.Fprintf(out, "deadline is up to date (%s)\n", currentVersion)
		return nil
	}

	_, _ = fmt.Fprintf(out, "Updating deadline %s → %s\n", currentVersion, latest.TagName)

	if version.IsHomebrew() {
		return brewUpgrade(ctx, out, errOut)
	}

	return goInstallUpgrade(ctx, out, errOut)
}

func goInstallUpgrade(ctx context.Context, out, errOut io.Writer) error {
	cmd := exec.CommandContext(ctx, "go", "install", "github.com/garrettladley/deadline/cmd/deadline@latest")
	cmd.Stdout = out
	cmd.Stderr = errOut
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("upgrade failed: %w", err)
	}
	_, _ = fmt.Fprintln(out, "Successfully updated!")
	return nil
}

func brewUpgrade(ctx context.Context, out, errOut io.Writer) error {
	cmd := exec.CommandContext(ctx, "brew", "upgrade", "deadline")
	cmd.Stdout = out
	cmd.Stderr = errOut
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("brew upgrade failed: %w", err)
	}
	return nil
}
