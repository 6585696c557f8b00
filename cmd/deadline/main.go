package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/deadline/internal/version"
)

func main() {
	_ = godotenv.Load()

	if err := fang.Execute(context.Background(), rootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deadline",
		Short:   "Download URLs with a hard per-request timeout",
		Version: version.Get(),
		// fang prints the error; usage would corrupt --json output.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(getCmd())
	cmd.AddCommand(upgradeCmd())

	return cmd
}
