package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/deadline/internal/client/timeout"
	"github.com/garrettladley/deadline/internal/config"
	"github.com/garrettladley/deadline/internal/fetch"
	"github.com/garrettladley/deadline/internal/theme"
	"github.com/garrettladley/deadline/internal/xcontext"
	"github.com/garrettladley/deadline/internal/xslog"
)

type getFlags struct {
	timeout     time.Duration
	timeoutMS   int
	concurrency int
	rate        float64
	requestID   string
	json        bool
}

const (
	flagTimeout     = "timeout"
	flagTimeoutMS   = "timeout-ms"
	flagConcurrency = "concurrency"
	flagRate        = "rate"
	flagRequestID   = "request-id"
	flagJSON        = "json"
)

func getCmd() *cobra.Command {
	var flags getFlags

	cmd := &cobra.Command{
		Use:   "get <url>...",
		Short: "Download URLs, failing any that exceed the timeout",
		Long: "Downloads each URL with one shared client. A single URL is written to stdout as-is;\n" +
			"several URLs produce one status line each, or JSON lines with --json.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			applyGetFlags(cmd, &cfg, flags)

			logger, closeLog := newLogger(cfg, cmd.ErrOrStderr())
			defer func() { _ = closeLog() }()
			ctx := xslog.WithLogger(cmd.Context(), logger)
			if flags.requestID != "" {
				ctx = xcontext.WithRequestID(ctx, flags.requestID)
			}

			client, err := timeout.New(cfg.Timeout, timeout.WithMaxBodyBytes(cfg.MaxBodyBytes))
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			logger.DebugContext(ctx, "starting downloads",
				xslog.Version(),
				xslog.Timeout(cfg.Timeout),
				xslog.Count(len(args)),
			)

			out := cmd.OutOrStdout()

			if len(args) == 1 && !flags.json {
				body, err := client.DownloadBytes(ctx, args[0])
				if err != nil {
					return err
				}
				_, err = out.Write(body)
				return err
			}

			results := fetch.Run(ctx, client, args, fetch.Options{
				Concurrency:   cfg.Concurrency,
				RatePerSecond: flags.rate,
			})

			if flags.json {
				if err := writeJSONLines(out, results); err != nil {
					return fmt.Errorf("failed to write results: %w", err)
				}
			} else {
				writeStatusLines(out, theme.New(), results)
			}

			if summary := fetch.Summarize(results); summary.Failed > 0 {
				return fmt.Errorf("%d of %d downloads failed", summary.Failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&flags.timeout, flagTimeout, 0, "per-request timeout, e.g. 500ms (default $DEADLINE_TIMEOUT or 30s)")
	cmd.Flags().IntVar(&flags.timeoutMS, flagTimeoutMS, 0, "per-request timeout in milliseconds")
	cmd.Flags().IntVar(&flags.concurrency, flagConcurrency, 0, "downloads in flight at once (default $DEADLINE_CONCURRENCY or 4)")
	cmd.Flags().Float64Var(&flags.rate, flagRate, 0, "maximum requests started per second, 0 for no pacing")
	cmd.Flags().StringVar(&flags.requestID, flagRequestID, "", "X-Request-ID sent on every request (default a fresh uuid per request)")
	cmd.Flags().BoolVar(&flags.json, flagJSON, false, "print one JSON object per URL")
	cmd.MarkFlagsMutuallyExclusive(flagTimeout, flagTimeoutMS)

	return cmd
}

// applyGetFlags lets explicitly set flags override the environment.
func applyGetFlags(cmd *cobra.Command, cfg *config.Config, flags getFlags) {
	if cmd.Flags().Changed(flagTimeout) {
		cfg.Timeout = flags.timeout
	}
	if cmd.Flags().Changed(flagTimeoutMS) {
		cfg.Timeout = time.Duration(flags.timeoutMS) * time.Millisecond
	}
	if cmd.Flags().Changed(flagConcurrency) {
		cfg.Concurrency = flags.concurrency
	}
}

func newLogger(cfg config.Config, stderr io.Writer) (*slog.Logger, func() error) {
	w, closeFn := xslog.Writer(cfg.LogFile, stderr)
	return xslog.NewLogger(w, cfg.LogLevel), closeFn
}
