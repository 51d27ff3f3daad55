package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/peter941221/scanhawk/internal/config"
	"github.com/peter941221/scanhawk/internal/model"
	"github.com/peter941221/scanhawk/internal/output"
)

type scanOptions struct {
	WebhookURL   string
	Verify       bool
	Detectors    []string
	Wait         bool
	PollInterval time.Duration
	Timeout      time.Duration
	Format       string
}

func newScanCommand(global *GlobalOptions) *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan <repo-url>",
		Short: "Submit a repository for scanning",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			client := newClient(cfg)
			verbosef(global, cmd.ErrOrStderr(), "using service at %s\n", client.BaseURL())

			req := model.NewScanRequest(args[0])
			req.Verify = opts.Verify
			if !cmd.Flags().Changed("verify") && cfg.Defaults.Verify != nil {
				req.Verify = *cfg.Defaults.Verify
			}
			req.WebhookURL = opts.WebhookURL
			if req.WebhookURL == "" {
				req.WebhookURL = cfg.Defaults.WebhookURL
			}
			req.IncludeOnly = opts.Detectors
			if len(req.IncludeOnly) == 0 {
				req.IncludeOnly = cfg.Defaults.Detectors
			}

			ack, err := client.InitiateScan(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scan initiated: %s (status: %s)\n", ack.ScanID, ack.Status)

			if !opts.Wait {
				return nil
			}

			interval, timeout := pollSettings(cmd, cfg, opts.PollInterval, opts.Timeout)
			result, err := client.WaitForScan(cmd.Context(), ack.ScanID, interval, timeout, pollProgress(cmd.OutOrStdout(), interval))
			if err != nil {
				return err
			}
			return output.WriteResult(*result, resolveFormat(cmd, cfg, opts.Format), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.WebhookURL, "webhook", "", "Webhook URL for completion notification")
	cmd.Flags().BoolVar(&opts.Verify, "verify", true, "Ask the service to verify found secrets")
	cmd.Flags().StringSliceVar(&opts.Detectors, "detector", nil, "Restrict the scan to these detectors (repeatable)")
	cmd.Flags().BoolVar(&opts.Wait, "wait", false, "Block until the scan finishes")
	cmd.Flags().DurationVar(&opts.PollInterval, "poll-interval", 5*time.Second, "Delay between status polls with --wait")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Minute, "Give up waiting after this long")
	cmd.Flags().StringVar(&opts.Format, "format", "human", "Output format: human|json")

	return cmd
}

// pollSettings prefers explicitly set flags over configured cadence.
func pollSettings(cmd *cobra.Command, cfg config.Config, flagInterval, flagTimeout time.Duration) (time.Duration, time.Duration) {
	interval := cfg.PollInterval()
	if cmd.Flags().Changed("poll-interval") {
		interval = flagInterval
	}
	timeout := cfg.PollTimeout()
	if cmd.Flags().Changed("timeout") {
		timeout = flagTimeout
	}
	return interval, timeout
}

func resolveFormat(cmd *cobra.Command, cfg config.Config, flagFormat string) string {
	if cmd.Flags().Changed("format") {
		return flagFormat
	}
	if cfg.Output.Format != "" {
		return cfg.Output.Format
	}
	return flagFormat
}
