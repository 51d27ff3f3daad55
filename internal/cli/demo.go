package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/peter941221/scanhawk/internal/model"
	"github.com/peter941221/scanhawk/internal/output"
)

type demoOptions struct {
	WebhookURL   string
	Detectors    []string
	Verify       bool
	PollInterval time.Duration
	Timeout      time.Duration
}

// newDemoCommand runs the whole workflow against a live service: health
// gate, submit, wait, report, then list everything. Failed steps are
// reported inline and the flow moves on to the next independent step.
func newDemoCommand(global *GlobalOptions) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo <repo-url>",
		Short: "Run the full scan workflow end to end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			client := newClient(cfg)
			out := cmd.OutOrStdout()

			if !client.HealthCheck(cmd.Context()) {
				fmt.Fprintln(out, "❌ service is not healthy")
				return nil
			}
			fmt.Fprintln(out, "✅ service is healthy")

			req := model.ScanRequest{
				RepoURL:     args[0],
				WebhookURL:  opts.WebhookURL,
				Verify:      opts.Verify,
				IncludeOnly: opts.Detectors,
			}

			fmt.Fprintln(out, "\n🔍 initiating scan...")
			ack, err := client.InitiateScan(cmd.Context(), req)
			if err != nil {
				fmt.Fprintf(out, "❌ %v\n", err)
			} else {
				fmt.Fprintf(out, "✅ scan initiated: %s\n", ack.ScanID)

				fmt.Fprintln(out, "\n⏳ waiting for scan to complete...")
				interval, timeout := pollSettings(cmd, cfg, opts.PollInterval, opts.Timeout)
				result, err := client.WaitForScan(cmd.Context(), ack.ScanID, interval, timeout, pollProgress(out, interval))
				if err != nil {
					fmt.Fprintf(out, "❌ %v\n", err)
				} else if err := output.WriteResult(*result, "human", out); err != nil {
					fmt.Fprintf(out, "❌ %v\n", err)
				}
			}

			fmt.Fprintln(out, "\n📋 all scans:")
			list, err := client.ListScans(cmd.Context())
			if err != nil {
				fmt.Fprintf(out, "❌ %v\n", err)
				return nil
			}
			return output.WriteList(*list, "human", out)
		},
	}

	cmd.Flags().StringVar(&opts.WebhookURL, "webhook", "", "Webhook URL for completion notification")
	cmd.Flags().StringSliceVar(&opts.Detectors, "detector", nil, "Restrict the scan to these detectors (repeatable)")
	cmd.Flags().BoolVar(&opts.Verify, "verify", true, "Ask the service to verify found secrets")
	cmd.Flags().DurationVar(&opts.PollInterval, "poll-interval", 5*time.Second, "Delay between status polls")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 5*time.Minute, "Give up waiting after this long")

	return cmd
}
