package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/peter941221/scanhawk/internal/output"
)

type watchOptions struct {
	PollInterval time.Duration
	Timeout      time.Duration
	Format       string
}

func newWatchCommand(global *GlobalOptions) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <scan-id>",
		Short: "Block until a scan finishes and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			client := newClient(cfg)
			verbosef(global, cmd.ErrOrStderr(), "using service at %s\n", client.BaseURL())

			interval, timeout := pollSettings(cmd, cfg, opts.PollInterval, opts.Timeout)
			result, err := client.WaitForScan(cmd.Context(), args[0], interval, timeout, pollProgress(cmd.OutOrStdout(), interval))
			if err != nil {
				return err
			}
			return output.WriteResult(*result, resolveFormat(cmd, cfg, opts.Format), cmd.OutOrStdout())
		},
	}

	cmd.Flags().DurationVar(&opts.PollInterval, "poll-interval", 5*time.Second, "Delay between status polls")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Minute, "Give up waiting after this long")
	cmd.Flags().StringVar(&opts.Format, "format", "human", "Output format: human|json")

	return cmd
}
