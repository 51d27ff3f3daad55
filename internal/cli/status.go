package cli

import (
	"github.com/spf13/cobra"

	"github.com/peter941221/scanhawk/internal/output"
)

type statusOptions struct {
	Format       string
	SourceFilter string
}

func newStatusCommand(global *GlobalOptions) *cobra.Command {
	opts := &statusOptions{}

	cmd := &cobra.Command{
		Use:   "status <scan-id>",
		Short: "Show the current state of a scan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			client := newClient(cfg)
			verbosef(global, cmd.ErrOrStderr(), "using service at %s\n", client.BaseURL())

			result, err := client.GetScanStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if opts.SourceFilter != "" {
				filtered, err := output.FilterBySource(result.Secrets, opts.SourceFilter)
				if err != nil {
					return err
				}
				result.Secrets = filtered
			}

			return output.WriteResult(*result, resolveFormat(cmd, cfg, opts.Format), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "human", "Output format: human|json")
	cmd.Flags().StringVar(&opts.SourceFilter, "findings-filter", "", "Only show findings whose source matches this glob")

	return cmd
}
