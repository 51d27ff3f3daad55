package cli

import (
	"github.com/spf13/cobra"

	"github.com/peter941221/scanhawk/internal/output"
)

type scansOptions struct {
	Format string
}

func newScansCommand(global *GlobalOptions) *cobra.Command {
	opts := &scansOptions{}

	cmd := &cobra.Command{
		Use:   "scans",
		Short: "List all scans known to the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			client := newClient(cfg)
			verbosef(global, cmd.ErrOrStderr(), "using service at %s\n", client.BaseURL())

			list, err := client.ListScans(cmd.Context())
			if err != nil {
				return err
			}
			return output.WriteList(*list, resolveFormat(cmd, cfg, opts.Format), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "human", "Output format: human|json")

	return cmd
}
