package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCommand(global *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the scan service is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			client := newClient(cfg)

			if !client.HealthCheck(cmd.Context()) {
				return &ExitError{Code: 1, Message: fmt.Sprintf("service at %s is not healthy", client.BaseURL())}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "service at %s is healthy\n", client.BaseURL())
			return nil
		},
	}
}
