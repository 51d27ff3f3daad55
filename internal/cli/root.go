package cli

import (
	"github.com/spf13/cobra"

	"github.com/peter941221/scanhawk/internal/config"
)

// BuildVersion is overridden by release tooling (e.g. goreleaser).
var BuildVersion = "0.1.0-dev"

// GlobalOptions are flags shared by every command.
type GlobalOptions struct {
	ServerURL  string
	ConfigPath string
	Verbose    bool
}

func NewRootCommand() *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:           "scanhawk",
		Short:         "Client for a remote secret-scanning service",
		Long:          "Scanhawk submits repository scans to a remote secret-scanning service and reports their results.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&opts.ServerURL, "server", "", "Service base URL (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultPath, "Client config file path")
	cmd.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose output")

	cmd.AddCommand(
		newHealthCommand(opts),
		newScanCommand(opts),
		newStatusCommand(opts),
		newScansCommand(opts),
		newWatchCommand(opts),
		newDemoCommand(opts),
		newConfigCommand(opts),
		newVersionCommand(),
	)

	return cmd
}
