package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/peter941221/scanhawk/internal/config"
)

const defaultConfigTemplate = `version: "1"
server:
  url: http://localhost:8080
  timeout_seconds: 10
poll:
  interval_seconds: 5
  timeout_seconds: 600
defaults:
  verify: true
output:
  format: human
`

func newConfigCommand(global *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage client configuration",
	}

	cmd.AddCommand(
		newConfigInitCommand(global),
		newConfigCheckCommand(global),
	)

	return cmd
}

func newConfigInitCommand(global *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := global.ConfigPath
			if path == "" {
				path = config.DefaultPath
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "config already exists: %s\n", path)
				return nil
			}

			if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o644); err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "config created: %s\n", path)
			return nil
		},
	}
}

func newConfigCheckCommand(global *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate config syntax and semantics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(global.ConfigPath); err != nil {
				return &ExitError{Code: 2, Message: fmt.Sprintf("config check failed: %v", err)}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config valid: %s\n", global.ConfigPath)
			return nil
		},
	}
}
