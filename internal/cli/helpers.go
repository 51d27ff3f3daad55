package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/peter941221/scanhawk/internal/api"
	"github.com/peter941221/scanhawk/internal/config"
)

func loadConfig(opts *GlobalOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.ServerURL != "" {
		cfg.Server.URL = opts.ServerURL
	}
	return cfg, nil
}

func newClient(cfg config.Config) *api.Client {
	return api.New(cfg.Server.URL, api.WithTimeout(cfg.ServerTimeout()))
}

func verbosef(opts *GlobalOptions, w io.Writer, format string, args ...any) {
	if opts.Verbose {
		fmt.Fprintf(w, format, args...)
	}
}

// pollProgress writes one line per non-terminal poll, matching the cadence
// the wait loop sleeps at.
func pollProgress(w io.Writer, interval time.Duration) api.PollObserver {
	return func(status string) {
		fmt.Fprintf(w, "scan status: %s... waiting %s\n", status, interval)
	}
}
