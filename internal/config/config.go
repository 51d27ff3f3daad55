package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where commands look for client configuration when no
// --config flag is given.
const DefaultPath = ".scanhawk/config.yaml"

type Config struct {
	Version  string       `yaml:"version"`
	Server   ServerConfig `yaml:"server"`
	Poll     PollConfig   `yaml:"poll"`
	Defaults ScanDefaults `yaml:"defaults"`
	Output   OutputConfig `yaml:"output"`
}

type ServerConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type PollConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
	TimeoutSeconds  int `yaml:"timeout_seconds"`
}

type ScanDefaults struct {
	Verify     *bool    `yaml:"verify"`
	WebhookURL string   `yaml:"webhook_url"`
	Detectors  []string `yaml:"detectors"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

func DefaultConfig() Config {
	verify := true
	return Config{
		Version: "1",
		Server: ServerConfig{
			URL:            "http://localhost:8080",
			TimeoutSeconds: 10,
		},
		Poll: PollConfig{
			IntervalSeconds: 5,
			TimeoutSeconds:  600,
		},
		Defaults: ScanDefaults{Verify: &verify},
		Output:   OutputConfig{Format: "human"},
	}
}

// Load reads client configuration from path. A missing file is not an
// error: defaults apply. Fields left zero in the file are backfilled from
// the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.Server.URL == "" {
		cfg.Server.URL = DefaultConfig().Server.URL
	}
	if cfg.Server.TimeoutSeconds <= 0 {
		cfg.Server.TimeoutSeconds = DefaultConfig().Server.TimeoutSeconds
	}
	if cfg.Poll.IntervalSeconds <= 0 {
		cfg.Poll.IntervalSeconds = DefaultConfig().Poll.IntervalSeconds
	}
	if cfg.Poll.TimeoutSeconds <= 0 {
		cfg.Poll.TimeoutSeconds = DefaultConfig().Poll.TimeoutSeconds
	}
	if cfg.Defaults.Verify == nil {
		cfg.Defaults.Verify = DefaultConfig().Defaults.Verify
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultConfig().Output.Format
	}

	return cfg, nil
}

func Validate(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	if cfg.Version != "1" {
		return fmt.Errorf("unsupported config version: %s", cfg.Version)
	}
	if cfg.Poll.IntervalSeconds >= cfg.Poll.TimeoutSeconds {
		return fmt.Errorf("poll.interval_seconds (%d) must be below poll.timeout_seconds (%d)", cfg.Poll.IntervalSeconds, cfg.Poll.TimeoutSeconds)
	}
	switch cfg.Output.Format {
	case "human", "json":
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.Output.Format)
	}
	return nil
}

// PollInterval and PollTimeout convert the configured cadence to durations.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.Poll.IntervalSeconds) * time.Second
}

func (c Config) PollTimeout() time.Duration {
	return time.Duration(c.Poll.TimeoutSeconds) * time.Second
}

func (c Config) ServerTimeout() time.Duration {
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}
