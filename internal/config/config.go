// Package config provides configuration loading and validation for the demo
// server and the simulation runners. All fields are optional; missing values
// use defaults or are provided via CLI flags and environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults match the pacing of the live demo. Tests override them through
// the duration fields so waits run in milliseconds.
const (
	DefaultPort          = 3001
	DefaultModel         = "gemini-2.5-flash"
	DefaultSignalPoll    = time.Second
	DefaultEmailPoll     = 2 * time.Second
	DefaultStepDelay     = 2 * time.Second
	DefaultSettleDelay   = 1500 * time.Millisecond
	DefaultResetSettle   = time.Second
	DefaultLaunchStagger = 2 * time.Second
)

// Config is the demo configuration, loadable from a JSON file.
type Config struct {
	// Server
	Port      int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	BaseDir   string `json:"base_dir,omitempty"`
	ServerURL string `json:"server_url,omitempty" validate:"omitempty,url"`

	// Completion service
	APIKey string `json:"api_key,omitempty"`
	Model  string `json:"model,omitempty"`

	// Pacing, all in milliseconds. Zero means default.
	SignalPollMs    int `json:"signal_poll_ms,omitempty" validate:"omitempty,min=1"`
	EmailPollMs     int `json:"email_poll_ms,omitempty" validate:"omitempty,min=1"`
	StepDelayMs     int `json:"step_delay_ms,omitempty" validate:"omitempty,min=1"`
	SettleDelayMs   int `json:"settle_delay_ms,omitempty" validate:"omitempty,min=1"`
	ResetSettleMs   int `json:"reset_settle_ms,omitempty" validate:"omitempty,min=1"`
	LaunchStaggerMs int `json:"launch_stagger_ms,omitempty" validate:"omitempty,min=1"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// GetPort returns the configured port or the default.
func (c *Config) GetPort() int {
	if c.Port > 0 {
		return c.Port
	}
	return DefaultPort
}

// GetBaseDir returns the configured file-store root or the working directory.
func (c *Config) GetBaseDir() string {
	if c.BaseDir != "" {
		return c.BaseDir
	}
	return "."
}

// GetServerURL returns the server URL runners call back into.
func (c *Config) GetServerURL() string {
	if c.ServerURL != "" {
		return c.ServerURL
	}
	return fmt.Sprintf("http://localhost:%d", c.GetPort())
}

// GetModel returns the completion model name.
func (c *Config) GetModel() string {
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel
}

// SignalPoll returns the signal wait-loop poll interval.
func (c *Config) SignalPoll() time.Duration { return orDefault(c.SignalPollMs, DefaultSignalPoll) }

// EmailPoll returns the email-sent flag poll interval.
func (c *Config) EmailPoll() time.Duration { return orDefault(c.EmailPollMs, DefaultEmailPoll) }

// StepDelay returns the per-step work delay.
func (c *Config) StepDelay() time.Duration { return orDefault(c.StepDelayMs, DefaultStepDelay) }

// SettleDelay returns the pause after each step's result phase.
func (c *Config) SettleDelay() time.Duration { return orDefault(c.SettleDelayMs, DefaultSettleDelay) }

// ResetSettle returns the pause between killing runners and rewriting fixtures.
func (c *Config) ResetSettle() time.Duration { return orDefault(c.ResetSettleMs, DefaultResetSettle) }

// LaunchStagger returns the per-runner start offset during reset.
func (c *Config) LaunchStagger() time.Duration {
	return orDefault(c.LaunchStaggerMs, DefaultLaunchStagger)
}

func orDefault(ms int, def time.Duration) time.Duration {
	if ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return def
}
