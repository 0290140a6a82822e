package main

import (
	"fmt"

	"github.com/conscient/onboarding-agent/internal/config"
)

// loadDemoConfig builds the effective configuration from an optional
// JSON file plus CLI flag overrides. Flags win over the file.
func loadDemoConfig(path string, port int, baseDir, serverURL string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if port > 0 {
		cfg.Port = port
	}
	if baseDir != "" {
		cfg.BaseDir = baseDir
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
