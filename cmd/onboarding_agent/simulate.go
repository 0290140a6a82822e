package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conscient/onboarding-agent/internal/client"
	"github.com/conscient/onboarding-agent/internal/runner"
	"github.com/conscient/onboarding-agent/internal/runner/stories"
	sig "github.com/conscient/onboarding-agent/internal/signal"
	"github.com/conscient/onboarding-agent/internal/store"
)

var (
	simulateCase      string
	simulateBaseDir   string
	simulateServerURL string
	simulateConfig    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one case's scripted onboarding simulation",
	Long:  `Replay a single vendor case's activity script: write log entries, push status updates to the coordination server, and pause at checkpoints until a signal or the simulated email release arrives.`,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simulateCase, "case", "", "Case ID to simulate (required)")
	simulateCmd.Flags().StringVar(&simulateBaseDir, "base-dir", "", "Directory holding the demo state files (default current directory)")
	simulateCmd.Flags().StringVar(&simulateServerURL, "server-url", "", "Coordination server base URL (default http://localhost:3001)")
	simulateCmd.Flags().StringVar(&simulateConfig, "config", "", "Path to a JSON configuration file")
	_ = simulateCmd.MarkFlagRequired("case")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(_ *cobra.Command, _ []string) error {
	cfg, err := loadDemoConfig(simulateConfig, 0, simulateBaseDir, simulateServerURL)
	if err != nil {
		return err
	}

	story, ok := stories.Find(simulateCase)
	if !ok {
		return fmt.Errorf("unknown case %q", simulateCase)
	}

	paths := store.DefaultPaths(cfg.GetBaseDir())
	if err := paths.EnsureLayout(); err != nil {
		return fmt.Errorf("failed to prepare state directories: %w", err)
	}

	r := runner.New(runner.Config{
		Paths:       paths,
		API:         client.New(cfg.GetServerURL()),
		Flags:       sig.New(paths.Signals(), cfg.SignalPoll()),
		StepDelay:   cfg.StepDelay(),
		SettleDelay: cfg.SettleDelay(),
		EmailPoll:   cfg.EmailPoll(),
	})

	return r.Run(context.Background(), story)
}
