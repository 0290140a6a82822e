package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/conscient/onboarding-agent/internal/client"
)

var (
	resetServerURL string
	resetConfig    string
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the demo through a running server",
	Long:  `Ask a running coordination server to restore the initial demo state: kill active runners, rewrite the fixture cases, clear signals and the feedback queue, and launch a fresh generation of runners.`,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().StringVar(&resetServerURL, "server-url", "", "Coordination server base URL (default http://localhost:3001)")
	resetCmd.Flags().StringVar(&resetConfig, "config", "", "Path to a JSON configuration file")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	cfg, err := loadDemoConfig(resetConfig, 0, "", resetServerURL)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := client.New(cfg.GetServerURL()).Reset(ctx); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Demo reset.")
	return nil
}
