// Package main provides the entry point for the vendor onboarding demo.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "onboarding_agent",
	Short: "Vendor onboarding demo server and simulation runner",
	Long:  "Onboarding agent runs the scripted vendor onboarding demo: a coordination server backed by flat JSON files, per-case simulation runners, and a feedback-driven knowledge base.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
