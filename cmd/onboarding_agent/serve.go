package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/conscient/onboarding-agent/internal/feedback"
	"github.com/conscient/onboarding-agent/internal/kb"
	"github.com/conscient/onboarding-agent/internal/llm"
	"github.com/conscient/onboarding-agent/internal/server"
	sig "github.com/conscient/onboarding-agent/internal/signal"
	"github.com/conscient/onboarding-agent/internal/store"
	"github.com/conscient/onboarding-agent/internal/supervisor"
)

var (
	servePort      int
	serveBaseDir   string
	serveStaticDir string
	serveConfig    string
	serveNoRunners bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the coordination server",
	Long:  `Start the HTTP server that persists demo state to flat JSON files, relays UI signals to the simulation runners, and manages the feedback-driven knowledge base.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 3001)")
	serveCmd.Flags().StringVar(&serveBaseDir, "base-dir", "", "Directory holding the demo state files (default current directory)")
	serveCmd.Flags().StringVar(&serveStaticDir, "static-dir", "", "Directory of built UI assets to serve (default <base-dir>/public)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON configuration file")
	serveCmd.Flags().BoolVar(&serveNoRunners, "no-runners", false, "Do not spawn simulation runners on reset")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadDemoConfig(serveConfig, servePort, serveBaseDir, "")
	if err != nil {
		return err
	}

	paths := store.DefaultPaths(cfg.GetBaseDir())
	if err := paths.EnsureLayout(); err != nil {
		return fmt.Errorf("failed to prepare state directories: %w", err)
	}

	flags := sig.New(paths.Signals(), cfg.SignalPoll())
	queue := feedback.New(paths.FeedbackQueue())

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	var llmClient llm.Client
	if apiKey != "" {
		llmClient, err = llm.NewClient(context.Background(), llm.DefaultConfig().WithModel(cfg.GetModel()), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create completion client: %w", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set; chat and feedback endpoints will degrade")
	}

	kbService := kb.NewService(paths, llmClient)

	runnerExe := ""
	if !serveNoRunners {
		exe, err := os.Executable()
		if err != nil {
			log.Printf("Cannot resolve own executable, runner spawning disabled: %v", err)
		} else {
			runnerExe = exe
		}
	}
	runnerArgs := []string{"--base-dir", cfg.GetBaseDir(), "--server-url", cfg.GetServerURL()}
	if serveConfig != "" {
		runnerArgs = append(runnerArgs, "--config", serveConfig)
	}
	sup := supervisor.New(supervisor.Config{
		Paths:         paths,
		Flags:         flags,
		RunnerExe:     runnerExe,
		RunnerArgs:    runnerArgs,
		SettleDelay:   cfg.ResetSettle(),
		LaunchStagger: cfg.LaunchStagger(),
	})

	staticDir := serveStaticDir
	if staticDir == "" {
		staticDir = paths.PublicDir()
	}

	srv, err := server.New(server.Options{
		Config:     cfg,
		Paths:      paths,
		Flags:      flags,
		Queue:      queue,
		KB:         kbService,
		LLM:        llmClient,
		Supervisor: sup,
		StaticDir:  staticDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
