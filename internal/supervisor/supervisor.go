// Package supervisor spawns and terminates the per-case simulation runner
// processes and performs the demo reset: kill the running generation,
// rewrite the fixture documents, and launch a fresh generation with
// staggered start offsets so the case timelines interleave in the UI.
package supervisor

import (
	"context"
	"log"
	"os/exec"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/conscient/onboarding-agent/internal/runner/stories"
	"github.com/conscient/onboarding-agent/internal/signal"
	"github.com/conscient/onboarding-agent/internal/store"
	"github.com/conscient/onboarding-agent/internal/types"
)

// Config carries the supervisor's collaborators and tunables.
type Config struct {
	Paths store.Paths
	Flags *signal.Flags
	// RunnerExe is the binary spawned per case (normally the server's own
	// executable, run with the "simulate" subcommand). Empty disables
	// spawning; the reset still rewrites all fixture state.
	RunnerExe string
	// RunnerArgs are appended after the per-case simulate arguments.
	RunnerArgs []string
	// SettleDelay is the pause between killing the old generation and
	// rewriting fixtures, letting in-flight writes drain.
	SettleDelay time.Duration
	// LaunchStagger is the extra start offset added per runner.
	LaunchStagger time.Duration
}

// Supervisor tracks the running simulation processes.
type Supervisor struct {
	cfg Config

	mu    sync.Mutex
	procs map[string]*exec.Cmd
	gen   int
}

// New returns a Supervisor with defaults filled in for unset delays.
func New(cfg Config) *Supervisor {
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = time.Second
	}
	if cfg.LaunchStagger <= 0 {
		cfg.LaunchStagger = 2 * time.Second
	}
	return &Supervisor{cfg: cfg, procs: map[string]*exec.Cmd{}}
}

// Reset performs the demo reset sequence. Kill failures for processes that
// already exited are swallowed; everything else is returned.
func (s *Supervisor) Reset(ctx context.Context) error {
	log.Printf("Demo reset triggered")

	if err := s.cfg.Flags.Reset(map[string]bool{stories.ApproveReverification: false}); err != nil {
		return err
	}

	s.killAll()
	if s.cfg.RunnerExe != "" {
		killStrayRunners()
	}

	if err := sleep(ctx, s.cfg.SettleDelay); err != nil {
		return err
	}

	date := time.Now().Format("2006-01-02")
	cases := stories.FixtureCases(date)
	if err := store.WriteJSON(s.cfg.Paths.CaseList(), cases); err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		return store.WriteJSON(s.cfg.Paths.FeedbackQueue(), []types.FeedbackItem{})
	})
	g.Go(func() error {
		return store.WriteJSON(s.cfg.Paths.VersionIndex(), types.VersionIndex{})
	})
	for _, c := range cases {
		caseID := c.ID
		g.Go(func() error {
			return store.WriteJSON(s.cfg.Paths.CaseLog(caseID), types.NewCaseLog(nil))
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.launchGeneration(cases)
	return nil
}

// launchGeneration starts one runner per case with staggered offsets.
func (s *Supervisor) launchGeneration(cases types.CaseList) {
	if s.cfg.RunnerExe == "" {
		return
	}
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	for i, c := range cases {
		caseID := c.ID
		delay := time.Duration(i) * s.cfg.LaunchStagger
		go func() {
			time.Sleep(delay)
			s.launch(gen, caseID)
		}()
	}
}

func (s *Supervisor) launch(gen int, caseID string) {
	s.mu.Lock()
	if gen != s.gen {
		// a newer reset superseded this generation before its offset fired
		s.mu.Unlock()
		return
	}
	args := append([]string{"simulate", "--case", caseID}, s.cfg.RunnerArgs...)
	cmd := exec.Command(s.cfg.RunnerExe, args...)
	setProcessGroup(cmd)
	if err := cmd.Start(); err != nil {
		s.mu.Unlock()
		log.Printf("Failed to start runner for %s: %v", caseID, err)
		return
	}
	s.procs[caseID] = cmd
	s.mu.Unlock()

	log.Printf("Launched runner for %s (pid %d)", caseID, cmd.Process.Pid)
	if err := cmd.Wait(); err != nil {
		log.Printf("Runner for %s exited: %v", caseID, err)
	}
	s.mu.Lock()
	if s.procs[caseID] == cmd {
		delete(s.procs, caseID)
	}
	s.mu.Unlock()
}

// killAll terminates every tracked runner by process group.
func (s *Supervisor) killAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for caseID, cmd := range s.procs {
		killProcessGroup(cmd)
		delete(s.procs, caseID)
	}
}

// Running returns the case IDs with a live tracked runner.
func (s *Supervisor) Running() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.procs))
	for id := range s.procs {
		ids = append(ids, id)
	}
	return ids
}

// Stop kills all tracked runners without touching the file store.
func (s *Supervisor) Stop() {
	s.killAll()
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
