// Package runner implements the case simulation state machine: a sequential
// script that advances a per-case activity log step by step, pauses at
// checkpoint steps until a human-originated signal arrives, and pushes
// case-level status updates to the coordination server as it goes.
package runner

import (
	"context"
	"log"
	"time"

	"github.com/conscient/onboarding-agent/internal/client"
	"github.com/conscient/onboarding-agent/internal/signal"
	"github.com/conscient/onboarding-agent/internal/store"
	"github.com/conscient/onboarding-agent/internal/types"
)

// Checkpoint marks a step that blocks until a human decision. Exactly one of
// Signal or Email is set.
type Checkpoint struct {
	// Signal is the named file-backed flag to wait for.
	Signal string
	// Email waits on the server's email-sent flag instead of a named signal.
	Email bool
	// BlockedStatus is the currentStatus pushed while blocked.
	BlockedStatus string
	// ResumeTitle, when set, rewrites the entry title with status "success"
	// after the block lifts. When empty the warning entry stands as written.
	ResumeTitle string
	// ResumeStatus is the currentStatus pushed when the block lifts.
	ResumeStatus string
}

// Step is one scripted step of a case's story.
type Step struct {
	ID              string
	ProcessingTitle string
	ResultTitle     string
	Reasoning       []string
	Artifacts       []types.Artifact
	Checkpoint      *Checkpoint
}

// Story is the fixed script for one case.
type Story struct {
	CaseID     string
	CaseName   string
	KeyDetails map[string]string
	Steps      []Step
	// FinalStatus is pushed with the last step; defaults to "Done".
	FinalStatus types.CaseStatus
	// StepDelay overrides the configured per-step work delay when positive.
	StepDelay time.Duration
}

// Config carries the runner's collaborators and tunable delays.
type Config struct {
	Paths store.Paths
	API   *client.Client
	Flags *signal.Flags
	// StepDelay models work happening between the processing and result
	// phases of a step.
	StepDelay time.Duration
	// SettleDelay is the pause after a step's result phase.
	SettleDelay time.Duration
	// EmailPoll is the poll cadence for the email-sent flag.
	EmailPoll time.Duration
}

// Runner executes one story to completion.
type Runner struct {
	cfg Config
}

// New returns a Runner with defaults filled in for unset delays.
func New(cfg Config) *Runner {
	if cfg.StepDelay <= 0 {
		cfg.StepDelay = 2 * time.Second
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = 1500 * time.Millisecond
	}
	if cfg.EmailPoll <= 0 {
		cfg.EmailPoll = 2 * time.Second
	}
	return &Runner{cfg: cfg}
}

// Run executes the story's step list in order. Each step is two-phase: a
// "processing" log entry plus an "In Progress" status push, then after the
// work delay either the terminal entry or a checkpoint block. Cancellation
// via ctx is observed between phases and inside every wait.
func (r *Runner) Run(ctx context.Context, story Story) error {
	log.Printf("Starting %s: %s", story.CaseID, story.CaseName)

	logPath := r.cfg.Paths.CaseLog(story.CaseID)
	if err := store.WriteJSON(logPath, types.NewCaseLog(story.KeyDetails)); err != nil {
		return err
	}

	finalStatus := story.FinalStatus
	if finalStatus == "" {
		finalStatus = types.StatusDone
	}
	stepDelay := r.cfg.StepDelay
	if story.StepDelay > 0 {
		stepDelay = story.StepDelay
	}

	for i, step := range story.Steps {
		isFinal := i == len(story.Steps)-1

		r.updateLog(logPath, types.LogEntry{
			ID:     step.ID,
			Time:   time.Now().Format("15:04"),
			Title:  step.ProcessingTitle,
			Status: types.EntryProcessing,
		})
		r.pushStatus(ctx, story.CaseID, types.StatusInProgress, step.ProcessingTitle)
		if err := sleep(ctx, stepDelay); err != nil {
			return err
		}

		if cp := step.Checkpoint; cp != nil {
			if err := r.runCheckpoint(ctx, logPath, story.CaseID, step, cp); err != nil {
				return err
			}
			continue
		}

		status := types.EntrySuccess
		if isFinal {
			status = types.EntryCompleted
		}
		r.updateLog(logPath, types.LogEntry{
			ID:        step.ID,
			Title:     step.ResultTitle,
			Status:    status,
			Reasoning: step.Reasoning,
			Artifacts: step.Artifacts,
		})
		caseStatus := types.StatusInProgress
		if isFinal {
			caseStatus = finalStatus
		}
		r.pushStatus(ctx, story.CaseID, caseStatus, step.ResultTitle)
		if err := sleep(ctx, r.cfg.SettleDelay); err != nil {
			return err
		}
	}

	log.Printf("%s Complete: %s", story.CaseID, story.CaseName)
	return nil
}

// runCheckpoint writes the warning entry, pushes "Needs Attention", blocks on
// the checkpoint's channel and pushes the resumption status.
func (r *Runner) runCheckpoint(ctx context.Context, logPath, caseID string, step Step, cp *Checkpoint) error {
	blockedStatus := cp.BlockedStatus
	if blockedStatus == "" {
		blockedStatus = step.ResultTitle
	}
	r.updateLog(logPath, types.LogEntry{
		ID:        step.ID,
		Time:      time.Now().Format("15:04"),
		Title:     step.ResultTitle,
		Status:    types.EntryWarning,
		Reasoning: step.Reasoning,
		Artifacts: step.Artifacts,
	})
	r.pushStatus(ctx, caseID, types.StatusNeedsAttention, blockedStatus)

	if cp.Email {
		if err := r.waitForEmail(ctx); err != nil {
			return err
		}
	} else {
		log.Printf("Waiting for human signal: %s...", cp.Signal)
		if err := r.cfg.Flags.WaitFor(ctx, cp.Signal); err != nil {
			return err
		}
		log.Printf("Signal %s received!", cp.Signal)
	}

	if cp.ResumeTitle != "" {
		r.updateLog(logPath, types.LogEntry{
			ID:        step.ID,
			Title:     cp.ResumeTitle,
			Status:    types.EntrySuccess,
			Reasoning: step.Reasoning,
			Artifacts: step.Artifacts,
		})
	}
	r.pushStatus(ctx, caseID, types.StatusInProgress, cp.ResumeStatus)
	if cp.ResumeTitle != "" {
		return sleep(ctx, r.cfg.SettleDelay)
	}
	return nil
}

// waitForEmail clears the server-side flag, then polls it until an operator
// sends the drafted email.
func (r *Runner) waitForEmail(ctx context.Context) error {
	log.Printf("Waiting for user to send email...")
	if err := r.cfg.API.SetEmailSent(ctx, false); err != nil {
		log.Printf("Failed to clear email flag: %v", err)
	}
	ticker := time.NewTicker(r.cfg.EmailPoll)
	defer ticker.Stop()
	for {
		sent, err := r.cfg.API.EmailSent(ctx)
		if err == nil && sent {
			log.Printf("Email sent!")
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// updateLog upserts entry into the per-case log document. Log-write failures
// are logged and swallowed: a runner killed mid-step leaves whatever was
// last flushed.
func (r *Runner) updateLog(logPath string, entry types.LogEntry) {
	caseLog := types.NewCaseLog(nil)
	if _, err := store.ReadJSON(logPath, caseLog); err != nil {
		log.Printf("Failed to read case log %s: %v", logPath, err)
	}
	caseLog.Upsert(entry)
	if err := store.WriteJSON(logPath, caseLog); err != nil {
		log.Printf("Failed to write case log %s: %v", logPath, err)
	}
}

// pushStatus delivers a case-status update over HTTP, falling back to a
// direct case-list mutation with the same upsert-by-id semantics when the
// server is unreachable.
func (r *Runner) pushStatus(ctx context.Context, caseID string, status types.CaseStatus, currentStatus string) {
	if err := r.cfg.API.UpdateStatus(ctx, caseID, status, currentStatus); err == nil {
		return
	}
	listPath := r.cfg.Paths.CaseList()
	cases := types.CaseList{}
	if ok, err := store.ReadJSON(listPath, &cases); !ok || err != nil {
		return
	}
	if !cases.SetStatus(caseID, status, currentStatus) {
		return
	}
	if err := store.WriteJSON(listPath, cases); err != nil {
		log.Printf("Failed to write case list %s: %v", listPath, err)
	}
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
