package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/conscient/onboarding-agent/internal/schemas"
	"github.com/conscient/onboarding-agent/internal/store"
	"github.com/conscient/onboarding-agent/internal/types"
)

// handleReset restores the demo to its initial state: email flag off,
// signals reseeded, fixture cases rewritten, queue and version index
// cleared, and a fresh generation of simulation runners launched.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.emailMu.Lock()
	s.emailSent = false
	s.emailMu.Unlock()

	if s.sup != nil {
		// Detached from the request context so a client disconnect
		// cannot abandon the reset halfway through.
		if err := s.sup.Reset(context.Background()); err != nil {
			log.Printf("Reset failed: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "reset failed")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleEmailStatus reports whether the simulated email has been sent.
func (s *Server) handleEmailStatus(w http.ResponseWriter, _ *http.Request) {
	s.emailMu.Lock()
	sent := s.emailSent
	s.emailMu.Unlock()

	s.jsonResponse(w, http.StatusOK, map[string]bool{"sent": sent})
}

func (s *Server) handleSetEmailStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sent bool `json:"sent"`
	}
	if !s.decodeJSON(w, r, &req) {
		return
	}

	s.emailMu.Lock()
	s.emailSent = req.Sent
	s.emailMu.Unlock()

	s.jsonResponse(w, http.StatusOK, map[string]any{"status": "ok", "sent": req.Sent})
}

// handleSignal asserts a named flag in the shared signal file.
func (s *Server) handleSignal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Signal string `json:"signal" validate:"required"`
	}
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "signal is required")
		return
	}

	if err := s.flags.Assert(req.Signal); err != nil {
		log.Printf("Error asserting signal %q: %v", req.Signal, err)
		s.errorResponse(w, HTTPStatus(err), "failed to record signal")
		return
	}

	log.Printf("Signal asserted: %s", req.Signal)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSignalStatus(w http.ResponseWriter, _ *http.Request) {
	snap, err := s.flags.Snapshot()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "failed to read signals")
		return
	}
	s.jsonResponse(w, http.StatusOK, snap)
}

// handleUpdateStatus updates a single case in the case list. Unknown
// case IDs are accepted and leave the list unchanged.
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID            string `json:"id" validate:"required"`
		Status        string `json:"status" validate:"required"`
		CurrentStatus string `json:"currentStatus"`
	}
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "id and status are required")
		return
	}
	status := types.CaseStatus(req.Status)
	if !status.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "unknown status value")
		return
	}

	var cases types.CaseList
	if _, err := store.ReadJSON(s.paths.CaseList(), &cases); err != nil {
		s.errorResponse(w, HTTPStatus(err), "failed to read case list")
		return
	}
	if cases.SetStatus(req.ID, status, req.CurrentStatus) {
		if err := store.WriteJSON(s.paths.CaseList(), cases); err != nil {
			s.errorResponse(w, HTTPStatus(err), "failed to write case list")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDebugPaths reports where the server resolves its state files,
// whether they exist, and whether they match their JSON schemas.
func (s *Server) handleDebugPaths(w http.ResponseWriter, _ *http.Request) {
	cwd, _ := os.Getwd()

	paths := map[string]string{
		"caseList":      s.paths.CaseList(),
		"signals":       s.paths.Signals(),
		"feedbackQueue": s.paths.FeedbackQueue(),
		"versionIndex":  s.paths.VersionIndex(),
		"knowledgeBase": s.paths.KnowledgeBase(),
		"snapshots":     s.paths.Snapshots(),
		"publicDir":     s.paths.PublicDir(),
	}

	exists := make(map[string]bool, len(paths))
	for name, p := range paths {
		_, err := os.Stat(p)
		exists[name] = err == nil
	}

	valid := map[string]string{
		"caseList":      schemaCheck(schemas.CaseList, s.paths.CaseList()),
		"feedbackQueue": schemaCheck(schemas.FeedbackQueue, s.paths.FeedbackQueue()),
		"versionIndex":  schemaCheck(schemas.KBVersions, s.paths.VersionIndex()),
	}
	logs, _ := filepath.Glob(filepath.Join(s.paths.DataDir, "process_*.json"))
	for _, p := range logs {
		valid[filepath.Base(p)] = schemaCheck(schemas.CaseLog, p)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"cwd":    cwd,
		"paths":  paths,
		"exists": exists,
		"schema": valid,
	})
}

func schemaCheck(schema, path string) string {
	if _, err := os.Stat(path); err != nil {
		return "missing"
	}
	if err := schemas.ValidateFile(schema, path); err != nil {
		return err.Error()
	}
	return "ok"
}
