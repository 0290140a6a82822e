// Package server provides the HTTP coordination API for the onboarding demo.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/conscient/onboarding-agent/internal/config"
	"github.com/conscient/onboarding-agent/internal/feedback"
	"github.com/conscient/onboarding-agent/internal/kb"
	"github.com/conscient/onboarding-agent/internal/llm"
	sig "github.com/conscient/onboarding-agent/internal/signal"
	"github.com/conscient/onboarding-agent/internal/store"
	"github.com/conscient/onboarding-agent/internal/supervisor"
)

// Options carries the collaborators a Server needs. LLM may be nil, in
// which case the chat and feedback endpoints answer with fallbacks.
type Options struct {
	Config     *config.Config
	Paths      store.Paths
	Flags      *sig.Flags
	Queue      *feedback.Queue
	KB         *kb.Service
	LLM        llm.Client
	Supervisor *supervisor.Supervisor
	StaticDir  string
}

// Server is the coordination server. It owns the process-scoped email
// flag and fronts the flat-file state under Options.Paths.
type Server struct {
	cfg        *config.Config
	paths      store.Paths
	flags      *sig.Flags
	queue      *feedback.Queue
	kb         *kb.Service
	llm        llm.Client
	sup        *supervisor.Supervisor
	staticDir  string
	validate   *validator.Validate
	httpServer *http.Server

	emailMu   sync.Mutex
	emailSent bool
}

// New creates a Server and registers all routes.
func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if opts.Queue == nil || opts.KB == nil || opts.Flags == nil {
		return nil, fmt.Errorf("queue, kb and flags are required")
	}

	s := &Server{
		cfg:       opts.Config,
		paths:     opts.Paths,
		flags:     opts.Flags,
		queue:     opts.Queue,
		kb:        opts.KB,
		llm:       opts.LLM,
		sup:       opts.Supervisor,
		staticDir: opts.StaticDir,
		validate:  validator.New(),
	}

	mux := http.NewServeMux()

	// Coordination endpoints
	mux.HandleFunc("GET /reset", s.handleReset)
	mux.HandleFunc("GET /email-status", s.handleEmailStatus)
	mux.HandleFunc("POST /email-status", s.handleSetEmailStatus)
	mux.HandleFunc("POST /signal", s.handleSignal)
	mux.HandleFunc("GET /signal-status", s.handleSignalStatus)
	mux.HandleFunc("POST /api/update-status", s.handleUpdateStatus)
	mux.HandleFunc("GET /debug-paths", s.handleDebugPaths)

	// Chat and feedback endpoints
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("POST /api/feedback/questions", s.handleFeedbackQuestions)
	mux.HandleFunc("POST /api/feedback/summarize", s.handleFeedbackSummarize)
	mux.HandleFunc("GET /api/feedback/queue", s.handleFeedbackQueueList)
	mux.HandleFunc("POST /api/feedback/queue", s.handleFeedbackQueueAdd)
	mux.HandleFunc("DELETE /api/feedback/queue/{id}", s.handleFeedbackQueueDelete)
	mux.HandleFunc("POST /api/feedback/apply", s.handleFeedbackApply)

	// Knowledge base endpoints
	mux.HandleFunc("GET /api/kb/content", s.handleKBContent)
	mux.HandleFunc("GET /api/kb/versions", s.handleKBVersions)
	mux.HandleFunc("GET /api/kb/snapshot/{filename}", s.handleKBSnapshot)
	mux.HandleFunc("POST /api/kb/update", s.handleKBUpdate)

	// Static assets with SPA fallback
	mux.HandleFunc("/", s.handleStatic)

	s.httpServer = &http.Server{
		Addr:        fmt.Sprintf(":%d", opts.Config.GetPort()),
		Handler:     s.withLogging(s.withCORS(mux)),
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	return s, nil
}

// Handler exposes the full middleware-wrapped handler chain.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until an interrupt
// or SIGTERM arrives, then shuts the server down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.sup != nil {
		s.sup.Stop()
	}
	if s.llm != nil {
		if err := s.llm.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers and short-circuits preflight requests.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON parses a request body into v and reports decoding failures
// to the client. The caller should return immediately when ok is false.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
