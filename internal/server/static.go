package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// handleStatic serves the built UI. Real files are served directly,
// which gives the demo videos and PDFs byte-range support for free;
// anything else falls back to index.html so client-side routes work.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		s.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if strings.HasPrefix(r.URL.Path, "/api/") {
		s.errorResponse(w, http.StatusNotFound, "not found")
		return
	}
	if s.staticDir == "" {
		s.errorResponse(w, http.StatusNotFound, "static assets not configured")
		return
	}

	// Clean against the static root so ".." cannot escape it.
	name := filepath.Join(s.staticDir, filepath.Clean("/"+r.URL.Path))

	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)
		return
	}

	index := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		s.errorResponse(w, http.StatusNotFound, "not found")
		return
	}
	http.ServeFile(w, r, index)
}
