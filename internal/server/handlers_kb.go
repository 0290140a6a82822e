package server

import (
	"net/http"
	"strconv"
)

// handleKBContent returns the live knowledge base, or a historical
// version when versionId is given.
func (s *Server) handleKBContent(w http.ResponseWriter, r *http.Request) {
	var (
		content string
		err     error
	)
	if raw := r.URL.Query().Get("versionId"); raw != "" {
		id, convErr := strconv.Atoi(raw)
		if convErr != nil {
			s.errorResponse(w, http.StatusBadRequest, "versionId must be an integer")
			return
		}
		content, err = s.kb.ContentAt(id)
	} else {
		content, err = s.kb.Content()
	}
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "failed to read knowledge base")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"content": content})
}

func (s *Server) handleKBVersions(w http.ResponseWriter, _ *http.Request) {
	versions, err := s.kb.Versions()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "failed to read version index")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"versions": versions})
}

// handleKBSnapshot serves a stored before/after snapshot as markdown.
func (s *Server) handleKBSnapshot(w http.ResponseWriter, r *http.Request) {
	content, err := s.kb.Snapshot(r.PathValue("filename"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "snapshot not found")
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(content)); err != nil {
		return
	}
}

func (s *Server) handleKBUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content" validate:"required"`
	}
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	if err := s.kb.Update(req.Content); err != nil {
		s.errorResponse(w, HTTPStatus(err), "failed to write knowledge base")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
