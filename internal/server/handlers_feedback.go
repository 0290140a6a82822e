package server

import (
	"log"
	"net/http"

	"github.com/conscient/onboarding-agent/internal/llm"
	"github.com/conscient/onboarding-agent/internal/types"
)

// handleFeedbackQuestions asks the LLM for clarifying questions about a
// piece of feedback. Model failures degrade to canned questions so the
// UI flow is never blocked.
func (s *Server) handleFeedbackQuestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title         string `json:"title"`
		Feedback      string `json:"feedback" validate:"required"`
		KnowledgeBase string `json:"knowledgeBase"`
	}
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "feedback is required")
		return
	}

	if s.llm == nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{"questions": llm.FallbackQuestions})
		return
	}

	knowledgeBase := req.KnowledgeBase
	if knowledgeBase == "" {
		content, err := s.kb.Content()
		if err != nil {
			log.Printf("Error reading knowledge base for questions: %v", err)
		}
		knowledgeBase = content
	}

	text, err := s.llm.Complete(r.Context(), []llm.Message{
		{Role: "user", Content: llm.ClarifyingQuestionsPrompt(req.Feedback, knowledgeBase)},
	}, "")
	if err != nil {
		log.Printf("Question generation failed, using fallback: %v", err)
		s.jsonResponse(w, http.StatusOK, map[string]any{"questions": llm.FallbackQuestions})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"questions": llm.ExtractQuestions(text)})
}

// handleFeedbackSummarize condenses feedback plus clarifying answers
// into a single actionable summary.
func (s *Server) handleFeedbackSummarize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Feedback      string   `json:"feedback" validate:"required"`
		Questions     []string `json:"questions"`
		Answers       []string `json:"answers"`
		KnowledgeBase string   `json:"knowledgeBase"`
	}
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "feedback is required")
		return
	}
	if s.llm == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "summarize model not configured")
		return
	}

	knowledgeBase := req.KnowledgeBase
	if knowledgeBase == "" {
		content, err := s.kb.Content()
		if err != nil {
			log.Printf("Error reading knowledge base for summary: %v", err)
		}
		knowledgeBase = content
	}

	summary, err := s.llm.Complete(r.Context(), []llm.Message{
		{Role: "user", Content: llm.SummarizePrompt(req.Feedback, req.Questions, req.Answers, knowledgeBase)},
	}, "")
	if err != nil {
		log.Printf("Summarization failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "summarization failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"summary": summary})
}

func (s *Server) handleFeedbackQueueList(w http.ResponseWriter, _ *http.Request) {
	items, err := s.queue.List()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "failed to read feedback queue")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"queue": items})
}

func (s *Server) handleFeedbackQueueAdd(w http.ResponseWriter, r *http.Request) {
	var item types.FeedbackItem
	if !s.decodeJSON(w, r, &item) {
		return
	}
	if item.Feedback == "" && item.Summary == "" {
		s.errorResponse(w, http.StatusBadRequest, "feedback or summary is required")
		return
	}

	stored, err := s.queue.Add(item)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "failed to queue feedback")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"status": "ok", "item": stored})
}

// handleFeedbackQueueDelete removes a queued item. Deleting an unknown
// ID succeeds; the queue simply stays as it was.
func (s *Server) handleFeedbackQueueDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.queue.Delete(r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), "failed to delete feedback item")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleFeedbackApply folds a queued feedback item into the knowledge
// base. The item leaves the queue only after the rewrite, snapshots,
// and version index entry have all been persisted.
func (s *Server) handleFeedbackApply(w http.ResponseWriter, r *http.Request) {
	// The UI posts {feedbackId}; {id} is accepted as an alias.
	var req struct {
		FeedbackID string `json:"feedbackId"`
		ID         string `json:"id"`
	}
	if !s.decodeJSON(w, r, &req) {
		return
	}
	id := req.FeedbackID
	if id == "" {
		id = req.ID
	}
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "feedbackId is required")
		return
	}

	item, err := s.queue.Get(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "feedback item not found")
		return
	}
	if s.llm == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "apply model not configured")
		return
	}

	content, err := s.kb.Apply(r.Context(), *item)
	if err != nil {
		log.Printf("Applying feedback %s failed: %v", id, err)
		s.errorResponse(w, HTTPStatus(err), "failed to apply feedback")
		return
	}

	if err := s.queue.Delete(id); err != nil {
		log.Printf("Error removing applied feedback %s from queue: %v", id, err)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "content": content})
}
