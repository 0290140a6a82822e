package server

import (
	"log"
	"net/http"

	"github.com/conscient/onboarding-agent/internal/llm"
)

// chatRequest accepts both wire shapes the UI has used: a full message
// transcript with an optional system prompt, or a single message with
// prior history and an inline knowledge base.
type chatRequest struct {
	Messages     []llm.Message `json:"messages"`
	SystemPrompt string        `json:"systemPrompt"`

	Message       string        `json:"message"`
	History       []llm.Message `json:"history"`
	KnowledgeBase string        `json:"knowledgeBase"`
}

// handleChat answers a knowledge-base question through the LLM.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.llm == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "chat model not configured")
		return
	}

	var req chatRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	messages := req.Messages
	if len(messages) == 0 {
		if req.Message == "" {
			s.errorResponse(w, http.StatusBadRequest, "message is required")
			return
		}
		messages = append(req.History, llm.Message{Role: "user", Content: req.Message})
	}

	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		knowledgeBase := req.KnowledgeBase
		if knowledgeBase == "" {
			content, err := s.kb.Content()
			if err != nil {
				log.Printf("Error reading knowledge base for chat: %v", err)
			}
			knowledgeBase = content
		}
		systemPrompt = llm.KBChatSystemPrompt(knowledgeBase)
	}

	response, err := s.llm.Complete(r.Context(), messages, systemPrompt)
	if err != nil {
		log.Printf("Chat completion failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "chat completion failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"response": response})
}
