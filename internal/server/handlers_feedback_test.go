package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conscient/onboarding-agent/internal/llm"
	"github.com/conscient/onboarding-agent/internal/store"
	"github.com/conscient/onboarding-agent/internal/types"
)

func TestHandleFeedbackQuestions(t *testing.T) {
	s, _ := setupTestServer(t, &stubClient{reply: `["Which section?", "Which vendor?", "Since when?"]`})

	w := doJSON(t, s, http.MethodPost, "/api/feedback/questions", map[string]string{
		"feedback": "The payment terms are outdated",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Questions []string `json:"questions"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, []string{"Which section?", "Which vendor?", "Since when?"}, resp.Questions)
}

func TestHandleFeedbackQuestions_FallsBackOnModelFailure(t *testing.T) {
	s, _ := setupTestServer(t, &stubClient{err: errors.New("model unavailable")})

	w := doJSON(t, s, http.MethodPost, "/api/feedback/questions", map[string]string{
		"feedback": "anything",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Questions []string `json:"questions"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, llm.FallbackQuestions, resp.Questions)
}

func TestHandleFeedbackQuestions_UsesBodyKnowledgeBase(t *testing.T) {
	client := &recordingClient{reply: `["Q1?", "Q2?", "Q3?"]`}
	s, paths := setupTestServer(t, client)
	require.NoError(t, store.WriteText(paths.KnowledgeBase(), "# Live KB"))

	w := doJSON(t, s, http.MethodPost, "/api/feedback/questions", map[string]string{
		"feedback":      "the rates changed",
		"knowledgeBase": "# Historical KB under review",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, client.messages, 1)
	assert.Contains(t, client.messages[0].Content, "# Historical KB under review")
	assert.NotContains(t, client.messages[0].Content, "# Live KB")
}

func TestHandleFeedbackQuestions_FallsBackToLiveKnowledgeBase(t *testing.T) {
	client := &recordingClient{reply: `["Q1?", "Q2?", "Q3?"]`}
	s, paths := setupTestServer(t, client)
	require.NoError(t, store.WriteText(paths.KnowledgeBase(), "# Live KB"))

	w := doJSON(t, s, http.MethodPost, "/api/feedback/questions", map[string]string{
		"feedback": "the rates changed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, client.messages, 1)
	assert.Contains(t, client.messages[0].Content, "# Live KB")
}

func TestHandleFeedbackQuestions_RequiresFeedback(t *testing.T) {
	s, _ := setupTestServer(t, &stubClient{})

	w := doJSON(t, s, http.MethodPost, "/api/feedback/questions", map[string]string{"title": "no body"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFeedbackSummarize(t *testing.T) {
	s, _ := setupTestServer(t, &stubClient{reply: "Update NET-60 to NET-45 in the payment section."})

	w := doJSON(t, s, http.MethodPost, "/api/feedback/summarize", map[string]any{
		"feedback":  "payment terms are wrong",
		"questions": []string{"Which terms?"},
		"answers":   []string{"NET-60 should be NET-45"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Equal(t, "Update NET-60 to NET-45 in the payment section.", resp["summary"])
}

func TestHandleFeedbackSummarize_UsesBodyKnowledgeBase(t *testing.T) {
	client := &recordingClient{reply: "summary"}
	s, paths := setupTestServer(t, client)
	require.NoError(t, store.WriteText(paths.KnowledgeBase(), "# Live KB"))

	w := doJSON(t, s, http.MethodPost, "/api/feedback/summarize", map[string]any{
		"feedback":      "payment terms are wrong",
		"knowledgeBase": "# Historical KB under review",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, client.messages, 1)
	assert.Contains(t, client.messages[0].Content, "# Historical KB under review")
	assert.NotContains(t, client.messages[0].Content, "# Live KB")
}

func TestHandleFeedbackSummarize_ModelFailure(t *testing.T) {
	s, _ := setupTestServer(t, &stubClient{err: errors.New("model unavailable")})

	w := doJSON(t, s, http.MethodPost, "/api/feedback/summarize", map[string]string{"feedback": "x"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleFeedbackQueue_AddListDelete(t *testing.T) {
	s, _ := setupTestServer(t, &stubClient{})

	w := doJSON(t, s, http.MethodPost, "/api/feedback/queue", map[string]string{
		"title":    "Payment terms",
		"feedback": "NET-60 should be NET-45",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var addResp struct {
		Status string             `json:"status"`
		Item   types.FeedbackItem `json:"item"`
	}
	decodeBody(t, w, &addResp)
	assert.Equal(t, "ok", addResp.Status)
	require.NotEmpty(t, addResp.Item.ID)
	assert.Equal(t, types.FeedbackPending, addResp.Item.Status)

	w = doJSON(t, s, http.MethodGet, "/api/feedback/queue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Queue []types.FeedbackItem `json:"queue"`
	}
	decodeBody(t, w, &listResp)
	require.Len(t, listResp.Queue, 1)
	assert.Equal(t, addResp.Item.ID, listResp.Queue[0].ID)

	w = doJSON(t, s, http.MethodDelete, "/api/feedback/queue/"+addResp.Item.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/feedback/queue", nil)
	decodeBody(t, w, &listResp)
	assert.Empty(t, listResp.Queue)

	// Deleting again still succeeds.
	w = doJSON(t, s, http.MethodDelete, "/api/feedback/queue/"+addResp.Item.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleFeedbackQueueAdd_RequiresContent(t *testing.T) {
	s, _ := setupTestServer(t, &stubClient{})

	w := doJSON(t, s, http.MethodPost, "/api/feedback/queue", map[string]string{"title": "empty"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFeedbackApply(t *testing.T) {
	client := &stubClient{reply: "# KB v2\n\nNET-45 everywhere."}
	s, paths := setupTestServer(t, client)
	require.NoError(t, store.WriteText(paths.KnowledgeBase(), "# KB v1\n\nNET-60."))

	w := doJSON(t, s, http.MethodPost, "/api/feedback/queue", map[string]string{
		"feedback": "fix payout terms",
		"summary":  "Replace NET-60 with NET-45.",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var addResp struct {
		Item types.FeedbackItem `json:"item"`
	}
	decodeBody(t, w, &addResp)

	w = doJSON(t, s, http.MethodPost, "/api/feedback/apply", map[string]string{"feedbackId": addResp.Item.ID})
	require.Equal(t, http.StatusOK, w.Code)
	var applyResp struct {
		Success bool   `json:"success"`
		Content string `json:"content"`
	}
	decodeBody(t, w, &applyResp)
	assert.True(t, applyResp.Success)
	assert.Equal(t, client.reply, applyResp.Content)

	// Applied item left the queue.
	w = doJSON(t, s, http.MethodGet, "/api/feedback/queue", nil)
	var listResp struct {
		Queue []types.FeedbackItem `json:"queue"`
	}
	decodeBody(t, w, &listResp)
	assert.Empty(t, listResp.Queue)

	// Live document replaced and one version recorded.
	content, err := store.ReadText(paths.KnowledgeBase())
	require.NoError(t, err)
	assert.Equal(t, client.reply, content)
	var versions types.VersionIndex
	_, err = store.ReadJSON(paths.VersionIndex(), &versions)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, 1, versions[0].ID)
}

func TestHandleFeedbackApply_AcceptsIDAlias(t *testing.T) {
	client := &stubClient{reply: "updated"}
	s, _ := setupTestServer(t, client)

	w := doJSON(t, s, http.MethodPost, "/api/feedback/queue", map[string]string{"feedback": "x", "summary": "y"})
	require.Equal(t, http.StatusOK, w.Code)
	var addResp struct {
		Item types.FeedbackItem `json:"item"`
	}
	decodeBody(t, w, &addResp)

	w = doJSON(t, s, http.MethodPost, "/api/feedback/apply", map[string]string{"id": addResp.Item.ID})
	require.Equal(t, http.StatusOK, w.Code)
	var applyResp struct {
		Success bool `json:"success"`
	}
	decodeBody(t, w, &applyResp)
	assert.True(t, applyResp.Success)
}

func TestHandleFeedbackApply_RequiresFeedbackID(t *testing.T) {
	s, _ := setupTestServer(t, &stubClient{reply: "x"})

	w := doJSON(t, s, http.MethodPost, "/api/feedback/apply", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFeedbackApply_UnknownID(t *testing.T) {
	s, _ := setupTestServer(t, &stubClient{reply: "x"})

	w := doJSON(t, s, http.MethodPost, "/api/feedback/apply", map[string]string{"feedbackId": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleFeedbackApply_ModelFailureKeepsItemQueued(t *testing.T) {
	s, _ := setupTestServer(t, &stubClient{err: errors.New("model unavailable")})

	w := doJSON(t, s, http.MethodPost, "/api/feedback/queue", map[string]string{"feedback": "x", "summary": "y"})
	require.Equal(t, http.StatusOK, w.Code)
	var addResp struct {
		Item types.FeedbackItem `json:"item"`
	}
	decodeBody(t, w, &addResp)

	w = doJSON(t, s, http.MethodPost, "/api/feedback/apply", map[string]string{"feedbackId": addResp.Item.ID})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/feedback/queue", nil)
	var listResp struct {
		Queue []types.FeedbackItem `json:"queue"`
	}
	decodeBody(t, w, &listResp)
	assert.Len(t, listResp.Queue, 1)
}
