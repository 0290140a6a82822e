package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `["a"]`, CleanJSONBlock("```json\n[\"a\"]\n```"))
	assert.Equal(t, `["a"]`, CleanJSONBlock("```\n[\"a\"]\n```"))
	assert.Equal(t, `["a"]`, CleanJSONBlock(`["a"]`))
	assert.Equal(t, `{"k": 1}`, CleanJSONBlock("  {\"k\": 1}  "))
}

func TestExtractStringArray(t *testing.T) {
	questions, ok := ExtractStringArray(`Here you go: ["Q1?", "Q2?", "Q3?"] hope that helps`)
	assert.True(t, ok)
	assert.Equal(t, []string{"Q1?", "Q2?", "Q3?"}, questions)

	questions, ok = ExtractStringArray("```json\n[\"only one\"]\n```")
	assert.True(t, ok)
	assert.Equal(t, []string{"only one"}, questions)

	_, ok = ExtractStringArray("no array here")
	assert.False(t, ok)

	_, ok = ExtractStringArray(`[1, 2, 3]`)
	assert.False(t, ok)
}

func TestExtractQuestions_FallsBack(t *testing.T) {
	assert.Equal(t, FallbackQuestions, ExtractQuestions("the model rambled instead"))
	assert.Equal(t, FallbackQuestions, ExtractQuestions("[]"))
	assert.Equal(t, []string{"Q1?"}, ExtractQuestions(`["Q1?"]`))
}

func TestPrompts_EmbedInputs(t *testing.T) {
	assert.Contains(t, KBChatSystemPrompt("KB BODY"), "KB BODY")

	p := ClarifyingQuestionsPrompt("fix the rates", "KB BODY")
	assert.Contains(t, p, "fix the rates")
	assert.Contains(t, p, "exactly 3 clarifying questions")

	p = SummarizePrompt("fix the rates", []string{"Which rates?"}, []string{"Steel rates"}, "KB BODY")
	assert.Contains(t, p, "Q: Which rates?")
	assert.Contains(t, p, "A: Steel rates")

	p = SummarizePrompt("fb", []string{"Q1?", "Q2?"}, []string{"A1"}, "kb")
	assert.Contains(t, p, "Q: Q2?\nA: ")

	p = ApplyPrompt("CURRENT KB", "THE SUMMARY")
	assert.Contains(t, p, "CURRENT KB")
	assert.Contains(t, p, "THE SUMMARY")
}
