// Package llm - util.go provides shared utilities for completion response
// processing.
package llm

import (
	"encoding/json"
	"strings"
)

// FallbackQuestions is returned when the model's clarifying-question reply
// cannot be parsed as a JSON array.
var FallbackQuestions = []string{
	"Could you clarify?",
	"What specific section?",
	"Any examples?",
}

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// Models often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}
	return text
}

// ExtractStringArray pulls the first JSON array of strings out of a model
// reply. Returns ok=false when no parsable array is present.
func ExtractStringArray(text string) ([]string, bool) {
	text = CleanJSONBlock(text)
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return nil, false
	}
	var out []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
		return nil, false
	}
	return out, true
}

// ExtractQuestions parses a clarifying-questions reply, falling back to the
// generic question set when the reply is unparsable.
func ExtractQuestions(text string) []string {
	if questions, ok := ExtractStringArray(text); ok && len(questions) > 0 {
		return questions
	}
	return FallbackQuestions
}
