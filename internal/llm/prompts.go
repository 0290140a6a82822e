package llm

import (
	"fmt"
	"strings"
)

// KBChatSystemPrompt builds the system prompt for knowledge-base chat.
func KBChatSystemPrompt(knowledgeBase string) string {
	return fmt.Sprintf("You are an AI assistant for Conscient Infrastructure's vendor onboarding process. Use the following knowledge base to answer questions:\n\n%s\n\nBe helpful, accurate, and concise.", knowledgeBase)
}

// ClarifyingQuestionsPrompt asks for exactly three clarifying questions about
// a feedback submission, as a bare JSON array.
func ClarifyingQuestionsPrompt(feedback, knowledgeBase string) string {
	return fmt.Sprintf("Based on this feedback about a knowledge base, generate exactly 3 clarifying questions to better understand the requested change.\n\nKnowledge Base:\n%s\n\nFeedback:\n%s\n\nReturn ONLY a JSON array of 3 question strings, like: [\"Q1?\", \"Q2?\", \"Q3?\"]", knowledgeBase, feedback)
}

// SummarizePrompt folds the original feedback and the clarifying Q&A into a
// request for an actionable change summary.
func SummarizePrompt(feedback string, questions, answers []string, knowledgeBase string) string {
	var qa []string
	for i, q := range questions {
		a := ""
		if i < len(answers) {
			a = answers[i]
		}
		qa = append(qa, fmt.Sprintf("Q: %s\nA: %s", q, a))
	}
	return fmt.Sprintf("Summarize this feedback into a clear, actionable proposal for updating the knowledge base.\n\nOriginal feedback: %s\n\nClarifying Q&A:\n%s\n\nKnowledge Base context:\n%s\n\nProvide a concise summary of what should change.", feedback, strings.Join(qa, "\n\n"), knowledgeBase)
}

// ApplyPrompt asks for a full replacement knowledge-base document with the
// summarized feedback applied.
func ApplyPrompt(currentKB, summary string) string {
	return fmt.Sprintf("Update the following knowledge base based on this feedback. Return ONLY the updated knowledge base content, no explanations.\n\nCurrent Knowledge Base:\n%s\n\nFeedback to apply:\n%s\n\nReturn the complete updated knowledge base:", currentKB, summary)
}
