package types

// FeedbackStatus is the lifecycle state of a feedback item.
type FeedbackStatus string

// Feedback item statuses. Items enter the queue as "pending" and leave it
// when applied; "open" and "processing" are transient UI states.
const (
	FeedbackOpen       FeedbackStatus = "open"
	FeedbackPending    FeedbackStatus = "pending"
	FeedbackProcessing FeedbackStatus = "processing"
	FeedbackApplied    FeedbackStatus = "applied"
)

// FeedbackItem is a human-submitted change request to the knowledge base,
// enriched with LLM-generated clarifying questions and a summary.
type FeedbackItem struct {
	ID        string         `json:"id"`
	Title     string         `json:"title,omitempty"`
	Feedback  string         `json:"feedback"`
	Questions []string       `json:"questions,omitempty"`
	Answers   []string       `json:"answers,omitempty"`
	Summary   string         `json:"summary,omitempty"`
	Status    FeedbackStatus `json:"status"`
	CreatedAt string         `json:"createdAt,omitempty"`
	Timestamp string         `json:"timestamp,omitempty"`
}
