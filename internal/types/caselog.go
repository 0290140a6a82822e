package types

// EntryStatus is the per-step status of an activity log entry.
type EntryStatus string

// Log entry statuses. A step is announced as "processing" and later
// finalized as success/warning/completed/error under the same entry ID.
const (
	EntryProcessing EntryStatus = "processing"
	EntrySuccess    EntryStatus = "success"
	EntryWarning    EntryStatus = "warning"
	EntryCompleted  EntryStatus = "completed"
	EntryError      EntryStatus = "error"
)

// ArtifactType identifies the payload shape of an artifact.
type ArtifactType string

// Artifact types attached to log entries.
const (
	ArtifactFile       ArtifactType = "file"
	ArtifactVideo      ArtifactType = "video"
	ArtifactJSON       ArtifactType = "json"
	ArtifactEmailDraft ArtifactType = "email_draft"
	ArtifactDecision   ArtifactType = "decision"
)

// Artifact is a typed, inspectable object produced by a workflow step.
// Only the payload field matching Type is populated.
type Artifact struct {
	ID        string         `json:"id"`
	Type      ArtifactType   `json:"type"`
	Label     string         `json:"label"`
	PDFPath   string         `json:"pdfPath,omitempty"`
	VideoPath string         `json:"videoPath,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Options   []string       `json:"options,omitempty"`
}

// LogEntry is one step of a case's narrated history. Entries are written
// twice under the same ID: once when the step starts and once when it ends.
type LogEntry struct {
	ID        string      `json:"id"`
	Time      string      `json:"time,omitempty"`
	Title     string      `json:"title"`
	Status    EntryStatus `json:"status"`
	Reasoning []string    `json:"reasoning,omitempty"`
	Artifacts []Artifact  `json:"artifacts,omitempty"`
}

// CaseLog is the per-case log document: the ordered activity log, a flat
// key/value map of case details shown in the sidebar, and a pinned artifact
// list the sidebar reads directly.
type CaseLog struct {
	Logs             []LogEntry        `json:"logs"`
	KeyDetails       map[string]string `json:"keyDetails"`
	SidebarArtifacts []Artifact        `json:"sidebarArtifacts"`
}

// NewCaseLog returns an empty log document with the given key details.
func NewCaseLog(keyDetails map[string]string) *CaseLog {
	if keyDetails == nil {
		keyDetails = map[string]string{}
	}
	return &CaseLog{Logs: []LogEntry{}, KeyDetails: keyDetails, SidebarArtifacts: []Artifact{}}
}

// Upsert merges entry into the log. A second write with the same ID updates
// the existing entry in place, so list position is fixed by first-write
// order. Zero-valued fields of entry leave the stored fields untouched,
// mirroring a shallow merge of the two writes.
func (c *CaseLog) Upsert(entry LogEntry) {
	for i := range c.Logs {
		if c.Logs[i].ID == entry.ID {
			merged := c.Logs[i]
			if entry.Time != "" {
				merged.Time = entry.Time
			}
			if entry.Title != "" {
				merged.Title = entry.Title
			}
			if entry.Status != "" {
				merged.Status = entry.Status
			}
			if entry.Reasoning != nil {
				merged.Reasoning = entry.Reasoning
			}
			if entry.Artifacts != nil {
				merged.Artifacts = entry.Artifacts
			}
			c.Logs[i] = merged
			return
		}
	}
	c.Logs = append(c.Logs, entry)
}

// MergeDetails folds updates into KeyDetails without dropping existing keys.
func (c *CaseLog) MergeDetails(updates map[string]string) {
	if len(updates) == 0 {
		return
	}
	if c.KeyDetails == nil {
		c.KeyDetails = map[string]string{}
	}
	for k, v := range updates {
		c.KeyDetails[k] = v
	}
}
