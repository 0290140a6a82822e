package schemas

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conscient/onboarding-agent/internal/runner/stories"
	"github.com/conscient/onboarding-agent/internal/store"
	"github.com/conscient/onboarding-agent/internal/types"
)

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("no_such_schema", []byte("{}"))
	assert.Error(t, err)
}

func TestValidate_FixtureCaseListMatchesSchema(t *testing.T) {
	data, err := json.Marshal(stories.FixtureCases("2026-03-14"))
	require.NoError(t, err)

	assert.NoError(t, Validate(CaseList, data))
}

func TestValidate_CaseListRejectsBadStatus(t *testing.T) {
	data := []byte(`[{
        "id": "VND_001", "name": "X", "category": "Vendor Onboarding",
        "stockId": "VRF-1", "status": "Almost Done", "currentStatus": "..."
    }]`)

	err := Validate(CaseList, data)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CaseList, verr.Schema)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidate_CaseLog(t *testing.T) {
	caseLog := types.NewCaseLog(map[string]string{"Vendor": "UltraTech"})
	caseLog.Upsert(types.LogEntry{
		ID:     "step-1",
		Time:   "10:02",
		Title:  "Scanning documents",
		Status: types.EntryProcessing,
	})
	caseLog.Upsert(types.LogEntry{
		ID:        "step-1",
		Title:     "Documents verified",
		Status:    types.EntrySuccess,
		Reasoning: []string{"All matched."},
		Artifacts: []types.Artifact{{ID: "a1", Type: types.ArtifactFile, Label: "GST Certificate", PDFPath: "/docs/gst.pdf"}},
	})

	caseLog.SidebarArtifacts = []types.Artifact{
		{ID: "pin-1", Type: types.ArtifactFile, Label: "Pinned Contract", PDFPath: "/docs/contract.pdf"},
	}

	data, err := json.Marshal(caseLog)
	require.NoError(t, err)
	assert.NoError(t, Validate(CaseLog, data))
}

func TestValidate_CaseLogRejectsBadSidebarArtifact(t *testing.T) {
	data := []byte(`{
        "logs": [], "keyDetails": {},
        "sidebarArtifacts": [{"id": "pin-1", "type": "hologram", "label": "x"}]
    }`)

	err := Validate(CaseLog, data)
	assert.Error(t, err)
}

func TestValidate_CaseLogRejectsUnknownEntryStatus(t *testing.T) {
	data := []byte(`{"logs": [{"id": "s1", "title": "t", "status": "exploded"}], "keyDetails": {}}`)

	err := Validate(CaseLog, data)
	assert.Error(t, err)
}

func TestValidate_FeedbackQueue(t *testing.T) {
	items := []types.FeedbackItem{{
		ID:       "fb-1",
		Feedback: "update the rates",
		Status:   types.FeedbackPending,
	}}
	data, err := json.Marshal(items)
	require.NoError(t, err)

	assert.NoError(t, Validate(FeedbackQueue, data))
	assert.NoError(t, Validate(FeedbackQueue, []byte("[]")))
}

func TestValidate_KBVersions(t *testing.T) {
	idx := types.VersionIndex{{
		ID:           1,
		Timestamp:    "2026-03-14T09:30:00Z",
		SnapshotFile: "kb_after_2026-03-14T09-30-00-123Z.md",
		PreviousFile: "kb_before_2026-03-14T09-30-00-123Z.md",
		Changes:      []string{"changed payment terms"},
	}}
	data, err := json.Marshal(idx)
	require.NoError(t, err)

	assert.NoError(t, Validate(KBVersions, data))
}

func TestValidate_KBVersionsRejectsForeignSnapshotNames(t *testing.T) {
	data := []byte(`[{
        "id": 1, "timestamp": "2026-03-14T09:30:00Z",
        "snapshotFile": "../../etc/passwd",
        "previousFile": "kb_before_x.md",
        "changes": []
    }]`)

	err := Validate(KBVersions, data)
	assert.Error(t, err)
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feedbackQueue.json")
	require.NoError(t, store.WriteJSON(path, []types.FeedbackItem{}))

	assert.NoError(t, ValidateFile(FeedbackQueue, path))
	assert.Error(t, ValidateFile(FeedbackQueue, filepath.Join(dir, "missing.json")))
}
