package stories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conscient/onboarding-agent/internal/types"
)

func TestAll_CoversEveryFixtureCase(t *testing.T) {
	stories := All()
	require.Len(t, stories, 4)

	byID := map[string]bool{}
	for _, story := range stories {
		byID[story.CaseID] = true
		assert.NotEmpty(t, story.CaseName)
		assert.NotEmpty(t, story.Steps)
		assert.NotEmpty(t, story.KeyDetails)
		// Step IDs are unique within a story; the two-phase log writes
		// rely on that.
		seen := map[string]bool{}
		for _, step := range story.Steps {
			assert.False(t, seen[step.ID], "%s: duplicate step %s", story.CaseID, step.ID)
			seen[step.ID] = true
			assert.NotEmpty(t, step.ProcessingTitle, "%s: step %s", story.CaseID, step.ID)
		}
	}

	for _, c := range FixtureCases("2026-03-14") {
		assert.True(t, byID[c.ID], "no story for fixture case %s", c.ID)
	}
}

func TestFind(t *testing.T) {
	story, ok := Find("VND_002")
	require.True(t, ok)
	assert.Equal(t, "VND_002", story.CaseID)

	_, ok = Find("VND_999")
	assert.False(t, ok)
}

func TestJindalStory_BlocksOnApprovalSignal(t *testing.T) {
	story := JindalSteel()

	var checkpoints int
	for _, step := range story.Steps {
		if step.Checkpoint == nil {
			continue
		}
		checkpoints++
		assert.Equal(t, ApproveReverification, step.Checkpoint.Signal)
		assert.False(t, step.Checkpoint.Email)
		assert.NotEmpty(t, step.Checkpoint.ResumeStatus)
	}
	assert.Equal(t, 1, checkpoints)
}

func TestDaikinStory_BlocksOnEmail(t *testing.T) {
	story := Daikin()

	var checkpoints int
	for _, step := range story.Steps {
		if step.Checkpoint == nil {
			continue
		}
		checkpoints++
		assert.True(t, step.Checkpoint.Email)
		assert.Empty(t, step.Checkpoint.Signal)
		assert.NotEmpty(t, step.Checkpoint.ResumeTitle)
	}
	assert.Equal(t, 1, checkpoints)
}

func TestUltraTechStory_HasNoCheckpoints(t *testing.T) {
	for _, step := range UltraTech().Steps {
		assert.Nil(t, step.Checkpoint, "step %s", step.ID)
	}
}

func TestDesignCraftStory_EndsInReview(t *testing.T) {
	story := DesignCraft()
	assert.Equal(t, types.StatusNeedsReview, story.FinalStatus)
	for _, step := range story.Steps {
		assert.Nil(t, step.Checkpoint, "step %s", step.ID)
	}
}

func TestFixtureCases(t *testing.T) {
	cases := FixtureCases("2026-03-14")
	require.Len(t, cases, 4)

	for _, c := range cases {
		assert.Equal(t, types.StatusInProgress, c.Status)
		assert.Equal(t, "Initializing...", c.CurrentStatus)
		assert.Equal(t, "2026-03-14", c.Year)
		assert.Equal(t, "Vendor Onboarding", c.Category)
		assert.NotEmpty(t, c.StockID)
	}
	assert.Equal(t, "VND_001", cases[0].ID)
	assert.Equal(t, "Jindal Steel & Power Ltd", cases[1].VendorName)
}
