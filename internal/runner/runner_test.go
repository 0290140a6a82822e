package runner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conscient/onboarding-agent/internal/client"
	"github.com/conscient/onboarding-agent/internal/signal"
	"github.com/conscient/onboarding-agent/internal/store"
	"github.com/conscient/onboarding-agent/internal/types"
)

// statusPush records one update-status call seen by the fake server.
type statusPush struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	CurrentStatus string `json:"currentStatus"`
}

// fakeServer captures status pushes and serves the email-sent flag the way
// the coordination server does.
type fakeServer struct {
	mu        sync.Mutex
	pushes    []statusPush
	emailSent bool

	srv *httptest.Server
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	f := &fakeServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/update-status", func(w http.ResponseWriter, r *http.Request) {
		var push statusPush
		require.NoError(t, json.NewDecoder(r.Body).Decode(&push))
		f.mu.Lock()
		f.pushes = append(f.pushes, push)
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("GET /email-status", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		sent := f.emailSent
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]bool{"sent": sent}))
	})
	mux.HandleFunc("POST /email-status", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Sent bool `json:"sent"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		f.setEmail(req.Sent)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeServer) setEmail(sent bool) {
	f.mu.Lock()
	f.emailSent = sent
	f.mu.Unlock()
}

func (f *fakeServer) recorded() []statusPush {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]statusPush(nil), f.pushes...)
}

func newTestRunner(t *testing.T, baseURL string) (*Runner, store.Paths) {
	t.Helper()
	paths := store.DefaultPaths(t.TempDir())
	require.NoError(t, paths.EnsureLayout())
	r := New(Config{
		Paths:       paths,
		API:         client.New(baseURL),
		Flags:       signal.New(paths.Signals(), 5*time.Millisecond),
		StepDelay:   time.Millisecond,
		SettleDelay: time.Millisecond,
		EmailPoll:   5 * time.Millisecond,
	})
	return r, paths
}

func readCaseLog(t *testing.T, paths store.Paths, caseID string) *types.CaseLog {
	t.Helper()
	caseLog := types.NewCaseLog(nil)
	ok, err := store.ReadJSON(paths.CaseLog(caseID), caseLog)
	require.NoError(t, err)
	require.True(t, ok)
	return caseLog
}

func TestRunner_RunWritesLogAndPushesStatuses(t *testing.T) {
	f := newFakeServer(t)
	r, paths := newTestRunner(t, f.srv.URL)

	story := Story{
		CaseID:     "VND_T01",
		CaseName:   "Test Vendor",
		KeyDetails: map[string]string{"Vendor": "Test Vendor"},
		Steps: []Step{
			{
				ID:              "step-1",
				ProcessingTitle: "Scanning documents",
				ResultTitle:     "Documents verified",
				Reasoning:       []string{"All documents matched."},
			},
			{
				ID:              "step-2",
				ProcessingTitle: "Finalizing onboarding",
				ResultTitle:     "Vendor onboarded",
			},
		},
	}

	require.NoError(t, r.Run(context.Background(), story))

	caseLog := readCaseLog(t, paths, "VND_T01")
	require.Len(t, caseLog.Logs, 2)
	assert.Equal(t, "Documents verified", caseLog.Logs[0].Title)
	assert.Equal(t, types.EntrySuccess, caseLog.Logs[0].Status)
	assert.Equal(t, []string{"All documents matched."}, caseLog.Logs[0].Reasoning)
	assert.NotEmpty(t, caseLog.Logs[0].Time)
	// The last step finishes as "completed".
	assert.Equal(t, types.EntryCompleted, caseLog.Logs[1].Status)
	assert.Equal(t, "Test Vendor", caseLog.KeyDetails["Vendor"])

	pushes := f.recorded()
	require.NotEmpty(t, pushes)
	// Every push targets this case; the last one closes it out as Done.
	for _, p := range pushes {
		assert.Equal(t, "VND_T01", p.ID)
	}
	last := pushes[len(pushes)-1]
	assert.Equal(t, string(types.StatusDone), last.Status)
	assert.Equal(t, "Vendor onboarded", last.CurrentStatus)
}

func TestRunner_RunHonorsFinalStatusOverride(t *testing.T) {
	f := newFakeServer(t)
	r, _ := newTestRunner(t, f.srv.URL)

	story := Story{
		CaseID:      "VND_T02",
		CaseName:    "Escalated Vendor",
		FinalStatus: types.StatusNeedsReview,
		Steps: []Step{
			{ID: "step-1", ProcessingTitle: "Reviewing history", ResultTitle: "Escalated for senior review"},
		},
	}

	require.NoError(t, r.Run(context.Background(), story))

	pushes := f.recorded()
	require.NotEmpty(t, pushes)
	assert.Equal(t, string(types.StatusNeedsReview), pushes[len(pushes)-1].Status)
}

func TestRunner_RunRewritesLogFromScratch(t *testing.T) {
	f := newFakeServer(t)
	r, paths := newTestRunner(t, f.srv.URL)

	stale := types.NewCaseLog(map[string]string{"Old": "stale"})
	stale.Upsert(types.LogEntry{ID: "leftover", Title: "from a previous run", Status: types.EntryCompleted})
	require.NoError(t, store.WriteJSON(paths.CaseLog("VND_T03"), stale))

	story := Story{
		CaseID:   "VND_T03",
		CaseName: "Fresh Start",
		Steps:    []Step{{ID: "step-1", ProcessingTitle: "Starting", ResultTitle: "Started"}},
	}
	require.NoError(t, r.Run(context.Background(), story))

	caseLog := readCaseLog(t, paths, "VND_T03")
	require.Len(t, caseLog.Logs, 1)
	assert.Equal(t, "step-1", caseLog.Logs[0].ID)
	_, hasStale := caseLog.KeyDetails["Old"]
	assert.False(t, hasStale)
}

func TestRunner_SignalCheckpointBlocksUntilAsserted(t *testing.T) {
	f := newFakeServer(t)
	r, paths := newTestRunner(t, f.srv.URL)

	story := Story{
		CaseID:   "VND_T04",
		CaseName: "Blocked Vendor",
		Steps: []Step{
			{
				ID:              "step-1",
				ProcessingTitle: "Checking GSTIN",
				ResultTitle:     "GSTIN suspended, approval required",
				Checkpoint: &Checkpoint{
					Signal:        "APPROVE_REVERIFICATION",
					BlockedStatus: "Blocked: Awaiting approval",
					ResumeStatus:  "Approved: Proceeding with re-verification",
				},
			},
			{ID: "step-2", ProcessingTitle: "Re-verifying", ResultTitle: "Re-verification complete"},
		},
	}

	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background(), story) }()

	// The runner parks at the checkpoint with a warning entry and a
	// Needs Attention push.
	require.Eventually(t, func() bool {
		for _, p := range f.recorded() {
			if p.Status == string(types.StatusNeedsAttention) {
				return true
			}
		}
		return false
	}, 5*time.Second, 5*time.Millisecond)

	caseLog := readCaseLog(t, paths, "VND_T04")
	require.NotEmpty(t, caseLog.Logs)
	assert.Equal(t, types.EntryWarning, caseLog.Logs[0].Status)
	select {
	case err := <-done:
		t.Fatalf("runner finished while blocked: %v", err)
	default:
	}

	flags := signal.New(paths.Signals(), time.Millisecond)
	require.NoError(t, flags.Assert("APPROVE_REVERIFICATION"))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not resume after the signal was asserted")
	}

	// Without a resume title the warning entry stands as written.
	caseLog = readCaseLog(t, paths, "VND_T04")
	require.Len(t, caseLog.Logs, 2)
	assert.Equal(t, types.EntryWarning, caseLog.Logs[0].Status)
	assert.Equal(t, types.EntryCompleted, caseLog.Logs[1].Status)

	pushes := f.recorded()
	var resumed bool
	for _, p := range pushes {
		if p.CurrentStatus == "Approved: Proceeding with re-verification" {
			resumed = true
			assert.Equal(t, string(types.StatusInProgress), p.Status)
		}
	}
	assert.True(t, resumed, "expected a resume status push")
}

func TestRunner_EmailCheckpointClearsFlagThenWaits(t *testing.T) {
	f := newFakeServer(t)
	f.setEmail(true) // stale flag from a previous demo run
	r, paths := newTestRunner(t, f.srv.URL)

	story := Story{
		CaseID:   "VND_T05",
		CaseName: "Email Vendor",
		Steps: []Step{
			{
				ID:              "step-1",
				ProcessingTitle: "Drafting email",
				ResultTitle:     "Draft ready for review",
				Checkpoint: &Checkpoint{
					Email:         true,
					BlockedStatus: "Draft Review: Email Pending",
					ResumeTitle:   "Email sent to vendor requesting documents",
					ResumeStatus:  "Email sent to vendor",
				},
			},
			{ID: "step-2", ProcessingTitle: "Wrapping up", ResultTitle: "Complete"},
		},
	}

	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background(), story) }()

	// The runner clears the stale flag before polling, so it must still be
	// blocked even though the flag started out true.
	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return !f.emailSent
	}, 5*time.Second, 5*time.Millisecond)
	select {
	case err := <-done:
		t.Fatalf("runner finished without waiting for the email: %v", err)
	default:
	}

	time.Sleep(20 * time.Millisecond)
	f.setEmail(true)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not resume after the email was sent")
	}

	// The blocked entry is rewritten as success under the resume title.
	caseLog := readCaseLog(t, paths, "VND_T05")
	require.Len(t, caseLog.Logs, 2)
	assert.Equal(t, "Email sent to vendor requesting documents", caseLog.Logs[0].Title)
	assert.Equal(t, types.EntrySuccess, caseLog.Logs[0].Status)
}

func TestRunner_PushStatusFallsBackToDirectFileWrite(t *testing.T) {
	// Point at a closed port so every HTTP push fails.
	r, paths := newTestRunner(t, "http://127.0.0.1:1")

	cases := types.CaseList{{ID: "VND_T06", Name: "Offline Vendor", Status: types.StatusInProgress}}
	require.NoError(t, store.WriteJSON(paths.CaseList(), cases))

	story := Story{
		CaseID:   "VND_T06",
		CaseName: "Offline Vendor",
		Steps:    []Step{{ID: "step-1", ProcessingTitle: "Working", ResultTitle: "Finished"}},
	}
	require.NoError(t, r.Run(context.Background(), story))

	var got types.CaseList
	ok, err := store.ReadJSON(paths.CaseList(), &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, types.StatusDone, got[0].Status)
	assert.Equal(t, "Finished", got[0].CurrentStatus)
}

func TestRunner_RunHonorsCancellation(t *testing.T) {
	f := newFakeServer(t)
	r, _ := newTestRunner(t, f.srv.URL)

	story := Story{
		CaseID:   "VND_T07",
		CaseName: "Cancelled Vendor",
		Steps: []Step{
			{
				ID:              "step-1",
				ProcessingTitle: "Waiting forever",
				ResultTitle:     "Blocked",
				Checkpoint:      &Checkpoint{Signal: "NEVER_RAISED"},
			},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := r.Run(ctx, story)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
