// Package kb manages the knowledge-base document and its version history:
// the live markdown document, timestamp-named immutable snapshots, and the
// version index that makes the history restorable.
package kb

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/conscient/onboarding-agent/internal/llm"
	"github.com/conscient/onboarding-agent/internal/store"
	"github.com/conscient/onboarding-agent/internal/types"
)

// ErrVersionNotFound indicates the version index has no entry with that ID.
type ErrVersionNotFound struct {
	ID int
}

func (e *ErrVersionNotFound) Error() string {
	return fmt.Sprintf("knowledge base version not found: %d", e.ID)
}

// ErrSnapshotNotFound indicates the requested snapshot file does not exist
// or is not a plain filename.
type ErrSnapshotNotFound struct {
	Filename string
}

func (e *ErrSnapshotNotFound) Error() string {
	return fmt.Sprintf("snapshot not found: %s", e.Filename)
}

// Service exposes the knowledge-base lifecycle.
type Service struct {
	paths  store.Paths
	client llm.Client
	now    func() time.Time
}

// NewService returns a Service over the given store layout. client is used
// only by Apply.
func NewService(paths store.Paths, client llm.Client) *Service {
	return &Service{paths: paths, client: client, now: time.Now}
}

// Content returns the live knowledge-base document.
func (s *Service) Content() (string, error) {
	return store.ReadText(s.paths.KnowledgeBase())
}

// ContentAt returns the "after" snapshot content of the given version.
func (s *Service) ContentAt(versionID int) (string, error) {
	versions, err := s.Versions()
	if err != nil {
		return "", err
	}
	version := versions.Find(versionID)
	if version == nil {
		return "", &ErrVersionNotFound{ID: versionID}
	}
	return s.Snapshot(version.SnapshotFile)
}

// Update overwrites the live knowledge-base document.
func (s *Service) Update(content string) error {
	return store.WriteText(s.paths.KnowledgeBase(), content)
}

// Versions returns the version index, oldest first.
func (s *Service) Versions() (types.VersionIndex, error) {
	versions := types.VersionIndex{}
	if _, err := store.ReadJSON(s.paths.VersionIndex(), &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// Snapshot returns the content of a named snapshot file. The name must be a
// bare filename; anything path-like is rejected.
func (s *Service) Snapshot(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", &ErrSnapshotNotFound{Filename: filename}
	}
	content, err := store.ReadText(s.paths.Snapshot(filename))
	if err != nil {
		return "", err
	}
	if content == "" {
		return "", &ErrSnapshotNotFound{Filename: filename}
	}
	return content, nil
}

// ClearVersions empties the version index. Snapshot files are left in place;
// they are unreachable without an index entry.
func (s *Service) ClearVersions() error {
	return store.WriteJSON(s.paths.VersionIndex(), types.VersionIndex{})
}

// Apply rewrites the knowledge base according to the item's summary and
// records the change. The sequence is forward-only: the completion call runs
// first, so a service failure mutates nothing. Both snapshots are flushed
// before the version index references them, and the live document is
// replaced last. Returns the updated content.
//
// Removing the item from the feedback queue is the caller's responsibility.
func (s *Service) Apply(ctx context.Context, item types.FeedbackItem) (string, error) {
	current, err := s.Content()
	if err != nil {
		return "", err
	}

	prompt := llm.ApplyPrompt(current, item.Summary)
	updated, err := s.client.Complete(ctx, []llm.Message{{Role: "user", Content: prompt}}, "")
	if err != nil {
		return "", fmt.Errorf("completion service failed: %w", err)
	}

	now := s.now().UTC()
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(now.Format("2006-01-02T15:04:05.000Z07:00"))
	prevFile := fmt.Sprintf("kb_before_%s.md", stamp)
	snapFile := fmt.Sprintf("kb_after_%s.md", stamp)
	if err := store.WriteText(s.paths.Snapshot(prevFile), current); err != nil {
		return "", err
	}
	if err := store.WriteText(s.paths.Snapshot(snapFile), updated); err != nil {
		return "", err
	}

	versions, err := s.Versions()
	if err != nil {
		return "", err
	}
	versions = append(versions, types.KBVersion{
		ID:           versions.NextID(),
		Timestamp:    now.Format(time.RFC3339),
		SnapshotFile: snapFile,
		PreviousFile: prevFile,
		Changes:      []string{item.Summary},
	})
	if err := store.WriteJSON(s.paths.VersionIndex(), versions); err != nil {
		return "", err
	}

	if err := s.Update(updated); err != nil {
		return "", err
	}
	return updated, nil
}
