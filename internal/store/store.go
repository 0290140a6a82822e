// Package store implements the shared file store backing the demo: a set of
// JSON documents and markdown files on disk that the coordination server and
// the simulation runners read and write concurrently. Writers always replace
// documents atomically (temp file + rename); readers treat missing or
// partially written files as "no data yet" rather than failing.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Paths resolves the on-disk layout of the shared file store.
type Paths struct {
	// DataDir holds the UI-visible documents: the case list, per-case
	// logs, the version index and snapshots.
	DataDir string
	// StateDir holds server-private state: signal flags and the feedback
	// queue.
	StateDir string
	// KBDir holds the live knowledge-base document.
	KBDir string
}

// DefaultPaths returns the layout rooted at baseDir.
func DefaultPaths(baseDir string) Paths {
	return Paths{
		DataDir:  filepath.Join(baseDir, "public", "data"),
		StateDir: baseDir,
		KBDir:    filepath.Join(baseDir, "src", "data"),
	}
}

// CaseList returns the path of the case-list document.
func (p Paths) CaseList() string { return filepath.Join(p.DataDir, "processes.json") }

// CaseLog returns the path of the per-case log document for a case ID.
func (p Paths) CaseLog(caseID string) string {
	return filepath.Join(p.DataDir, fmt.Sprintf("process_%s.json", caseID))
}

// Signals returns the path of the signal-flag document.
func (p Paths) Signals() string { return filepath.Join(p.StateDir, "interaction-signals.json") }

// FeedbackQueue returns the path of the feedback-queue document.
func (p Paths) FeedbackQueue() string { return filepath.Join(p.StateDir, "feedbackQueue.json") }

// VersionIndex returns the path of the knowledge-base version index.
func (p Paths) VersionIndex() string { return filepath.Join(p.DataDir, "kbVersions.json") }

// Snapshots returns the snapshot directory.
func (p Paths) Snapshots() string { return filepath.Join(p.DataDir, "snapshots") }

// Snapshot returns the path of a named snapshot file.
func (p Paths) Snapshot(filename string) string { return filepath.Join(p.Snapshots(), filename) }

// KnowledgeBase returns the path of the live knowledge-base document.
func (p Paths) KnowledgeBase() string { return filepath.Join(p.KBDir, "knowledgeBase.md") }

// PublicDir returns the static-file root served to the browser.
func (p Paths) PublicDir() string { return filepath.Dir(p.DataDir) }

// EnsureLayout creates the store directories and seeds required documents
// that do not exist yet. Existing files are left untouched.
func (p Paths) EnsureLayout() error {
	for _, dir := range []string{p.DataDir, p.Snapshots(), p.KBDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create store directory %s: %w", dir, err)
		}
	}
	seeds := map[string]string{
		p.Signals():       "{\n    \"APPROVE_REVERIFICATION\": false\n}",
		p.FeedbackQueue(): "[]",
		p.VersionIndex():  "[]",
	}
	for path, content := range seeds {
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := WriteText(path, content); err != nil {
			return err
		}
	}
	return nil
}

// ReadJSON decodes the JSON document at path into v. A missing, empty or
// unparsable file leaves v untouched and returns ok=false with a nil error:
// concurrent writers replace these files by rename, so a bad read is a
// transient race, not a failure.
func ReadJSON(path string, v any) (ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, nil
	}
	return true, nil
}

// WriteJSON atomically replaces the document at path with the JSON encoding
// of v. The temp file lives in the target directory so the rename stays on
// one filesystem.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return writeAtomic(path, data)
}

// ReadText returns the file content at path, or "" if the file is missing.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteText atomically replaces the file at path with content.
func WriteText(path, content string) error {
	return writeAtomic(path, []byte(content))
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file for %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
