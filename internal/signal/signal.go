// Package signal implements the file-backed signal channel that lets a human
// decision in the UI unblock a waiting simulation runner. A signal is a named
// boolean flag in a shared JSON document: the server asserts it, and exactly
// one waiting runner consumes it. All writes go through atomic replace so a
// racing reader never observes a half-written document.
package signal

import (
	"context"
	"time"

	"github.com/conscient/onboarding-agent/internal/store"
)

// DefaultPollInterval is the wait-loop poll cadence used by the demo.
const DefaultPollInterval = time.Second

// Flags is a handle on the shared signal-flag document.
type Flags struct {
	path string
	poll time.Duration
}

// New returns a Flags handle for the document at path. A non-positive poll
// interval falls back to DefaultPollInterval.
func New(path string, poll time.Duration) *Flags {
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	return &Flags{path: path, poll: poll}
}

// Assert marks the named signal as raised. Read-modify-write against the
// shared document, replaced atomically.
func (f *Flags) Assert(name string) error {
	flags := map[string]bool{}
	if _, err := store.ReadJSON(f.path, &flags); err != nil {
		return err
	}
	flags[name] = true
	return store.WriteJSON(f.path, flags)
}

// Snapshot returns the current flag set. A transiently unreadable document
// reads as empty.
func (f *Flags) Snapshot() (map[string]bool, error) {
	flags := map[string]bool{}
	if _, err := store.ReadJSON(f.path, &flags); err != nil {
		return nil, err
	}
	return flags, nil
}

// Consume clears the named signal if it is raised and reports whether it
// was. The clear is a read-modify-write atomic replace, so a signal is
// consumed at most once across racing waiters.
func (f *Flags) Consume(name string) (bool, error) {
	flags := map[string]bool{}
	ok, err := store.ReadJSON(f.path, &flags)
	if err != nil || !ok {
		return false, err
	}
	if !flags[name] {
		return false, nil
	}
	delete(flags, name)
	if err := store.WriteJSON(f.path, flags); err != nil {
		return false, err
	}
	return true, nil
}

// WaitFor blocks until the named signal is observed raised, consumes it and
// returns. Unreadable or absent documents count as "not yet raised". The
// wait is unbounded; cancellation arrives through ctx.
func (f *Flags) WaitFor(ctx context.Context, name string) error {
	ticker := time.NewTicker(f.poll)
	defer ticker.Stop()
	for {
		consumed, err := f.Consume(name)
		if err == nil && consumed {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Reset replaces the document with the given seed flag set.
func (f *Flags) Reset(seed map[string]bool) error {
	if seed == nil {
		seed = map[string]bool{}
	}
	return store.WriteJSON(f.path, seed)
}
