// Package feedback manages the pending queue of knowledge-base change
// requests. The queue is a JSON array document in the shared file store;
// items enter as "pending" and leave when deleted or applied.
package feedback

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/conscient/onboarding-agent/internal/store"
	"github.com/conscient/onboarding-agent/internal/types"
)

// ErrNotFound indicates the requested feedback item is not in the queue.
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("feedback item not found: %s", e.ID)
}

// Queue is a handle on the feedback-queue document.
type Queue struct {
	path string
	now  func() time.Time
}

// New returns a Queue over the document at path.
func New(path string) *Queue {
	return &Queue{path: path, now: time.Now}
}

// List returns the queued items in append order. A missing or unreadable
// document reads as empty.
func (q *Queue) List() ([]types.FeedbackItem, error) {
	items := []types.FeedbackItem{}
	if _, err := store.ReadJSON(q.path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Add appends an item to the queue. The stored item always carries
// status "pending" and a server-assigned timestamp; an item without an ID
// gets one.
func (q *Queue) Add(item types.FeedbackItem) (types.FeedbackItem, error) {
	items, err := q.List()
	if err != nil {
		return types.FeedbackItem{}, err
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.Status = types.FeedbackPending
	item.Timestamp = q.now().UTC().Format(time.RFC3339)
	items = append(items, item)
	if err := store.WriteJSON(q.path, items); err != nil {
		return types.FeedbackItem{}, err
	}
	return item, nil
}

// Get returns the item with the given ID.
func (q *Queue) Get(id string) (*types.FeedbackItem, error) {
	items, err := q.List()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, &ErrNotFound{ID: id}
}

// Delete removes the item with the given ID. Deleting an absent item is a
// no-op, so the operation is idempotent.
func (q *Queue) Delete(id string) error {
	items, err := q.List()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return store.WriteJSON(q.path, kept)
}

// Clear empties the queue.
func (q *Queue) Clear() error {
	return store.WriteJSON(q.path, []types.FeedbackItem{})
}
