// Package types provides type definitions for the shared JSON documents that
// drive the vendor onboarding demo: the case list, per-case activity logs,
// the feedback queue and the knowledge base version index.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CaseStatus is the case-level workflow status shown in the case list.
type CaseStatus string

// Case-level statuses. CurrentStatus carries the human-readable progress
// message; Status is the only field used for grouping in the UI.
const (
	StatusInProgress     CaseStatus = "In Progress"
	StatusNeedsAttention CaseStatus = "Needs Attention"
	StatusNeedsReview    CaseStatus = "Needs Review"
	StatusVoid           CaseStatus = "Void"
	StatusDone           CaseStatus = "Done"
)

// Valid reports whether s is one of the recognized case statuses.
func (s CaseStatus) Valid() bool {
	switch s {
	case StatusInProgress, StatusNeedsAttention, StatusNeedsReview, StatusVoid, StatusDone:
		return true
	}
	return false
}

// Case represents one vendor onboarding application in the case list.
type Case struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	StockID          string     `json:"stockId"`
	Year             string     `json:"year"`
	Status           CaseStatus `json:"status"`
	CurrentStatus    string     `json:"currentStatus"`
	VendorName       string     `json:"vendorName,omitempty"`
	MaterialCategory string     `json:"materialCategory,omitempty"`
	Project          string     `json:"project,omitempty"`
	ContactPerson    string     `json:"contactPerson,omitempty"`
}

// CaseList is the case-list document. Exactly one entry exists per case ID.
type CaseList []Case

// Find returns the index of the case with the given ID, or -1.
func (l CaseList) Find(id string) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// SetStatus updates the status fields of the case with the given ID.
// It reports whether a case was found; an unknown ID is a no-op.
func (l CaseList) SetStatus(id string, status CaseStatus, currentStatus string) bool {
	idx := l.Find(id)
	if idx == -1 {
		return false
	}
	l[idx].Status = status
	l[idx].CurrentStatus = currentStatus
	return true
}
