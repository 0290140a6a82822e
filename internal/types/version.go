package types

// KBVersion is an immutable knowledge-base snapshot record. IDs are assigned
// as count+1 at append time and never reused; the referenced snapshot files
// are write-once.
type KBVersion struct {
	ID           int      `json:"id"`
	Timestamp    string   `json:"timestamp"`
	SnapshotFile string   `json:"snapshotFile"`
	PreviousFile string   `json:"previousFile"`
	Changes      []string `json:"changes"`
}

// VersionIndex is the ordered version-index document.
type VersionIndex []KBVersion

// Find returns the version with the given ID, or nil.
func (v VersionIndex) Find(id int) *KBVersion {
	for i := range v {
		if v[i].ID == id {
			return &v[i]
		}
	}
	return nil
}

// NextID returns the ID the next appended version will receive.
func (v VersionIndex) NextID() int {
	return len(v) + 1
}
