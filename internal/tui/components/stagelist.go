package components

import (
	"github.com/alexisbeaulieu97/solverboot/internal/model"
)

// StageEntry represents a single stage for rendering.
type StageEntry struct {
	Stage  string
	Result model.StageResult
}

// StageList holds stages in the order they should be displayed.
type StageList struct {
	entries []StageEntry
}

// NewStageList constructs a stage list component.
func NewStageList(order []string, stages map[string]model.StageResult) StageList {
	entries := make([]StageEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, StageEntry{Stage: name, Result: stages[name]})
	}
	return StageList{entries: entries}
}

// Entries returns a copy of the ordered stage entries.
func (s StageList) Entries() []StageEntry {
	clone := make([]StageEntry, len(s.entries))
	copy(clone, s.entries)
	return clone
}
