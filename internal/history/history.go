// Package history implements linear undo/redo over configuration
// snapshots. Branching is not preserved: pushing from a non-tail index
// discards the redoable suffix.
package history

import "github.com/jewelify/design-engine/internal/design"

// #region history
// History is an append-only-with-truncation sequence of configuration
// snapshots plus the current index. The index is always within
// [0, Len()-1]; entry 0 is the initial snapshot and the lower bound for
// undo, and the tail is always redo-exhausted.
type History struct {
	snapshots []design.Config
	index     int
}

// New creates a history seeded with the starting configuration.
func New(initial design.Config) *History {
	return &History{snapshots: []design.Config{initial}}
}

// #endregion history

// #region accessors
// Current returns the snapshot at the current index.
func (h *History) Current() design.Config {
	return h.snapshots[h.index]
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Index returns the current position.
func (h *History) Index() int {
	return h.index
}

// CanUndo reports whether an earlier snapshot exists.
func (h *History) CanUndo() bool {
	return h.index > 0
}

// CanRedo reports whether a later snapshot exists.
func (h *History) CanRedo() bool {
	return h.index < len(h.snapshots)-1
}

// #endregion accessors

// #region mutators
// Push truncates any redoable entries beyond the current index, appends
// the new snapshot, and moves the index to the new tail. Truncated
// entries are discarded irrevocably.
func (h *History) Push(c design.Config) {
	h.snapshots = append(h.snapshots[:h.index+1], c)
	h.index = len(h.snapshots) - 1
}

// Undo steps back one snapshot and returns it. At index 0 it is a no-op
// and returns the initial snapshot unchanged.
func (h *History) Undo() design.Config {
	if h.index > 0 {
		h.index--
	}
	return h.snapshots[h.index]
}

// Redo steps forward one snapshot and returns it. At the tail it is a
// no-op and returns the current snapshot unchanged.
func (h *History) Redo() design.Config {
	if h.index < len(h.snapshots)-1 {
		h.index++
	}
	return h.snapshots[h.index]
}

// Reset replaces the whole history with a single snapshot at index 0.
// Used by redesign, which starts a fresh editing timeline.
func (h *History) Reset(c design.Config) {
	h.snapshots = []design.Config{c}
	h.index = 0
}

// #endregion mutators
