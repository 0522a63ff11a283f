package store

import (
	"time"

	"github.com/jewelify/design-engine/internal/design"
)

// #region version-record
// VersionRecord is a persisted snapshot of a design configuration.
// ParentID is empty for the initial version of a session.
type VersionRecord struct {
	VersionID string
	ParentID  string
	Config    design.Config
	Label     string
	CreatedAt time.Time
}

// #endregion version-record

// #region edit-entry
// EditEntry is a single row in the edit_log table: which edit produced
// (or failed to produce) a version, and why.
type EditEntry struct {
	VersionID   string
	TriggerType string // "survey" | "prompt" | "part" | "instant" | "geometry" | "redesign" | "undo" | "redo" | "rollback"
	Part        string
	Prompt      string
	PatchJSON   string
	Decision    string // "commit" | "reject" | "no_op"
	Reason      string
	CreatedAt   time.Time
}

// #endregion edit-entry

// #region version-with-edit
// VersionWithEdit pairs a design version with its edit_log row fields.
type VersionWithEdit struct {
	VersionRecord
	TriggerType string
	Decision    string
	Reason      string
	PatchJSON   string
}

// #endregion version-with-edit
