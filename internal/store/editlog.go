package store

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-edit
// LogEdit writes an edit provenance entry to the edit_log table.
func (s *Store) LogEdit(entry EditEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO edit_log (version_id, trigger_type, part, prompt, patch_json, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.VersionID,
		entry.TriggerType,
		nullIfEmpty(entry.Part),
		nullIfEmpty(entry.Prompt),
		nullIfEmpty(entry.PatchJSON),
		entry.Decision,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log edit: %w", err)
	}
	return nil
}

// #endregion log-edit

// #region list-edits
// ListEdits returns the most recent edit entries, newest first.
func (s *Store) ListEdits(limit int) ([]EditEntry, error) {
	rows, err := s.db.Query(
		`SELECT version_id, trigger_type, part, prompt, patch_json, decision, reason, created_at
		 FROM edit_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list edits: %w", err)
	}
	defer rows.Close()

	var entries []EditEntry
	for rows.Next() {
		var e EditEntry
		var part, prompt, patchJSON, reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.VersionID, &e.TriggerType, &part, &prompt, &patchJSON, &e.Decision, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		e.Part = part.String
		e.Prompt = prompt.String
		e.PatchJSON = patchJSON.String
		e.Reason = reason.String
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion list-edits

// #region list-versions-with-edits
// ListVersionsWithEdits joins design versions with their committing edit
// rows, newest first. Versions without an edit row (the initial version)
// still appear with empty edit fields.
func (s *Store) ListVersionsWithEdits(limit int) ([]VersionWithEdit, error) {
	rows, err := s.db.Query(
		`SELECT v.version_id, v.parent_id, v.config_json, v.label, v.created_at,
		        COALESCE(e.trigger_type, ''), COALESCE(e.decision, ''),
		        COALESCE(e.reason, ''), COALESCE(e.patch_json, '')
		 FROM design_versions v
		 LEFT JOIN edit_log e ON e.version_id = v.version_id AND e.decision = 'commit'
		 ORDER BY v.created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list versions with edits: %w", err)
	}
	defer rows.Close()

	var out []VersionWithEdit
	for rows.Next() {
		var vw VersionWithEdit
		var parentID sql.NullString
		var cfgJSON string
		var label sql.NullString
		var createdStr string
		if err := rows.Scan(&vw.VersionID, &parentID, &cfgJSON, &label, &createdStr,
			&vw.TriggerType, &vw.Decision, &vw.Reason, &vw.PatchJSON); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if parentID.Valid {
			vw.ParentID = parentID.String
		}
		if label.Valid {
			vw.Label = label.String
		}
		if err := unmarshalConfig(cfgJSON, &vw.Config); err != nil {
			return nil, err
		}
		vw.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, vw)
	}
	return out, rows.Err()
}

// #endregion list-versions-with-edits
