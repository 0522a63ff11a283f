// Package store persists design versions and their edit provenance in
// SQLite. Each committed configuration becomes an immutable version row;
// an active pointer tracks the session's current version, so rollback is
// a pointer move rather than a delete.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jewelify/design-engine/internal/design"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS design_versions (
	version_id   TEXT PRIMARY KEY,
	parent_id    TEXT,
	config_json  TEXT NOT NULL,
	label        TEXT,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (parent_id) REFERENCES design_versions(version_id)
);

CREATE TABLE IF NOT EXISTS edit_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	version_id    TEXT NOT NULL,
	trigger_type  TEXT NOT NULL,
	part          TEXT,
	prompt        TEXT,
	patch_json    TEXT,
	decision      TEXT NOT NULL,
	reason        TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES design_versions(version_id)
);

CREATE TABLE IF NOT EXISTS active_design (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	version_id    TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES design_versions(version_id)
);
`

// #endregion schema

// #region store-struct
// Store manages versioned design configurations in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by inspection tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region create-initial
// CreateInitialVersion stores the first version of a session and points
// the active pointer at it.
func (s *Store) CreateInitialVersion(cfg design.Config, label string) (VersionRecord, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	rec := VersionRecord{
		VersionID: id,
		ParentID:  "",
		Config:    cfg,
		Label:     label,
		CreatedAt: now,
	}

	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return VersionRecord{}, fmt.Errorf("marshal config: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return VersionRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO design_versions (version_id, parent_id, config_json, label, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id, nil, string(cfgJSON), nullIfEmpty(label), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return VersionRecord{}, fmt.Errorf("insert version: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO active_design (id, version_id) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET version_id = excluded.version_id`,
		id,
	)
	if err != nil {
		return VersionRecord{}, fmt.Errorf("set active: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return VersionRecord{}, fmt.Errorf("commit: %w", err)
	}

	return rec, nil
}

// #endregion create-initial

// #region commit-version
// CommitVersion inserts a new version and updates the active pointer
// atomically.
func (s *Store) CommitVersion(rec VersionRecord) error {
	cfgJSON, err := json.Marshal(rec.Config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO design_versions (version_id, parent_id, config_json, label, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.VersionID, nullIfEmpty(rec.ParentID), string(cfgJSON),
		nullIfEmpty(rec.Label), rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert version: %w", err)
	}

	_, err = tx.Exec(
		`UPDATE active_design SET version_id = ? WHERE id = 1`, rec.VersionID,
	)
	if err != nil {
		return fmt.Errorf("update active: %w", err)
	}

	return tx.Commit()
}

// #endregion commit-version

// #region get-current
// GetCurrent reads the active design version.
func (s *Store) GetCurrent() (VersionRecord, error) {
	var versionID string
	err := s.db.QueryRow(`SELECT version_id FROM active_design WHERE id = 1`).Scan(&versionID)
	if err != nil {
		return VersionRecord{}, fmt.Errorf("get active: %w", err)
	}
	return s.GetVersion(versionID)
}

// #endregion get-current

// #region get-version
// GetVersion retrieves a specific design version by ID.
func (s *Store) GetVersion(id string) (VersionRecord, error) {
	var rec VersionRecord
	var parentID sql.NullString
	var cfgJSON string
	var label sql.NullString
	var createdStr string

	err := s.db.QueryRow(
		`SELECT version_id, parent_id, config_json, label, created_at
		 FROM design_versions WHERE version_id = ?`, id,
	).Scan(&rec.VersionID, &parentID, &cfgJSON, &label, &createdStr)
	if err != nil {
		return VersionRecord{}, fmt.Errorf("get version %s: %w", id, err)
	}

	if parentID.Valid {
		rec.ParentID = parentID.String
	}
	if label.Valid {
		rec.Label = label.String
	}
	if err := json.Unmarshal([]byte(cfgJSON), &rec.Config); err != nil {
		return VersionRecord{}, fmt.Errorf("unmarshal config: %w", err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)

	return rec, nil
}

// #endregion get-version

// #region rollback
// Rollback sets the active pointer to a previous version.
func (s *Store) Rollback(targetVersionID string) error {
	var exists int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM design_versions WHERE version_id = ?`, targetVersionID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check version: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("version %s not found", targetVersionID)
	}

	_, err = s.db.Exec(`UPDATE active_design SET version_id = ? WHERE id = 1`, targetVersionID)
	if err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

// #endregion rollback

// #region list-versions
// ListVersions returns the most recent design versions.
func (s *Store) ListVersions(limit int) ([]VersionRecord, error) {
	rows, err := s.db.Query(
		`SELECT version_id, parent_id, config_json, label, created_at
		 FROM design_versions ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var records []VersionRecord
	for rows.Next() {
		var rec VersionRecord
		var parentID sql.NullString
		var cfgJSON string
		var label sql.NullString
		var createdStr string

		if err := rows.Scan(&rec.VersionID, &parentID, &cfgJSON, &label, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if parentID.Valid {
			rec.ParentID = parentID.String
		}
		if label.Valid {
			rec.Label = label.String
		}
		if err := json.Unmarshal([]byte(cfgJSON), &rec.Config); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-versions

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func unmarshalConfig(raw string, dst *design.Config) error {
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// #endregion helpers
