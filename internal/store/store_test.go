package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jewelify/design-engine/internal/design"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "designs.db")
	s, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInitialVersionBecomesActive(t *testing.T) {
	s := tempDB(t)

	cfg := design.Default()
	rec, err := s.CreateInitialVersion(cfg, "survey")
	if err != nil {
		t.Fatalf("CreateInitialVersion: %v", err)
	}
	if rec.VersionID == "" || rec.ParentID != "" {
		t.Fatalf("unexpected record: %+v", rec)
	}

	cur, err := s.GetCurrent()
	if err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}
	if cur.VersionID != rec.VersionID {
		t.Fatalf("active = %s, want %s", cur.VersionID, rec.VersionID)
	}
	if cur.Config != cfg {
		t.Fatalf("config round trip mismatch: %+v", cur.Config)
	}
	if cur.Label != "survey" {
		t.Fatalf("label = %q", cur.Label)
	}
}

func TestCommitMovesActivePointer(t *testing.T) {
	s := tempDB(t)

	initial, err := s.CreateInitialVersion(design.Default(), "")
	if err != nil {
		t.Fatalf("CreateInitialVersion: %v", err)
	}

	next := design.Default()
	next.MaterialColor = design.ColorRose
	next = design.Reconcile(next)

	rec := VersionRecord{
		VersionID: uuid.New().String(),
		ParentID:  initial.VersionID,
		Config:    next,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.CommitVersion(rec); err != nil {
		t.Fatalf("CommitVersion: %v", err)
	}

	cur, err := s.GetCurrent()
	if err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}
	if cur.VersionID != rec.VersionID {
		t.Fatalf("active = %s, want %s", cur.VersionID, rec.VersionID)
	}
	if cur.ParentID != initial.VersionID {
		t.Fatalf("parent = %s, want %s", cur.ParentID, initial.VersionID)
	}
	if cur.Config.MaterialColor != design.ColorRose {
		t.Fatalf("materialColor = %s", cur.Config.MaterialColor)
	}
}

func TestRollback(t *testing.T) {
	s := tempDB(t)

	initial, _ := s.CreateInitialVersion(design.Default(), "")
	rec := VersionRecord{
		VersionID: uuid.New().String(),
		ParentID:  initial.VersionID,
		Config:    design.Default(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.CommitVersion(rec); err != nil {
		t.Fatalf("CommitVersion: %v", err)
	}

	if err := s.Rollback(initial.VersionID); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
	cur, err := s.GetCurrent()
	if err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}
	if cur.VersionID != initial.VersionID {
		t.Fatalf("active = %s, want %s", cur.VersionID, initial.VersionID)
	}

	// Both versions survive a rollback.
	versions, err := s.ListVersions(10)
	if err != nil {
		t.Fatalf("ListVersions: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("got %d versions, want 2", len(versions))
	}

	if err := s.Rollback("no-such-version"); err == nil {
		t.Fatal("expected error for unknown version")
	}
}

func TestEditLogRoundTrip(t *testing.T) {
	s := tempDB(t)

	initial, _ := s.CreateInitialVersion(design.Default(), "")

	entries := []EditEntry{
		{VersionID: initial.VersionID, TriggerType: "prompt", Prompt: "make it rose gold",
			PatchJSON: `{"materialColor":"rose"}`, Decision: "commit"},
		{VersionID: initial.VersionID, TriggerType: "prompt", Prompt: "do something",
			Decision: "no_op", Reason: "prompt matched no known keywords"},
		{VersionID: initial.VersionID, TriggerType: "part", Part: "band", Prompt: "a flat band",
			Decision: "reject", Reason: "geometry edit in flight"},
	}
	for _, e := range entries {
		if err := s.LogEdit(e); err != nil {
			t.Fatalf("LogEdit: %v", err)
		}
	}

	got, err := s.ListEdits(10)
	if err != nil {
		t.Fatalf("ListEdits: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	// Newest first.
	if got[0].Decision != "reject" || got[0].Part != "band" {
		t.Fatalf("newest entry = %+v", got[0])
	}
	if got[1].Decision != "no_op" || got[1].Reason != "prompt matched no known keywords" {
		t.Fatalf("middle entry = %+v", got[1])
	}
	if got[2].Decision != "commit" || got[2].PatchJSON != `{"materialColor":"rose"}` {
		t.Fatalf("oldest entry = %+v", got[2])
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatal("created_at not backfilled")
	}
}

func TestListVersionsWithEdits(t *testing.T) {
	s := tempDB(t)

	initial, _ := s.CreateInitialVersion(design.Default(), "survey")

	rec := VersionRecord{
		VersionID: uuid.New().String(),
		ParentID:  initial.VersionID,
		Config:    design.Default(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.CommitVersion(rec); err != nil {
		t.Fatalf("CommitVersion: %v", err)
	}
	if err := s.LogEdit(EditEntry{
		VersionID:   rec.VersionID,
		TriggerType: "prompt",
		Prompt:      "polished",
		Decision:    "commit",
	}); err != nil {
		t.Fatalf("LogEdit: %v", err)
	}
	// Rejected edits must not attach to the version listing.
	if err := s.LogEdit(EditEntry{
		VersionID:   rec.VersionID,
		TriggerType: "part",
		Decision:    "reject",
		Reason:      "geometry edit in flight",
	}); err != nil {
		t.Fatalf("LogEdit: %v", err)
	}

	got, err := s.ListVersionsWithEdits(10)
	if err != nil {
		t.Fatalf("ListVersionsWithEdits: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[0].VersionID != rec.VersionID || got[0].TriggerType != "prompt" || got[0].Decision != "commit" {
		t.Fatalf("newest row = %+v", got[0])
	}
	if got[1].VersionID != initial.VersionID || got[1].TriggerType != "" {
		t.Fatalf("initial row = %+v", got[1])
	}
}
