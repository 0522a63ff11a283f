package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jewelify/design-engine/internal/design"
	"github.com/jewelify/design-engine/internal/replay"
	"github.com/jewelify/design-engine/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to designs.db")
	last := flag.Int("last", 8, "number of most recent edit rows to export")
	seed := flag.Int64("seed", 1, "seed written into the fixture")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --out path/to/fixture.json [--last N] [--seed N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *last, *seed, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

// editRow holds one exportable edit_log row.
type editRow struct {
	TriggerType string
	Part        string
	Prompt      string
	PatchJSON   string
	Decision    string
}

func run(dbPath string, last int, seed int64, outPath string) error {
	st, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	db := st.DB()

	var initVersionID string
	err = db.QueryRow(
		`SELECT version_id FROM design_versions WHERE parent_id IS NULL ORDER BY created_at ASC LIMIT 1`,
	).Scan(&initVersionID)
	if err != nil {
		return fmt.Errorf("find initial version: %w", err)
	}

	initial, err := st.GetVersion(initVersionID)
	if err != nil {
		return fmt.Errorf("get initial version: %w", err)
	}

	// Last N rows, DESC then reversed so the script stays chronological.
	rows, err := db.Query(
		`SELECT trigger_type, part, prompt, patch_json, decision FROM (
			SELECT id, trigger_type, part, prompt, patch_json, decision FROM edit_log
			ORDER BY id DESC LIMIT ?
		) sub ORDER BY id ASC`, last,
	)
	if err != nil {
		return fmt.Errorf("query edit log: %w", err)
	}
	defer rows.Close()

	var edits []editRow
	for rows.Next() {
		var e editRow
		var part, prompt, patchJSON sql.NullString
		if err := rows.Scan(&e.TriggerType, &part, &prompt, &patchJSON, &e.Decision); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		e.Part = part.String
		e.Prompt = prompt.String
		e.PatchJSON = patchJSON.String
		edits = append(edits, e)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate rows: %w", err)
	}

	if len(edits) == 0 {
		return fmt.Errorf("no entries found in last %d edit_log rows", last)
	}

	fixture := buildFixture(initial.Config, seed, edits)
	if len(fixture.Steps) == 0 {
		return fmt.Errorf("no replayable steps in last %d edit_log rows", last)
	}

	fmt.Printf("Found %d replayable edits\n", len(fixture.Steps))
	return writeFixture(fixture, outPath)
}

// #endregion extract

// #region output

func buildFixture(initial design.Config, seed int64, edits []editRow) replay.Fixture {
	fixture := replay.Fixture{
		Description: fmt.Sprintf("Real session export: %d edits from designs.db", len(edits)),
		Seed:        seed,
		StartConfig: &initial,
	}

	for i, e := range edits {
		step, ok := toStep(i, e)
		if !ok {
			continue
		}
		fixture.Steps = append(fixture.Steps, step)
		fixture.ExpectedResults = append(fixture.ExpectedResults, replay.FixtureExpectedResult{
			StepID: step.StepID,
			Action: mapAction(e.Decision),
		})
	}
	return fixture
}

func toStep(i int, e editRow) (replay.FixtureStep, bool) {
	step := replay.FixtureStep{StepID: fmt.Sprintf("edit-%d", i+1)}

	switch e.TriggerType {
	case "prompt":
		step.Kind = replay.StepPrompt
		step.Text = e.Prompt
	case "part":
		step.Kind = replay.StepPart
		step.Part = e.Part
		step.Text = e.Prompt
	case "undo":
		step.Kind = replay.StepUndo
	case "redo":
		step.Kind = replay.StepRedo
	case "redesign":
		step.Kind = replay.StepRedesign
		step.Text = e.Prompt
	default:
		if e.PatchJSON == "" {
			return replay.FixtureStep{}, false
		}
		var p design.Patch
		if err := json.Unmarshal([]byte(e.PatchJSON), &p); err != nil {
			return replay.FixtureStep{}, false
		}
		step.Kind = replay.StepPatch
		step.Patch = &p
	}
	return step, true
}

// mapAction normalizes stored decisions to fixture actions.
func mapAction(decision string) string {
	switch decision {
	case "commit", "reject", "no_op":
		return decision
	default:
		return "commit"
	}
}

func writeFixture(fixture replay.Fixture, outPath string) error {
	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote fixture to %s (%d bytes, %d steps)\n", outPath, len(data), len(fixture.Steps))
	return nil
}

// #endregion output
