package main

import (
	"context"
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
	dbPath := flag.String("db", "", "path to designs.db (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	seed := flag.Int64("seed", 1, "random seed for DB mode replays")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/designs.db")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *seed)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	results, summary, err := replay.Replay(context.Background(), f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	expected := make([]string, len(results))
	byID := make(map[string]string, len(f.ExpectedResults))
	for _, e := range f.ExpectedResults {
		byID[e.StepID] = e.Action
	}
	for i, r := range results {
		expected[i] = byID[r.StepID]
	}

	code := printComparison(results, expected)
	printSummary(summary)

	if mismatches := replay.Verify(f, results); len(mismatches) > 0 {
		for _, m := range mismatches {
			fmt.Printf("mismatch step=%s %s: want %s, got %s\n", m.StepID, m.Field, m.Want, m.Got)
		}
		return 1
	}
	return code
}

// #endregion fixture-mode

// #region db-mode

// editRow represents a replayed row from the edit_log table.
type editRow struct {
	TriggerType string
	Part        string
	Prompt      string
	PatchJSON   string
	Decision    string
}

func runDBMode(dbPath string, seed int64) int {
	st, err := store.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer st.Close()

	db := st.DB()

	// Initial version: the only row without a parent.
	var initVersionID string
	err = db.QueryRow(
		`SELECT version_id FROM design_versions WHERE parent_id IS NULL ORDER BY created_at ASC LIMIT 1`,
	).Scan(&initVersionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "find initial version: %v\n", err)
		return 2
	}

	initial, err := st.GetVersion(initVersionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "get initial version: %v\n", err)
		return 2
	}

	rows, err := db.Query(
		`SELECT trigger_type, part, prompt, patch_json, decision FROM edit_log ORDER BY id ASC`,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query edit log: %v\n", err)
		return 2
	}
	defer rows.Close()

	var edits []editRow
	for rows.Next() {
		var e editRow
		var part, prompt, patchJSON sql.NullString
		if err := rows.Scan(&e.TriggerType, &part, &prompt, &patchJSON, &e.Decision); err != nil {
			fmt.Fprintf(os.Stderr, "scan row: %v\n", err)
			return 2
		}
		e.Part = part.String
		e.Prompt = prompt.String
		e.PatchJSON = patchJSON.String
		edits = append(edits, e)
	}
	if err := rows.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "iterate rows: %v\n", err)
		return 2
	}

	if len(edits) == 0 {
		fmt.Fprintln(os.Stderr, "no entries found in edit_log")
		return 2
	}

	steps := make([]replay.FixtureStep, 0, len(edits))
	expected := make([]string, 0, len(edits))
	for i, e := range edits {
		step, ok := toStep(i, e)
		if !ok {
			continue
		}
		steps = append(steps, step)
		expected = append(expected, e.Decision)
	}

	results, summary, err := replay.ReplayScript(context.Background(), initial.Config, seed, steps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	code := printComparison(results, expected)
	printSummary(summary)
	return code
}

// toStep reconstructs a scripted step from an edit log row. Rows that
// carry no replayable trigger are skipped.
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
		// instant, concept and other patch-carrying edits replay as
		// raw patches when one was recorded.
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

// #endregion db-mode

// #region output

func printComparison(results []replay.StepResult, expected []string) int {
	fmt.Printf("%-12s| %-10s| %-10s| %-10s| %s\n", "Step", "Kind", "Expected", "Replayed", "Match")
	fmt.Printf("%-12s+%-11s+%-11s+%-11s+%s\n",
		"------------", "-----------", "-----------", "-----------", "------")

	matches := 0
	total := len(results)
	for i, r := range results {
		exp := ""
		if i < len(expected) {
			exp = expected[i]
		}
		match := "DIFF"
		if exp == "" || exp == r.Action {
			match = "OK"
			matches++
		}
		fmt.Printf("%-12s| %-10s| %-10s| %-10s| %s\n", r.StepID, r.Kind, exp, r.Action, match)
	}

	diverge := total - matches
	fmt.Printf("\nSummary: %d total, %d match, %d diverge\n", total, matches, diverge)
	if diverge > 0 {
		return 1
	}
	return 0
}

func printSummary(s replay.Summary) {
	fmt.Printf("Commits: %d  Rejects: %d  NoOps: %d\n", s.Commits, s.Rejects, s.NoOps)
	fmt.Printf("Final: material=%s style=%s stone=%s price=%d days=%s\n",
		s.FinalConfig.Material, s.FinalConfig.Style, s.FinalConfig.StoneShape, s.FinalPrice, s.FinalDays)
}

// #endregion output
