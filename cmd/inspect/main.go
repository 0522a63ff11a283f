package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jewelify/design-engine/internal/pricing"
	"github.com/jewelify/design-engine/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to designs.db")
	last := flag.Int("last", 20, "show N most recent versions")
	version := flag.String("version", "", "show single version detail")
	edits := flag.Bool("edits", false, "list recent edit log entries instead of versions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/designs.db [--last N] [--version id] [--edits] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	switch {
	case *version != "":
		err = runDetailMode(st, *version, *jsonOut)
	case *edits:
		err = runEditMode(st, *last, *jsonOut)
	default:
		err = runListMode(st, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	VersionID string `json:"version_id"`
	Trigger   string `json:"trigger,omitempty"`
	Decision  string `json:"decision,omitempty"`
	Material  string `json:"material"`
	Style     string `json:"style"`
	Price     int    `json:"price"`
	Days      string `json:"days"`
	CreatedAt string `json:"created_at"`
}

func runListMode(st *store.Store, last int, jsonOut bool) error {
	versions, err := st.ListVersionsWithEdits(last)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Fprintln(os.Stderr, "no versions found")
		return nil
	}

	// Store returns DESC, reverse for chronological display.
	rows := make([]listRow, len(versions))
	for i, vw := range versions {
		rows[len(versions)-1-i] = listRow{
			VersionID: vw.VersionID,
			Trigger:   vw.TriggerType,
			Decision:  vw.Decision,
			Material:  string(vw.Config.Material),
			Style:     string(vw.Config.Style),
			Price:     pricing.EstimatePrice(vw.Config),
			Days:      pricing.EstimateDays(vw.Config),
			CreatedAt: vw.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %-10s  %-10s  %-10s  %-12s  %6s  %-7s  %s\n",
		"Version", "Trigger", "Decision", "Material", "Style", "Price", "Days", "Time")
	for _, r := range rows {
		trigger := r.Trigger
		if trigger == "" {
			trigger = "initial"
		}
		fmt.Printf("%-10s  %-10s  %-10s  %-10s  %-12s  %6d  %-7s  %s\n",
			shortID(r.VersionID), trigger, r.Decision, r.Material, r.Style, r.Price, r.Days, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region edit-mode

func runEditMode(st *store.Store, last int, jsonOut bool) error {
	entries, err := st.ListEdits(last)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no edits found")
		return nil
	}

	if jsonOut {
		return printJSON(entries)
	}

	fmt.Printf("%-10s  %-10s  %-6s  %-8s  %-30s  %s\n",
		"Version", "Trigger", "Part", "Decision", "Prompt", "Reason")
	for _, e := range entries {
		fmt.Printf("%-10s  %-10s  %-6s  %-8s  %-30s  %s\n",
			shortID(e.VersionID), e.TriggerType, e.Part, e.Decision, truncate(e.Prompt, 30), e.Reason)
	}
	return nil
}

// #endregion edit-mode

// #region detail-mode

type detailOutput struct {
	VersionID string             `json:"version_id"`
	ParentID  string             `json:"parent_id,omitempty"`
	CreatedAt string             `json:"created_at"`
	Config    interface{}        `json:"config"`
	Price     int                `json:"price"`
	Days      string             `json:"days"`
	Breakdown []pricing.LineItem `json:"breakdown"`
	Edits     []editDetail       `json:"edits,omitempty"`
}

type editDetail struct {
	Trigger  string `json:"trigger"`
	Part     string `json:"part,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}

func runDetailMode(st *store.Store, versionID string, jsonOut bool) error {
	rec, err := st.GetVersion(versionID)
	if err != nil {
		return err
	}

	out := detailOutput{
		VersionID: rec.VersionID,
		ParentID:  rec.ParentID,
		CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Config:    rec.Config,
		Price:     pricing.EstimatePrice(rec.Config),
		Days:      pricing.EstimateDays(rec.Config),
		Breakdown: pricing.Breakdown(rec.Config),
	}

	edits, err := editsForVersion(st.DB(), versionID)
	if err != nil {
		return err
	}
	out.Edits = edits

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Version:  %s\n", out.VersionID)
	fmt.Printf("Parent:   %s\n", out.ParentID)
	fmt.Printf("Created:  %s\n", out.CreatedAt)
	fmt.Printf("Price:    %d (days %s)\n", out.Price, out.Days)

	fmt.Printf("\nBreakdown:\n")
	for _, item := range out.Breakdown {
		fmt.Printf("  %-35s %6d\n", item.Label, item.Amount)
	}

	data, err := json.MarshalIndent(rec.Config, "  ", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Printf("\nConfig:\n  %s\n", data)

	if len(out.Edits) > 0 {
		fmt.Printf("\nEdits:\n")
		for _, e := range out.Edits {
			fmt.Printf("  %-10s %-6s %-8s %s %s\n", e.Trigger, e.Part, e.Decision, truncate(e.Prompt, 40), e.Reason)
		}
	}
	return nil
}

func editsForVersion(db *sql.DB, versionID string) ([]editDetail, error) {
	rows, err := db.Query(
		`SELECT trigger_type, part, prompt, decision, reason FROM edit_log
		 WHERE version_id = ? ORDER BY id ASC`, versionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query edits: %w", err)
	}
	defer rows.Close()

	var out []editDetail
	for rows.Next() {
		var e editDetail
		var part, prompt, reason sql.NullString
		if err := rows.Scan(&e.Trigger, &part, &prompt, &e.Decision, &reason); err != nil {
			return nil, fmt.Errorf("scan edit: %w", err)
		}
		e.Part = part.String
		e.Prompt = prompt.String
		e.Reason = reason.String
		out = append(out, e)
	}
	return out, rows.Err()
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// #endregion output
