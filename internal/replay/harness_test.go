package replay

import (
	"context"
	"reflect"
	"testing"

	"github.com/jewelify/design-engine/internal/design"
)

func scriptSteps() []FixtureStep {
	return []FixtureStep{
		{StepID: "t1", Kind: StepUndo},
		{StepID: "t2", Kind: StepPatch, Patch: &design.Patch{Polish: design.FloatPtr(0.9)}},
		{StepID: "t3", Kind: StepUndo},
		{StepID: "t4", Kind: StepRedo},
		{StepID: "t5", Kind: StepPrompt, Text: "do whatever feels right"},
		{StepID: "t6", Kind: StepPart, Part: "stone", Text: "surprise me"},
		{StepID: "t7", Kind: StepRedesign, Text: "something hammered"},
	}
}

func TestReplayScriptActions(t *testing.T) {
	results, summary, err := ReplayScript(context.Background(), design.Default(), 7, scriptSteps())
	if err != nil {
		t.Fatalf("ReplayScript: %v", err)
	}

	wantActions := map[string]string{
		"t1": "no_op",  // nothing to undo yet
		"t2": "commit", // instant patch
		"t3": "commit", // undo the patch
		"t4": "commit", // redo it
		"t5": "no_op",  // unrecognized prompt
		"t6": "commit", // randomized stone fallback
		"t7": "commit", // redesign
	}
	for _, r := range results {
		if r.Action != wantActions[r.StepID] {
			t.Fatalf("step %s action = %s (%s), want %s", r.StepID, r.Action, r.Reason, wantActions[r.StepID])
		}
	}

	if summary.TotalSteps != 7 || summary.Commits != 5 || summary.NoOps != 2 || summary.Rejects != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.FinalPrice == 0 || summary.FinalDays == "" {
		t.Fatalf("estimates missing: %+v", summary)
	}
}

func TestReplayScriptFieldsRecorded(t *testing.T) {
	steps := []FixtureStep{
		{StepID: "t1", Kind: StepPrompt, Text: "a shiny copper band, very polished"},
	}
	results, _, err := ReplayScript(context.Background(), design.Default(), 1, steps)
	if err != nil {
		t.Fatalf("ReplayScript: %v", err)
	}
	want := []design.Field{design.FieldMaterialColor, design.FieldMetalFinish}
	if !reflect.DeepEqual(results[0].Fields, want) {
		t.Fatalf("fields = %v, want %v", results[0].Fields, want)
	}
}

func TestReplayScriptDeterministic(t *testing.T) {
	first, firstSummary, err := ReplayScript(context.Background(), design.Default(), 99, scriptSteps())
	if err != nil {
		t.Fatalf("ReplayScript: %v", err)
	}
	second, secondSummary, err := ReplayScript(context.Background(), design.Default(), 99, scriptSteps())
	if err != nil {
		t.Fatalf("ReplayScript: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed produced different step results")
	}
	if firstSummary.FinalConfig != secondSummary.FinalConfig {
		t.Fatal("same seed produced different final configs")
	}
}

func TestReplayScriptUnknownKind(t *testing.T) {
	steps := []FixtureStep{{StepID: "t1", Kind: "teleport"}}
	if _, _, err := ReplayScript(context.Background(), design.Default(), 1, steps); err == nil {
		t.Fatal("expected error for unknown step kind")
	}
}

func TestReplayScriptPatchStepRequiresPatch(t *testing.T) {
	steps := []FixtureStep{{StepID: "t1", Kind: StepPatch}}
	if _, _, err := ReplayScript(context.Background(), design.Default(), 1, steps); err == nil {
		t.Fatal("expected error for patch step without patch")
	}
}

func TestVerifyReportsMismatches(t *testing.T) {
	f := &Fixture{ExpectedResults: []FixtureExpectedResult{
		{StepID: "t1", Action: "commit"},
		{StepID: "t2", Action: "no_op", Price: 1500},
		{StepID: "t3", Action: "commit"},
	}}
	results := []StepResult{
		{StepID: "t1", Action: "commit", Price: 1340},
		{StepID: "t2", Action: "no_op", Price: 1340},
	}

	mismatches := Verify(f, results)
	if len(mismatches) != 2 {
		t.Fatalf("got %d mismatches, want 2: %+v", len(mismatches), mismatches)
	}
	if mismatches[0].StepID != "t2" || mismatches[0].Field != "price" {
		t.Fatalf("first mismatch = %+v", mismatches[0])
	}
	if mismatches[1].StepID != "t3" || mismatches[1].Field != "step" {
		t.Fatalf("second mismatch = %+v", mismatches[1])
	}
}
