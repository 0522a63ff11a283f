// Package replay re-runs recorded edit scripts through the full
// pipeline: survey derivation, prompt parsing, the session commit loop,
// and pricing. Runs are deterministic for a given fixture seed because
// both the session's random source and the simulated collaborator are
// seeded from it.
package replay

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/jewelify/design-engine/internal/design"
	"github.com/jewelify/design-engine/internal/geometry"
	"github.com/jewelify/design-engine/internal/pricing"
	"github.com/jewelify/design-engine/internal/prompt"
	"github.com/jewelify/design-engine/internal/session"
	"github.com/jewelify/design-engine/internal/survey"
)

// #region types
// Step kinds accepted in fixtures.
const (
	StepPrompt   = "prompt"
	StepPart     = "part"
	StepPatch    = "patch"
	StepUndo     = "undo"
	StepRedo     = "redo"
	StepRedesign = "redesign"
)

// StepResult captures the outcome of replaying one scripted edit.
type StepResult struct {
	StepID string
	Kind   string
	Action string // "commit" | "reject" | "no_op"
	Reason string

	// Fields the applied patch touched (empty for undo/redo/no_op).
	Fields []design.Field

	// Estimates after the step resolved.
	Price int
	Days  string
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalSteps int
	Commits    int
	Rejects    int
	NoOps      int

	FinalConfig design.Config
	FinalPrice  int
	FinalDays   string
}

// #endregion types

// #region replay
// Replay derives the starting configuration from the fixture survey and
// runs every scripted step through an in-memory session backed by the
// zero-delay simulator. Unknown step kinds fail the run; edit-level
// failures are recorded as rejected steps and the run continues.
func Replay(ctx context.Context, f *Fixture) ([]StepResult, Summary, error) {
	if f.StartConfig != nil {
		return ReplayScript(ctx, *f.StartConfig, f.Seed, f.Steps)
	}
	res, err := survey.Derive(f.Survey.ToAnswers())
	if err != nil {
		return nil, Summary{}, fmt.Errorf("derive start config: %w", err)
	}
	return ReplayScript(ctx, res.Config, f.Seed, f.Steps)
}

// ReplayScript runs scripted steps against a known starting
// configuration. Used directly when replaying from a persisted edit log,
// where the survey is no longer available but the initial version is.
func ReplayScript(ctx context.Context, initial design.Config, seed int64, steps []FixtureStep) ([]StepResult, Summary, error) {
	sim := geometry.NewSimulator(geometry.SimConfig{}, rand.New(rand.NewSource(seed+1)))
	sess, err := session.New(initial, session.Options{
		Geometry: sim,
		Rng:      rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return nil, Summary{}, fmt.Errorf("start session: %w", err)
	}

	results := make([]StepResult, 0, len(steps))
	for i, st := range steps {
		res := StepResult{StepID: st.StepID, Kind: st.Kind}

		switch st.Kind {
		case StepPrompt:
			_, p, err := sess.EditPrompt(ctx, st.Text)
			res.Fields = p.Fields()
			res.Action, res.Reason = actionFor(err)

		case StepPart:
			_, p, err := sess.EditPart(ctx, prompt.Part(st.Part), st.Text)
			res.Fields = p.Fields()
			res.Action, res.Reason = actionFor(err)

		case StepPatch:
			if st.Patch == nil {
				return nil, Summary{}, fmt.Errorf("step %d: patch step without patch", i)
			}
			_, err := sess.Apply(ctx, "patch", *st.Patch)
			res.Fields = st.Patch.Fields()
			res.Action, res.Reason = actionFor(err)

		case StepUndo:
			if sess.CanUndo() {
				sess.Undo()
				res.Action = "commit"
			} else {
				res.Action = "no_op"
				res.Reason = "nothing to undo"
			}

		case StepRedo:
			if sess.CanRedo() {
				sess.Redo()
				res.Action = "commit"
			} else {
				res.Action = "no_op"
				res.Reason = "nothing to redo"
			}

		case StepRedesign:
			_, err := sess.Redesign(ctx, st.Text)
			res.Action, res.Reason = actionFor(err)

		default:
			return nil, Summary{}, fmt.Errorf("step %d: unknown kind %q", i, st.Kind)
		}

		res.Price, res.Days = sess.Estimate()
		results = append(results, res)
	}

	final := sess.Current()
	return results, summarize(results, final), nil
}

func actionFor(err error) (action, reason string) {
	switch {
	case err == nil:
		return "commit", ""
	case errors.Is(err, session.ErrUnrecognizedPrompt):
		return "no_op", err.Error()
	default:
		return "reject", err.Error()
	}
}

func summarize(results []StepResult, final design.Config) Summary {
	s := Summary{
		TotalSteps:  len(results),
		FinalConfig: final,
		FinalPrice:  pricing.EstimatePrice(final),
		FinalDays:   pricing.EstimateDays(final),
	}
	for _, r := range results {
		switch r.Action {
		case "commit":
			s.Commits++
		case "reject":
			s.Rejects++
		case "no_op":
			s.NoOps++
		}
	}
	return s
}

// #endregion replay

// #region verify
// Mismatch describes one divergence between a replay run and the
// fixture's expected results.
type Mismatch struct {
	StepID string
	Field  string
	Want   string
	Got    string
}

// Verify compares replay results against the fixture expectations,
// matching by step id.
func Verify(f *Fixture, results []StepResult) []Mismatch {
	byID := make(map[string]StepResult, len(results))
	for _, r := range results {
		byID[r.StepID] = r
	}

	var mismatches []Mismatch
	for _, want := range f.ExpectedResults {
		got, ok := byID[want.StepID]
		if !ok {
			mismatches = append(mismatches, Mismatch{StepID: want.StepID, Field: "step", Want: "present", Got: "missing"})
			continue
		}
		if want.Action != "" && got.Action != want.Action {
			mismatches = append(mismatches, Mismatch{StepID: want.StepID, Field: "action", Want: want.Action, Got: got.Action})
		}
		if want.Price != 0 && got.Price != want.Price {
			mismatches = append(mismatches, Mismatch{StepID: want.StepID, Field: "price", Want: fmt.Sprint(want.Price), Got: fmt.Sprint(got.Price)})
		}
	}
	return mismatches
}

// #endregion verify
