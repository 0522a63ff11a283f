package survey

import (
	"fmt"

	"github.com/jewelify/design-engine/internal/design"
)

// #region result
// Trace records what one question contributed to a derivation, for
// provenance logging and replay.
type Trace struct {
	Question        string         `json:"question"`
	Option          string         `json:"option"`
	Fields          []design.Field `json:"fields,omitempty"`
	MaterialSkipped bool           `json:"materialSkipped,omitempty"`
}

// Result is the output of a full derivation pass.
type Result struct {
	Config         design.Config
	Traces         []Trace
	MaterialLocked bool
}

// #endregion result

// #region derive
// Derive folds the rule table over the default configuration in fixed
// question order (q1..q11) and normalizes the accumulator.
//
// Two-phase contract: the fold applies patches with later-wins semantics,
// except that once q4 sets material the materialLocked flag suppresses
// every later material write (q7 royal, q8 wedding/achievement, q9 daily
// would otherwise overwrite it). The normalization phase then recomputes
// materialColor from material and re-clamps polish/clarity, so the
// invariants hold regardless of which rules fired.
func Derive(a Answers) (Result, error) {
	if err := a.Validate(); err != nil {
		return Result{}, fmt.Errorf("derive: %w", err)
	}

	cfg := design.Default()
	res := Result{Traces: make([]Trace, 0, len(ruleTable))}

	for _, r := range ruleTable {
		option := a.Survey[r.question]
		patch := r.resolve(option)
		trace := Trace{Question: r.question, Option: option}

		if res.MaterialLocked && patch.Material != nil {
			patch.Material = nil
			trace.MaterialSkipped = true
		}
		if r.question == "q4" && patch.Material != nil {
			res.MaterialLocked = true
		}

		trace.Fields = patch.Fields()
		cfg = patch.Apply(cfg)
		res.Traces = append(res.Traces, trace)
	}

	res.Config = design.Normalize(cfg)
	return res, nil
}

// #endregion derive
