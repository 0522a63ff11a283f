package survey

import (
	"testing"

	"github.com/jewelify/design-engine/internal/design"
)

func fullAnswers(overrides map[string]string) Answers {
	a := Answers{Category: "ring", Survey: map[string]string{
		"q1": "classic", "q2": "neutral", "q3": "curves", "q4": "yellow",
		"q5": "matte", "q6": "lots", "q7": "royal", "q8": "wedding",
		"q9": "daily", "q10": "light", "q11": "timeless",
	}}
	for k, v := range overrides {
		a.Survey[k] = v
	}
	return a
}

func TestDeriveClassicScenario(t *testing.T) {
	res, err := Derive(fullAnswers(nil))
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	cfg := res.Config

	// q4 answered yellow, so every later material write is suppressed.
	if !res.MaterialLocked {
		t.Fatal("expected material lock after q4")
	}
	if cfg.Material != design.MaterialGold {
		t.Fatalf("material = %s, want gold", cfg.Material)
	}
	if cfg.MaterialColor != design.ColorGold {
		t.Fatalf("materialColor = %s, want gold", cfg.MaterialColor)
	}

	// Later questions win direct conflicts.
	if cfg.Design != design.DesignDelicate {
		t.Fatalf("design = %s, want delicate (q11)", cfg.Design)
	}
	if cfg.Style != design.StyleSolitaire {
		t.Fatalf("style = %s, want solitaire (q11)", cfg.Style)
	}
	if cfg.BandDesign != design.BandKnife {
		t.Fatalf("bandDesign = %s, want Knife (q10)", cfg.BandDesign)
	}
	if cfg.MetalFinish != design.FinishMatte {
		t.Fatalf("metalFinish = %s, want matte (q9)", cfg.MetalFinish)
	}
	if cfg.Polish != 0.75 {
		t.Fatalf("polish = %v, want 0.75 (q10)", cfg.Polish)
	}
	if cfg.Clarity != 0.6 {
		t.Fatalf("clarity = %v, want 0.6 (q9)", cfg.Clarity)
	}
	if cfg.BandPath != "/models/ring/BAND_KNIFE.glb" {
		t.Fatalf("bandPath = %s", cfg.BandPath)
	}
}

func TestDeriveMaterialSkippedTraces(t *testing.T) {
	res, err := Derive(fullAnswers(nil))
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	skipped := map[string]bool{}
	for _, tr := range res.Traces {
		if tr.MaterialSkipped {
			skipped[tr.Question] = true
		}
	}
	for _, q := range []string{"q7", "q8", "q9"} {
		if !skipped[q] {
			t.Fatalf("expected %s material write to be skipped", q)
		}
	}
	if skipped["q4"] {
		t.Fatal("q4 itself must not be marked skipped")
	}
}

func TestDeriveWithoutLockLaterMaterialWins(t *testing.T) {
	// An unrecognized q4 option contributes nothing and raises no lock,
	// so the q9 daily platinum preference lands.
	res, err := Derive(fullAnswers(map[string]string{"q4": "sparkly"}))
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if res.MaterialLocked {
		t.Fatal("unexpected material lock")
	}
	if res.Config.Material != design.MaterialPlatinum {
		t.Fatalf("material = %s, want platinum (q9)", res.Config.Material)
	}
	if res.Config.MaterialColor != design.ColorPlatinum {
		t.Fatalf("materialColor = %s, want platinum", res.Config.MaterialColor)
	}
}

func TestDeriveUnknownOptionsYieldDefault(t *testing.T) {
	answers := Answers{Survey: map[string]string{}}
	for _, id := range QuestionIDs {
		answers.Survey[id] = "never-heard-of-it"
	}

	res, err := Derive(answers)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if res.Config != design.Default() {
		t.Fatalf("expected default config, got %+v", res.Config)
	}
	for _, tr := range res.Traces {
		if len(tr.Fields) != 0 {
			t.Fatalf("question %s contributed fields %v for an unknown option", tr.Question, tr.Fields)
		}
	}
}

func TestDeriveRejectsPartialSurvey(t *testing.T) {
	a := fullAnswers(nil)
	delete(a.Survey, "q6")

	if _, err := Derive(a); err == nil {
		t.Fatal("expected error for unanswered question")
	}
	if _, err := Derive(Answers{}); err == nil {
		t.Fatal("expected error for nil survey")
	}
}

func TestDeriveDeterministic(t *testing.T) {
	a := fullAnswers(nil)
	first, err := Derive(a)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Derive(a)
		if err != nil {
			t.Fatalf("Derive: %v", err)
		}
		if again.Config != first.Config {
			t.Fatalf("derivation diverged on run %d", i)
		}
	}
}
