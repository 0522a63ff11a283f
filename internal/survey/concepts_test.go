package survey

import (
	"testing"

	"github.com/jewelify/design-engine/internal/design"
)

func TestConceptsVariants(t *testing.T) {
	res, err := Derive(fullAnswers(nil))
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	base := res.Config

	concepts := Concepts(base)
	if len(concepts) != 3 {
		t.Fatalf("expected 3 concepts, got %d", len(concepts))
	}

	signature := concepts[0].Config
	if signature.Style != base.Style || signature.StoneShape != base.StoneShape {
		t.Fatalf("signature concept diverged from base: %+v", signature)
	}
	if signature.Label != "Signature match" {
		t.Fatalf("signature label = %q", signature.Label)
	}

	refined := concepts[1].Config
	if refined.Design != design.DesignDelicate || refined.Style != design.StyleSolitaire {
		t.Fatalf("refined concept not minimal: design=%s style=%s", refined.Design, refined.Style)
	}
	if refined.Polish < 0.85 || refined.Clarity < 0.85 {
		t.Fatalf("refined concept did not raise quality: polish=%v clarity=%v", refined.Polish, refined.Clarity)
	}

	bold := concepts[2].Config
	if bold.Design != design.DesignStatement || bold.Style != design.StyleHalo {
		t.Fatalf("bold concept not bold: design=%s style=%s", bold.Design, bold.Style)
	}
	if bold.Polish > 0.65 || bold.Clarity > 0.7 {
		t.Fatalf("bold concept did not lower quality: polish=%v clarity=%v", bold.Polish, bold.Clarity)
	}
	// Gold bases shift to rose for contrast, and the display color follows.
	if base.Material == design.MaterialGold {
		if bold.Material != design.MaterialRose || bold.MaterialColor != design.ColorRose {
			t.Fatalf("bold concept material = %s color = %s", bold.Material, bold.MaterialColor)
		}
	}
}

func TestConceptsSilverBaseRefinesToPlatinum(t *testing.T) {
	base := design.Default()
	base.Material = design.MaterialSilver
	base = design.Normalize(base)

	concepts := Concepts(base)
	refined := concepts[1].Config
	if refined.Material != design.MaterialPlatinum {
		t.Fatalf("refined material = %s, want platinum", refined.Material)
	}
	if refined.MaterialColor != design.ColorPlatinum {
		t.Fatalf("refined materialColor = %s, want platinum", refined.MaterialColor)
	}
}
