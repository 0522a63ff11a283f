package survey

import "github.com/jewelify/design-engine/internal/design"

// #region concepts
// Concept is one presentation variant built from a derived base config.
type Concept struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Config design.Config `json:"config"`
}

// Concepts builds the three intentionally distinct variants shown after
// derivation: the base as-is, a refined minimal take, and a bold take.
// Each variant is re-normalized so the configuration invariants hold.
func Concepts(base design.Config) []Concept {
	signature := base
	signature.Label = "Signature match"

	refined := base
	refined.Design = design.DesignDelicate
	refined.Style = design.StyleSolitaire
	refined.BandDesign = design.BandClassic
	refined.StoneShape = design.ShapeBrilliant
	refined.MetalFinish = design.FinishPolished
	refined.Polish = maxFloat(base.Polish, 0.85)
	refined.Clarity = maxFloat(base.Clarity, 0.85)
	if base.Material == design.MaterialSilver {
		refined.Material = design.MaterialPlatinum
	}
	refined.Label = "Refined minimal"

	bold := base
	bold.Design = design.DesignStatement
	bold.Style = design.StyleHalo
	bold.BandDesign = design.BandFlat
	bold.StoneShape = design.ShapeGem
	if base.MetalFinish != design.FinishMatte {
		bold.MetalFinish = design.FinishHammered
	}
	if base.StoneColor == design.StoneClear {
		bold.StoneColor = design.StoneRed
	}
	if base.Material == design.MaterialGold {
		bold.Material = design.MaterialRose
	}
	bold.Polish = minFloat(base.Polish, 0.65)
	bold.Clarity = minFloat(base.Clarity, 0.7)
	bold.Label = "Bold spotlight"

	return []Concept{
		{ID: 1, Name: "Concept 1", Config: design.Normalize(signature)},
		{ID: 2, Name: "Concept 2", Config: design.Normalize(refined)},
		{ID: 3, Name: "Concept 3", Config: design.Normalize(bold)},
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// #endregion concepts
