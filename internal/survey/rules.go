package survey

import "github.com/jewelify/design-engine/internal/design"

// #region rule-table
// rule pairs a question id with its patch resolver. The table is iterated
// once, in order, by Derive; keeping it as an explicit ordered list makes
// the fixed-order, later-wins contract auditable in isolation.
type rule struct {
	question string
	resolve  func(option string) design.Patch
}

var ruleTable = []rule{
	{"q1", resolveTypicalStyle},
	{"q2", resolveWardrobeColors},
	{"q3", resolvePreferredShapes},
	{"q4", resolveMetalColor},
	{"q5", resolveFinish},
	{"q6", resolveStones},
	{"q7", resolveMood},
	{"q8", resolveOccasion},
	{"q9", resolveWearFrequency},
	{"q10", resolveActivityLevel},
	{"q11", resolveDefiningWord},
}

// Resolve maps one (question, option) pair to a partial configuration
// patch. Pure; an unknown question or option yields an empty patch.
func Resolve(questionID, optionID string) design.Patch {
	for _, r := range ruleTable {
		if r.question == questionID {
			return r.resolve(optionID)
		}
	}
	return design.Patch{}
}

// #endregion rule-table

// #region q1
func resolveTypicalStyle(option string) design.Patch {
	switch option {
	case "classic":
		return design.Patch{
			Design:      design.DesignPtr(design.DesignDelicate),
			Style:       design.StylePtr(design.StyleSolitaire),
			BandDesign:  design.BandDesignPtr(design.BandClassic),
			StoneShape:  design.StoneShapePtr(design.ShapeBrilliant),
			MetalFinish: design.FinishPtr(design.FinishPolished),
		}
	case "modern":
		return design.Patch{
			Design:      design.DesignPtr(design.DesignGeometric),
			Style:       design.StylePtr(design.StylePave),
			BandDesign:  design.BandDesignPtr(design.BandKnife),
			StoneShape:  design.StoneShapePtr(design.ShapeDiamond),
			MetalFinish: design.FinishPtr(design.FinishPolished),
		}
	case "vintage":
		return design.Patch{
			Design:      design.DesignPtr(design.DesignOrganic),
			Style:       design.StylePtr(design.StyleVintage),
			BandDesign:  design.BandDesignPtr(design.BandFlat),
			StoneShape:  design.StoneShapePtr(design.ShapeGem),
			MetalFinish: design.FinishPtr(design.FinishMatte),
		}
	case "bold":
		return design.Patch{
			Design:      design.DesignPtr(design.DesignStatement),
			Style:       design.StylePtr(design.StyleHalo),
			BandDesign:  design.BandDesignPtr(design.BandFlat),
			StoneShape:  design.StoneShapePtr(design.ShapeGem),
			MetalFinish: design.FinishPtr(design.FinishPolished),
		}
	}
	return design.Patch{}
}

// #endregion q1

// #region q2
func resolveWardrobeColors(option string) design.Patch {
	switch option {
	case "warm":
		return design.Patch{StoneColor: design.StoneColorPtr(design.StoneRed)}
	case "cool":
		return design.Patch{StoneColor: design.StoneColorPtr(design.StoneBlue)}
	case "neutral":
		return design.Patch{StoneColor: design.StoneColorPtr(design.StoneClear)}
	case "vibrant":
		return design.Patch{StoneColor: design.StoneColorPtr(design.StonePink)}
	}
	return design.Patch{}
}

// #endregion q2

// #region q3
func resolvePreferredShapes(option string) design.Patch {
	switch option {
	case "curves":
		return design.Patch{
			Design:     design.DesignPtr(design.DesignOrganic),
			BandDesign: design.BandDesignPtr(design.BandClassic),
		}
	case "leaves":
		return design.Patch{
			Design:     design.DesignPtr(design.DesignOrganic),
			BandDesign: design.BandDesignPtr(design.BandFlat),
		}
	case "organic":
		return design.Patch{
			Design:      design.DesignPtr(design.DesignOrganic),
			MetalFinish: design.FinishPtr(design.FinishHammered),
		}
	case "asymmetrical":
		return design.Patch{
			Design:     design.DesignPtr(design.DesignStatement),
			BandDesign: design.BandDesignPtr(design.BandKnife),
			StoneShape: design.StoneShapePtr(design.ShapeGem),
		}
	}
	return design.Patch{}
}

// #endregion q3

// #region q4
// q4 is the metal-color preference question. Any recognized option raises
// the material lock for the rest of the pass.
func resolveMetalColor(option string) design.Patch {
	switch option {
	case "yellow":
		return design.Patch{Material: design.MaterialPtr(design.MaterialGold)}
	case "white":
		return design.Patch{Material: design.MaterialPtr(design.MaterialSilver)}
	case "pink":
		return design.Patch{Material: design.MaterialPtr(design.MaterialRose)}
	case "mixed":
		return design.Patch{Material: design.MaterialPtr(design.MaterialPalladium)}
	}
	return design.Patch{}
}

// #endregion q4

// #region q5
func resolveFinish(option string) design.Patch {
	switch option {
	case "matte":
		return design.Patch{MetalFinish: design.FinishPtr(design.FinishMatte)}
	case "textured", "hammered":
		return design.Patch{MetalFinish: design.FinishPtr(design.FinishHammered)}
	case "polished":
		return design.Patch{MetalFinish: design.FinishPtr(design.FinishPolished)}
	}
	return design.Patch{}
}

// #endregion q5

// #region q6
func resolveStones(option string) design.Patch {
	switch option {
	case "accent":
		return design.Patch{
			Style:   design.StylePtr(design.StylePave),
			Polish:  design.FloatPtr(0.65),
			Clarity: design.FloatPtr(0.65),
		}
	case "lots":
		return design.Patch{
			Style:   design.StylePtr(design.StyleHalo),
			Polish:  design.FloatPtr(0.8),
			Clarity: design.FloatPtr(0.8),
		}
	case "none":
		return design.Patch{
			Style:      design.StylePtr(design.StyleSolitaire),
			StoneColor: design.StoneColorPtr(design.StoneClear),
			Polish:     design.FloatPtr(0.55),
			Clarity:    design.FloatPtr(0.5),
		}
	case "centerpiece":
		return design.Patch{
			Style:      design.StylePtr(design.StyleSolitaire),
			StoneShape: design.StoneShapePtr(design.ShapeGem),
			Polish:     design.FloatPtr(0.75),
			Clarity:    design.FloatPtr(0.75),
		}
	}
	return design.Patch{}
}

// #endregion q6

// #region q7
func resolveMood(option string) design.Patch {
	switch option {
	case "passionate":
		return design.Patch{
			Design:     design.DesignPtr(design.DesignStatement),
			StoneColor: design.StoneColorPtr(design.StoneRed),
			Polish:     design.FloatPtr(0.8),
		}
	case "royal":
		return design.Patch{
			Material: design.MaterialPtr(design.MaterialGold),
			Style:    design.StylePtr(design.StyleHalo),
			Clarity:  design.FloatPtr(0.85),
		}
	case "happy":
		return design.Patch{
			Design:     design.DesignPtr(design.DesignDelicate),
			StoneColor: design.StoneColorPtr(design.StonePink),
		}
	case "calm":
		return design.Patch{
			Design:      design.DesignPtr(design.DesignOrganic),
			StoneColor:  design.StoneColorPtr(design.StoneBlue),
			MetalFinish: design.FinishPtr(design.FinishMatte),
		}
	}
	return design.Patch{}
}

// #endregion q7

// #region q8
func resolveOccasion(option string) design.Patch {
	switch option {
	case "birthday":
		return design.Patch{Style: design.StylePtr(design.StyleSolitaire)}
	case "wedding":
		return design.Patch{
			Material: design.MaterialPtr(design.MaterialPlatinum),
			Style:    design.StylePtr(design.StyleHalo),
			Design:   design.DesignPtr(design.DesignDelicate),
		}
	case "achievement":
		return design.Patch{
			Design:   design.DesignPtr(design.DesignStatement),
			Material: design.MaterialPtr(design.MaterialGold),
		}
	case "justbecause":
		return design.Patch{}
	}
	return design.Patch{}
}

// #endregion q8

// #region q9
func resolveWearFrequency(option string) design.Patch {
	switch option {
	case "daily":
		return design.Patch{
			Material:    design.MaterialPtr(design.MaterialPlatinum),
			BandDesign:  design.BandDesignPtr(design.BandClassic),
			MetalFinish: design.FinishPtr(design.FinishMatte),
			Polish:      design.FloatPtr(0.6),
			Clarity:     design.FloatPtr(0.6),
		}
	case "frequently":
		return design.Patch{
			Polish:  design.FloatPtr(0.7),
			Clarity: design.FloatPtr(0.7),
		}
	case "occasionally":
		return design.Patch{
			Style:  design.StylePtr(design.StyleHalo),
			Polish: design.FloatPtr(0.75),
		}
	case "special":
		return design.Patch{
			Design:  design.DesignPtr(design.DesignStatement),
			Style:   design.StylePtr(design.StyleHalo),
			Polish:  design.FloatPtr(0.8),
			Clarity: design.FloatPtr(0.8),
		}
	}
	return design.Patch{}
}

// #endregion q9

// #region q10
func resolveActivityLevel(option string) design.Patch {
	switch option {
	case "veryactive":
		return design.Patch{
			BandDesign:  design.BandDesignPtr(design.BandClassic),
			StoneShape:  design.StoneShapePtr(design.ShapeBrilliant),
			MetalFinish: design.FinishPtr(design.FinishMatte),
			Polish:      design.FloatPtr(0.55),
			Clarity:     design.FloatPtr(0.55),
		}
	case "average":
		return design.Patch{}
	case "light":
		return design.Patch{
			BandDesign: design.BandDesignPtr(design.BandKnife),
			Polish:     design.FloatPtr(0.75),
		}
	case "noactivity":
		return design.Patch{
			Design:      design.DesignPtr(design.DesignDelicate),
			MetalFinish: design.FinishPtr(design.FinishPolished),
			Polish:      design.FloatPtr(0.85),
			Clarity:     design.FloatPtr(0.85),
		}
	}
	return design.Patch{}
}

// #endregion q10

// #region q11
func resolveDefiningWord(option string) design.Patch {
	switch option {
	case "meaningful":
		return design.Patch{
			Design:      design.DesignPtr(design.DesignOrganic),
			MetalFinish: design.FinishPtr(design.FinishHammered),
		}
	case "timeless":
		return design.Patch{
			Design: design.DesignPtr(design.DesignDelicate),
			Style:  design.StylePtr(design.StyleSolitaire),
		}
	case "simple":
		return design.Patch{
			Design:      design.DesignPtr(design.DesignDelicate),
			Style:       design.StylePtr(design.StyleSolitaire),
			BandDesign:  design.BandDesignPtr(design.BandClassic),
			MetalFinish: design.FinishPtr(design.FinishMatte),
		}
	case "impressive":
		return design.Patch{
			Design:     design.DesignPtr(design.DesignStatement),
			Style:      design.StylePtr(design.StyleHalo),
			StoneShape: design.StoneShapePtr(design.ShapeGem),
			Polish:     design.FloatPtr(0.85),
			Clarity:    design.FloatPtr(0.85),
		}
	}
	return design.Patch{}
}

// #endregion q11
