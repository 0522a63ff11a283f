// Package prompt maps free-text design requests to configuration patches
// by keyword-set matching. There is no language model behind it; the
// matcher scans the lowercased input once per field category and takes the
// first category value whose keyword set hits.
package prompt

import (
	"strings"

	"github.com/jewelify/design-engine/internal/design"
)

// #region keyword-tables
// Each table is an explicit ordered list: within a category the first value
// with any keyword match wins, and later values are not considered.
// Categories are independent of each other, so one input can set several
// fields at once.

type colorKeywords struct {
	color    design.MaterialColor
	keywords []string
}

var materialColorTable = []colorKeywords{
	{design.ColorGold, []string{"gold", "golden", "yellow"}},
	{design.ColorSilver, []string{"silver", "white metal", "platinum-like"}},
	{design.ColorRose, []string{"rose", "rose gold", "copper", "blush"}},
	{design.ColorPlatinum, []string{"platinum", "white", "cool"}},
}

type stoneColorKeywords struct {
	color    design.StoneColor
	keywords []string
}

// "white" and "platinum" are deliberately absent here so stone colors never
// shadow metal colors.
var stoneColorTable = []stoneColorKeywords{
	{design.StoneClear, []string{"clear", "transparent", "colorless", "diamond", "brilliant"}},
	{design.StonePink, []string{"pink", "blush", "rose quartz", "morganite", "coral"}},
	{design.StoneBlue, []string{"blue", "sapphire", "sky blue", "deep blue", "aqua"}},
	{design.StoneGreen, []string{"green", "emerald", "jade", "light green", "peridot"}},
	{design.StoneRed, []string{"red", "ruby", "crimson", "deep red", "garnet"}},
}

type stoneShapeKeywords struct {
	shape    design.StoneShape
	keywords []string
}

var stoneShapeTable = []stoneShapeKeywords{
	{design.ShapeBrilliant, []string{"round", "brilliant", "sparkly", "circular"}},
	{design.ShapeDiamond, []string{"square", "cushion", "asscher", "angular"}},
	{design.ShapeGem, []string{"oval", "emerald cut", "elongated", "pear", "teardrop"}},
}

type bandDesignKeywords struct {
	band     design.BandDesign
	keywords []string
}

var bandDesignTable = []bandDesignKeywords{
	{design.BandClassic, []string{"classic band", "traditional band", "timeless", "simple band"}},
	{design.BandKnife, []string{"knife", "knife edge", "sharp edge", "thin band", "sleek band"}},
	{design.BandFlat, []string{"flat band", "wide band", "chunky band", "thick band"}},
}

type finishKeywords struct {
	finish   design.Finish
	keywords []string
}

var finishTable = []finishKeywords{
	{design.FinishPolished, []string{"polished", "shiny", "bright", "glossy", "smooth"}},
	{design.FinishMatte, []string{"matte", "matt", "dull", "brushed"}},
	{design.FinishHammered, []string{"hammered", "textured", "rough", "vintage", "artisan"}},
}

type designKeywords struct {
	style    design.Design
	keywords []string
}

var designTable = []designKeywords{
	{design.DesignDelicate, []string{"delicate", "dainty", "fine", "subtle", "minimal"}},
	{design.DesignGeometric, []string{"geometric", "angular", "modern", "contemporary", "architectural"}},
	{design.DesignOrganic, []string{"organic", "flowing", "natural", "wavy", "curved"}},
	{design.DesignStatement, []string{"statement", "bold", "dramatic", "standout", "eye-catching"}},
}

// Quality modifiers set polish and clarity together. The boost phrases are
// checked before the vintage phrases; the two are mutually exclusive.
var qualityBoostKeywords = []string{"high quality", "clarity", "flawless"}
var qualityVintageKeywords = []string{"vintage", "antique"}

const (
	qualityBoostValue     = 0.85
	qualityVintagePolish  = 0.65
	qualityVintageClarity = 0.6
)

// #endregion keyword-tables

// #region parse
// Parse maps free text to a partial configuration patch. Pure; unmatched
// categories are simply left unset, never an error.
func Parse(text string) design.Patch {
	lower := strings.ToLower(text)
	var patch design.Patch

	for _, entry := range materialColorTable {
		if anyMatch(lower, entry.keywords) {
			patch.MaterialColor = design.ColorPtr(entry.color)
			break
		}
	}
	for _, entry := range stoneColorTable {
		if anyMatch(lower, entry.keywords) {
			patch.StoneColor = design.StoneColorPtr(entry.color)
			break
		}
	}
	for _, entry := range stoneShapeTable {
		if anyMatch(lower, entry.keywords) {
			patch.StoneShape = design.StoneShapePtr(entry.shape)
			break
		}
	}
	for _, entry := range bandDesignTable {
		if anyMatch(lower, entry.keywords) {
			patch.BandDesign = design.BandDesignPtr(entry.band)
			break
		}
	}
	for _, entry := range finishTable {
		if anyMatch(lower, entry.keywords) {
			patch.MetalFinish = design.FinishPtr(entry.finish)
			break
		}
	}
	for _, entry := range designTable {
		if anyMatch(lower, entry.keywords) {
			patch.Design = design.DesignPtr(entry.style)
			break
		}
	}

	if anyMatch(lower, qualityBoostKeywords) {
		patch.Polish = design.FloatPtr(qualityBoostValue)
		patch.Clarity = design.FloatPtr(qualityBoostValue)
	} else if anyMatch(lower, qualityVintageKeywords) {
		patch.Polish = design.FloatPtr(qualityVintagePolish)
		patch.Clarity = design.FloatPtr(qualityVintageClarity)
	}

	return patch
}

func anyMatch(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// #endregion parse
