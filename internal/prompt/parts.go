package prompt

import (
	"math/rand"

	"github.com/jewelify/design-engine/internal/design"
)

// #region parts
// Part identifies the clickable region of the model being customized.
type Part string

const (
	PartStone Part = "stone"
	PartBand  Part = "band"
	PartHead  Part = "head"
)

// stone edits may touch the gemstone only; band edits may touch the band
// profile, finish, polish and the band-local metal color; head edits may
// touch the display metal color and clarity. Everything else parsed from
// the prompt is discarded for that part.
var partFields = map[Part][]design.Field{
	PartStone: {design.FieldStoneShape, design.FieldStoneColor, design.FieldClarity},
	PartBand:  {design.FieldBandDesign, design.FieldMetalFinish, design.FieldPolish, design.FieldBandMaterialColor},
	PartHead:  {design.FieldMaterialColor, design.FieldClarity},
}

// #endregion parts

// #region restrict
// RestrictForPart filters a parsed patch down to the fields relevant for
// one part. For the band, a parsed metal color is re-addressed to the
// band-local override field rather than the head color.
func RestrictForPart(p design.Patch, part Part) design.Patch {
	if part == PartBand && p.MaterialColor != nil {
		p.BandMaterialColor = p.MaterialColor
		p.MaterialColor = nil
	}
	fields, ok := partFields[part]
	if !ok {
		return design.Patch{}
	}
	return p.Restrict(fields...)
}

// #endregion restrict

// #region fallback
// Fallback builds a randomized patch for a part when the prompt matched
// nothing relevant. Every randomized choice excludes the currently active
// value whenever at least one alternative exists. The random source is
// injected so the never-repick property can be tested deterministically.
func Fallback(part Part, current design.Config, rng *rand.Rand) design.Patch {
	switch part {
	case PartStone:
		shapes := []design.StoneShape{design.ShapeBrilliant, design.ShapeDiamond, design.ShapeGem}
		colors := []design.StoneColor{design.StoneClear, design.StonePink, design.StoneBlue, design.StoneGreen, design.StoneRed}
		return design.Patch{
			StoneShape: design.StoneShapePtr(pickShape(shapes, current.StoneShape, rng)),
			StoneColor: design.StoneColorPtr(pickStoneColor(colors, current.StoneColor, rng)),
			Clarity:    design.FloatPtr(current.Clarity + 0.1),
		}
	case PartBand:
		bands := []design.BandDesign{design.BandClassic, design.BandKnife, design.BandFlat}
		finishes := []design.Finish{design.FinishPolished, design.FinishMatte, design.FinishHammered}
		colors := []design.MaterialColor{design.ColorGold, design.ColorSilver, design.ColorRose, design.ColorPlatinum}
		bandColor := current.BandMaterialColor
		if bandColor == "" {
			bandColor = current.MaterialColor
		}
		return design.Patch{
			BandDesign:        design.BandDesignPtr(pickBand(bands, current.BandDesign, rng)),
			MetalFinish:       design.FinishPtr(pickFinish(finishes, current.MetalFinish, rng)),
			BandMaterialColor: design.ColorPtr(pickColor(colors, bandColor, rng)),
		}
	case PartHead:
		colors := []design.MaterialColor{design.ColorGold, design.ColorSilver, design.ColorRose, design.ColorPlatinum}
		return design.Patch{
			MaterialColor: design.ColorPtr(pickColor(colors, current.MaterialColor, rng)),
			Clarity:       design.FloatPtr(current.Clarity + 0.05),
		}
	}
	return design.Patch{}
}

// #endregion fallback

// #region pickers
// The pickers choose uniformly among the values different from the current
// one; only when the current value is the sole member does it come back.

func pickShape(all []design.StoneShape, current design.StoneShape, rng *rand.Rand) design.StoneShape {
	var avail []design.StoneShape
	for _, v := range all {
		if v != current {
			avail = append(avail, v)
		}
	}
	if len(avail) == 0 {
		return current
	}
	return avail[rng.Intn(len(avail))]
}

func pickStoneColor(all []design.StoneColor, current design.StoneColor, rng *rand.Rand) design.StoneColor {
	var avail []design.StoneColor
	for _, v := range all {
		if v != current {
			avail = append(avail, v)
		}
	}
	if len(avail) == 0 {
		return current
	}
	return avail[rng.Intn(len(avail))]
}

func pickBand(all []design.BandDesign, current design.BandDesign, rng *rand.Rand) design.BandDesign {
	var avail []design.BandDesign
	for _, v := range all {
		if v != current {
			avail = append(avail, v)
		}
	}
	if len(avail) == 0 {
		return current
	}
	return avail[rng.Intn(len(avail))]
}

func pickFinish(all []design.Finish, current design.Finish, rng *rand.Rand) design.Finish {
	var avail []design.Finish
	for _, v := range all {
		if v != current {
			avail = append(avail, v)
		}
	}
	if len(avail) == 0 {
		return current
	}
	return avail[rng.Intn(len(avail))]
}

func pickColor(all []design.MaterialColor, current design.MaterialColor, rng *rand.Rand) design.MaterialColor {
	var avail []design.MaterialColor
	for _, v := range all {
		if v != current {
			avail = append(avail, v)
		}
	}
	if len(avail) == 0 {
		return current
	}
	return avail[rng.Intn(len(avail))]
}

// #endregion pickers
