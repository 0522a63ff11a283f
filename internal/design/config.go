package design

// #region enums
// Design is the overall design language of the piece.
type Design string

const (
	DesignDelicate  Design = "delicate"
	DesignGeometric Design = "geometric"
	DesignOrganic   Design = "organic"
	DesignStatement Design = "statement"
)

// Material is the alloy the piece is made of.
type Material string

const (
	MaterialGold      Material = "gold"
	MaterialSilver    Material = "silver"
	MaterialRose      Material = "rose"
	MaterialPlatinum  Material = "platinum"
	MaterialPalladium Material = "palladium"
)

// MaterialColor is the display color of a metal. Palladium has no color of
// its own and renders as platinum.
type MaterialColor string

const (
	ColorGold     MaterialColor = "gold"
	ColorSilver   MaterialColor = "silver"
	ColorRose     MaterialColor = "rose"
	ColorPlatinum MaterialColor = "platinum"
)

// Style is the stone-setting style.
type Style string

const (
	StylePave       Style = "pavé"
	StyleSolitaire  Style = "solitaire"
	StyleHalo       Style = "halo"
	StyleThreeStone Style = "three-stone"
	StyleVintage    Style = "vintage"
)

// Finish is the surface treatment of the metal.
type Finish string

const (
	FinishPolished Finish = "polished"
	FinishMatte    Finish = "matte"
	FinishHammered Finish = "hammered"
)

// StoneColor is the gemstone color.
type StoneColor string

const (
	StoneClear  StoneColor = "clear"
	StonePink   StoneColor = "pink"
	StoneBlue   StoneColor = "blue"
	StoneGreen  StoneColor = "green"
	StoneRed    StoneColor = "red"
	StoneYellow StoneColor = "yellow"
)

// StoneShape is the gemstone cut.
type StoneShape string

const (
	ShapeBrilliant StoneShape = "brilliant"
	ShapeDiamond   StoneShape = "diamond"
	ShapeGem       StoneShape = "gem"
)

// BandDesign is the band profile.
type BandDesign string

const (
	BandClassic BandDesign = "Classic"
	BandKnife   BandDesign = "Knife"
	BandFlat    BandDesign = "Flat"
)

// Engraving is the engraving technique, or none.
type Engraving string

const (
	EngravingNone    Engraving = ""
	EngravingLaser   Engraving = "laser"
	EngravingHand    Engraving = "hand"
	EngravingMachine Engraving = "machine"
	EngravingEtched  Engraving = "etched"
	EngravingDeep    Engraving = "deep"
)

// #endregion enums

// #region clamp
// Polish and clarity live in a fixed quality band.
const (
	QualityMin = 0.3
	QualityMax = 0.95
)

// ClampQuality restricts a polish/clarity value to [QualityMin, QualityMax].
func ClampQuality(v float64) float64 {
	if v < QualityMin {
		return QualityMin
	}
	if v > QualityMax {
		return QualityMax
	}
	return v
}

// #endregion clamp

// #region config
// Config is the complete set of design parameters for one jewelry variant.
// Always fully populated once past derivation; mutated only by whole-value
// replacement.
type Config struct {
	Design            Design        `json:"design"`
	Material          Material      `json:"material"`
	MaterialColor     MaterialColor `json:"materialColor"`
	BandMaterialColor MaterialColor `json:"bandMaterialColor,omitempty"`
	Style             Style         `json:"style"`
	MetalFinish       Finish        `json:"metalFinish"`
	StoneColor        StoneColor    `json:"stoneColor"`
	StoneShape        StoneShape    `json:"stoneShape"`
	BandDesign        BandDesign    `json:"bandDesign"`
	Engraving         Engraving     `json:"engraving,omitempty"`
	Polish            float64       `json:"polish"`
	Clarity           float64       `json:"clarity"`
	BandPath          string        `json:"bandPath"`
	StonePath         string        `json:"stonePath"`
	ModelPath         string        `json:"modelPath"`
	Label             string        `json:"label,omitempty"`
}

// Default returns the starting configuration every derivation folds over.
func Default() Config {
	return Normalize(Config{
		Design:      DesignDelicate,
		Material:    MaterialGold,
		Style:       StyleSolitaire,
		MetalFinish: FinishPolished,
		StoneColor:  StoneClear,
		StoneShape:  ShapeBrilliant,
		BandDesign:  BandClassic,
		Polish:      0.7,
		Clarity:     0.7,
		ModelPath:   "/models/ring/BAND_CLASSIC.glb",
	})
}

// Fallback returns the configuration used when no survey exists at all.
// This is a distinct path from deriving over an empty survey.
func Fallback(modelPath string) Config {
	if modelPath == "" {
		modelPath = "/models/Bracelet.obj"
	}
	return Normalize(Config{
		Design:      DesignGeometric,
		Material:    MaterialPalladium,
		Style:       StylePave,
		MetalFinish: FinishHammered,
		StoneColor:  StoneClear,
		StoneShape:  ShapeBrilliant,
		BandDesign:  BandClassic,
		Polish:      0.8,
		Clarity:     0.9,
		ModelPath:   modelPath,
	})
}

// #endregion config

// #region material-color
// ColorFor returns the display color for a material. Unknown materials
// degrade to gold rather than erroring.
func ColorFor(m Material) MaterialColor {
	switch m {
	case MaterialGold:
		return ColorGold
	case MaterialSilver:
		return ColorSilver
	case MaterialRose:
		return ColorRose
	case MaterialPlatinum, MaterialPalladium:
		return ColorPlatinum
	default:
		return ColorGold
	}
}

// #endregion material-color

// #region asset-paths
// BandFile returns the band mesh filename for a band profile.
func BandFile(b BandDesign) string {
	switch b {
	case BandKnife:
		return "BAND_KNIFE.glb"
	case BandFlat:
		return "BAND_FLAT.glb"
	default:
		return "BAND_CLASSIC.glb"
	}
}

// StoneFile returns the stone mesh filename for a stone shape.
func StoneFile(s StoneShape) string {
	switch s {
	case ShapeDiamond:
		return "STONE_DIAMOND.glb"
	case ShapeGem:
		return "STONE_GEM.glb"
	default:
		return "STONE_BRILLIANT.glb"
	}
}

const modelBasePath = "/models/ring/"

// #endregion asset-paths

// #region normalize
// Reconcile re-establishes the per-mutation invariants: polish/clarity sit
// inside the quality band and band/stone asset paths match
// bandDesign/stoneShape. It does not touch materialColor, so part-level
// color overrides survive ordinary edits.
func Reconcile(c Config) Config {
	c.Polish = ClampQuality(c.Polish)
	c.Clarity = ClampQuality(c.Clarity)
	c.BandPath = modelBasePath + BandFile(c.BandDesign)
	c.StonePath = modelBasePath + StoneFile(c.StoneShape)
	return c
}

// Normalize is the full post-derivation pass: materialColor is recomputed
// from material, then the per-mutation invariants are reconciled.
func Normalize(c Config) Config {
	c.MaterialColor = ColorFor(c.Material)
	return Reconcile(c)
}

// #endregion normalize
