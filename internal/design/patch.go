package design

// #region field
// Field names a single configurable parameter. Used for patch restriction
// and for the edit provenance log.
type Field string

const (
	FieldDesign            Field = "design"
	FieldMaterial          Field = "material"
	FieldMaterialColor     Field = "materialColor"
	FieldBandMaterialColor Field = "bandMaterialColor"
	FieldStyle             Field = "style"
	FieldMetalFinish       Field = "metalFinish"
	FieldStoneColor        Field = "stoneColor"
	FieldStoneShape        Field = "stoneShape"
	FieldBandDesign        Field = "bandDesign"
	FieldEngraving         Field = "engraving"
	FieldPolish            Field = "polish"
	FieldClarity           Field = "clarity"
)

// #endregion field

// #region patch
// Patch is a partial configuration: only non-nil fields are applied.
// Patches merge last-writer-wins per field.
type Patch struct {
	Design            *Design        `json:"design,omitempty"`
	Material          *Material      `json:"material,omitempty"`
	MaterialColor     *MaterialColor `json:"materialColor,omitempty"`
	BandMaterialColor *MaterialColor `json:"bandMaterialColor,omitempty"`
	Style             *Style         `json:"style,omitempty"`
	MetalFinish       *Finish        `json:"metalFinish,omitempty"`
	StoneColor        *StoneColor    `json:"stoneColor,omitempty"`
	StoneShape        *StoneShape    `json:"stoneShape,omitempty"`
	BandDesign        *BandDesign    `json:"bandDesign,omitempty"`
	Engraving         *Engraving     `json:"engraving,omitempty"`
	Polish            *float64       `json:"polish,omitempty"`
	Clarity           *float64       `json:"clarity,omitempty"`
}

// IsEmpty reports whether the patch sets no field at all.
func (p Patch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Fields lists the fields the patch sets, in declaration order.
func (p Patch) Fields() []Field {
	var fields []Field
	if p.Design != nil {
		fields = append(fields, FieldDesign)
	}
	if p.Material != nil {
		fields = append(fields, FieldMaterial)
	}
	if p.MaterialColor != nil {
		fields = append(fields, FieldMaterialColor)
	}
	if p.BandMaterialColor != nil {
		fields = append(fields, FieldBandMaterialColor)
	}
	if p.Style != nil {
		fields = append(fields, FieldStyle)
	}
	if p.MetalFinish != nil {
		fields = append(fields, FieldMetalFinish)
	}
	if p.StoneColor != nil {
		fields = append(fields, FieldStoneColor)
	}
	if p.StoneShape != nil {
		fields = append(fields, FieldStoneShape)
	}
	if p.BandDesign != nil {
		fields = append(fields, FieldBandDesign)
	}
	if p.Engraving != nil {
		fields = append(fields, FieldEngraving)
	}
	if p.Polish != nil {
		fields = append(fields, FieldPolish)
	}
	if p.Clarity != nil {
		fields = append(fields, FieldClarity)
	}
	return fields
}

// #endregion patch

// #region apply
// Apply merges the patch into a configuration and reconciles the
// per-mutation invariants. materialColor is only changed if the patch sets
// it (or material via a later Normalize).
func (p Patch) Apply(c Config) Config {
	if p.Design != nil {
		c.Design = *p.Design
	}
	if p.Material != nil {
		c.Material = *p.Material
	}
	if p.MaterialColor != nil {
		c.MaterialColor = *p.MaterialColor
	}
	if p.BandMaterialColor != nil {
		c.BandMaterialColor = *p.BandMaterialColor
	}
	if p.Style != nil {
		c.Style = *p.Style
	}
	if p.MetalFinish != nil {
		c.MetalFinish = *p.MetalFinish
	}
	if p.StoneColor != nil {
		c.StoneColor = *p.StoneColor
	}
	if p.StoneShape != nil {
		c.StoneShape = *p.StoneShape
	}
	if p.BandDesign != nil {
		c.BandDesign = *p.BandDesign
	}
	if p.Engraving != nil {
		c.Engraving = *p.Engraving
	}
	if p.Polish != nil {
		c.Polish = *p.Polish
	}
	if p.Clarity != nil {
		c.Clarity = *p.Clarity
	}
	return Reconcile(c)
}

// #endregion apply

// #region restrict
// Restrict returns a copy of the patch keeping only the listed fields.
// Fields outside the set are discarded even when present.
func (p Patch) Restrict(fields ...Field) Patch {
	keep := make(map[Field]bool, len(fields))
	for _, f := range fields {
		keep[f] = true
	}
	var out Patch
	if keep[FieldDesign] {
		out.Design = p.Design
	}
	if keep[FieldMaterial] {
		out.Material = p.Material
	}
	if keep[FieldMaterialColor] {
		out.MaterialColor = p.MaterialColor
	}
	if keep[FieldBandMaterialColor] {
		out.BandMaterialColor = p.BandMaterialColor
	}
	if keep[FieldStyle] {
		out.Style = p.Style
	}
	if keep[FieldMetalFinish] {
		out.MetalFinish = p.MetalFinish
	}
	if keep[FieldStoneColor] {
		out.StoneColor = p.StoneColor
	}
	if keep[FieldStoneShape] {
		out.StoneShape = p.StoneShape
	}
	if keep[FieldBandDesign] {
		out.BandDesign = p.BandDesign
	}
	if keep[FieldEngraving] {
		out.Engraving = p.Engraving
	}
	if keep[FieldPolish] {
		out.Polish = p.Polish
	}
	if keep[FieldClarity] {
		out.Clarity = p.Clarity
	}
	return out
}

// #endregion restrict

// #region pointer-helpers
// Pointer constructors keep patch literals readable at call sites.

func DesignPtr(v Design) *Design              { return &v }
func MaterialPtr(v Material) *Material        { return &v }
func ColorPtr(v MaterialColor) *MaterialColor { return &v }
func StylePtr(v Style) *Style                 { return &v }
func FinishPtr(v Finish) *Finish              { return &v }
func StoneColorPtr(v StoneColor) *StoneColor  { return &v }
func StoneShapePtr(v StoneShape) *StoneShape  { return &v }
func BandDesignPtr(v BandDesign) *BandDesign  { return &v }
func EngravingPtr(v Engraving) *Engraving     { return &v }
func FloatPtr(v float64) *float64             { return &v }

// #endregion pointer-helpers
