package geometry

import "github.com/jewelify/design-engine/internal/design"

// #region validation
// Validation is the outcome of a material-compatibility check.
type Validation struct {
	Valid    bool   `json:"valid"`
	Material string `json:"material"`
	Message  string `json:"message"`
}

const compatibleMessage = "Material combination is compatible"

// materialRestrictions lists engraving techniques each material cannot
// take, with the warning surfaced when the combination is rejected.
var materialRestrictions = map[design.Material]struct {
	incompatible []design.Engraving
	warning      string
}{
	design.MaterialPalladium: {
		incompatible: []design.Engraving{design.EngravingDeep},
		warning:      "Palladium is too soft for deep engraving",
	},
}

// #endregion validation

// #region validate
// ValidateMaterials checks a material/style/engraving combination against
// the restriction table. Pure; unknown materials have no restrictions and
// pass.
func ValidateMaterials(material design.Material, style design.Style, engraving design.Engraving) Validation {
	rule, ok := materialRestrictions[material]
	if !ok {
		return Validation{Valid: true, Material: string(material), Message: compatibleMessage}
	}
	for _, banned := range rule.incompatible {
		if engraving == banned {
			return Validation{Valid: false, Material: string(material), Message: rule.warning}
		}
	}
	return Validation{Valid: true, Material: string(material), Message: compatibleMessage}
}

// #endregion validate
