package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jewelify/design-engine/internal/design"
	"github.com/jewelify/design-engine/internal/survey"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a
// completed survey, a seed for every random choice, and an edit script
// with the expected outcome per step.
type Fixture struct {
	Description string        `json:"description"`
	Seed        int64         `json:"seed"`
	Survey      FixtureSurvey `json:"survey"`

	// StartConfig overrides survey derivation when set. Exported fixtures
	// use it because the original survey answers are not persisted.
	StartConfig *design.Config `json:"start_config,omitempty"`

	Steps           []FixtureStep           `json:"steps"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
}

// FixtureSurvey is the JSON-serializable survey input.
type FixtureSurvey struct {
	Category string            `json:"category"`
	Answers  map[string]string `json:"answers"`
}

// FixtureStep is one scripted edit. Kind selects the operation; the
// other fields are read per kind (Text for prompt/part/redesign, Part
// for part, Patch for patch).
type FixtureStep struct {
	StepID string        `json:"step_id"`
	Kind   string        `json:"kind"`
	Part   string        `json:"part,omitempty"`
	Text   string        `json:"text,omitempty"`
	Patch  *design.Patch `json:"patch,omitempty"`
}

// FixtureExpectedResult captures the expected action per step. Price is
// checked only when non-zero.
type FixtureExpectedResult struct {
	StepID string `json:"step_id"`
	Action string `json:"action"`
	Price  int    `json:"price,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToAnswers converts the fixture survey to domain answers.
func (fs *FixtureSurvey) ToAnswers() survey.Answers {
	return survey.Answers{
		Category: fs.Category,
		Survey:   fs.Answers,
	}
}

// #endregion fixture-loader
