package survey

import "fmt"

// #region answers
// Answers maps question id to the selected option id, plus the step-1
// category selector. All eleven questions must be answered before
// derivation is valid.
type Answers struct {
	Category string            `json:"category,omitempty"`
	Survey   map[string]string `json:"survey"`
}

// #endregion answers

// #region validate
// Validate checks that every question has a non-empty answer. It gates the
// survey → design transition; derivation is never entered with a partial
// survey. Unknown option *values* are not an error (they degrade to no-op
// patches), but missing answers are.
func (a Answers) Validate() error {
	if a.Survey == nil {
		return fmt.Errorf("survey answers missing")
	}
	for _, id := range QuestionIDs {
		if a.Survey[id] == "" {
			return fmt.Errorf("question %s not answered", id)
		}
	}
	return nil
}

// #endregion validate
