package survey

// #region question-ids
// QuestionIDs lists the eleven questions in the order derivation applies
// them. The order is part of the rule-table contract: later questions win
// direct field conflicts unless a field is locked.
var QuestionIDs = []string{
	"q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8", "q9", "q10", "q11",
}

// #endregion question-ids

// #region question
// Question describes one survey step for presentation and validation.
type Question struct {
	ID      string
	Label   string
	Options []Option
}

// Option is a selectable answer to a question.
type Option struct {
	ID    string
	Label string
}

// Questions returns the full survey in presentation order.
func Questions() []Question {
	return []Question{
		{ID: "q1", Label: "What is their typical style?", Options: []Option{
			{ID: "classic", Label: "Classic & Elegant"},
			{ID: "modern", Label: "Modern & Minimalist"},
			{ID: "vintage", Label: "Vintage & Ornate"},
			{ID: "bold", Label: "Bold & Artistic"},
		}},
		{ID: "q2", Label: "Which colors do they wear?", Options: []Option{
			{ID: "neutral", Label: "Neutral"},
			{ID: "warm", Label: "Warm Tones"},
			{ID: "cool", Label: "Cool Tones"},
			{ID: "vibrant", Label: "Bright & Vibrant"},
		}},
		{ID: "q3", Label: "Which kind of shapes do they prefer?", Options: []Option{
			{ID: "curves", Label: "Curves"},
			{ID: "leaves", Label: "Leaves"},
			{ID: "organic", Label: "Organic"},
			{ID: "asymmetrical", Label: "Asymmetrical"},
		}},
		{ID: "q4", Label: "What color of metal do they most frequently wear?", Options: []Option{
			{ID: "yellow", Label: "Yellow"},
			{ID: "white", Label: "White / Silver"},
			{ID: "pink", Label: "Pink / Red"},
			{ID: "mixed", Label: "Mix of colors"},
		}},
		{ID: "q5", Label: "What kind of finish do you think they would prefer?", Options: []Option{
			{ID: "matte", Label: "Matte & Brushed"},
			{ID: "textured", Label: "Textured"},
			{ID: "polished", Label: "Polished & Shiny"},
			{ID: "hammered", Label: "Hammered"},
		}},
		{ID: "q6", Label: "Should this piece feature a stone?", Options: []Option{
			{ID: "accent", Label: "Yes, but only as small accent stones"},
			{ID: "lots", Label: "Yes, lots of stones"},
			{ID: "none", Label: "No, I prefer a metal-only design"},
			{ID: "centerpiece", Label: "Yes, as the main centerpiece"},
		}},
		{ID: "q7", Label: "Which mood feels right for them?", Options: []Option{
			{ID: "passionate", Label: "Passionate & Energetic"},
			{ID: "royal", Label: "Royal & Luxurious"},
			{ID: "happy", Label: "Happy & Bright"},
			{ID: "calm", Label: "Calm & Serene"},
		}},
		{ID: "q8", Label: "What is the primary occasion for this jewel?", Options: []Option{
			{ID: "birthday", Label: "Birthday Milestone"},
			{ID: "wedding", Label: "Wedding / Romantic"},
			{ID: "achievement", Label: "Personal Achievement"},
			{ID: "justbecause", Label: "Just because"},
		}},
		{ID: "q9", Label: "How often will the jewel be worn?", Options: []Option{
			{ID: "daily", Label: "Every single day"},
			{ID: "frequently", Label: "Frequently, not daily"},
			{ID: "occasionally", Label: "Every 2-3 months"},
			{ID: "special", Label: "Only on special occasions"},
		}},
		{ID: "q10", Label: "How active is the wearer in their daily life?", Options: []Option{
			{ID: "veryactive", Label: "Very Active"},
			{ID: "average", Label: "Average Activity"},
			{ID: "light", Label: "Light Activity"},
			{ID: "noactivity", Label: "No Activity"},
		}},
		{ID: "q11", Label: "Which word must describe the jewel?", Options: []Option{
			{ID: "meaningful", Label: "Meaningful"},
			{ID: "timeless", Label: "Timeless"},
			{ID: "simple", Label: "Simple"},
			{ID: "impressive", Label: "Impressive"},
		}},
	}
}

// #endregion question
