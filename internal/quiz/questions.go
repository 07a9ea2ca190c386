package quiz

import "stylelove/internal/bodytype"

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Question struct {
	Key      string   `json:"key"`
	Prompt   string   `json:"prompt"`
	Required bool     `json:"required"`
	Options  []Option `json:"options"`
}

// Questions in the order the onboarding flow asks them.
var questions = []Question{
	{
		Key:      "shoulder_hip_ratio",
		Prompt:   "How do your shoulders compare to your hips?",
		Required: true,
		Options: []Option{
			{bodytype.AboutSame, "About the same width"},
			{bodytype.HipsWider, "Hips are wider"},
			{bodytype.ShouldersWider, "Shoulders are wider"},
		},
	},
	{
		Key:      "volume_area",
		Prompt:   "Where do you tend to carry more volume?",
		Required: true,
		Options: []Option{
			{bodytype.Balanced, "Balanced, with a defined waist"},
			{bodytype.Bottom, "Hips and thighs"},
			{bodytype.Middle, "Midsection"},
			{bodytype.Top, "Bust and shoulders"},
		},
	},
	{
		Key:    "preferred_fit",
		Prompt: "What fit do you feel best in?",
		Options: []Option{
			{"fitted", "Fitted"},
			{"relaxed", "Relaxed"},
			{"oversized", "Oversized"},
		},
	},
	{
		Key:    "height_range",
		Prompt: "What is your height range?",
		Options: []Option{
			{"under_160", "Under 160 cm"},
			{"160_170", "160 - 170 cm"},
			{"170_180", "170 - 180 cm"},
			{"over_180", "Over 180 cm"},
		},
	},
}

func Questions() []Question {
	return questions
}

// GetQuestion looks a question up by key.
func GetQuestion(key string) (Question, bool) {
	for _, q := range questions {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}
