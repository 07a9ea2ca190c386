// Package bodytype derives a body-shape label from the two required quiz answers.
package bodytype

// BodyType is the silhouette label shown to the user and used to bias catalog ordering.
type BodyType string

const (
	Hourglass        BodyType = "Hourglass"
	Pear             BodyType = "Pear"
	Apple            BodyType = "Apple"
	InvertedTriangle BodyType = "Inverted Triangle"
	Rectangle        BodyType = "Rectangle"
)

// All lists every body type in display order.
var All = []BodyType{Hourglass, Pear, Apple, InvertedTriangle, Rectangle}

// Quiz answer values understood by the rules. Anything else falls through to the default.
const (
	AboutSame      = "about_same"
	HipsWider      = "hips_wider"
	ShouldersWider = "shoulders_wider"

	Balanced = "balanced"
	Bottom   = "bottom"
	Middle   = "middle"
	Top      = "top"
)

type Answers struct {
	ShoulderHipRatio string `json:"shoulder_hip_ratio"`
	VolumeArea       string `json:"volume_area"`
}

// Rule maps a predicate over the answers to a result.
type Rule struct {
	Name   string
	Match  func(Answers) bool
	Result BodyType
}

// Rules are evaluated in order and the first match wins. Branches overlap, so the
// order is part of the contract: Pear is checked before Apple and Inverted Triangle.
var Rules = []Rule{
	{
		Name:   "hourglass",
		Match:  func(a Answers) bool { return a.ShoulderHipRatio == AboutSame && a.VolumeArea == Balanced },
		Result: Hourglass,
	},
	{
		Name:   "pear",
		Match:  func(a Answers) bool { return a.ShoulderHipRatio == HipsWider || a.VolumeArea == Bottom },
		Result: Pear,
	},
	{
		Name:   "apple",
		Match:  func(a Answers) bool { return a.VolumeArea == Middle },
		Result: Apple,
	},
	{
		Name:   "inverted_triangle",
		Match:  func(a Answers) bool { return a.ShoulderHipRatio == ShouldersWider || a.VolumeArea == Top },
		Result: InvertedTriangle,
	},
	{
		Name:   "rectangle",
		Match:  func(a Answers) bool { return a.ShoulderHipRatio == AboutSame },
		Result: Rectangle,
	},
}

// Default is returned when no rule matches.
const Default = Rectangle

// Classify returns the body type for the answers. It never fails.
func Classify(a Answers) BodyType {
	bt, _ := Explain(a)
	return bt
}

// Explain is Classify plus the name of the rule that fired ("default" when none did).
func Explain(a Answers) (BodyType, string) {
	for _, r := range Rules {
		if r.Match(a) {
			return r.Result, r.Name
		}
	}
	return Default, "default"
}

// Valid reports whether s is one of the known body type labels.
func Valid(s string) bool {
	for _, bt := range All {
		if string(bt) == s {
			return true
		}
	}
	return false
}
