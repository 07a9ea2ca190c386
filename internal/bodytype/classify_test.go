package bodytype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   Answers
		want BodyType
		rule string
	}{
		{"hourglass", Answers{AboutSame, Balanced}, Hourglass, "hourglass"},
		{"hips wider", Answers{HipsWider, Balanced}, Pear, "pear"},
		{"bottom volume", Answers{AboutSame, Bottom}, Pear, "pear"},
		{"pear beats apple", Answers{HipsWider, Middle}, Pear, "pear"},
		{"pear beats inverted triangle", Answers{ShouldersWider, Bottom}, Pear, "pear"},
		{"apple", Answers{AboutSame, Middle}, Apple, "apple"},
		{"apple beats inverted triangle", Answers{ShouldersWider, Middle}, Apple, "apple"},
		{"shoulders wider", Answers{ShouldersWider, Balanced}, InvertedTriangle, "inverted_triangle"},
		{"top volume", Answers{AboutSame, Top}, InvertedTriangle, "inverted_triangle"},
		{"about same unknown volume", Answers{AboutSame, "everywhere"}, Rectangle, "rectangle"},
		{"empty answers", Answers{}, Rectangle, "default"},
		{"unknown everything", Answers{"wide", "nowhere"}, Rectangle, "default"},
		{"case sensitive", Answers{"About_Same", "Balanced"}, Rectangle, "default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule := Explain(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rule, rule)
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	ratios := []string{AboutSame, HipsWider, ShouldersWider, "", "other"}
	volumes := []string{Balanced, Bottom, Middle, Top, "", "other"}
	for _, r := range ratios {
		for _, v := range volumes {
			a := Answers{ShoulderHipRatio: r, VolumeArea: v}
			first := Classify(a)
			for i := 0; i < 3; i++ {
				assert.Equal(t, first, Classify(a), "ratio=%q volume=%q", r, v)
			}
			assert.True(t, Valid(string(first)))
		}
	}
}

func TestEachRuleInIsolation(t *testing.T) {
	cases := map[string]Answers{
		"hourglass":         {AboutSame, Balanced},
		"pear":              {HipsWider, ""},
		"apple":             {"", Middle},
		"inverted_triangle": {ShouldersWider, ""},
		"rectangle":         {AboutSame, ""},
	}
	for _, r := range Rules {
		a, ok := cases[r.Name]
		if !assert.True(t, ok, "no case for rule %s", r.Name) {
			continue
		}
		assert.True(t, r.Match(a), r.Name)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("Inverted Triangle"))
	assert.False(t, Valid("inverted triangle"))
	assert.False(t, Valid(""))
}
