package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, keywordWeights.sum(), 1e-9)
	assert.InDelta(t, 1.0, relevanceWeights.sum(), 1e-9)
	assert.InDelta(t, 1.0, scoreWeights.sum(), 1e-9)
}

func TestReadability(t *testing.T) {
	cases := []struct {
		name string
		st   Stats
		want int
	}{
		{"ideal", Stats{WordsPerSentence: 17, AvgWordLength: 5, ParagraphCount: 10}, 100},
		{"ideal single paragraph", Stats{WordsPerSentence: 17, AvgWordLength: 5, ParagraphCount: 1}, 82},
		{"long sentences", Stats{WordsPerSentence: 37, AvgWordLength: 5, ParagraphCount: 1}, 42},
		{"floor", Stats{WordsPerSentence: 100, AvgWordLength: 12}, 40},
		{"rounding", Stats{WordsPerSentence: 17.25, AvgWordLength: 5}, 80},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, readability(tc.st))
		})
	}
	assert.InDelta(t, 79.5, readabilityRaw(Stats{WordsPerSentence: 17.25, AvgWordLength: 5}), 1e-9)
}

func TestATSCompatibility(t *testing.T) {
	f := Features{
		StructuralIssues: []string{"a", "b"},
		FormattingIssues: []string{"c"},
	}
	assert.Equal(t, 72, atsCompatibility(f))

	f.StructuralIssues = []string{"a", "b", "c", "d"}
	f.FormattingIssues = []string{"e", "f", "g"}
	assert.Equal(t, 40, atsCompatibility(f))
}

func TestIndustryFit(t *testing.T) {
	f := Features{IndustryKnown: false, IndustryTermCount: 25, IndustryPresent: []string{"a"}}
	assert.Equal(t, 50, industryFit(f))

	f = Features{IndustryKnown: true, IndustryTermCount: 4, IndustryPresent: []string{"a", "b", "c"}}
	assert.Equal(t, 75, industryFit(f))

	f.IndustryPresent = nil
	assert.Equal(t, 40, industryFit(f))
}

func TestScoreWeightedSums(t *testing.T) {
	f := Features{
		Education:         Category{Score: 100},
		Experience:        Category{Score: 60},
		Skills:            Category{Score: 80},
		AchievementsScore: 50,
		Stats:             Stats{WordsPerSentence: 17, AvgWordLength: 5, ParagraphCount: 10},
	}
	s := Score(f)
	// 15 + 21 + 24 + 10
	assert.Equal(t, 70, s.Keywords)
	// 15 + 24 + 20 + 10
	assert.Equal(t, 69, s.Relevance)
	assert.Equal(t, 100, s.Readability)
	assert.Equal(t, 100, s.ATSCompatibility)
	assert.Equal(t, 50, s.IndustryFit)
	// 15 + 17.25 + 14 + 25 + 7.5 = 78.75
	assert.Equal(t, 79, s.Overall)
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 43, roundScore(42.5))
	assert.Equal(t, 42, roundScore(42.49))
	assert.Equal(t, 0, roundScore(0))
}

func TestCompatibilityFor(t *testing.T) {
	assert.Equal(t, CompatibilityHigh, CompatibilityFor(76))
	assert.Equal(t, CompatibilityMedium, CompatibilityFor(75))
	assert.Equal(t, CompatibilityMedium, CompatibilityFor(61))
	assert.Equal(t, CompatibilityLow, CompatibilityFor(60))
	assert.Equal(t, CompatibilityLow, CompatibilityFor(40))
}
