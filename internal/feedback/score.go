package feedback

import "math"

// Scores holds the five sub-scores and the overall score.
type Scores struct {
	Readability      int `json:"readability"`
	Relevance        int `json:"relevance"`
	Keywords         int `json:"keywords"`
	ATSCompatibility int `json:"atsCompatibility"`
	IndustryFit      int `json:"industryFit"`
	Overall          int `json:"overall"`

	// ReadabilityRaw is the clamped readability before rounding; threshold
	// checks and the overall score use it.
	ReadabilityRaw float64 `json:"-"`
}

// readabilityValue falls back to the rounded score when no raw value is set.
func (s Scores) readabilityValue() float64 {
	if s.ReadabilityRaw > 0 {
		return s.ReadabilityRaw
	}
	return float64(s.Readability)
}

type categoryWeights struct {
	Education, Experience, Skills, Achievements float64
}

func (w categoryWeights) apply(f Features) int {
	return roundScore(float64(f.Education.Score)*w.Education +
		float64(f.Experience.Score)*w.Experience +
		float64(f.Skills.Score)*w.Skills +
		float64(f.AchievementsScore)*w.Achievements)
}

func (w categoryWeights) sum() float64 {
	return w.Education + w.Experience + w.Skills + w.Achievements
}

type overallWeights struct {
	Readability, Relevance, Keywords, ATS, IndustryFit float64
}

func (w overallWeights) sum() float64 {
	return w.Readability + w.Relevance + w.Keywords + w.ATS + w.IndustryFit
}

var (
	keywordWeights   = categoryWeights{Education: 0.15, Experience: 0.35, Skills: 0.30, Achievements: 0.20}
	relevanceWeights = categoryWeights{Education: 0.15, Experience: 0.40, Skills: 0.25, Achievements: 0.20}
	scoreWeights     = overallWeights{Readability: 0.15, Relevance: 0.25, Keywords: 0.20, ATS: 0.25, IndustryFit: 0.15}
)

const (
	idealWordsPerSentence = 17
	idealWordLength       = 5
	readabilityBaseline   = 80
	paragraphBonusCap     = 20
	scoreFloor            = 40
	defaultIndustryFit    = 50
	atsStructuralPenalty  = 10
	atsFormattingPenalty  = 8
)

// Score computes every score from extracted features.
func Score(f Features) Scores {
	raw := readabilityRaw(f.Stats)
	s := Scores{
		Readability:      roundScore(raw),
		ReadabilityRaw:   raw,
		Relevance:        relevanceWeights.apply(f),
		Keywords:         keywordWeights.apply(f),
		ATSCompatibility: atsCompatibility(f),
		IndustryFit:      industryFit(f),
	}
	s.Overall = clamp(roundScore(
		s.ReadabilityRaw*scoreWeights.Readability+
			float64(s.Relevance)*scoreWeights.Relevance+
			float64(s.Keywords)*scoreWeights.Keywords+
			float64(s.ATSCompatibility)*scoreWeights.ATS+
			float64(s.IndustryFit)*scoreWeights.IndustryFit,
	), 0, 100)
	s.Relevance = clamp(s.Relevance, 0, 100)
	s.Keywords = clamp(s.Keywords, 0, 100)
	return s
}

func readability(st Stats) int {
	return roundScore(readabilityRaw(st))
}

func readabilityRaw(st Stats) float64 {
	raw := readabilityBaseline -
		math.Abs(st.WordsPerSentence-idealWordsPerSentence)*2 -
		math.Abs(st.AvgWordLength-idealWordLength)*3 +
		math.Min(paragraphBonusCap, float64(st.ParagraphCount*2))
	if math.IsNaN(raw) {
		return scoreFloor
	}
	return math.Min(100, math.Max(scoreFloor, raw))
}

func atsCompatibility(f Features) int {
	score := 100 - len(f.StructuralIssues)*atsStructuralPenalty - len(f.FormattingIssues)*atsFormattingPenalty
	return clamp(score, scoreFloor, 100)
}

func industryFit(f Features) int {
	if !f.IndustryKnown || f.IndustryTermCount == 0 {
		return defaultIndustryFit
	}
	ratio := float64(len(f.IndustryPresent)) / float64(f.IndustryTermCount)
	return clamp(roundScore(ratio*100), scoreFloor, 100)
}

func roundScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
