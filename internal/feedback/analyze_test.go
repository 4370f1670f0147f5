package feedback

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongResume = `Jane Doe
jane.doe@example.com | (555) 123-4567 | linkedin.com/in/janedoe

Senior software engineer with 5 years of experience building cloud platforms for a fast growing company. I work closely with product teams and lead projects from design to launch.

Experience
Developed and launched a payments API used by two million customers. Increased revenue by 30% after we optimized the checkout flow. Reduced infrastructure cost by 20% by moving batch jobs to AWS. Managed a team of six engineers and implemented code review standards.

Education
Bachelor of Science in Computer Science, State University, 2016. Graduated with a GPA of 3.8.

Skills
Proficient in Python, Java and SQL. Advanced knowledge of React, Node and REST API design. Familiar with agile and scrum delivery, Git, CI/CD and DevOps tooling.`

const plainProse = "The quiet river runs past the old town. Birds sing in the morning sun while the baker opens his shop. " +
	"Children play near the fountain and dogs chase each other across the square. The rain arrives and everyone hurries home. " +
	"At night the streets are calm and the moon shines."

func TestAnalyzeStrongResume(t *testing.T) {
	res := AnalyzeDetailed(strongResume, "")

	f := res.Features
	assert.True(t, f.HasEducation())
	assert.True(t, f.HasExperience())
	assert.True(t, f.HasAchievements())
	assert.True(t, f.HasQuantifiableResults())
	assert.Equal(t, 100, f.Contact.Score)

	assert.Greater(t, res.Data.OverallScore, 70)
	assert.Contains(t, strengthTexts(res.Data), "Quantified accomplishments")
	assert.Contains(t, strengthTexts(res.Data), "Clear contact information")
}

func TestAnalyzePlainProse(t *testing.T) {
	require.Equal(t, 50, len(strings.Fields(plainProse)))

	data := Analyze(plainProse, "")

	assert.LessOrEqual(t, data.OverallScore, 55)
	weaknesses := weaknessTexts(data)
	assert.Contains(t, weaknesses, "Missing or unclear education section")
	assert.Contains(t, weaknesses, "Work experience not clearly defined")
	assert.Contains(t, weaknesses, "Resume appears too short")
	assert.False(t, data.ATSAnalysis.IsParseable)
	assert.Equal(t, 60, data.ATSCompatibilityScore)
	assert.Equal(t, CompatibilityLow, data.ATSAnalysis.OverallCompatibility)
}

func TestAnalyzeIndustryChangesFit(t *testing.T) {
	tech := Analyze(strongResume, "technology")
	general := Analyze(strongResume, "")

	assert.NotEqual(t, tech.IndustryFitScore, general.IndustryFitScore)
	assert.Equal(t, 50, general.IndustryFitScore)
	assert.Equal(t, "technology", tech.IndustryAnalysis.Industry)
	assert.Equal(t, "general", general.IndustryAnalysis.Industry)
	assert.Contains(t, tech.IndustryAnalysis.RelevantSkills, "software")
}

func TestAnalyzeUnknownIndustryFallsBackToGeneral(t *testing.T) {
	data := Analyze(strongResume, "  Aerospace ")
	assert.Equal(t, IndustryGeneral, data.IndustryAnalysis.Industry)
	assert.Equal(t, 50, data.IndustryFitScore)
	assert.Equal(t, industryTrends[IndustryGeneral], data.IndustryAnalysis.IndustryTrends)
}

func TestAnalyzeOverusedPhrase(t *testing.T) {
	text := "Team player and hard worker. A true team player. Always a team player, a TEAM PLAYER at heart, a team player."
	data := Analyze(text, "")

	var found bool
	for _, ks := range data.KeywordSuggestions {
		for _, phrase := range ks.Overused {
			if phrase == "team player" {
				found = true
			}
		}
	}
	assert.True(t, found, "team player should be reported as overused")
}

func TestAnalyzePhraseRepeatedTwiceIsNotOverused(t *testing.T) {
	data := Analyze("A motivated engineer. Motivated by results.", "")
	for _, ks := range data.KeywordSuggestions {
		assert.Empty(t, ks.Overused, ks.Category)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	for _, industry := range []string{"", "technology", "finance"} {
		assert.Equal(t, Analyze(strongResume, industry), Analyze(strongResume, industry))
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\n\t", "word", "!!!???..."} {
		data := Analyze(text, "")
		assertInvariants(t, data)
		assert.Equal(t, []Strength{defaultStrength}, data.Strengths, "input %q", text)
	}
}

func TestAnalyzeRandomCorpus(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	vocab := []string{
		"led", "managed", "degree", "university", "python", "%", "$", "revenue", "team player",
		"•", "|", "\t\t", "   ", "\n\n", ".", "!", "?", "page", "patient", "marketing", "x", "experience",
		"jane@example.com", "555-123-4567", "linkedin.com/in/someone", "\x00", "\u0085", "é",
	}
	industries := append(Industries(), "", "general", "unknown")

	for i := 0; i < 300; i++ {
		var b strings.Builder
		n := rng.IntN(1200)
		for j := 0; j < n; j++ {
			b.WriteString(vocab[rng.IntN(len(vocab))])
			b.WriteByte(' ')
		}
		assertInvariants(t, Analyze(b.String(), industries[rng.IntN(len(industries))]))
	}
}

func TestAnalyzeVerboseDocument(t *testing.T) {
	text := strings.Repeat("Managed the degree program at the university and increased revenue. ", 80)
	data := Analyze(text, "")
	assert.Contains(t, weaknessTexts(data), "Resume may be too verbose")
	assert.NotContains(t, weaknessTexts(data), "Resume appears too short")
	assertInvariants(t, data)
}

func FuzzAnalyze(f *testing.F) {
	f.Add("", "")
	f.Add("word", "technology")
	f.Add(strongResume, "finance")
	f.Add(plainProse, "marketing")
	f.Fuzz(func(t *testing.T, text, industry string) {
		assertInvariants(t, Analyze(text, industry))
	})
}

func TestAnalyzerDelayHonoursContext(t *testing.T) {
	a := &Analyzer{Delay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.AnalyzeContext(ctx, strongResume, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzerDelayDoesNotChangeResult(t *testing.T) {
	a := &Analyzer{Delay: time.Millisecond}
	got, err := a.AnalyzeContext(context.Background(), strongResume, "technology")
	require.NoError(t, err)
	assert.Equal(t, Analyze(strongResume, "technology"), got)

	var zero *Analyzer
	got, err = zero.AnalyzeContext(context.Background(), plainProse, "")
	require.NoError(t, err)
	assert.Equal(t, Analyze(plainProse, ""), got)
}

func assertInvariants(t *testing.T, data AnalysisData) {
	t.Helper()

	inRange := func(name string, v, lo int) {
		if v < lo || v > 100 {
			t.Fatalf("%s = %d out of [%d,100]", name, v, lo)
		}
	}
	inRange("overall", data.OverallScore, 0)
	inRange("relevance", data.RelevanceScore, 0)
	inRange("keywords", data.KeywordsScore, 0)
	inRange("readability", data.ReadabilityScore, scoreFloor)
	inRange("ats", data.ATSCompatibilityScore, scoreFloor)
	inRange("industryFit", data.IndustryFitScore, scoreFloor)

	if len(data.Strengths) == 0 || len(data.Weaknesses) == 0 {
		t.Fatalf("empty narrative: %d strengths, %d weaknesses", len(data.Strengths), len(data.Weaknesses))
	}
	if n := len(data.ATSAnalysis.MissingKeywords); n > MaxKeywordItems {
		t.Fatalf("missingKeywords has %d items", n)
	}
	if n := len(data.ATSAnalysis.FormatIssues); n > MaxFormatIssues {
		t.Fatalf("formatIssues has %d items", n)
	}
	if n := len(data.IndustryAnalysis.RelevantSkills); n > MaxKeywordItems {
		t.Fatalf("relevantSkills has %d items", n)
	}
	if n := len(data.IndustryAnalysis.MissingSkills); n > MaxKeywordItems {
		t.Fatalf("missingSkills has %d items", n)
	}
	if n := len(data.IndustryAnalysis.IndustryTrends); n > MaxTrends {
		t.Fatalf("industryTrends has %d items", n)
	}
	for _, ks := range data.KeywordSuggestions {
		if len(ks.Missing) > MaxKeywordItems || len(ks.Overused) > MaxOverusedItems {
			t.Fatalf("%s exceeds caps: %d missing, %d overused", ks.Category, len(ks.Missing), len(ks.Overused))
		}
	}
	if got, want := data.ATSAnalysis.OverallCompatibility, CompatibilityFor(data.ATSCompatibilityScore); got != want {
		t.Fatalf("compatibility %q for score %d, want %q", got, data.ATSCompatibilityScore, want)
	}
	if data.ATSAnalysis.IsParseable != (data.ATSCompatibilityScore > 60) {
		t.Fatalf("isParseable %v for score %d", data.ATSAnalysis.IsParseable, data.ATSCompatibilityScore)
	}

	ids := map[string]bool{}
	check := func(id string) {
		if ids[id] {
			t.Fatalf("duplicate id %q", id)
		}
		ids[id] = true
	}
	for _, s := range data.Strengths {
		check(s.ID)
	}
	for _, w := range data.Weaknesses {
		check(w.ID)
	}
	for _, s := range data.Suggestions {
		check(s.ID)
	}
}

func strengthTexts(data AnalysisData) []string {
	out := make([]string, 0, len(data.Strengths))
	for _, s := range data.Strengths {
		out = append(out, s.Text)
	}
	return out
}

func weaknessTexts(data AnalysisData) []string {
	out := make([]string, 0, len(data.Weaknesses))
	for _, w := range data.Weaknesses {
		out = append(out, w.Text)
	}
	return out
}
