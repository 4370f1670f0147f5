package feedback

import "strings"

// Output caps on narrative lists.
const (
	MaxKeywordItems  = 5
	MaxOverusedItems = 3
	MaxFormatIssues  = 3
	MaxTrends        = 4
)

const (
	CategoryTechnicalSkills = "Technical Skills"
	CategorySoftSkills      = "Soft Skills"
	CategoryIndustryTerms   = "Industry Terms"
)

func keywordSuggestionsFor(f Features) []KeywordSuggestion {
	missing := capped(f.IndustryMissing, MaxKeywordItems)

	var technical, industry []string
	for _, kw := range missing {
		if isSkill(kw) {
			technical = append(technical, kw)
		} else {
			industry = append(industry, kw)
		}
	}

	var skillPhrases, otherPhrases []string
	for _, phrase := range f.OverusedPhrases {
		if strings.Contains(phrase, "skill") || strings.Contains(phrase, "proficient") {
			skillPhrases = append(skillPhrases, phrase)
		} else {
			otherPhrases = append(otherPhrases, phrase)
		}
	}

	return []KeywordSuggestion{
		{
			Category: CategoryTechnicalSkills,
			Missing:  capped(technical, MaxKeywordItems),
			Overused: capped(skillPhrases, MaxOverusedItems),
		},
		{
			Category: CategorySoftSkills,
			Missing:  capped(f.MissingSoftSkills, MaxKeywordItems),
			Overused: capped(otherPhrases, MaxOverusedItems),
		},
		{
			Category: CategoryIndustryTerms,
			Missing:  capped(industry, MaxKeywordItems),
			Overused: []string{},
		},
	}
}

func industryAnalysisFor(f Features) IndustryAnalysis {
	return IndustryAnalysis{
		Industry:       f.Industry,
		RelevantSkills: capped(f.IndustryPresent, MaxKeywordItems),
		MissingSkills:  capped(f.IndustryMissing, MaxKeywordItems),
		IndustryTrends: capped(trendsFor(f.Industry), MaxTrends),
	}
}

func atsAnalysisFor(f Features, s Scores) ATSAnalysis {
	issues := make([]string, 0, len(f.FormattingIssues)+len(f.StructuralIssues))
	issues = append(issues, f.FormattingIssues...)
	issues = append(issues, f.StructuralIssues...)
	return ATSAnalysis{
		IsParseable:          s.ATSCompatibility > 60,
		MissingKeywords:      capped(f.IndustryMissing, MaxKeywordItems),
		FormatIssues:         capped(issues, MaxFormatIssues),
		OverallCompatibility: CompatibilityFor(s.ATSCompatibility),
	}
}

func trendsFor(industry string) []string {
	if trends, ok := industryTrends[industry]; ok {
		return trends
	}
	return industryTrends[IndustryGeneral]
}

// capped returns a fresh copy of at most n leading items, never nil.
func capped(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
