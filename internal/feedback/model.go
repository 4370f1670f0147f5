package feedback

// Priority ranks an improvement suggestion.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Compatibility is the coarse ATS compatibility band.
type Compatibility string

const (
	CompatibilityHigh   Compatibility = "high"
	CompatibilityMedium Compatibility = "medium"
	CompatibilityLow    Compatibility = "low"
)

// AnalysisData is the structured feedback returned for one résumé.
type AnalysisData struct {
	OverallScore          int                 `json:"overallScore"`
	ReadabilityScore      int                 `json:"readabilityScore"`
	RelevanceScore        int                 `json:"relevanceScore"`
	KeywordsScore         int                 `json:"keywordsScore"`
	ATSCompatibilityScore int                 `json:"atsCompatibilityScore"`
	IndustryFitScore      int                 `json:"industryFitScore"`
	Strengths             []Strength          `json:"strengths"`
	Weaknesses            []Weakness          `json:"weaknesses"`
	Suggestions           []Suggestion        `json:"suggestions"`
	KeywordSuggestions    []KeywordSuggestion `json:"keywordSuggestions"`
	IndustryAnalysis      IndustryAnalysis    `json:"industryAnalysis"`
	ATSAnalysis           ATSAnalysis         `json:"atsAnalysis"`
}

type Strength struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Impact string `json:"impact"`
}

type Weakness struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Suggestion string `json:"suggestion"`
}

type Suggestion struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Priority    Priority `json:"priority"`
}

type KeywordSuggestion struct {
	Category string   `json:"category"`
	Missing  []string `json:"missing"`
	Overused []string `json:"overused"`
}

type IndustryAnalysis struct {
	Industry       string   `json:"industry"`
	RelevantSkills []string `json:"relevantSkills"`
	MissingSkills  []string `json:"missingSkills"`
	IndustryTrends []string `json:"industryTrends"`
}

type ATSAnalysis struct {
	IsParseable          bool          `json:"isParseable"`
	MissingKeywords      []string      `json:"missingKeywords"`
	FormatIssues         []string      `json:"formatIssues"`
	OverallCompatibility Compatibility `json:"overallCompatibility"`
}

// CompatibilityFor maps an ATS compatibility score to its band.
func CompatibilityFor(score int) Compatibility {
	switch {
	case score > 75:
		return CompatibilityHigh
	case score > 60:
		return CompatibilityMedium
	default:
		return CompatibilityLow
	}
}
