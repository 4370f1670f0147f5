package feedback

import (
	"strings"
	"unicode/utf8"
)

const (
	shortDocumentWords   = 300
	verboseDocumentWords = 700
)

// Category reports how strongly one feature family is present.
type Category struct {
	Present bool     `json:"present"`
	Matches []string `json:"matches"`
	Score   int      `json:"score"`
}

// Contact reports the contact channels found in the text.
type Contact struct {
	Email    bool `json:"email"`
	Phone    bool `json:"phone"`
	LinkedIn bool `json:"linkedIn"`
	Score    int  `json:"score"`
}

// Stats holds structural statistics of the original-case text.
type Stats struct {
	WordCount        int     `json:"wordCount"`
	SentenceCount    int     `json:"sentenceCount"`
	ParagraphCount   int     `json:"paragraphCount"`
	AvgWordLength    float64 `json:"avgWordLength"`
	WordsPerSentence float64 `json:"wordsPerSentence"`
	LineCount        int     `json:"lineCount"`
}

// Features is everything the scorer and classifier need from one document.
// It is computed once per call; nothing downstream re-reads the raw text.
type Features struct {
	Industry          string   `json:"industry"`
	IndustryKnown     bool     `json:"industryKnown"`
	Education         Category `json:"education"`
	Experience        Category `json:"experience"`
	Skills            Category `json:"skills"`
	AchievementVerbs  []string `json:"achievementVerbs"`
	Quantifiers       []string `json:"quantifiers"`
	AchievementsScore int      `json:"achievementsScore"`
	Contact           Contact  `json:"contact"`
	Stats             Stats    `json:"stats"`
	StructuralIssues  []string `json:"structuralIssues"`
	FormattingIssues  []string `json:"formattingIssues"`
	IndustryPresent   []string `json:"industryPresent"`
	IndustryMissing   []string `json:"industryMissing"`
	IndustryTermCount int      `json:"industryTermCount"`
	OverusedPhrases   []string `json:"overusedPhrases"`
	MissingSoftSkills []string `json:"missingSoftSkills"`
}

func (f Features) HasEducation() bool { return f.Education.Present }

func (f Features) HasExperience() bool { return f.Experience.Present }

func (f Features) HasSkills() bool { return f.Skills.Present }

func (f Features) HasAchievements() bool { return len(f.AchievementVerbs) > 0 }

func (f Features) HasQuantifiableResults() bool { return len(f.Quantifiers) > 0 }

// Extract runs every feature detector over text.
func Extract(text, industry string) Features {
	normalized := Normalize(text)
	tag, known := NormalizeIndustry(industry)

	f := Features{
		Industry:      tag,
		IndustryKnown: known,
		Education:     categoryOf(educationTerms, normalized, 40, 10),
		Experience:    categoryOf(experienceTerms, normalized, 40, 5),
		Skills:        categoryOf(skillTerms, normalized, 50, 8),
	}

	f.AchievementVerbs = achievementTerms.matches(normalized)
	f.Quantifiers = quantifiableTerms.matches(normalized)
	f.AchievementsScore = min(100, 40+len(f.AchievementVerbs)*5+len(f.Quantifiers)*10)

	f.Contact = contactOf(normalized)
	f.Stats = statsOf(text)

	keywords := industryKeywords[tag]
	f.IndustryTermCount = len(keywords)
	f.IndustryPresent = keywords.matches(normalized)
	f.IndustryMissing = keywords.missing(normalized)

	f.StructuralIssues = structuralIssues(f)
	f.FormattingIssues = formattingIssues(text)
	f.OverusedPhrases = overusedPhrases(text)
	for _, skill := range softSkills {
		if !strings.Contains(normalized, strings.ToLower(skill)) {
			f.MissingSoftSkills = append(f.MissingSoftSkills, skill)
		}
	}
	return f
}

func categoryOf(terms termSet, normalized string, base, perTerm int) Category {
	matches := terms.matches(normalized)
	return Category{
		Present: len(matches) > 0,
		Matches: matches,
		Score:   min(100, base+len(matches)*perTerm),
	}
}

func contactOf(normalized string) Contact {
	c := Contact{
		Email:    emailPattern.MatchString(normalized),
		Phone:    phonePattern.MatchString(normalized),
		LinkedIn: linkedinPattern.MatchString(normalized),
	}
	if c.Email {
		c.Score += 40
	}
	if c.Phone {
		c.Score += 30
	}
	if c.LinkedIn {
		c.Score += 30
	}
	c.Score = min(100, c.Score)
	return c
}

func statsOf(text string) Stats {
	words := wordPattern.FindAllString(text, -1)
	letters := 0
	for _, w := range words {
		letters += utf8.RuneCountInString(w)
	}

	s := Stats{
		WordCount:      len(words),
		SentenceCount:  countNonEmpty(sentenceSplit.Split(text, -1)),
		ParagraphCount: countNonEmpty(paragraphSplit.Split(text, -1)),
		LineCount:      len(strings.Split(text, "\n")),
	}
	s.AvgWordLength = float64(letters) / float64(max(1, s.WordCount))
	s.WordsPerSentence = float64(s.WordCount) / float64(max(1, s.SentenceCount))
	return s
}

// countNonEmpty counts split pieces, dropping only empty ones. A trailing
// whitespace piece still counts.
func countNonEmpty(parts []string) int {
	n := 0
	for _, p := range parts {
		if p != "" {
			n++
		}
	}
	return n
}

const (
	issueTooShort      = "Resume is too short for effective ATS scanning"
	issueNoEducation   = "Education section may be missing or not clearly identified"
	issueNoExperience  = "Work experience section may be missing or not clearly formatted"
	issueContact       = "Contact information may be missing or not clearly formatted"
	issueTables        = "Text alignment using spaces or tabs may be interpreted as tables by ATS systems"
	issueHeaderFooter  = "Headers or footers with page numbers detected which can confuse ATS systems"
	contactStrongScore = 70
)

func structuralIssues(f Features) []string {
	var out []string
	if f.Stats.WordCount < shortDocumentWords {
		out = append(out, issueTooShort)
	}
	if !f.HasEducation() {
		out = append(out, issueNoEducation)
	}
	if !f.HasExperience() {
		out = append(out, issueNoExperience)
	}
	if f.Contact.Score < contactStrongScore {
		out = append(out, issueContact)
	}
	return out
}

func formattingIssues(text string) []string {
	var out []string

	var found []string
	for _, ch := range problematicChars {
		if strings.Contains(text, ch) {
			found = append(found, ch)
		}
	}
	if len(found) > 0 {
		out = append(out, "Special characters like "+strings.Join(found, ", ")+" may cause ATS parsing issues")
	}

	if tableLikePattern.MatchString(text) {
		out = append(out, issueTables)
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		first := strings.ToLower(strings.Join(lines[:3], " "))
		last := strings.ToLower(strings.Join(lines[len(lines)-3:], " "))
		if strings.Contains(first, "page") || strings.Contains(last, "page") {
			out = append(out, issueHeaderFooter)
		}
	}
	return out
}

func overusedPhrases(text string) []string {
	var out []string
	for _, phrase := range genericPhrases {
		if len(genericPhrasePatterns[phrase].FindAllStringIndex(text, -1)) > 2 {
			out = append(out, phrase)
		}
	}
	return out
}
