package feedback

import "strconv"

const narrativeThreshold = 70

type strengthRule struct {
	when   func(Features, Scores) bool
	text   string
	impact string
}

type weaknessRule struct {
	when       func(Features, Scores) bool
	text       string
	suggestion string
}

type suggestionRule struct {
	when        func(Features, Scores) bool
	title       string
	description string
	examples    []string
	priority    Priority
}

var strengthRules = []strengthRule{
	{
		when:   func(f Features, _ Scores) bool { return f.HasEducation() },
		text:   "Strong educational background",
		impact: "This establishes your academic qualifications for the role.",
	},
	{
		when:   func(f Features, _ Scores) bool { return f.HasExperience() },
		text:   "Clear professional experience",
		impact: "This demonstrates your relevant work history to employers.",
	},
	{
		when:   func(f Features, _ Scores) bool { return f.HasSkills() },
		text:   "Well-defined skill set",
		impact: "This highlights your capabilities that match job requirements.",
	},
	{
		when:   func(f Features, _ Scores) bool { return f.HasAchievements() },
		text:   "Achievement-focused content",
		impact: "This shows your ability to deliver results, which employers value highly.",
	},
	{
		when:   func(f Features, _ Scores) bool { return f.HasQuantifiableResults() },
		text:   "Quantified accomplishments",
		impact: "This provides concrete evidence of your contributions and impact.",
	},
	{
		when:   func(f Features, _ Scores) bool { return f.Contact.Score > contactStrongScore },
		text:   "Clear contact information",
		impact: "This makes it easy for employers to reach out to you.",
	},
	{
		when:   func(_ Features, s Scores) bool { return s.readabilityValue() > narrativeThreshold },
		text:   "Good readability and structure",
		impact: "This helps hiring managers quickly scan and understand your resume.",
	},
}

var weaknessRules = []weaknessRule{
	{
		when:       func(f Features, _ Scores) bool { return !f.HasEducation() },
		text:       "Missing or unclear education section",
		suggestion: "Add a dedicated education section with your degrees, institutions, and graduation dates.",
	},
	{
		when:       func(f Features, _ Scores) bool { return !f.HasExperience() },
		text:       "Work experience not clearly defined",
		suggestion: "Structure your work experience with company names, job titles, dates, and bullet points for responsibilities.",
	},
	{
		when:       func(f Features, _ Scores) bool { return !f.HasSkills() },
		text:       "Skills section could be improved",
		suggestion: "Add a dedicated skills section with relevant technical and soft skills for your target role.",
	},
	{
		when:       func(f Features, _ Scores) bool { return !f.HasAchievements() },
		text:       "Lacks achievement-focused content",
		suggestion: "Reframe job duties as accomplishments by describing problems solved and results achieved.",
	},
	{
		when:       func(f Features, _ Scores) bool { return !f.HasQuantifiableResults() },
		text:       "Achievements not quantified",
		suggestion: "Add numbers, percentages, and metrics to demonstrate the scale and impact of your work.",
	},
	{
		when:       func(f Features, _ Scores) bool { return f.Stats.WordCount > verboseDocumentWords },
		text:       "Resume may be too verbose",
		suggestion: "Consider condensing content to make it more focused and scannable.",
	},
	{
		when:       func(f Features, _ Scores) bool { return f.Stats.WordCount < shortDocumentWords },
		text:       "Resume appears too short",
		suggestion: "Add more detail about your experience, skills, and achievements.",
	},
	{
		when:       func(_ Features, s Scores) bool { return s.readabilityValue() < narrativeThreshold },
		text:       "Readability could be improved",
		suggestion: "Use shorter sentences, bullet points, and clear section headings to improve scannability.",
	},
}

var suggestionRules = []suggestionRule{
	{
		when: func(f Features, _ Scores) bool {
			return !f.HasAchievements() || !f.HasQuantifiableResults()
		},
		title:       "Add more measurable achievements",
		description: "Focus on quantifiable results instead of just listing job responsibilities.",
		examples: []string{
			"Increased sales by 25% in the first quarter",
			"Reduced operational costs by $50,000 annually",
			"Managed a team of 12 developers across 3 projects",
		},
		priority: PriorityHigh,
	},
	{
		when:        func(_ Features, s Scores) bool { return s.IndustryFit < narrativeThreshold },
		title:       "Incorporate more industry-specific keywords",
		description: "Add relevant terminology and skills for your target industry.",
		examples: []string{
			"Use technical terms specific to your field",
			"Include industry certifications and specialized training",
			"Mention industry-standard tools and methodologies",
		},
		priority: PriorityHigh,
	},
	{
		when:        func(_ Features, s Scores) bool { return s.readabilityValue() < narrativeThreshold },
		title:       "Improve the formatting for better readability",
		description: "Make your resume easier to scan quickly by improving its structure and layout.",
		examples: []string{
			"Use clear section headings with consistent formatting",
			"Ensure proper alignment and spacing throughout",
			"Employ bullet points for better readability",
		},
		priority: PriorityMedium,
	},
	{
		when:        func(_ Features, s Scores) bool { return s.ATSCompatibility < narrativeThreshold },
		title:       "Optimize for ATS systems",
		description: "Ensure your resume can be properly parsed by Applicant Tracking Systems.",
		examples: []string{
			"Use standard section headings (Experience, Education, Skills)",
			"Avoid tables, text boxes, headers, and footers",
			"Match keywords from job descriptions",
		},
		priority: PriorityHigh,
	},
	{
		when:        func(Features, Scores) bool { return true },
		title:       "Tailor your resume for specific job targets",
		description: "Customize your content for each application to show you're a perfect fit.",
		examples: []string{
			"Emphasize relevant experience for each specific role",
			"Adjust skills section to highlight job requirements",
			"Mirror language from the job description",
		},
		priority: PriorityMedium,
	},
}

var (
	defaultStrength = Strength{
		ID:     "strength-default",
		Text:   "Resume content detected",
		Impact: "You've provided content that can be improved with our suggestions.",
	}
	defaultWeakness = Weakness{
		ID:         "weakness-default",
		Text:       "Resume needs more specific content",
		Suggestion: "Add more detailed information about your experience, skills, and achievements.",
	}
)

func strengthsFor(f Features, s Scores) []Strength {
	var out []Strength
	for _, r := range strengthRules {
		if r.when(f, s) {
			out = append(out, Strength{ID: seqID("strength", len(out)), Text: r.text, Impact: r.impact})
		}
	}
	if len(out) == 0 {
		return []Strength{defaultStrength}
	}
	return out
}

func weaknessesFor(f Features, s Scores) []Weakness {
	var out []Weakness
	for _, r := range weaknessRules {
		if r.when(f, s) {
			out = append(out, Weakness{ID: seqID("weakness", len(out)), Text: r.text, Suggestion: r.suggestion})
		}
	}
	if len(out) == 0 {
		return []Weakness{defaultWeakness}
	}
	return out
}

func suggestionsFor(f Features, s Scores) []Suggestion {
	out := make([]Suggestion, 0, len(suggestionRules))
	for _, r := range suggestionRules {
		if !r.when(f, s) {
			continue
		}
		out = append(out, Suggestion{
			ID:          seqID("suggestion", len(out)),
			Title:       r.title,
			Description: r.description,
			Examples:    append([]string(nil), r.examples...),
			Priority:    r.priority,
		})
	}
	return out
}

// seqID numbers entries from 1 in emission order.
func seqID(prefix string, emitted int) string {
	return prefix + "-" + strconv.Itoa(emitted+1)
}
