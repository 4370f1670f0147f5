package feedback

import (
	"regexp"
	"strings"
)

// Industry tags accepted by the engine. Anything else selects IndustryGeneral.
const (
	IndustryTechnology = "technology"
	IndustryHealthcare = "healthcare"
	IndustryFinance    = "finance"
	IndustryMarketing  = "marketing"
	IndustryEducation  = "education"
	IndustryGeneral    = "general"
)

var industryOrder = []string{
	IndustryTechnology,
	IndustryHealthcare,
	IndustryFinance,
	IndustryMarketing,
	IndustryEducation,
}

// Industries returns the recognised industry tags in display order.
func Industries() []string {
	return append([]string(nil), industryOrder...)
}

// NormalizeIndustry trims and lowercases raw and reports whether it names a
// recognised industry. Unrecognised or empty input yields IndustryGeneral.
func NormalizeIndustry(raw string) (string, bool) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := industryKeywords[tag]; ok && tag != IndustryGeneral {
		return tag, true
	}
	return IndustryGeneral, false
}

// termSet is an immutable list of lowercase terms matched by containment.
type termSet []string

// matches returns the terms contained in normalized, in table order.
func (s termSet) matches(normalized string) []string {
	var out []string
	for _, term := range s {
		if strings.Contains(normalized, term) {
			out = append(out, term)
		}
	}
	return out
}

func (s termSet) missing(normalized string) []string {
	var out []string
	for _, term := range s {
		if !strings.Contains(normalized, term) {
			out = append(out, term)
		}
	}
	return out
}

var educationTerms = termSet{
	"degree", "university", "college", "bachelor", "master", "phd", "diploma", "graduate", "certification", "certificate",
	"b.s.", "b.a.", "m.s.", "m.a.", "ph.d", "mba", "major", "minor", "gpa", "cum laude", "magna cum laude", "summa cum laude",
}

var experienceTerms = termSet{
	"experience", "work", "job", "position", "role", "company", "employer", "client",
	"responsible for", "lead", "manage", "develop", "create", "implement", "coordinator", "specialist",
	"analyst", "assistant", "director", "supervisor", "manager", "head", "chief", "senior", "junior",
	"intern", "consultant", "contractor", "freelance",
}

var skillTerms = termSet{
	"skill", "proficient", "knowledge", "expertise", "competent", "capable", "familiar", "advanced",
	"programming", "language", "software", "tool", "framework", "platform", "system", "methodology",
	"certified", "trained", "experienced in", "proficiency", "fluent", "excel at",
}

var achievementTerms = termSet{
	"achieved", "led", "increased", "improved", "reduced", "created", "developed", "managed", "organized",
	"generated", "delivered", "produced", "launched", "implemented", "established", "streamlined", "optimized",
}

var quantifiableTerms = termSet{
	"%", "percent", "increased by", "reduced by", "million", "thousand", "grew", "decreased", "saved",
	"revenue", "profit", "cost", "budget", "roi", "kpi", "metric", "target", "goal", "rate", "average",
	"$", "€", "£", "¥", "dollar", "euro",
}

var industryKeywords = map[string]termSet{
	IndustryTechnology: {
		"software", "development", "programming", "code", "javascript", "python", "java", "c++", "react",
		"angular", "vue", "node", "web", "app", "mobile", "cloud", "aws", "azure", "database", "sql",
		"nosql", "api", "rest", "graphql", "git", "agile", "scrum", "devops", "ci/cd", "cybersecurity",
		"machine learning", "ai", "data science", "blockchain", "frontend", "backend", "fullstack",
	},
	IndustryHealthcare: {
		"patient", "care", "medical", "clinical", "health", "hospital", "doctor", "nurse", "therapy",
		"treatment", "diagnosis", "pharmaceutical", "medicine", "healthcare", "ehr", "emr", "hipaa",
		"biology", "anatomy", "physiology", "radiology", "surgery", "emergency", "pharmacy", "laboratory",
		"diagnostic", "therapeutic", "rehabilitation", "clinical trials", "medical record",
	},
	IndustryFinance: {
		"financial", "accounting", "audit", "tax", "investment", "banking", "loan", "credit", "mortgage",
		"finance", "portfolio", "budget", "revenue", "profit", "asset", "liability", "capital", "equity",
		"stock", "bond", "security", "risk", "compliance", "regulatory", "fintech", "analysis", "forecast",
		"valuation", "merger", "acquisition", "hedge fund", "private equity", "trading", "wealth management",
	},
	IndustryMarketing: {
		"marketing", "brand", "advertising", "campaign", "social media", "digital", "seo", "ppc", "content",
		"strategy", "analytics", "target", "market", "audience", "consumer", "customer", "conversion",
		"engagement", "roi", "ctr", "cpa", "cpc", "funnel", "lead generation", "email marketing", "crm",
		"affiliate", "influencer", "viral", "growth hacking", "marketing automation", "a/b testing",
	},
	IndustryEducation: {
		"education", "teaching", "learning", "student", "curriculum", "instruction", "classroom", "school",
		"college", "university", "course", "professor", "teacher", "faculty", "academic", "assessment",
		"pedagogy", "e-learning", "lesson plan", "educational technology", "distance learning", "tutoring",
		"educational psychology", "special education", "higher education", "k-12", "esl", "stem",
	},
	IndustryGeneral: {
		"professional", "experience", "skill", "qualified", "knowledge", "leadership", "management",
		"communication", "teamwork", "project", "problem-solving", "detail-oriented", "analytical",
		"strategic", "planning", "organization", "time management", "adaptability", "flexibility",
		"creative", "innovative", "resource", "efficient", "productive", "proactive",
	},
}

var industryTrends = map[string][]string{
	IndustryTechnology: {
		"Increasing demand for AI and machine learning expertise",
		"Growth in cloud computing and serverless architectures",
		"Rising importance of cybersecurity knowledge",
		"Shift towards full-stack development skills",
	},
	IndustryHealthcare: {
		"Growing adoption of telehealth technologies",
		"Increased focus on data security and HIPAA compliance",
		"Rising demand for healthcare informatics",
		"Expansion of patient-centered care models",
	},
	IndustryFinance: {
		"Expansion of fintech and digital banking",
		"Growing importance of data analysis skills",
		"Increased regulatory compliance requirements",
		"Rising demand for blockchain and cryptocurrency knowledge",
	},
	IndustryMarketing: {
		"Growing focus on data-driven marketing strategies",
		"Increased importance of social media expertise",
		"Rising demand for content marketing skills",
		"Expansion of marketing automation technologies",
	},
	IndustryEducation: {
		"Increasing adoption of educational technology",
		"Growth in online and hybrid learning models",
		"Rising importance of personalized learning approaches",
		"Expansion of competency-based education",
	},
	IndustryGeneral: {
		"Increasing importance of digital literacy across all roles",
		"Growing demand for adaptability and continuous learning",
		"Rising value of communication and collaboration skills",
		"Expansion of remote and hybrid work models",
	},
}

// skillMarkers classify an industry keyword as a technical skill.
var skillMarkers = []string{
	"programming", "development", "design", "management", "analysis", "skill", "proficient",
	"certified", "tool", "software", "platform", "language", "framework",
}

var softSkills = []string{"Problem Solving", "Critical Thinking", "Time Management"}

var genericPhrases = []string{"team player", "hard worker", "detail-oriented", "self-starter", "motivated", "passionate"}

// genericPhrasePatterns counts generic phrases case-insensitively in the raw text.
var genericPhrasePatterns = compilePhrasePatterns(genericPhrases)

var problematicChars = []string{"•", "►", "→", "✓", "|", "*", "№", "©", "®", "™"}

var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`(\+\d{1,3}[\s.-])?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[a-zA-Z0-9_-]+`)

	wordPattern      = regexp.MustCompile(`\b\w+\b`)
	sentenceSplit    = regexp.MustCompile(`[.!?]+`)
	paragraphSplit   = regexp.MustCompile(`\n\s*\n`)
	tableLikePattern = regexp.MustCompile(`(\s{3,}|\t{2,})`)
)

func compilePhrasePatterns(phrases []string) map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(phrases))
	for _, phrase := range phrases {
		out[phrase] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
	}
	return out
}

func isSkill(keyword string) bool {
	lower := strings.ToLower(keyword)
	for _, marker := range skillMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
