package jobs

// Tier is an experience level derived from the overall score.
type Tier string

const (
	TierEntry  Tier = "entry"
	TierMid    Tier = "mid"
	TierSenior Tier = "senior"
)

type category struct {
	name     string
	keywords []string
	titles   map[Tier][]string
}

var categories = []category{
	{
		name:     "development",
		keywords: []string{"software", "developer", "programming", "code", "coding", "javascript", "python", "java", "golang", "react", "backend", "frontend", "api", "git", "engineer"},
		titles: map[Tier][]string{
			TierSenior: {"Senior Software Engineer", "Technical Lead", "Principal Engineer", "Software Architect"},
			TierMid:    {"Software Developer", "Full Stack Developer", "Backend Developer", "Frontend Developer"},
			TierEntry:  {"Junior Developer", "Software Engineering Intern", "Associate Developer"},
		},
	},
	{
		name:     "design",
		keywords: []string{"design", "designer", "ui", "ux", "figma", "sketch", "wireframe", "prototype", "typography", "branding", "illustrator", "photoshop"},
		titles: map[Tier][]string{
			TierSenior: {"Design Director", "Lead Product Designer", "Principal UX Designer"},
			TierMid:    {"Product Designer", "UX Designer", "UI Designer", "Graphic Designer"},
			TierEntry:  {"Junior Designer", "Design Intern", "Production Artist"},
		},
	},
	{
		name:     "data",
		keywords: []string{"data", "analytics", "sql", "statistics", "machine learning", "tableau", "pandas", "etl", "dashboard", "modeling", "warehouse", "bi"},
		titles: map[Tier][]string{
			TierSenior: {"Lead Data Scientist", "Data Engineering Manager", "Principal Data Analyst"},
			TierMid:    {"Data Analyst", "Data Scientist", "Data Engineer", "BI Developer"},
			TierEntry:  {"Junior Data Analyst", "Reporting Analyst", "Data Intern"},
		},
	},
	{
		name:     "management",
		keywords: []string{"manager", "managed", "management", "leadership", "led", "director", "stakeholder", "strategy", "roadmap", "budget", "team", "operations"},
		titles: map[Tier][]string{
			TierSenior: {"Director of Operations", "Senior Program Manager", "Head of Department"},
			TierMid:    {"Project Manager", "Operations Manager", "Team Lead", "Program Coordinator"},
			TierEntry:  {"Assistant Project Manager", "Project Coordinator", "Management Trainee"},
		},
	},
	{
		name:     "marketing",
		keywords: []string{"marketing", "seo", "campaign", "brand", "social media", "content", "advertising", "ppc", "conversion", "audience", "email marketing", "growth"},
		titles: map[Tier][]string{
			TierSenior: {"Marketing Director", "Head of Growth", "Senior Brand Manager"},
			TierMid:    {"Marketing Manager", "Digital Marketing Specialist", "Content Strategist", "SEO Specialist"},
			TierEntry:  {"Marketing Coordinator", "Social Media Assistant", "Marketing Intern"},
		},
	},
	{
		name:     "finance",
		keywords: []string{"finance", "financial", "accounting", "audit", "tax", "investment", "banking", "forecast", "valuation", "ledger", "reconciliation", "cpa"},
		titles: map[Tier][]string{
			TierSenior: {"Finance Director", "Senior Financial Analyst", "Controller"},
			TierMid:    {"Financial Analyst", "Accountant", "Auditor", "Investment Analyst"},
			TierEntry:  {"Junior Accountant", "Accounts Payable Clerk", "Finance Intern"},
		},
	},
	{
		name:     "healthcare",
		keywords: []string{"patient", "clinical", "medical", "nurse", "nursing", "hospital", "healthcare", "therapy", "diagnosis", "pharmacy", "hipaa", "ehr"},
		titles: map[Tier][]string{
			TierSenior: {"Clinical Director", "Nurse Manager", "Healthcare Administrator"},
			TierMid:    {"Registered Nurse", "Clinical Coordinator", "Medical Technologist", "Health Services Manager"},
			TierEntry:  {"Medical Assistant", "Patient Care Technician", "Clinical Intern"},
		},
	},
	{
		name:     "education",
		keywords: []string{"teacher", "teaching", "curriculum", "student", "students", "classroom", "lesson", "tutoring", "instruction", "school", "education", "faculty"},
		titles: map[Tier][]string{
			TierSenior: {"Academic Director", "Curriculum Director", "Head of School"},
			TierMid:    {"Teacher", "Instructional Designer", "Curriculum Developer", "Academic Advisor"},
			TierEntry:  {"Teaching Assistant", "Tutor", "Education Intern"},
		},
	},
	{
		name:     "customer-service",
		keywords: []string{"customer", "customers", "support", "helpdesk", "service", "client", "clients", "satisfaction", "tickets", "call center", "retention", "complaints"},
		titles: map[Tier][]string{
			TierSenior: {"Customer Success Director", "Support Operations Manager", "Head of Customer Experience"},
			TierMid:    {"Customer Success Manager", "Support Team Lead", "Account Manager"},
			TierEntry:  {"Customer Service Representative", "Support Specialist", "Call Center Agent"},
		},
	},
	{
		name:     "administrative",
		keywords: []string{"administrative", "administration", "scheduling", "calendar", "office", "filing", "reception", "clerical", "records", "invoices", "travel", "assistant"},
		titles: map[Tier][]string{
			TierSenior: {"Office Manager", "Executive Assistant", "Administrative Services Manager"},
			TierMid:    {"Administrative Coordinator", "Office Administrator", "Executive Secretary"},
			TierEntry:  {"Administrative Assistant", "Receptionist", "Office Clerk"},
		},
	},
}

var fallbackTitles = []string{
	"Project Coordinator",
	"Business Analyst",
	"Operations Associate",
	"Customer Success Associate",
	"Administrative Assistant",
}
