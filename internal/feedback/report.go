package feedback

import (
	"fmt"
	"strings"
	"text/template"
)

// ReportFileName is the attachment name used for downloaded reports.
const ReportFileName = "resume-analysis-results.txt"

const reportTemplate = `Resume Analysis Results

Overall Score: {{.Data.OverallScore}}/100
Readability Score: {{.Data.ReadabilityScore}}/100
Relevance Score: {{.Data.RelevanceScore}}/100
Keywords Score: {{.Data.KeywordsScore}}/100
ATS Compatibility Score: {{.Data.ATSCompatibilityScore}}/100
Industry Fit Score: {{.Data.IndustryFitScore}}/100

Strengths:
{{range .Data.Strengths}}- {{.Text}}
  Impact: {{.Impact}}
{{end}}
Areas to Improve:
{{range .Data.Weaknesses}}- {{.Text}}
  Suggestion: {{.Suggestion}}
{{end}}
Key Recommendations:
{{range .Data.Suggestions}}- {{.Title}} ({{.Priority}} priority)
  {{.Description}}
  Examples:
{{range .Examples}}    * {{.}}
{{end}}{{end}}
Keyword Optimization:
{{range .Data.KeywordSuggestions}}- {{.Category}}:
  Missing: {{join .Missing}}
  Overused: {{join .Overused}}
{{end}}
ATS Compatibility Analysis:
- Parseable by ATS: {{if .Data.ATSAnalysis.IsParseable}}Yes{{else}}No{{end}}
- Overall Compatibility: {{upper (printf "%s" .Data.ATSAnalysis.OverallCompatibility)}}
- Missing Keywords: {{join .Data.ATSAnalysis.MissingKeywords}}
- Format Issues: {{join .Data.ATSAnalysis.FormatIssues}}

Industry Analysis ({{.Data.IndustryAnalysis.Industry}}):
- Relevant Skills: {{join .Data.IndustryAnalysis.RelevantSkills}}
- Missing Skills: {{join .Data.IndustryAnalysis.MissingSkills}}
- Industry Trends: {{join .Data.IndustryAnalysis.IndustryTrends}}
{{if .Jobs}}
Job Recommendations:
{{range .Jobs}}- {{.}}
{{end}}{{end}}`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"join":  func(items []string) string { return strings.Join(items, ", ") },
	"upper": strings.ToUpper,
}).Parse(reportTemplate))

type reportData struct {
	Data AnalysisData
	Jobs []string
}

// RenderReport renders the downloadable plain-text summary of data.
func RenderReport(data AnalysisData, jobs []string) (string, error) {
	var b strings.Builder
	if err := reportTmpl.Execute(&b, reportData{Data: data, Jobs: jobs}); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return b.String(), nil
}
