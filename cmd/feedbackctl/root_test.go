package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-feedback/internal/extract"
	"resume-feedback/internal/feedback"
	"resume-feedback/internal/feedback/improve"
	"resume-feedback/internal/feedback/jobs"
)

const cliResume = `Jordan Lee
jordan.lee@example.com

Experience
Financial analyst who managed budgets and reduced reporting time by 30%. Built forecasting models in Excel and SQL.

Education
BA Economics, 2019.

Skills
Excel, SQL, financial modeling, risk analysis.`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestIndustries(t *testing.T) {
	out, err := execute(t, "", "industries")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(feedback.Industries(), "\n")+"\n", out)
}

func TestAnalyzeStdinJSON(t *testing.T) {
	out, err := execute(t, cliResume, "analyze", "--format", "json")
	require.NoError(t, err)

	var got analyzeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	want := feedback.Analyze(cliResume, "")
	assert.Equal(t, want.OverallScore, got.Result.OverallScore)
	assert.Equal(t, jobs.Recommend(cliResume, want.OverallScore), got.JobRecommendations)
}

func TestAnalyzeFileReport(t *testing.T) {
	path := writeFile(t, "resume.txt", cliResume)

	out, err := execute(t, "", "analyze", path, "--industry", "finance", "--format", "report")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Resume Analysis Results"))
	assert.Contains(t, out, "Job Recommendations:")
}

func TestAnalyzeSummary(t *testing.T) {
	out, err := execute(t, cliResume, "analyze", "-i", "finance")
	require.NoError(t, err)
	want := feedback.Analyze(cliResume, "finance")
	assert.Contains(t, out, fmt.Sprintf("Overall:        %d/100", want.OverallScore))
	assert.Contains(t, out, "(finance)")
	assert.Contains(t, out, string(want.ATSAnalysis.OverallCompatibility))
}

func TestAnalyzeErrors(t *testing.T) {
	_, err := execute(t, cliResume, "analyze", "--industry", "mining")
	assert.ErrorContains(t, err, "unknown industry")

	_, err = execute(t, cliResume, "analyze", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "", "analyze", writeFile(t, "resume.exe", "MZ"))
	assert.True(t, errors.Is(err, extract.ErrUnsupportedType), "got %v", err)

	_, err = execute(t, "", "analyze", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestAnalyzeUsesConfigFile(t *testing.T) {
	cfg := writeFile(t, "feedbackctl.yaml", "industry: healthcare\nformat: json\n")

	out, err := execute(t, cliResume, "--config", cfg, "analyze")
	require.NoError(t, err)

	var got analyzeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "healthcare", got.Result.IndustryAnalysis.Industry)

	// flags win over the file
	out, err = execute(t, cliResume, "--config", cfg, "analyze", "--industry", "education", "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "(education)")
}

func TestImproveSeeded(t *testing.T) {
	sentence := "was responsible for weekly budget reports across three regions"

	out, err := execute(t, "", "improve", "--seed", "7", "--industry", "finance", sentence)
	require.NoError(t, err)
	want := improve.New(improve.NewLockedSource(7)).Improve(sentence, "finance")
	assert.Equal(t, want+"\n", out)
}

func TestJobsWithScore(t *testing.T) {
	out, err := execute(t, cliResume, "jobs", "--score", "90")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(jobs.Recommend(cliResume, 90), "\n")+"\n", out)

	_, err = execute(t, cliResume, "jobs", "--score", "140")
	assert.Error(t, err)
}
