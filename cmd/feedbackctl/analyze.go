package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-feedback/internal/extract"
	"resume-feedback/internal/feedback"
	"resume-feedback/internal/feedback/jobs"
	"resume-feedback/internal/shared/telemetry"
)

const (
	formatSummary = "summary"
	formatJSON    = "json"
	formatReport  = "report"
)

type analyzeOutput struct {
	Result             feedback.AnalysisData `json:"result"`
	JobRecommendations []string              `json:"jobRecommendations"`
}

func newAnalyzeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Score a résumé file (.txt, .pdf, .docx, .html) or stdin",
		Long:  "Score a résumé and print a summary, the full analysis as JSON, or the plain-text report. Reads stdin when no file or \"-\" is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfig(v)
			if err != nil {
				return err
			}
			industry, err := industryFlag(cmd, cfg.Industry)
			if err != nil {
				return err
			}
			format := cfg.Format
			if f := cmd.Flags().Lookup("format"); f.Changed {
				format = f.Value.String()
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			text, err := readResume(cmd, path)
			if err != nil {
				return err
			}

			data := feedback.Analyze(text, industry)
			titles := jobs.Recommend(text, data.OverallScore)
			telemetry.Debug("analyze.done", map[string]any{
				"file":          path,
				"industry":      data.IndustryAnalysis.Industry,
				"overall_score": data.OverallScore,
			})
			return writeAnalysis(cmd.OutOrStdout(), format, data, titles)
		},
	}
	cmd.Flags().StringP("industry", "i", "", "target industry (technology, healthcare, finance, marketing, education)")
	cmd.Flags().StringP("format", "f", formatSummary, "output format: summary, json or report")
	return cmd
}

func readResume(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return extract.ExtractTextFromBytes(cmd.Context(), raw, extract.MimeText, "")
	}

	if !extract.Supported(path) {
		return "", fmt.Errorf("%w: %s", extract.ErrUnsupportedType, filepath.Ext(path))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	text, err := extract.ExtractTextFromBytes(cmd.Context(), raw, "", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	return text, nil
}

func writeAnalysis(w io.Writer, format string, data feedback.AnalysisData, titles []string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(analyzeOutput{Result: data, JobRecommendations: titles})
	case formatReport:
		report, err := feedback.RenderReport(data, titles)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, report)
		return err
	case formatSummary, "":
		return writeSummary(w, data, titles)
	default:
		return fmt.Errorf("unknown format %q (want summary, json or report)", format)
	}
}

func writeSummary(w io.Writer, data feedback.AnalysisData, titles []string) error {
	lines := []string{
		fmt.Sprintf("Overall:        %d/100", data.OverallScore),
		fmt.Sprintf("Readability:    %d", data.ReadabilityScore),
		fmt.Sprintf("Relevance:      %d", data.RelevanceScore),
		fmt.Sprintf("Keywords:       %d", data.KeywordsScore),
		fmt.Sprintf("ATS:            %d (%s)", data.ATSCompatibilityScore, data.ATSAnalysis.OverallCompatibility),
		fmt.Sprintf("Industry fit:   %d (%s)", data.IndustryFitScore, data.IndustryAnalysis.Industry),
	}
	if len(data.Suggestions) > 0 {
		lines = append(lines, "", "Top suggestions:")
		for _, s := range data.Suggestions {
			lines = append(lines, fmt.Sprintf("  [%s] %s", s.Priority, s.Title))
		}
	}
	if len(titles) > 0 {
		lines = append(lines, "", "Job recommendations:")
		for _, t := range titles {
			lines = append(lines, "  - "+t)
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
