package feedback

import (
	"context"
	"time"
)

// Result pairs the extracted features with the feedback built from them.
type Result struct {
	Features Features     `json:"features"`
	Scores   Scores       `json:"scores"`
	Data     AnalysisData `json:"data"`
}

// Analyze scores text against industry and builds the full feedback value.
// It never fails; empty input yields floor scores and fallback narrative.
func Analyze(text, industry string) AnalysisData {
	return AnalyzeDetailed(text, industry).Data
}

// AnalyzeDetailed is Analyze but also returns the intermediate features and scores.
func AnalyzeDetailed(text, industry string) Result {
	f := Extract(text, industry)
	s := Score(f)
	return Result{
		Features: f,
		Scores:   s,
		Data: AnalysisData{
			OverallScore:          s.Overall,
			ReadabilityScore:      s.Readability,
			RelevanceScore:        s.Relevance,
			KeywordsScore:         s.Keywords,
			ATSCompatibilityScore: s.ATSCompatibility,
			IndustryFitScore:      s.IndustryFit,
			Strengths:             strengthsFor(f, s),
			Weaknesses:            weaknessesFor(f, s),
			Suggestions:           suggestionsFor(f, s),
			KeywordSuggestions:    keywordSuggestionsFor(f),
			IndustryAnalysis:      industryAnalysisFor(f),
			ATSAnalysis:           atsAnalysisFor(f, s),
		},
	}
}

// Analyzer runs Analyze behind an optional artificial processing delay.
type Analyzer struct {
	Delay time.Duration
}

// AnalyzeContext waits out the configured delay, then analyzes text.
// A cancelled context during the wait returns ctx.Err() and no result.
func (a *Analyzer) AnalyzeContext(ctx context.Context, text, industry string) (AnalysisData, error) {
	if a != nil && a.Delay > 0 {
		timer := time.NewTimer(a.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return AnalysisData{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return AnalysisData{}, err
	}
	return Analyze(text, industry), nil
}
