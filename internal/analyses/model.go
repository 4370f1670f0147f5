package analyses

import (
	"time"

	"resume-feedback/internal/feedback"
)

// Source records how the analysed text reached the service.
type Source string

const (
	SourceText   Source = "text"
	SourceUpload Source = "upload"
	SourceBatch  Source = "batch"
)

// Analysis is one stored engine run.
type Analysis struct {
	ID           string                `json:"analysisId"`
	UserID       string                `json:"-"`
	Source       Source                `json:"source"`
	FileName     string                `json:"fileName,omitempty"`
	DocumentKey  string                `json:"-"`
	Industry     string                `json:"industry"`
	OverallScore int                   `json:"overallScore"`
	Result       feedback.AnalysisData `json:"result"`
	Jobs         []string              `json:"jobRecommendations"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// Summary is the history view of an Analysis.
type Summary struct {
	ID           string    `json:"analysisId"`
	Source       Source    `json:"source"`
	FileName     string    `json:"fileName,omitempty"`
	Industry     string    `json:"industry"`
	OverallScore int       `json:"overallScore"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Summary drops the full result.
func (a Analysis) Summary() Summary {
	return Summary{
		ID:           a.ID,
		Source:       a.Source,
		FileName:     a.FileName,
		Industry:     a.Industry,
		OverallScore: a.OverallScore,
		CreatedAt:    a.CreatedAt,
	}
}

// Input is one text to analyse.
type Input struct {
	Text     string
	Industry string
}
