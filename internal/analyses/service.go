package analyses

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"resume-feedback/internal/extract"
	"resume-feedback/internal/feedback"
	"resume-feedback/internal/feedback/jobs"
	"resume-feedback/internal/schemas"
	"resume-feedback/internal/shared/metrics"
	"resume-feedback/internal/shared/storage/object"
	"resume-feedback/internal/shared/telemetry"
	"resume-feedback/internal/shared/util"
)

const (
	// MaxBatchItems bounds one AnalyzeBatch call.
	MaxBatchItems = 10

	defaultMaxTextBytes     = 200_000
	defaultBatchConcurrency = 4
)

// Service contains business logic for analyses.
type Service struct {
	Repo     Repo
	Store    object.Store // nil disables keeping uploads
	Analyzer *feedback.Analyzer

	MaxTextBytes     int
	BatchConcurrency int

	now func() time.Time
}

type runInput struct {
	userID      string
	source      Source
	text        string
	industry    string
	fileName    string
	documentKey string
}

// AnalyzeText analyses pasted résumé text and stores the result.
func (s *Service) AnalyzeText(ctx context.Context, userID, text, industry string) (Analysis, error) {
	return s.run(ctx, runInput{userID: userID, source: SourceText, text: text, industry: industry})
}

// AnalyzeUpload extracts text from an uploaded document, keeps the original
// in the object store when one is configured, and analyses it.
func (s *Service) AnalyzeUpload(ctx context.Context, userID, fileName, mimeType, industry string, r io.Reader) (Analysis, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !extract.Supported(name) {
		return Analysis{}, fmt.Errorf("%w: extension %q", extract.ErrUnsupportedType, filepath.Ext(name))
	}

	text, key, err := s.extractUpload(ctx, userID, name, mimeType, r)
	if err != nil {
		return Analysis{}, err
	}

	analysis, err := s.run(ctx, runInput{
		userID:      userID,
		source:      SourceUpload,
		text:        text,
		industry:    industry,
		fileName:    name,
		documentKey: key,
	})
	if err != nil && key != "" {
		s.removeDocument(ctx, key)
	}
	return analysis, err
}

func (s *Service) extractUpload(ctx context.Context, userID, name, mimeType string, r io.Reader) (string, string, error) {
	if s.Store == nil {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", "", fmt.Errorf("read upload: %w", err)
		}
		text, err := extract.ExtractTextFromBytes(ctx, data, mimeType, name)
		if err != nil {
			return "", "", extractionError(err)
		}
		return text, "", nil
	}

	obj, err := s.Store.Save(ctx, userID, name, r)
	if err != nil {
		return "", "", fmt.Errorf("store upload: %w", err)
	}
	if strings.TrimSpace(mimeType) == "" {
		mimeType = obj.ContentType
	}
	text, err := extract.ExtractText(ctx, s.Store, obj.Key, mimeType, name)
	if err != nil {
		s.removeDocument(ctx, obj.Key)
		return "", "", extractionError(err)
	}
	telemetry.Info("analysis.upload_stored", map[string]any{
		"request_id": requestIDFromContext(ctx),
		"user_id":    userID,
		"key":        obj.Key,
		"size":       obj.Size,
	})
	return text, obj.Key, nil
}

func extractionError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, extract.ErrUnsupportedType) {
		return err
	}
	return fmt.Errorf("%w: unreadable document: %w", ErrInvalidInput, err)
}

// AnalyzeBatch analyses up to MaxBatchItems texts concurrently. Results keep
// the input order; the first failure cancels the remaining work. Records are
// stored only once every item has been analysed, and a storage failure
// removes the records already written, so a failed batch persists nothing.
func (s *Service) AnalyzeBatch(ctx context.Context, userID string, items []Input) ([]Analysis, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}
	if len(items) > MaxBatchItems {
		return nil, fmt.Errorf("%w: at most %d items per batch", ErrInvalidInput, MaxBatchItems)
	}
	for i, item := range items {
		if err := s.checkText(item.Text); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	runs := make([]runInput, len(items))
	results := make([]Analysis, len(items))
	started := make([]time.Time, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency())
	for i, item := range items {
		runs[i] = runInput{userID: userID, source: SourceBatch, text: item.Text, industry: item.Industry}
		g.Go(func() error {
			a, start, err := s.analyze(gctx, runs[i])
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			results[i], started[i] = a, start
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range results {
		if err := s.persist(ctx, runs[i], results[i], started[i]); err != nil {
			s.rollback(ctx, userID, results[:i])
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return results, nil
}

// rollback removes batch records already stored. It runs even when ctx has
// been cancelled.
func (s *Service) rollback(ctx context.Context, userID string, stored []Analysis) {
	ctx = context.WithoutCancel(ctx)
	for _, a := range stored {
		if err := s.Repo.Delete(ctx, userID, a.ID); err != nil && !errors.Is(err, ErrNotFound) {
			telemetry.Warn("analysis.rollback_failed", map[string]any{
				"request_id":  requestIDFromContext(ctx),
				"user_id":     userID,
				"analysis_id": a.ID,
				"error":       err,
			})
		}
	}
}

// Get returns the user's analysis by ID.
func (s *Service) Get(ctx context.Context, userID, analysisID string) (Analysis, error) {
	if strings.TrimSpace(analysisID) == "" {
		return Analysis{}, fmt.Errorf("%w: analysis id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID, analysisID)
}

// List returns analyses for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Delete removes the analysis and any stored upload behind it.
func (s *Service) Delete(ctx context.Context, userID, analysisID string) error {
	analysis, err := s.Get(ctx, userID, analysisID)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, userID, analysisID); err != nil {
		return err
	}
	if analysis.DocumentKey != "" {
		s.removeDocument(ctx, analysis.DocumentKey)
	}
	telemetry.Info("analysis.deleted", map[string]any{
		"request_id":  requestIDFromContext(ctx),
		"user_id":     userID,
		"analysis_id": analysisID,
	})
	return nil
}

// Report renders the downloadable plain-text report of a stored analysis.
func (s *Service) Report(ctx context.Context, userID, analysisID string) (string, error) {
	analysis, err := s.Get(ctx, userID, analysisID)
	if err != nil {
		return "", err
	}
	return feedback.RenderReport(analysis.Result, analysis.Jobs)
}

// RecommendJobs suggests job titles for text. A nil score is computed by
// running the engine.
func (s *Service) RecommendJobs(ctx context.Context, text string, score *int) ([]string, error) {
	if err := s.checkText(text); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var overall int
	if score != nil {
		overall = *score
	} else {
		overall = feedback.Analyze(text, "").OverallScore
	}
	return jobs.Recommend(text, overall), nil
}

func (s *Service) run(ctx context.Context, in runInput) (Analysis, error) {
	analysis, start, err := s.analyze(ctx, in)
	if err != nil {
		return Analysis{}, err
	}
	if err := s.persist(ctx, in, analysis, start); err != nil {
		return Analysis{}, err
	}
	return analysis, nil
}

// analyze runs the engine and builds the record without storing it.
func (s *Service) analyze(ctx context.Context, in runInput) (Analysis, time.Time, error) {
	if err := s.checkText(in.text); err != nil {
		return Analysis{}, time.Time{}, err
	}

	start := s.clock()
	metrics.IncAnalysisStarted()
	data, err := s.Analyzer.AnalyzeContext(ctx, in.text, in.industry)
	if err != nil {
		return Analysis{}, start, s.fail(ctx, in, err)
	}
	if err := schemas.ValidateAnalysis(data); err != nil {
		return Analysis{}, start, s.fail(ctx, in, fmt.Errorf("%w: %w", ErrContractViolation, err))
	}

	return Analysis{
		ID:           uuid.NewString(),
		UserID:       in.userID,
		Source:       in.source,
		FileName:     in.fileName,
		DocumentKey:  in.documentKey,
		Industry:     data.IndustryAnalysis.Industry,
		OverallScore: data.OverallScore,
		Result:       data,
		Jobs:         jobs.Recommend(in.text, data.OverallScore),
		CreatedAt:    s.clock().UTC(),
	}, start, nil
}

func (s *Service) persist(ctx context.Context, in runInput, analysis Analysis, start time.Time) error {
	if err := s.Repo.Create(ctx, analysis); err != nil {
		return s.fail(ctx, in, fmt.Errorf("store analysis: %w", err))
	}

	elapsed := s.clock().Sub(start)
	metrics.IncAnalysisCompleted(string(in.source))
	metrics.ObserveAnalysisDurationMs(float64(elapsed.Microseconds()) / 1000.0)
	metrics.ObserveOverallScore(analysis.OverallScore)
	telemetry.Info("analysis.completed", map[string]any{
		"request_id":    requestIDFromContext(ctx),
		"user_id":       in.userID,
		"analysis_id":   analysis.ID,
		"source":        string(in.source),
		"industry":      analysis.Industry,
		"overall_score": analysis.OverallScore,
		"text_bytes":    len(in.text),
		"duration_ms":   float64(elapsed.Microseconds()) / 1000.0,
	})
	return nil
}

func (s *Service) fail(ctx context.Context, in runInput, err error) error {
	metrics.IncAnalysisFailed()
	telemetry.Error("analysis.failed", map[string]any{
		"request_id": requestIDFromContext(ctx),
		"user_id":    in.userID,
		"source":     string(in.source),
		"error":      err,
	})
	return err
}

func (s *Service) checkText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if limit := s.maxTextBytes(); len(text) > limit {
		return fmt.Errorf("%w: text exceeds %d bytes", ErrInvalidInput, limit)
	}
	return nil
}

func (s *Service) removeDocument(ctx context.Context, key string) {
	if s.Store == nil {
		return
	}
	for _, k := range []string{key, object.DerivedKey(key)} {
		if err := s.Store.Delete(ctx, k); err != nil && !errors.Is(err, object.ErrNotFound) {
			telemetry.Warn("analysis.document_cleanup_failed", map[string]any{
				"request_id": requestIDFromContext(ctx),
				"key":        k,
				"error":      err,
			})
		}
	}
}

func (s *Service) maxTextBytes() int {
	if s.MaxTextBytes > 0 {
		return s.MaxTextBytes
	}
	return defaultMaxTextBytes
}

func (s *Service) batchConcurrency() int {
	if s.BatchConcurrency > 0 {
		return s.BatchConcurrency
	}
	return defaultBatchConcurrency
}

func (s *Service) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
