package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, user_id, source, file_name, document_key, industry, overall_score, result, jobs, created_at`

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (` + analysisColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	resultPayload, err := json.Marshal(analysis.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	jobsPayload, err := marshalJobs(analysis.Jobs)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.UserID,
		string(analysis.Source),
		nullString(analysis.FileName),
		nullString(analysis.DocumentKey),
		analysis.Industry,
		analysis.OverallScore,
		resultPayload,
		jobsPayload,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns the user's analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, userID, analysisID string) (Analysis, error) {
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
LIMIT 1`

	a, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, analysisID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return a, nil
}

// ListByUser lists analyses for a user ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	limit, offset = clampPage(limit, offset)

	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Delete soft-deletes the user's analysis.
func (r *PGRepo) Delete(ctx context.Context, userID, analysisID string) error {
	const query = `
UPDATE analyses
SET deleted_at = now()
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

	res, err := r.DB.ExecContext(ctx, query, analysisID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var source string
	var fileName sql.NullString
	var documentKey sql.NullString
	var result []byte
	var jobs []byte
	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&source,
		&fileName,
		&documentKey,
		&a.Industry,
		&a.OverallScore,
		&result,
		&jobs,
		&a.CreatedAt,
	); err != nil {
		return Analysis{}, err
	}
	a.Source = Source(source)
	if fileName.Valid {
		a.FileName = fileName.String
	}
	if documentKey.Valid {
		a.DocumentKey = documentKey.String
	}
	if err := json.Unmarshal(result, &a.Result); err != nil {
		return Analysis{}, fmt.Errorf("decode result of analysis %s: %w", a.ID, err)
	}
	if len(jobs) > 0 {
		if err := json.Unmarshal(jobs, &a.Jobs); err != nil {
			return Analysis{}, fmt.Errorf("decode jobs of analysis %s: %w", a.ID, err)
		}
	}
	return a, nil
}

func marshalJobs(jobs []string) ([]byte, error) {
	if jobs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(jobs)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var _ Repo = (*PGRepo)(nil)
