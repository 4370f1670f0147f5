package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-feedback/internal/feedback"
)

var pgColumns = []string{"id", "user_id", "source", "file_name", "document_key", "industry", "overall_score", "result", "jobs", "created_at"}

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	analysis := Analysis{
		ID:           "4b0c9a47-2f43-4a8e-9f7d-7c1c5d1f0c11",
		UserID:       "guest:abc",
		Source:       SourceUpload,
		FileName:     "cv.pdf",
		Industry:     feedback.IndustryTechnology,
		OverallScore: 72,
		Result:       feedback.Analyze("Software engineer with python and sql experience.", "technology"),
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(
			analysis.ID,
			analysis.UserID,
			"upload",
			"cv.pdf",
			nil, // document_key
			"technology",
			72,
			sqlmock.AnyArg(), // result
			[]byte("[]"),     // jobs
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), analysis); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	data := feedback.Analyze("Managed a team of engineers. Bachelor degree.", "")
	result, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	created := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM analyses WHERE id = \\$1 AND user_id = \\$2").
		WithArgs("a-1", "guest:abc").
		WillReturnRows(sqlmock.NewRows(pgColumns).
			AddRow("a-1", "guest:abc", "text", nil, nil, "general", data.OverallScore, result, []byte(`["Project Manager"]`), created))

	got, err := repo.GetByID(context.Background(), "guest:abc", "a-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Source != SourceText || got.FileName != "" || got.OverallScore != data.OverallScore {
		t.Fatalf("unexpected analysis %+v", got)
	}
	if got.Result.OverallScore != data.OverallScore || len(got.Result.Strengths) != len(data.Strengths) {
		t.Fatalf("result not decoded: %+v", got.Result)
	}
	if len(got.Jobs) != 1 || got.Jobs[0] != "Project Manager" {
		t.Fatalf("unexpected jobs %v", got.Jobs)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at %v", got.CreatedAt)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("missing", "guest:abc").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), "guest:abc", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByUserClampsPage(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM analyses WHERE user_id = \\$1 AND deleted_at IS NULL ORDER BY created_at DESC").
		WithArgs("guest:abc", maxListLimit, 0).
		WillReturnRows(sqlmock.NewRows(pgColumns))

	got, err := repo.ListByUser(context.Background(), "guest:abc", 500, -3)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDelete(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE analyses SET deleted_at = now\\(\\)").
		WithArgs("a-1", "guest:abc").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE analyses SET deleted_at").
		WithArgs("a-1", "guest:abc").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "guest:abc", "a-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(context.Background(), "guest:abc", "a-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestPGRepoRejectsCorruptResult(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("a-1", "guest:abc").
		WillReturnRows(sqlmock.NewRows(pgColumns).
			AddRow("a-1", "guest:abc", "text", nil, nil, "general", 50, []byte("{not json"), []byte("[]"), time.Now()))

	if _, err := repo.GetByID(context.Background(), "guest:abc", "a-1"); err == nil {
		t.Fatalf("expected decode error")
	}
}
