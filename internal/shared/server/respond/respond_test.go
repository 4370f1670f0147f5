package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	nextRan := false
	router.GET("/x", func(c *gin.Context) {
		BadRequest(c, "text is required", []string{"text"})
	}, func(c *gin.Context) {
		nextRan = true
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/x", nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != CodeValidation || body.Error.Message != "text is required" {
		t.Fatalf("unexpected body %+v", body)
	}
	if nextRan {
		t.Fatal("expected the chain to stop after a bad request")
	}
}

func TestInternalHidesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		Internal(c, errors.New("db password wrong"))
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/x", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body ErrorResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &body)
	if body.Error.Code != CodeInternal || body.Error.Message != "Unexpected server error" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestAttachment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		Attachment(c, "report.txt", "hello")
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/x", nil))

	if got := resp.Header().Get("Content-Disposition"); got != `attachment; filename="report.txt"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if resp.Body.String() != "hello" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}
