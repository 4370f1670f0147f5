package analyses

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"resume-feedback/internal/extract"
	"resume-feedback/internal/feedback"
	"resume-feedback/internal/shared/server/binding"
	"resume-feedback/internal/shared/server/middleware"
	"resume-feedback/internal/shared/server/respond"
)

const (
	defaultMaxUploadBytes = 10 << 20
	// JSON bodies carry up to MaxBatchItems texts plus envelope overhead.
	jsonBodySlack = 64 << 10
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64

	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes, validate: binding.NewValidator()}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/industries", h.listIndustries)
	rg.POST("/analyses", h.analyzeText)
	rg.POST("/analyses/upload", h.analyzeUpload)
	rg.POST("/analyses/batch", h.analyzeBatch)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.GET("/analyses/:id/report", h.downloadReport)
	rg.DELETE("/analyses/:id", h.deleteAnalysis)
	rg.POST("/jobs/recommend", h.recommendJobs)
}

type analyzeRequest struct {
	Text     string `json:"text" validate:"notblank"`
	Industry string `json:"industry" validate:"industry"`
}

type batchRequest struct {
	Items []analyzeRequest `json:"items" validate:"required,min=1,max=10,dive"`
}

type jobsRequest struct {
	Text         string `json:"text" validate:"notblank"`
	OverallScore *int   `json:"overallScore" validate:"omitempty,min=0,max=100"`
}

func (h *Handler) listIndustries(c *gin.Context) {
	respond.OK(c, gin.H{
		"industries": feedback.Industries(),
		"default":    feedback.IndustryGeneral,
	})
}

func (h *Handler) analyzeText(c *gin.Context) {
	h.limitJSONBody(c, 1)
	var req analyzeRequest
	if !binding.JSON(c, h.validate, &req) {
		return
	}

	analysis, err := h.Svc.AnalyzeText(requestContext(c), middleware.UserIDFromContext(c), req.Text, req.Industry)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Set("analysisId", analysis.ID)
	respond.Created(c, analysis)
}

func (h *Handler) analyzeUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || c.Request.ContentLength > h.MaxUploadBytes {
			respond.Error(c, http.StatusRequestEntityTooLarge, respond.CodePayloadTooLarge, "file exceeds upload limit",
				gin.H{"maxBytes": h.MaxUploadBytes})
			return
		}
		respond.BadRequest(c, "file is required", []binding.FieldIssue{{Field: "file", Issue: "required"}})
		return
	}
	if fileHeader.Size > h.MaxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, respond.CodePayloadTooLarge, "file exceeds upload limit",
			gin.H{"maxBytes": h.MaxUploadBytes})
		return
	}
	if !extract.Supported(fileHeader.Filename) {
		respond.Error(c, http.StatusUnsupportedMediaType, respond.CodeUnsupportedMedia, "unsupported file type",
			gin.H{"supported": extract.SupportedExtensions})
		return
	}
	industry := c.PostForm("industry")
	if !binding.ValidIndustry(industry) {
		respond.BadRequest(c, "invalid request", []binding.FieldIssue{{Field: "industry", Issue: "industry"}})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Internal(c, err)
		return
	}
	defer file.Close()

	analysis, err := h.Svc.AnalyzeUpload(requestContext(c), middleware.UserIDFromContext(c),
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), industry, file)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Set("analysisId", analysis.ID)
	respond.Created(c, analysis)
}

func (h *Handler) analyzeBatch(c *gin.Context) {
	h.limitJSONBody(c, MaxBatchItems)
	var req batchRequest
	if !binding.JSON(c, h.validate, &req) {
		return
	}

	items := make([]Input, len(req.Items))
	for i, item := range req.Items {
		items[i] = Input{Text: item.Text, Industry: item.Industry}
	}
	results, err := h.Svc.AnalyzeBatch(requestContext(c), middleware.UserIDFromContext(c), items)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	respond.OK(c, gin.H{"results": results})
}

func (h *Handler) listAnalyses(c *gin.Context) {
	limit := queryInt(c, "limit", defaultListLimit)
	offset := queryInt(c, "offset", 0)

	analyses, err := h.Svc.List(requestContext(c), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp := make([]Summary, 0, len(analyses))
	for _, a := range analyses {
		resp = append(resp, a.Summary())
	}
	respond.OK(c, resp)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	analysisID := c.Param("id")
	c.Set("analysisId", analysisID)

	analysis, err := h.Svc.Get(requestContext(c), middleware.UserIDFromContext(c), analysisID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	respond.OK(c, analysis)
}

func (h *Handler) downloadReport(c *gin.Context) {
	analysisID := c.Param("id")
	c.Set("analysisId", analysisID)

	report, err := h.Svc.Report(requestContext(c), middleware.UserIDFromContext(c), analysisID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	respond.Attachment(c, feedback.ReportFileName, report)
}

func (h *Handler) deleteAnalysis(c *gin.Context) {
	analysisID := c.Param("id")
	c.Set("analysisId", analysisID)

	if err := h.Svc.Delete(requestContext(c), middleware.UserIDFromContext(c), analysisID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) recommendJobs(c *gin.Context) {
	h.limitJSONBody(c, 1)
	var req jobsRequest
	if !binding.JSON(c, h.validate, &req) {
		return
	}

	titles, err := h.Svc.RecommendJobs(requestContext(c), req.Text, req.OverallScore)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	respond.OK(c, gin.H{"jobs": titles})
}

func (h *Handler) limitJSONBody(c *gin.Context, texts int) {
	limit := int64(h.Svc.maxTextBytes())*int64(texts) + jsonBodySlack
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusUnsupportedMediaType, respond.CodeUnsupportedMedia, "unsupported file type",
			gin.H{"supported": extract.SupportedExtensions})
	case errors.Is(err, ErrInvalidInput):
		respond.BadRequest(c, err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.NotFound(c, "analysis not found")
	default:
		respond.Internal(c, err)
	}
}

func requestContext(c *gin.Context) context.Context {
	return WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}
