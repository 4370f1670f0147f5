// Package sentences serves the single-sentence rewriting endpoint.
package sentences

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"resume-feedback/internal/feedback/improve"
	"resume-feedback/internal/shared/metrics"
	"resume-feedback/internal/shared/server/binding"
	"resume-feedback/internal/shared/server/middleware"
	"resume-feedback/internal/shared/server/respond"
	"resume-feedback/internal/shared/telemetry"
)

// MaxSentenceBytes bounds the accepted sentence length.
const MaxSentenceBytes = 2000

// Handler rewrites sentences with an improve.Improver.
type Handler struct {
	Improver *improve.Improver

	validate *validator.Validate
}

// NewHandler constructs a Handler. A nil improver gets a time-seeded one.
func NewHandler(im *improve.Improver) *Handler {
	if im == nil {
		im = improve.New(nil)
	}
	return &Handler{Improver: im, validate: binding.NewValidator()}
}

// RegisterRoutes attaches sentence routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sentences/improve", h.improveSentence)
}

type improveRequest struct {
	Sentence string `json:"sentence" validate:"max=2000"`
	Industry string `json:"industry" validate:"industry"`
}

type improveResponse struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
}

func (h *Handler) improveSentence(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxSentenceBytes+4<<10)
	var req improveRequest
	if !binding.JSON(c, h.validate, &req) {
		return
	}

	improved := h.Improver.Improve(req.Sentence, req.Industry)
	metrics.IncSentenceImprovements()
	telemetry.Info("sentence.improved", map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"user_id":    middleware.UserIDFromContext(c),
		"industry":   req.Industry,
		"input_len":  len(req.Sentence),
	})

	respond.OK(c, improveResponse{Original: req.Sentence, Improved: improved})
}
