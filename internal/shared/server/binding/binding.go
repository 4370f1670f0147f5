// Package binding decodes JSON request bodies and validates them with
// go-playground/validator tags, answering failures with a validation_error.
package binding

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"resume-feedback/internal/feedback"
	"resume-feedback/internal/shared/server/respond"
)

// FieldIssue names one rejected request field.
type FieldIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// NewValidator returns a validator that reports JSON field names and knows
// the "industry" and "notblank" tags.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("industry", func(fl validator.FieldLevel) bool {
		return ValidIndustry(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidIndustry accepts an empty tag, "general" or any recognised industry.
func ValidIndustry(raw string) bool {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" || tag == feedback.IndustryGeneral {
		return true
	}
	_, ok := feedback.NormalizeIndustry(tag)
	return ok
}

// JSON decodes the request body into dst and validates it. On failure it
// writes the error response and returns false.
func JSON(c *gin.Context, v *validator.Validate, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			respond.Error(c, http.StatusRequestEntityTooLarge, respond.CodePayloadTooLarge, "request body too large", nil)
		case errors.Is(err, io.EOF):
			respond.BadRequest(c, "request body is required", nil)
		default:
			respond.BadRequest(c, "invalid JSON body", nil)
		}
		return false
	}
	if err := v.Struct(dst); err != nil {
		respond.BadRequest(c, "invalid request", Issues(err))
		return false
	}
	return true
}

// Issues flattens validator errors into field/issue pairs.
func Issues(err error) []FieldIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldIssue{{Field: "body", Issue: "invalid"}}
	}
	out := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldIssue{Field: fieldPath(fe), Issue: fe.Tag()})
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
