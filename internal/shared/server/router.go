package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-feedback/internal/analyses"
	"resume-feedback/internal/sentences"
	"resume-feedback/internal/services/health"
	"resume-feedback/internal/shared/config"
	"resume-feedback/internal/shared/metrics"
	"resume-feedback/internal/shared/server/middleware"
)

// RouterDeps holds the handlers mounted by NewRouter.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	SentenceHandler *sentences.Handler
	Health          *health.Service
	Limiter         *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    rateLimitRules(deps.Config.RateLimit),
			GroupFor: middleware.AnalyzeGroup,
			Limiter:  deps.Limiter,
		}),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(nil, deps.Config.ObjectStoreType)
	}

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		status := healthSvc.Status(c.Request.Context())
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.SentenceHandler != nil {
		deps.SentenceHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitRules gives the default group four times the analysis budget.
func rateLimitRules(rl config.RateLimit) map[string]middleware.RateLimitRule {
	analyze := middleware.RateLimitRule{Rate: rl.RPS, Burst: rl.Burst}
	return map[string]middleware.RateLimitRule{
		middleware.RateLimitGroupAnalyze: analyze,
		middleware.RateLimitGroupDefault: {Rate: analyze.Rate * 4, Burst: analyze.Burst * 4},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
