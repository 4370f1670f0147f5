package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"resume-feedback/internal/shared/telemetry"
)

// Object store backends.
const (
	StoreNone  = "none"
	StoreLocal = "local"
	StoreS3    = "s3"
)

// Config holds application configuration.
type Config struct {
	Port             string
	CORSAllowOrigin  []string
	ObjectStoreType  string
	LocalStoreDir    string
	AWSRegion        string
	S3Bucket         string
	S3Prefix         string
	SSEKMSKeyID      string
	DatabaseURL      string
	Env              string
	LogJSON          bool
	LogDebug         bool
	AnalysisDelay    time.Duration
	MaxUploadBytes   int64
	MaxTextBytes     int
	BatchConcurrency int
	RateLimit        RateLimit
}

// RateLimit configures the token buckets applied to API route groups.
type RateLimit struct {
	RPS   float64
	Burst int
}

var defaults = map[string]any{
	"PORT":               "8080",
	"ENV":                "dev",
	"CORS_ALLOW_ORIGINS": "http://localhost:5173",
	"DATABASE_URL":       "",
	"OBJECT_STORE":       StoreLocal,
	"LOCAL_STORE_DIR":    "./data",
	"AWS_REGION":         "",
	"S3_BUCKET":          "",
	"S3_PREFIX":          "",
	"SSE_KMS_KEY_ID":     "",
	"LOG_JSON":           false,
	"LOG_DEBUG":          false,
	"ANALYSIS_DELAY":     "0s",
	"MAX_UPLOAD_BYTES":   10 << 20,
	"MAX_TEXT_BYTES":     200_000,
	"BATCH_CONCURRENCY":  4,
	"RATE_LIMIT_RPS":     5.0,
	"RATE_LIMIT_BURST":   10,
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env")
	_ = godotenv.Load("cmd/.env")

	return LoadFrom(viper.New())
}

// LoadFrom reads configuration through v, so callers can bind flags or a
// config file before the environment is consulted.
func LoadFrom(v *viper.Viper) Config {
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	env := normalizeEnv(v.GetString("ENV"))
	dbURL := strings.TrimSpace(v.GetString("DATABASE_URL"))
	if env == "production" && dbURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"env": env})
	}

	cfg := Config{
		Port:             v.GetString("PORT"),
		CORSAllowOrigin:  splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		ObjectStoreType:  normalizeStoreType(v.GetString("OBJECT_STORE")),
		LocalStoreDir:    v.GetString("LOCAL_STORE_DIR"),
		AWSRegion:        v.GetString("AWS_REGION"),
		S3Bucket:         v.GetString("S3_BUCKET"),
		S3Prefix:         v.GetString("S3_PREFIX"),
		SSEKMSKeyID:      v.GetString("SSE_KMS_KEY_ID"),
		DatabaseURL:      dbURL,
		Env:              env,
		LogJSON:          v.GetBool("LOG_JSON"),
		LogDebug:         v.GetBool("LOG_DEBUG"),
		AnalysisDelay:    v.GetDuration("ANALYSIS_DELAY"),
		MaxUploadBytes:   v.GetInt64("MAX_UPLOAD_BYTES"),
		MaxTextBytes:     v.GetInt("MAX_TEXT_BYTES"),
		BatchConcurrency: v.GetInt("BATCH_CONCURRENCY"),
		RateLimit: RateLimit{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}
	if cfg.AnalysisDelay < 0 {
		cfg.AnalysisDelay = 0
	}
	if cfg.BatchConcurrency < 1 {
		cfg.BatchConcurrency = 1
	}
	return cfg
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return StoreS3
	case "none", "off", "disabled":
		return StoreNone
	default:
		return StoreLocal
	}
}
