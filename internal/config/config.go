package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/docoutline/internal/layout"
	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/render"
)

type Config struct {
	Port string

	// Auth. Empty disables bearer auth.
	APIKey string

	LogLevel string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Layout
	PageErrors  string
	PDFValidate bool

	OutputFormat string
	CORSOrigins  []string

	// HeuristicsFile is an optional YAML file overriding Outline.
	HeuristicsFile string
	Outline        outline.Options
}

// Load reads the configuration from the environment. Heuristics start from
// outline.DefaultOptions, then the HEURISTICS_FILE profile, then PAGE_OFFSET.
func Load() (Config, error) {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey:   os.Getenv("API_KEY"),
		LogLevel: envOr("LOG_LEVEL", "info"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		PageErrors:  envOr("PAGE_ERRORS", string(layout.AbortOnPageError)),
		PDFValidate: envBool("PDF_VALIDATE", false),

		OutputFormat: envOr("OUTPUT_FORMAT", string(render.FormatJSON)),
		CORSOrigins:  envList("CORS_ORIGINS"),

		HeuristicsFile: os.Getenv("HEURISTICS_FILE"),
		Outline:        outline.DefaultOptions(),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	if cfg.HeuristicsFile != "" {
		opts, err := LoadHeuristics(cfg.HeuristicsFile, cfg.Outline)
		if err != nil {
			return cfg, err
		}
		cfg.Outline = opts
	}
	cfg.Outline.PageOffset = envInt("PAGE_OFFSET", cfg.Outline.PageOffset)

	return cfg, nil
}

// Validate returns the first invalid setting.
func (c Config) Validate() error {
	if _, err := layout.ParsePageErrorPolicy(c.PageErrors); err != nil {
		return fmt.Errorf("PAGE_ERRORS: %w", err)
	}
	if _, err := render.ParseFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("OUTPUT_FORMAT: %w", err)
	}
	if err := c.Outline.Validate(); err != nil {
		return fmt.Errorf("heuristics: %w", err)
	}
	return nil
}

// LayoutOptions converts the layout settings. Call after Validate.
func (c Config) LayoutOptions() layout.Options {
	policy, _ := layout.ParsePageErrorPolicy(c.PageErrors)
	return layout.Options{PageErrors: policy, ValidatePDF: c.PDFValidate}
}

// Format returns the parsed output format. Call after Validate.
func (c Config) Format() render.Format {
	f, _ := render.ParseFormat(c.OutputFormat)
	return f
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
