// Package config loads server settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dgallion1/docdiff/internal/chardiff"
	"github.com/dgallion1/docdiff/internal/parser"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Defaults that are also applied when a value is set to something unusable.
const (
	DefaultPort           = "8090"
	DefaultWorkerCount    = 4
	DefaultMaxQueueSize   = 100
	DefaultMaxUploadBytes = 52428800 // 50MB
	DefaultMaxTextBytes   = 5242880  // 5MB
	DefaultJobTTL         = time.Hour
	DefaultDiffTimeout    = time.Second
)

type Config struct {
	Port string `envconfig:"PORT" default:"8090"`

	// Auth
	APIKey string `envconfig:"DOCDIFF_API_KEY"`

	// Worker pool
	WorkerCount  int `envconfig:"WORKER_COUNT" default:"4"`
	MaxQueueSize int `envconfig:"MAX_QUEUE_SIZE" default:"100"`

	// Request limits
	MaxUploadBytes int64 `envconfig:"MAX_UPLOAD_BYTES" default:"52428800"`
	MaxTextBytes   int64 `envconfig:"MAX_TEXT_BYTES" default:"5242880"`

	// Job state
	JobTTL time.Duration `envconfig:"JOB_TTL" default:"1h"`

	// PDF
	PDFFallbackPdftotext bool `envconfig:"PDF_FALLBACK_PDFTOTEXT" default:"true"`

	// Character diff
	DiffTimeout  time.Duration `envconfig:"DIFF_TIMEOUT" default:"1s"`
	DiffCleanup  string        `envconfig:"DIFF_CLEANUP" default:"semantic"`
	DiffLineMode bool          `envconfig:"DIFF_LINE_MODE" default:"false"`

	// CORSAllowedOrigins is a comma-separated list; empty disables CORS.
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads envFile (when it exists) into the environment without
// overriding variables that are already set, then processes the environment.
// An empty envFile means ".env".
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.WorkerCount <= 0 {
		c.WorkerCount = DefaultWorkerCount
	}
	if c.MaxQueueSize <= 0 {
		c.MaxQueueSize = DefaultMaxQueueSize
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.MaxTextBytes <= 0 {
		c.MaxTextBytes = DefaultMaxTextBytes
	}
	if c.JobTTL <= 0 {
		c.JobTTL = DefaultJobTTL
	}
	if c.DiffTimeout < 0 {
		c.DiffTimeout = DefaultDiffTimeout
	}
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("DOCDIFF_API_KEY is required")
	}
	if _, err := chardiff.ParseCleanup(c.DiffCleanup); err != nil {
		return fmt.Errorf("DIFF_CLEANUP: %w", err)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT: unknown format %q (want json or text)", c.LogFormat)
	}
	return nil
}

// DiffOptions returns the character diff settings. Call Validate first;
// an unknown cleanup falls back to semantic.
func (c Config) DiffOptions() chardiff.Options {
	cleanup, err := chardiff.ParseCleanup(c.DiffCleanup)
	if err != nil {
		cleanup = chardiff.CleanupSemantic
	}
	return chardiff.Options{
		Timeout:  c.DiffTimeout,
		Cleanup:  cleanup,
		LineMode: c.DiffLineMode,
	}
}

func (c Config) ParserOptions() parser.Options {
	return parser.Options{PDFFallbackPdftotext: c.PDFFallbackPdftotext}
}

// NewLogger builds a structured logger writing to w in LOG_FORMAT at
// LOG_LEVEL.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}
