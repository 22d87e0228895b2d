package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all Verity configuration.
type Config struct {
	Server ServerConfig
	Engine EngineConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string
	GinMode         string   // "debug", "release", "test"
	CORSOrigins     []string // ["*"] allows every origin
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
	Swagger         bool
}

// EngineConfig holds artifact locations and labeling settings.
type EngineConfig struct {
	ModelDir       string
	VectorizerPath string // overrides ModelDir/vectorizer.json
	ClassifierPath string // overrides the classifier probed in ModelDir
	RuntimeLibrary string // ONNX Runtime shared library
	Threshold      float64
	FakeClassIndex int
	FoldAccents    bool
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "text", "json"
}

// Load reads a .env file from the working directory if one exists, then
// environment variables, applying defaults for anything unset.
func Load() Config {
	// Best-effort: a missing .env is not an error.
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Addr:            getenv("VERITY_ADDR", ":5000"),
			GinMode:         getenv("VERITY_GIN_MODE", "release"),
			CORSOrigins:     getenvList("VERITY_CORS_ORIGINS", []string{"*"}),
			MaxBodyBytes:    getenvInt64("VERITY_MAX_BODY_BYTES", 1<<20),
			ShutdownTimeout: getenvDuration("VERITY_SHUTDOWN_TIMEOUT", 5*time.Second),
			Swagger:         getenvBool("VERITY_SWAGGER", true),
		},
		Engine: EngineConfig{
			ModelDir:       getenv("VERITY_MODEL_DIR", "model"),
			VectorizerPath: os.Getenv("VERITY_VECTORIZER_PATH"),
			ClassifierPath: os.Getenv("VERITY_CLASSIFIER_PATH"),
			RuntimeLibrary: os.Getenv("VERITY_ORT_LIBRARY"),
			Threshold:      getenvFloat("VERITY_THRESHOLD", 0.5),
			FakeClassIndex: getenvInt("VERITY_FAKE_CLASS_INDEX", 1),
			FoldAccents:    getenvBool("VERITY_FOLD_ACCENTS", false),
		},
		Log: LogConfig{
			Level:  getenv("VERITY_LOG_LEVEL", "info"),
			Format: getenv("VERITY_LOG_FORMAT", "text"),
		},
	}
}

// Validate checks the configuration and returns every problem found.
func (c Config) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, fmt.Errorf("server address must not be empty"))
	}
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("gin mode must be debug, release, or test, got %q", c.Server.GinMode))
	}
	if len(c.Server.CORSOrigins) == 0 {
		errs = append(errs, fmt.Errorf("at least one CORS origin is required"))
	}
	for _, origin := range c.Server.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, fmt.Errorf("CORS origin must be * or start with http:// or https://, got %q", origin))
		}
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("max body bytes must be positive, got %d", c.Server.MaxBodyBytes))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive, got %v", c.Server.ShutdownTimeout))
	}

	if c.Engine.Threshold < 0 || c.Engine.Threshold > 1 {
		errs = append(errs, fmt.Errorf("threshold must be between 0 and 1, got %v", c.Engine.Threshold))
	}
	if c.Engine.FakeClassIndex < 0 {
		errs = append(errs, fmt.Errorf("fake class index must not be negative, got %d", c.Engine.FakeClassIndex))
	}
	if c.Engine.VectorizerPath == "" {
		if _, err := os.Stat(filepath.Join(c.Engine.ModelDir, "vectorizer.json")); err != nil {
			errs = append(errs, fmt.Errorf("vectorizer not found in model dir %q: %w", c.Engine.ModelDir, err))
		}
	} else if _, err := os.Stat(c.Engine.VectorizerPath); err != nil {
		errs = append(errs, fmt.Errorf("vectorizer not found: %w", err))
	}
	if c.Engine.ClassifierPath != "" {
		if _, err := os.Stat(c.Engine.ClassifierPath); err != nil {
			errs = append(errs, fmt.Errorf("classifier not found: %w", err))
		}
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// getenvBool accepts 1/true/yes and 0/false/no, case-insensitively.
func getenvBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return fallback
	}
}

// getenvList splits a comma-separated value, dropping empty entries.
func getenvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
