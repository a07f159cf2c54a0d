package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when neither GOOGLE_API_KEY nor GEMINI_API_KEY is set.
var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY environment variable is required")

type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string
	PublicURL string

	CORSAllowOrigins []string

	Gemini  GeminiConfig
	Advisor AdvisorConfig
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
}

type AdvisorConfig struct {
	// Timeout bounds a single model call. Zero leaves the call unbounded.
	Timeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("PUBLIC_URL", "")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-pro")
	v.SetDefault("GEMINI_TEMPERATURE", 0.7)
	v.SetDefault("GEMINI_TOP_P", 0.95)
	v.SetDefault("GEMINI_MAX_OUTPUT_TOKENS", 8192)
	v.SetDefault("ADVISOR_TIMEOUT", "0s")
}

// Load reads .env files (best effort) and the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		// godotenv never overrides variables already present in the environment.
		_ = godotenv.Load(path)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	apiKey := strings.TrimSpace(v.GetString("GOOGLE_API_KEY"))
	if apiKey == "" {
		apiKey = strings.TrimSpace(v.GetString("GEMINI_API_KEY"))
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	timeout, err := parseDuration(v.GetString("ADVISOR_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADVISOR_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port:             v.GetString("PORT"),
		GinMode:          strings.ToLower(v.GetString("GIN_MODE")),
		LogLevel:         strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:        strings.ToLower(v.GetString("LOG_FORMAT")),
		PublicURL:        strings.TrimRight(v.GetString("PUBLIC_URL"), "/"),
		CORSAllowOrigins: splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		Gemini: GeminiConfig{
			APIKey:          apiKey,
			Model:           v.GetString("GEMINI_MODEL"),
			Temperature:     float32(v.GetFloat64("GEMINI_TEMPERATURE")),
			TopP:            float32(v.GetFloat64("GEMINI_TOP_P")),
			MaxOutputTokens: v.GetInt32("GEMINI_MAX_OUTPUT_TOKENS"),
		},
		Advisor: AdvisorConfig{Timeout: timeout},
	}

	if cfg.PublicURL == "" {
		cfg.PublicURL = "http://localhost:" + cfg.Port
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Port) == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}
	if strings.TrimSpace(cfg.Gemini.Model) == "" {
		return fmt.Errorf("GEMINI_MODEL must not be empty")
	}
	if cfg.Gemini.MaxOutputTokens <= 0 {
		return fmt.Errorf("GEMINI_MAX_OUTPUT_TOKENS must be positive, got %d", cfg.Gemini.MaxOutputTokens)
	}
	if cfg.Advisor.Timeout < 0 {
		return fmt.Errorf("ADVISOR_TIMEOUT must not be negative")
	}
	return nil
}

// parseDuration accepts Go durations ("90s") or a bare number of seconds.
func parseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d, nil
	}
	return time.ParseDuration(raw + "s")
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
