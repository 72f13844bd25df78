// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotenvIfPresent loads each path that exists, ".env" by default.
// Variables already set in the environment are not overridden.
func LoadDotenvIfPresent(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("stat dotenv file failed path=%s: %w", path, err)
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load dotenv file failed path=%s: %w", path, err)
		}
	}
	return nil
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	Dir   string `env:"LOG_DIR"`
}

// TelemetryConfig controls OpenTelemetry tracing.
type TelemetryConfig struct {
	Enabled     bool    `env:"OTEL_ENABLED" envDefault:"false"`
	Endpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4317"`
	Insecure    bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	ServiceName string  `env:"OTEL_SERVICE_NAME"`
	SampleRate  float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`
}

// LinksConfig holds the static contact links served when the profile API is
// unavailable, plus the bundled CV paths.
type LinksConfig struct {
	Email      string `env:"LINK_EMAIL"`
	Telegram   string `env:"LINK_TELEGRAM"`
	GitHub     string `env:"LINK_GITHUB"`
	GitHubRepo string `env:"LINK_GITHUB_REPO"`
	LinkedIn   string `env:"LINK_LINKEDIN"`
	Phone      string `env:"LINK_PHONE"`
	WhatsApp   string `env:"LINK_WHATSAPP"`
	CVEN       string `env:"LINK_CV_EN" envDefault:"/cv/cv-en.pdf"`
	CVRU       string `env:"LINK_CV_RU" envDefault:"/cv/cv-ru.pdf"`
}

// SiteConfig configures the portfolio site binary.
type SiteConfig struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	Env           string        `env:"ENV" envDefault:"development"`
	APIBaseURL    string        `env:"PUBLIC_API_BASE_URL"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"8s"`
	LocaleDetect  bool          `env:"LOCALE_DETECT" envDefault:"true"`
	TemplatesGlob string        `env:"TEMPLATES_GLOB" envDefault:"templates/*"`
	StaticDir     string        `env:"STATIC_DIR" envDefault:"./static"`
	ImagesDir     string        `env:"IMAGES_DIR" envDefault:"./images"`
	CVDir         string        `env:"CV_DIR" envDefault:"./public/cv"`
	Links         LinksConfig
	Log           LogConfig
	Telemetry     TelemetryConfig
}

// APIConfig configures the profile-api binary.
type APIConfig struct {
	Addr        string   `env:"API_ADDR" envDefault:":8000"`
	Env         string   `env:"ENV" envDefault:"development"`
	SeedPath    string   `env:"SEED_PATH" envDefault:"data/profile.yaml"`
	CORSOrigins []string `env:"BACKEND_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:8080"`
	Log         LogConfig
	Telemetry   TelemetryConfig
}

// LoadSite parses the site configuration.
func LoadSite() (SiteConfig, error) {
	var cfg SiteConfig
	if err := ParseEnv(&cfg); err != nil {
		return SiteConfig{}, err
	}
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "personal-site"
	}
	return cfg, nil
}

// LoadAPI parses the profile-api configuration.
func LoadAPI() (APIConfig, error) {
	var cfg APIConfig
	if err := ParseEnv(&cfg); err != nil {
		return APIConfig{}, err
	}
	origins := cfg.CORSOrigins[:0]
	for _, o := range cfg.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.CORSOrigins = origins
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "profile-api"
	}
	return cfg, nil
}

// IsProduction reports whether env names a production deployment.
func IsProduction(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "prod", "production":
		return true
	default:
		return false
	}
}
