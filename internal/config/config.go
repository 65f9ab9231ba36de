package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const devSecret = "dev-secret-change-in-production"

var (
	ErrProductionSecret= errors.New("JWT_SECRET must be set in production environment")
	ErrInvalidPageSize= errors.New("ITEMS_PER_PAGE must be positive")
	ErrInvalidTokenTTL= errors.New("TOKEN_TTL must be at least 1s, with a unit (e.g. 1h)")
	ErrInvalidRateLimit= errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	ErrUnsupportedDriver = errors.New("DATABASE_DRIVER must be mysql or sqlite")
)

// Config is built once at startup and handed to the components that need it.
type Config struct {
	Port           string
	Env            string
	DatabaseDriver string
	DatabaseDSN    string
	JWTSecret      string
	TokenTTL       time.Duration
	ItemsPerPage   int
	BaseURL        string
	LogLevel       string
	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string

	// TrustProxyHeaders takes the client address from X-Forwarded-For and
	// friends. Only enable it behind a proxy that overwrites them.
	TrustProxyHeaders bool
}

// Load reads configuration from the environment and an optional config file
// in the working directory. The caller is expected to have loaded .env first.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("JWT_SECRET", devSecret)
	v.SetDefault("TOKEN_TTL", time.Hour)
	v.SetDefault("ITEMS_PER_PAGE", 20)
	v.SetDefault("BASE_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("TRUST_PROXY_HEADERS", false)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Config{
		Port:           v.GetString("PORT"),
		Env:            v.GetString("ENV"),
		DatabaseDriver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		ItemsPerPage:   v.GetInt("ITEMS_PER_PAGE"),
		BaseURL:        strings.TrimRight(v.GetString("BASE_URL"), "/"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
		CORSOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		TrustProxyHeaders: v.GetBool("TRUST_PROXY_HEADERS"),
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDSN(cfg.DatabaseDriver)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first configuration value the server cannot run with.
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case "mysql", "sqlite":
	default:
		return ErrUnsupportedDriver
	}
	if c.Env == "production" && c.JWTSecret == devSecret {
		return ErrProductionSecret
	}
	if c.ItemsPerPage <= 0 {
		return ErrInvalidPageSize
	}
	if c.TokenTTL < time.Second {
		return ErrInvalidTokenTTL
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return ErrInvalidRateLimit
	}
	return nil
}

func defaultDSN(driver string) string {
	if driver == "mysql" {
		return "root:password@tcp(127.0.0.1:3306)/todoism"
	}
	return "data/todoism.db"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
