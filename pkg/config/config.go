package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	RedisURL      string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Wizard state lifetimes.
	DraftTTL     time.Duration
	RecallTTL    time.Duration
	CSRFTokenTTL time.Duration
	CaptchaTTL   time.Duration

	// Forms that require a human verification challenge before final
	// submission. Comma separated in the environment.
	CaptchaProtectedForms []string

	// Rate limit in ulule/limiter notation, e.g. "60-M".
	RateLimit string

	NotifyTimeout time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "loanflow-backend")
	viper.SetDefault("DRAFT_TTL", "24h")
	viper.SetDefault("STEP2_RECALL_TTL", "1h")
	viper.SetDefault("CSRF_TOKEN_TTL", "2h")
	viper.SetDefault("CAPTCHA_TTL", "15m")
	viper.SetDefault("CAPTCHA_PROTECTED_FORMS", "loan_application")
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("NOTIFY_TIMEOUT", "10s")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "no-reply@quickfunds.example")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.DraftTTL = durationOrDefault("DRAFT_TTL", 24*time.Hour)
	cfg.RecallTTL = durationOrDefault("STEP2_RECALL_TTL", time.Hour)
	cfg.CSRFTokenTTL = durationOrDefault("CSRF_TOKEN_TTL", 2*time.Hour)
	cfg.CaptchaTTL = durationOrDefault("CAPTCHA_TTL", 15*time.Minute)
	cfg.CaptchaProtectedForms = splitAndTrim(viper.GetString("CAPTCHA_PROTECTED_FORMS"))

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.NotifyTimeout = durationOrDefault("NOTIFY_TIMEOUT", 10*time.Second)

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetString("SMTP_PORT")
	cfg.SMTPUsername = viper.GetString("SMTP_USERNAME")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.SMTPFrom = viper.GetString("SMTP_FROM")
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set. Confirmation emails will be logged, not sent.")
	}

	cfg.CORSAllowedOrigins = splitAndTrim(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
