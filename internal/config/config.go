// Package config loads service settings from the environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tair/gog-commerce/internal/payment/gateway"
	"github.com/tair/gog-commerce/pkg/database"
)

// Config holds every setting the API process needs
type Config struct {
	Environment string
	LogLevel    string
	ServiceName string
	JaegerURL   string
	HTTPPort    string

	Database database.Config

	JWTSecret string
	JWTTTL    time.Duration

	Razorpay gateway.Config

	RedisAddr       string
	RedisPassword   string
	CatalogCacheTTL time.Duration

	KafkaBrokers []string

	RateLimitPerMinute int
	CORSAllowedOrigins []string
}

// IsDevelopment reports whether the console log writer should be used
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

var (
	ErrMissingJWTSecret      = errors.New("JWT_SECRET is required outside development")
	ErrMissingRazorpaySecret = errors.New("RAZORPAY_KEY_SECRET is required outside development")
)

// Load reads the configuration from environment variables with defaults.
// Secrets have no defaults: outside development a missing JWT_SECRET or
// RAZORPAY_KEY_SECRET is an error, in development a missing JWT_SECRET is
// replaced by a random per-process key.
func Load() (Config, error) {
	cfg := Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		ServiceName: getEnv("OTEL_SERVICE_NAME", "gog-commerce-api"),
		JaegerURL:   getEnv("JAEGER_ENDPOINT", ""),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "gogcommerce"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getDuration("JWT_TTL", 24*time.Hour),
		Razorpay: gateway.Config{
			BaseURL:   getEnv("RAZORPAY_BASE_URL", gateway.DefaultBaseURL),
			KeyID:     getEnv("RAZORPAY_KEY_ID", ""),
			KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
			Timeout:   getDuration("RAZORPAY_TIMEOUT", 10*time.Second),
		},
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		CatalogCacheTTL:    getDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		KafkaBrokers:       splitList(getEnv("KAFKA_BROKERS", "")),
		RateLimitPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 20),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if err := cfg.resolveSecrets(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) resolveSecrets() error {
	if !c.IsDevelopment() {
		var errs []error
		if c.JWTSecret == "" {
			errs = append(errs, ErrMissingJWTSecret)
		}
		if c.Razorpay.KeySecret == "" {
			errs = append(errs, ErrMissingRazorpaySecret)
		}
		return errors.Join(errs...)
	}

	if c.JWTSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return fmt.Errorf("failed to generate development JWT secret: %w", err)
		}
		c.JWTSecret = secret
	}
	return nil
}

// randomSecret returns 32 random bytes, hex encoded
func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return defaultValue
}

// splitList splits a comma separated value, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
