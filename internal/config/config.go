package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds application level configuration. Values come from an optional
// YAML file and are then overridden by environment variables.
type Config struct {
	ServerPort  string   `yaml:"server_port"`
	FrontendURL string   `yaml:"frontend_url"`
	CORSOrigins []string `yaml:"cors_origins"`
	SwaggerHost string   `yaml:"swagger_host"`
	LogLevel    string   `yaml:"log_level"`

	DBDriver string `yaml:"db_driver"` // mysql, postgres, sqlite
	DBDSN    string `yaml:"db_dsn"`
	ResetDB  bool   `yaml:"reset_db"`

	RedisAddr string `yaml:"redis_addr"`
	RedisDB   int    `yaml:"redis_db"`
	RedisPass string `yaml:"redis_password"`

	JWTSecret        string        `yaml:"jwt_secret"`
	JWTAccessExpiry  time.Duration `yaml:"jwt_access_expiry"`
	JWTRefreshExpiry time.Duration `yaml:"jwt_refresh_expiry"`

	GoogleClientID     string `yaml:"google_client_id"`
	GoogleClientSecret string `yaml:"google_client_secret"`
	GoogleRedirectURL  string `yaml:"google_redirect_url"`

	// Requests allowed per IP over RateLimitWindow.
	RateLimitRequests int           `yaml:"rate_limit_requests"`
	RateLimitWindow   time.Duration `yaml:"rate_limit_window"`

	SentryDSN         string `yaml:"sentry_dsn"`
	SentryEnvironment string `yaml:"sentry_environment"`
}

// Default returns the configuration used when neither a file nor the
// environment provide a value.
func Default() *Config {
	return &Config{
		ServerPort:        "3000",
		FrontendURL:       "http://localhost:5173",
		CORSOrigins:       []string{"*"},
		LogLevel:          "info",
		DBDriver:          "mysql",
		DBDSN:             "user:password@tcp(localhost:3306)/kanban?charset=utf8mb4&parseTime=True&loc=Local",
		RedisAddr:         "localhost:6379",
		JWTSecret:         "change-me",
		JWTAccessExpiry:   24 * time.Hour,
		JWTRefreshExpiry:  30 * 24 * time.Hour,
		GoogleRedirectURL: "http://localhost:3000/api/v1/auth/googleRedirect",
		RateLimitRequests: 100,
		RateLimitWindow:   15 * time.Minute,
		SentryEnvironment: "development",
	}
}

// Load builds Config from the YAML file at path (skipped when path is empty
// or the file does not exist) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.overrideFromEnv()
	return cfg, nil
}

func (c *Config) overrideFromEnv() {
	c.ServerPort = getEnv("PORT", getEnv("SERVER_PORT", c.ServerPort))
	c.FrontendURL = getEnv("FRONTEND_URL", c.FrontendURL)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		c.CORSOrigins = strings.Split(origins, ",")
	}
	c.SwaggerHost = getEnv("SWAGGER_HOST", c.SwaggerHost)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	c.DBDriver = getEnv("DB_DRIVER", c.DBDriver)
	c.DBDSN = getEnv("DATABASE_URL", getEnv("DB_DSN", c.DBDSN))
	c.ResetDB = getEnvBool("RESET_DB", c.ResetDB)

	c.RedisAddr = getEnv("REDIS_ADDR", c.RedisAddr)
	c.RedisDB = getEnvInt("REDIS_DB", c.RedisDB)
	c.RedisPass = getEnv("REDIS_PASSWORD", c.RedisPass)

	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.JWTAccessExpiry = getEnvDuration("JWT_ACCESS_EXPIRY", c.JWTAccessExpiry)
	c.JWTRefreshExpiry = getEnvDuration("JWT_REFRESH_EXPIRY", c.JWTRefreshExpiry)

	c.GoogleClientID = getEnv("GOOGLE_CLIENT_ID", c.GoogleClientID)
	c.GoogleClientSecret = getEnv("GOOGLE_CLIENT_SECRET", c.GoogleClientSecret)
	c.GoogleRedirectURL = getEnv("GOOGLE_REDIRECT_URL", c.GoogleRedirectURL)

	c.RateLimitRequests = getEnvInt("RATE_LIMIT_REQUESTS", c.RateLimitRequests)
	c.RateLimitWindow = getEnvDuration("RATE_LIMIT_WINDOW", c.RateLimitWindow)

	c.SentryDSN = getEnv("SENTRY_DSN", c.SentryDSN)
	c.SentryEnvironment = getEnv("SENTRY_ENVIRONMENT", c.SentryEnvironment)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
