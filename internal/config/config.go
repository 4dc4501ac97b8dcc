package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the API server needs, sourced from the
// environment (a .env file is loaded by main before this runs).
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Storage  StorageConfig
	Auth     AuthConfig
	Checkout CheckoutConfig
	Geo      GeoConfig
	Advisor  AdvisorConfig
}

type ServerConfig struct {
	Port string
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// StorageConfig selects the kv backend. Driver is one of
// memory | file | postgres | redis.
type StorageConfig struct {
	Driver        string
	FileDir       string
	PostgresURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	CodeSendDelay time.Duration
}

type CheckoutConfig struct {
	StageDelays [3]time.Duration
}

type GeoConfig struct {
	BaseURL string
}

type AdvisorConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// Load reads configuration from the environment with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "8080"),
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Encoding: getEnv("LOG_ENCODING", "console"),
		},
		Storage: StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", "file"),
			FileDir:       getEnv("STORAGE_FILE_DIR", "data"),
			PostgresURL:   os.Getenv("DATABASE_URL"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", "maison-dev-secret"),
			TokenTTL:      getEnvDuration("SESSION_TTL", 24*time.Hour),
			CodeSendDelay: getEnvDuration("SIGNUP_CODE_DELAY", 2500*time.Millisecond),
		},
		Checkout: CheckoutConfig{
			StageDelays: [3]time.Duration{
				getEnvDuration("CHECKOUT_STAGE1_DELAY", 1200*time.Millisecond),
				getEnvDuration("CHECKOUT_STAGE2_DELAY", 1600*time.Millisecond),
				getEnvDuration("CHECKOUT_STAGE3_DELAY", 1700*time.Millisecond),
			},
		},
		Geo: GeoConfig{
			BaseURL: getEnv("GEO_BASE_URL", "https://nominatim.openstreetmap.org"),
		},
		Advisor: AdvisorConfig{
			BaseURL: getEnv("ADVISOR_BASE_URL", "https://generativelanguage.googleapis.com"),
			APIKey:  os.Getenv("ADVISOR_API_KEY"),
			Model:   getEnv("ADVISOR_MODEL", "gemini-3-flash-preview"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
