package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Site     SiteConfig
}

type ServerConfig struct {
	Port         string
	GinMode      string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // seconds
	AutoMigrate     bool
}

type StorageConfig struct {
	Driver        string // "supabase" | "local"
	SupabaseURL   string
	SupabaseKey   string
	Bucket        string
	LocalDir      string
	PublicBaseURL string
	MaxUploadMB   int
}

type SecurityConfig struct {
	JWTSecret          string
	JWTTTLMinutes      int
	AllowedOrigins     []string
	RateLimitPerMinute int
	RateLimitBurst     int
}

type LoggingConfig struct {
	Level      string
	Format     string // "json" | "console"
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type SiteConfig struct {
	BaseURL string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded (%v), continuing with environment variables", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			GinMode:      getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			URL:             strings.TrimSpace(os.Getenv("POSTGRES_URL")),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("DB_CONN_MAX_LIFETIME", 300),
			AutoMigrate:     getEnvBool("DB_AUTO_MIGRATE", false),
		},
		Storage: StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", "supabase"),
			SupabaseURL:   strings.TrimSpace(os.Getenv("SUPABASE_URL")),
			SupabaseKey:   strings.TrimSpace(os.Getenv("SUPABASE_SERVICE_KEY")),
			Bucket:        getEnv("STORAGE_BUCKET", "trip-media"),
			LocalDir:      getEnv("STORAGE_LOCAL_DIR", "uploads"),
			PublicBaseURL: getEnv("STORAGE_PUBLIC_BASE_URL", "http://localhost:8080/uploads"),
			MaxUploadMB:   getEnvInt("STORAGE_MAX_UPLOAD_MB", 10),
		},
		Security: SecurityConfig{
			JWTSecret:          os.Getenv("JWT_SECRET"),
			JWTTTLMinutes:      getEnvInt("JWT_TTL_MINUTES", 60),
			AllowedOrigins:     getEnvSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 300),
			RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 50),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			FilePath:   os.Getenv("LOG_FILE_PATH"),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		},
		Site: SiteConfig{
			BaseURL: strings.TrimRight(getEnv("SITE_BASE_URL", "http://localhost:3000"), "/"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("POSTGRES_URL is required")
	}
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.Storage.Driver {
	case "supabase":
		if c.Storage.SupabaseURL == "" || c.Storage.SupabaseKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY are required for the supabase storage driver")
		}
	case "local":
		if c.Storage.LocalDir == "" {
			return fmt.Errorf("STORAGE_LOCAL_DIR is required for the local storage driver")
		}
	default:
		return fmt.Errorf("unsupported storage driver: %s", c.Storage.Driver)
	}
	if c.Storage.MaxUploadMB <= 0 {
		return fmt.Errorf("STORAGE_MAX_UPLOAD_MB must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
