package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{URL: "postgres://localhost/travel"},
		Security: SecurityConfig{JWTSecret: "secret"},
		Storage:  StorageConfig{Driver: "local", LocalDir: "uploads", MaxUploadMB: 10},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing db", func(c *Config) { c.Database.URL = "" }, "POSTGRES_URL"},
		{"missing secret", func(c *Config) { c.Security.JWTSecret = "" }, "JWT_SECRET"},
		{"supabase without key", func(c *Config) { c.Storage.Driver = "supabase"; c.Storage.SupabaseURL = "https://x.supabase.co" }, "SUPABASE_SERVICE_KEY"},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "s3" }, "unsupported storage driver"},
		{"zero upload limit", func(c *Config) { c.Storage.MaxUploadMB = 0 }, "STORAGE_MAX_UPLOAD_MB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/travel")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORAGE_DRIVER", "local")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("SITE_BASE_URL", "https://travel.example/")
	t.Setenv("DB_AUTO_MIGRATE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, 300, cfg.Security.RateLimitPerMinute)
	assert.Equal(t, "https://travel.example", cfg.Site.BaseURL)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 10, cfg.Storage.MaxUploadMB)
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/travel")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORAGE_DRIVER", "local")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}
