package infra

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelcms/internal/config"
)

func TestConfigureSiteReaderUsesOpenConnLimit(t *testing.T) {
	// sqlx.Open does not dial, so the pool settings can be inspected offline.
	db, err := sqlx.Open("postgres", "postgres://localhost:1/unused?sslmode=disable")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{Database: config.DatabaseConfig{MaxOpenConns: 20, MaxIdleConns: 5, ConnMaxLifetime: 300}}
	configureSiteReader(db, cfg)

	assert.Equal(t, 20, db.Stats().MaxOpenConnections)
}
