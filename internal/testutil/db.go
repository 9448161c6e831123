// Package testutil builds throwaway databases for repository and service tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"travelcms/internal/infra"
)

// NewDB opens a private in-memory SQLite database migrated with the
// production model list. One connection serializes concurrent callers.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.Migrate(db))
	return db
}

// SiteDB exposes the same database through sqlx, the way the public read
// path sees it.
func SiteDB(t testing.TB, db *gorm.DB) *sqlx.DB {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	return sqlx.NewDb(sqlDB, "sqlite3")
}
