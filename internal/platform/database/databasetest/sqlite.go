// Package databasetest opens isolated in-memory SQLite databases for package tests.
package databasetest

import (
	"context"
	"fmt"
	"testing"

	"wedding_directory_backend/internal/config"
	"wedding_directory_backend/internal/platform/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Config returns a configuration pointing at a fresh shared-cache in-memory database.
func Config() *config.Config {
	return &config.Config{
		DBDriver:       config.DriverSQLite,
		DBSource:       fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=off", uuid.NewString()),
		DBMaxIdleConns: 1,
		DBMaxOpenConns: 1,
		LogLevel:       "silent",
		BcryptCost:     4,
	}
}

// Open creates a migrated database for the given models and closes it when
// the test finishes.
func Open(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()
	cfg := Config()
	logger := zap.NewNop()

	db, err := database.NewGORM(cfg, logger)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(context.Background(), db, cfg, logger, models...))

	t.Cleanup(func() { database.CloseGORMDB(db, logger) })
	return db
}
