package database

import (
	"context"
	"embed"
	"fmt"

	"wedding_directory_backend/internal/config"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// gooseLogger adapts zap to goose.Logger.
type gooseLogger struct {
	sugar *zap.SugaredLogger
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) { l.sugar.Fatalf(format, v...) }
func (l gooseLogger) Printf(format string, v ...interface{}) { l.sugar.Infof(format, v...) }

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = goose.UpContext

// Migrate brings the schema up to date. Postgres runs the embedded goose
// migrations; SQLite, used for local runs and tests, is migrated from the
// GORM models passed in.
func Migrate(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *zap.Logger, models ...interface{}) error {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		goose.SetBaseFS(migrationsFS)
		goose.SetLogger(gooseLogger{sugar: logger.Named("goose").Sugar()})
		if err := goose.SetDialect("postgres"); err != nil {
			return fmt.Errorf("failed to set goose dialect: %w", err)
		}
		if err := gooseUpContext(ctx, sqlDB, migrationsDir); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	case config.DriverSQLite:
		if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
			return fmt.Errorf("failed to auto-migrate: %w", err)
		}
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
	logger.Info("Database schema is up to date.", zap.String("driver", cfg.DBDriver))
	return nil
}
