package main

import (
	"context"
	"log"

	"wedding_directory_backend/internal/config"
	"wedding_directory_backend/internal/credential"
	"wedding_directory_backend/internal/freelancer"
	"wedding_directory_backend/internal/platform/database"
	"wedding_directory_backend/internal/review"
	"wedding_directory_backend/internal/survey"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// schemaModels lists the tables managed by the service.
func schemaModels() []interface{} {
	return []interface{}{
		&credential.Credential{},
		&freelancer.Freelancer{},
		&review.Review{},
		&survey.Survey{},
	}
}

// provideDB opens the shared connection pool, migrates it when configured to
// and returns a cleanup that closes it.
func provideDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, func(), error) {
	db, err := database.NewGORM(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if cfg.DBAutoMigrate {
		if err := database.Migrate(context.Background(), db, cfg, logger, schemaModels()...); err != nil {
			database.CloseGORMDB(db, logger)
			return nil, nil, err
		}
	}
	cleanup := func() {
		logger.Info("Executing cleanup tasks...")
		database.CloseGORMDB(db, logger)
		if err := logger.Sync(); err != nil {
			log.Printf("ERROR: Failed to sync logger during cleanup: %v", err)
		}
	}
	return db, cleanup, nil
}

func provideHasher(cfg *config.Config) credential.PasswordHasher {
	return credential.NewBcryptHasher(cfg.BcryptCost)
}
