// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"wedding_directory_backend/internal/account"
	"wedding_directory_backend/internal/app"
	"wedding_directory_backend/internal/config"
	"wedding_directory_backend/internal/credential"
	"wedding_directory_backend/internal/freelancer"
	"wedding_directory_backend/internal/jobs"
	"wedding_directory_backend/internal/platform/elasticsearch"
	"wedding_directory_backend/internal/platform/logger"
	"wedding_directory_backend/internal/review"
	"wedding_directory_backend/internal/survey"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		provideDB,
		elasticsearch.NewClient,

		// Credentials
		provideHasher,
		credential.NewGORMRepository,
		credential.NewService,

		// Profiles
		freelancer.NewSearchIndex,
		freelancer.NewGORMRepository,
		freelancer.NewService,
		freelancer.NewHandler,

		// Reviews
		review.NewGORMRepository,
		review.NewService,
		review.NewHandler,
		wire.Bind(new(review.ProfileChecker), new(freelancer.Service)),

		// Accounts
		survey.NewGORMRecorder,
		account.NewService,
		account.NewHandler,

		// Jobs
		jobs.NewOrphanSweepJob,
		wire.Bind(new(jobs.CredentialSweeper), new(credential.Service)),
		wire.Bind(new(jobs.ReviewSweeper), new(review.Service)),

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
