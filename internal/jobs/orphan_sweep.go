// File: internal/jobs/orphan_sweep.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"wedding_directory_backend/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CredentialSweeper removes credentials that no profile references.
type CredentialSweeper interface {
	RemoveOrphans(ctx context.Context, grace time.Duration) (int64, error)
}

// ReviewSweeper removes reviews whose profile no longer exists.
type ReviewSweeper interface {
	RemoveOrphans(ctx context.Context) (int64, error)
}

// SweepResult counts what one sweep removed.
type SweepResult struct {
	Credentials int64
	Reviews     int64
}

// OrphanSweepJob periodically clears the leftovers of interrupted account
// deletions.
type OrphanSweepJob struct {
	credentials   CredentialSweeper
	reviews       ReviewSweeper
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
}

// NewOrphanSweepJob creates a new OrphanSweepJob.
func NewOrphanSweepJob(
	credentials CredentialSweeper,
	reviews ReviewSweeper,
	logger *zap.Logger,
	cfg *config.Config,
) *OrphanSweepJob {
	cronLog := NewCronLogger(logger.Named("cron"))
	scheduler := cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.SkipIfStillRunning(cronLog)),
	)

	return &OrphanSweepJob{
		credentials:   credentials,
		reviews:       reviews,
		logger:        logger.Named("OrphanSweepJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *OrphanSweepJob) SetupAndStart() error {
	schedule := j.cfg.OrphanSweepSchedule
	if schedule == "" {
		j.logger.Warn("Orphan sweep schedule not defined (ORPHAN_SWEEP_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(schedule, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule orphan sweep job", zap.String("schedule", schedule), zap.Error(err))
		return fmt.Errorf("schedule orphan sweep %q: %w", schedule, err)
	}

	j.logger.Info("Orphan sweep job scheduled", zap.String("schedule", schedule), zap.Int("jobID", int(jobID)))
	j.cronScheduler.Start()
	return nil
}

func (j *OrphanSweepJob) runJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if _, err := j.Sweep(ctx); err != nil {
		j.logger.Error("Orphan sweep run failed", zap.Error(err))
	}
}

// Sweep runs one pass. Reviews are swept even if the credential pass fails.
func (j *OrphanSweepJob) Sweep(ctx context.Context) (SweepResult, error) {
	var result SweepResult
	var firstErr error

	n, err := j.credentials.RemoveOrphans(ctx, j.cfg.OrphanCredentialGrace)
	if err != nil {
		firstErr = fmt.Errorf("sweep credentials: %w", err)
	} else {
		result.Credentials = n
	}

	n, err = j.reviews.RemoveOrphans(ctx)
	if err != nil {
		if firstErr == nil {
			firstErr = fmt.Errorf("sweep reviews: %w", err)
		}
	} else {
		result.Reviews = n
	}

	j.logger.Info("Orphan sweep run completed",
		zap.Int64("credentials_removed", result.Credentials),
		zap.Int64("reviews_removed", result.Reviews),
	)
	return result, firstErr
}

// Stop gracefully stops the cron scheduler.
func (j *OrphanSweepJob) Stop() {
	if j.cronScheduler == nil {
		return
	}
	j.logger.Info("Stopping orphan sweep scheduler...")
	stopCtx := j.cronScheduler.Stop()
	select {
	case <-stopCtx.Done():
		j.logger.Info("Orphan sweep scheduler stopped gracefully.")
	case <-time.After(10 * time.Second):
		j.logger.Warn("Orphan sweep scheduler stop timed out.")
	}
}
