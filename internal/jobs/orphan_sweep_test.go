package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"wedding_directory_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubCredentials struct {
	n     int64
	err   error
	grace time.Duration
}

func (s *stubCredentials) RemoveOrphans(_ context.Context, grace time.Duration) (int64, error) {
	s.grace = grace
	return s.n, s.err
}

type stubReviews struct {
	n     int64
	err   error
	calls int
}

func (s *stubReviews) RemoveOrphans(context.Context) (int64, error) {
	s.calls++
	return s.n, s.err
}

func TestSweep(t *testing.T) {
	creds := &stubCredentials{n: 2}
	reviews := &stubReviews{n: 5}
	cfg := &config.Config{OrphanCredentialGrace: 15 * time.Minute}
	job := NewOrphanSweepJob(creds, reviews, zap.NewNop(), cfg)

	res, err := job.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SweepResult{Credentials: 2, Reviews: 5}, res)
	assert.Equal(t, 15*time.Minute, creds.grace)
}

func TestSweep_CredentialFailureStillSweepsReviews(t *testing.T) {
	creds := &stubCredentials{err: errors.New("db down")}
	reviews := &stubReviews{n: 1}
	job := NewOrphanSweepJob(creds, reviews, zap.NewNop(), &config.Config{})

	res, err := job.Sweep(context.Background())
	assert.ErrorContains(t, err, "sweep credentials")
	assert.Equal(t, 1, reviews.calls)
	assert.Equal(t, int64(1), res.Reviews)
}

func TestSetupAndStart_NoSchedule(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	job := NewOrphanSweepJob(&stubCredentials{}, &stubReviews{}, zap.New(core), &config.Config{})

	require.NoError(t, job.SetupAndStart())
	assert.Equal(t, 1, logs.FilterMessageSnippet("will not run").Len())
	job.Stop()
}

func TestSetupAndStart_InvalidSchedule(t *testing.T) {
	job := NewOrphanSweepJob(&stubCredentials{}, &stubReviews{}, zap.NewNop(), &config.Config{OrphanSweepSchedule: "every now and then"})
	assert.Error(t, job.SetupAndStart())
}

func TestSetupAndStart_Schedules(t *testing.T) {
	job := NewOrphanSweepJob(&stubCredentials{}, &stubReviews{}, zap.NewNop(), &config.Config{OrphanSweepSchedule: "@hourly"})
	require.NoError(t, job.SetupAndStart())
	assert.Len(t, job.cronScheduler.Entries(), 1)
	job.Stop()
}
