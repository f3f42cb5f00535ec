// File: internal/account/service.go
package account

import (
	"context"
	"errors"

	"wedding_directory_backend/internal/common"
	"wedding_directory_backend/internal/credential"
	"wedding_directory_backend/internal/freelancer"
	"wedding_directory_backend/internal/review"
	"wedding_directory_backend/internal/survey"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service coordinates the operations that span credentials, profiles,
// reviews and surveys.
type Service interface {
	// Login returns the profile linked to a verified credential. Every
	// failure is reported as common.ErrAuthenticationFailed.
	Login(ctx context.Context, username, password string) (*ProfileView, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) (bool, error)
	// DeleteAccount runs the deletion saga. Only the profile delete decides
	// success; the cleanup that follows is best-effort.
	DeleteAccount(ctx context.Context, profileID uuid.UUID, req DeleteAccountRequest) (DeletionReport, error)
}

type service struct {
	profiles    freelancer.Service
	credentials credential.Service
	reviews     review.Service
	surveys     survey.Recorder
	logger      *zap.Logger
}

// NewService creates a new account service.
func NewService(
	profiles freelancer.Service,
	credentials credential.Service,
	reviews review.Service,
	surveys survey.Recorder,
	logger *zap.Logger,
) Service {
	return &service{
		profiles:    profiles,
		credentials: credentials,
		reviews:     reviews,
		surveys:     surveys,
		logger:      logger.Named("account_service"),
	}
}

func (s *service) Login(ctx context.Context, username, password string) (*ProfileView, error) {
	cred, err := s.credentials.Verify(ctx, username, password)
	if err != nil {
		s.logger.Error("Login: credential lookup failed", zap.Error(err))
		return nil, common.ErrAuthenticationFailed
	}
	if cred == nil {
		s.logger.Info("Login: credential mismatch")
		return nil, common.ErrAuthenticationFailed
	}

	profile, err := s.profiles.FindByLoginID(ctx, cred.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Warn("Login: credential has no profile", zap.String("login_id", cred.ID.String()))
		} else {
			s.logger.Error("Login: profile lookup failed", zap.Error(err), zap.String("login_id", cred.ID.String()))
		}
		return nil, common.ErrAuthenticationFailed
	}

	view := ToProfileView(profile)
	return &view, nil
}

func (s *service) ChangePassword(ctx context.Context, req ChangePasswordRequest) (bool, error) {
	return s.credentials.ChangePassword(ctx, req.Username, req.CurrentPassword, req.NewPassword)
}

// deletion carries the state of one DeleteAccount run between stages.
type deletion struct {
	req      DeleteAccountRequest
	report   DeletionReport
	loginID  uuid.UUID
	username string
}

func (s *service) DeleteAccount(ctx context.Context, profileID uuid.UUID, req DeleteAccountRequest) (DeletionReport, error) {
	run := &deletion{
		req:    req,
		report: DeletionReport{ProfileID: profileID, Stage: StageLoadProfile},
	}

	for run.report.Stage != StageDone {
		var err error
		switch run.report.Stage {
		case StageLoadProfile:
			err = s.loadProfile(ctx, run)
		case StageResolveCredential:
			err = s.resolveCredential(ctx, run)
		case StageVerifyPassword:
			err = s.verifyPassword(ctx, run)
		case StageCascadeDelete:
			err = s.cascadeDelete(ctx, run)
		}
		if err != nil {
			s.logger.Info("Account deletion stopped",
				zap.String("profile_id", profileID.String()),
				zap.Stringer("stage", run.report.Stage),
				zap.Error(err),
			)
			return run.report, err
		}
		run.report.Stage++
	}

	s.logger.Info("Account deleted",
		zap.String("profile_id", profileID.String()),
		zap.Bool("credential_removed", run.report.CredentialRemoved),
		zap.Int64("reviews_deleted", run.report.ReviewsDeleted),
		zap.Bool("survey_recorded", run.report.SurveyRecorded),
	)
	return run.report, nil
}

func (s *service) loadProfile(ctx context.Context, run *deletion) error {
	profile, err := s.profiles.GetByID(ctx, run.report.ProfileID)
	if err != nil {
		return err
	}
	if profile.HasLogin() {
		run.loginID = *profile.LoginID
	}
	return nil
}

// resolveCredential rejects profiles without a login: there is no password
// to check the request against.
func (s *service) resolveCredential(ctx context.Context, run *deletion) error {
	if run.loginID == uuid.Nil {
		return common.ErrUnauthorized.WithDetails("This profile has no login and cannot be deleted.")
	}
	username, err := s.credentials.GetUsernameByID(ctx, run.loginID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Error("Profile references a missing credential",
				zap.String("profile_id", run.report.ProfileID.String()),
				zap.String("login_id", run.loginID.String()),
			)
			return common.ErrUnauthorized.WithDetails("This profile has no login and cannot be deleted.")
		}
		return err
	}
	run.username = username
	return nil
}

func (s *service) verifyPassword(ctx context.Context, run *deletion) error {
	cred, err := s.credentials.Verify(ctx, run.username, run.req.Password)
	if err != nil {
		return err
	}
	if cred == nil || cred.ID != run.loginID {
		return common.ErrAuthenticationFailed
	}
	return nil
}

func (s *service) cascadeDelete(ctx context.Context, run *deletion) error {
	id := run.report.ProfileID
	deleted, err := s.profiles.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return common.ErrNotFound.WithDetails("Freelancer not found.")
	}
	run.report.ProfileDeleted = true

	// The profile is gone; finish the cleanup even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	run.report.CredentialRemoved = s.ensureCredentialRemoved(ctx, run.loginID)

	n, err := s.reviews.RemoveAllForProfile(ctx, id)
	if err != nil {
		s.logger.Error("Failed to remove reviews of deleted profile", zap.Error(err), zap.String("profile_id", id.String()))
	} else {
		run.report.ReviewsDeleted = n
	}

	if _, err := s.surveys.Record(ctx, survey.CategoryAccountDeletion, map[string]string{
		"reasonToLeave":  run.req.ReasonToLeave,
		"additionalInfo": run.req.AdditionalInfo,
	}); err != nil {
		s.logger.Error("Failed to record account deletion survey", zap.Error(err), zap.String("profile_id", id.String()))
	} else {
		run.report.SurveyRecorded = true
	}
	return nil
}

// ensureCredentialRemoved reports whether loginID no longer names a
// credential, removing it if profile removal left it behind.
func (s *service) ensureCredentialRemoved(ctx context.Context, loginID uuid.UUID) bool {
	_, err := s.credentials.GetUsernameByID(ctx, loginID)
	if errors.Is(err, common.ErrNotFound) {
		return true
	}
	if err != nil {
		s.logger.Error("Failed to check credential of deleted profile", zap.Error(err), zap.String("login_id", loginID.String()))
		return false
	}
	removed, err := s.credentials.Remove(ctx, loginID)
	if err != nil {
		s.logger.Error("Failed to remove credential of deleted profile", zap.Error(err), zap.String("login_id", loginID.String()))
		return false
	}
	return removed
}
