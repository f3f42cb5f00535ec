// File: internal/review/service.go
package review

import (
	"context"
	"strings"

	"wedding_directory_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileChecker reports whether a profile exists.
type ProfileChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service defines the review operations.
type Service interface {
	ListForProfile(ctx context.Context, profileID uuid.UUID) ([]ReviewResponse, error)
	// AddReview rejects reviews for profiles that do not exist.
	AddReview(ctx context.Context, profileID uuid.UUID, req AddReviewRequest) (uuid.UUID, error)
	RemoveAllForProfile(ctx context.Context, profileID uuid.UUID) (int64, error)
	RemoveOrphans(ctx context.Context) (int64, error)
}

type service struct {
	repo     Repository
	profiles ProfileChecker
	logger   *zap.Logger
}

// NewService creates a new review service.
func NewService(repo Repository, profiles ProfileChecker, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		profiles: profiles,
		logger:   logger.Named("review_service"),
	}
}

func (s *service) ListForProfile(ctx context.Context, profileID uuid.UUID) ([]ReviewResponse, error) {
	reviews, err := s.repo.FindByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	out := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		out[i] = ToReviewResponse(&reviews[i])
	}
	return out, nil
}

func (s *service) AddReview(ctx context.Context, profileID uuid.UUID, req AddReviewRequest) (uuid.UUID, error) {
	exists, err := s.profiles.Exists(ctx, profileID)
	if err != nil {
		return uuid.Nil, err
	}
	if !exists {
		return uuid.Nil, common.ErrNotFound.WithDetails("Freelancer not found.")
	}

	rev := &Review{
		ProfileRef: profileID,
		Reviewer: Reviewer{
			Name:  strings.TrimSpace(req.ReviewerName),
			Email: strings.TrimSpace(req.Email),
			Tag:   DefaultReviewerTag,
		},
		Description: strings.TrimSpace(req.Description),
		Rating:      req.Rating,
		Recommend:   req.Recommend != nil && *req.Recommend,
	}
	if err := s.repo.Create(ctx, rev); err != nil {
		return uuid.Nil, err
	}
	s.logger.Info("Review added", zap.String("id", rev.ID.String()), zap.String("profile_ref", profileID.String()))
	return rev.ID, nil
}

func (s *service) RemoveAllForProfile(ctx context.Context, profileID uuid.UUID) (int64, error) {
	n, err := s.repo.DeleteByProfile(ctx, profileID)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Reviews removed", zap.String("profile_ref", profileID.String()), zap.Int64("count", n))
	return n, nil
}

func (s *service) RemoveOrphans(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteOrphans(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("Removed orphaned reviews", zap.Int64("count", n))
	}
	return n, nil
}
