// File: internal/review/repository.go
package review

import (
	"context"

	"wedding_directory_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repository defines the data operations on the reviews table.
type Repository interface {
	Create(ctx context.Context, r *Review) error
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]Review, error)
	DeleteByProfile(ctx context.Context, profileID uuid.UUID) (int64, error)
	// DeleteOrphans removes reviews whose profile no longer exists.
	DeleteOrphans(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGORMRepository creates a new GORM review repository.
func NewGORMRepository(db *gorm.DB, logger *zap.Logger) Repository {
	return &gormRepository{db: db, logger: logger.Named("review_repository")}
}

func (r *gormRepository) Create(ctx context.Context, rev *Review) error {
	if err := r.db.WithContext(ctx).Create(rev).Error; err != nil {
		r.logger.Error("Failed to insert review", zap.Error(err), zap.String("profile_ref", rev.ProfileRef.String()))
		return common.StoreFailure(err)
	}
	return nil
}

func (r *gormRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]Review, error) {
	var reviews []Review
	err := r.db.WithContext(ctx).
		Select("id", "profile_ref", "reviewer_name", "description", "rating", "recommend", "created_at").
		Where("profile_ref = ?", profileID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		r.logger.Error("Failed to list reviews", zap.Error(err), zap.String("profile_ref", profileID.String()))
		return nil, common.StoreFailure(err)
	}
	return reviews, nil
}

func (r *gormRepository) DeleteByProfile(ctx context.Context, profileID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("profile_ref = ?", profileID).Delete(&Review{})
	if result.Error != nil {
		r.logger.Error("Failed to delete reviews", zap.Error(result.Error), zap.String("profile_ref", profileID.String()))
		return 0, common.StoreFailure(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM freelancers WHERE freelancers.id = reviews.profile_ref)").
		Delete(&Review{})
	if result.Error != nil {
		r.logger.Error("Failed to delete orphaned reviews", zap.Error(result.Error))
		return 0, common.StoreFailure(result.Error)
	}
	return result.RowsAffected, nil
}
