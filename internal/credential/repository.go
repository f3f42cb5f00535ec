// File: internal/credential/repository.go
package credential

import (
	"context"
	"errors"
	"time"

	"wedding_directory_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repository defines the data operations on the logins table.
type Repository interface {
	Create(ctx context.Context, cred *Credential) error
	// FindByUsername loads the hash only when includeHash is set.
	FindByUsername(ctx context.Context, username string, includeHash bool) (*Credential, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Credential, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// DeleteOrphans removes credentials created before olderThan that no
	// freelancer profile references.
	DeleteOrphans(ctx context.Context, olderThan time.Time) (int64, error)
}

type gormRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGORMRepository creates a new GORM credential repository.
func NewGORMRepository(db *gorm.DB, logger *zap.Logger) Repository {
	return &gormRepository{db: db, logger: logger.Named("credential_repository")}
}

func (r *gormRepository) Create(ctx context.Context, cred *Credential) error {
	err := r.db.WithContext(ctx).Create(cred).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.ErrDuplicateUsername
		}
		r.logger.Error("Failed to insert credential", zap.Error(err), zap.String("username", cred.Username))
		return common.StoreFailure(err)
	}
	return nil
}

func (r *gormRepository) FindByUsername(ctx context.Context, username string, includeHash bool) (*Credential, error) {
	var cred Credential
	columns := []string{"id", "username", "created_at", "updated_at"}
	if includeHash {
		columns = append(columns, "password_hash")
	}
	err := r.db.WithContext(ctx).Select(columns).Where("username = ?", username).First(&cred).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("Failed to look up credential by username", zap.Error(err))
		return nil, common.StoreFailure(err)
	}
	return &cred, nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Credential, error) {
	var cred Credential
	err := r.db.WithContext(ctx).Select("id", "username", "created_at", "updated_at").First(&cred, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("Failed to look up credential by id", zap.Error(err), zap.String("id", id.String()))
		return nil, common.StoreFailure(err)
	}
	return &cred, nil
}

func (r *gormRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Credential{}).Where("id = ?", id).Update("password_hash", hash)
	if result.Error != nil {
		r.logger.Error("Failed to update password hash", zap.Error(result.Error), zap.String("id", id.String()))
		return 0, common.StoreFailure(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Credential{})
	if result.Error != nil {
		r.logger.Error("Failed to delete credential", zap.Error(result.Error), zap.String("id", id.String()))
		return false, common.StoreFailure(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormRepository) DeleteOrphans(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", olderThan).
		Where("NOT EXISTS (SELECT 1 FROM freelancers WHERE freelancers.login_id = logins.id)").
		Delete(&Credential{})
	if result.Error != nil {
		r.logger.Error("Failed to delete orphaned credentials", zap.Error(result.Error))
		return 0, common.StoreFailure(result.Error)
	}
	return result.RowsAffected, nil
}
