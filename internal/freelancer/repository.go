// File: internal/freelancer/repository.go
package freelancer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wedding_directory_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// mutableColumns are replaced by an update. login_id and created_at are never written after insert.
var mutableColumns = []string{
	"type", "specialized", "rate", "rate_unit", "name", "bio",
	"show_case", "profile_image", "social_media", "contact", "portfolios",
}

// Repository defines the data operations on the freelancers table.
type Repository interface {
	Create(ctx context.Context, f *Freelancer) error
	FindByID(ctx context.Context, id uuid.UUID) (*Freelancer, error)
	FindByLoginID(ctx context.Context, loginID uuid.UUID) (*Freelancer, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// UpdateMutable writes the mutable columns of f and returns the number of rows matched.
	UpdateMutable(ctx context.Context, f *Freelancer) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// Search applies the SQL filters of q. When ids is non-nil results are
	// further restricted to those ids.
	Search(ctx context.Context, q SearchQuery, ids []uuid.UUID) ([]Freelancer, error)
	FindInBatches(ctx context.Context, batchSize int, fn func(batch []Freelancer) error) error
}

type gormRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGORMRepository creates a new GORM freelancer repository.
func NewGORMRepository(db *gorm.DB, logger *zap.Logger) Repository {
	return &gormRepository{db: db, logger: logger.Named("freelancer_repository")}
}

func (r *gormRepository) Create(ctx context.Context, f *Freelancer) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		r.logger.Error("Failed to insert freelancer", zap.Error(err), zap.String("name", f.Name))
		return common.StoreFailure(err)
	}
	return nil
}

func (r *gormRepository) findOne(ctx context.Context, query string, arg interface{}) (*Freelancer, error) {
	var f Freelancer
	err := r.db.WithContext(ctx).Where(query, arg).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("Failed to load freelancer", zap.Error(err), zap.String("query", query), zap.Any("arg", arg))
		return nil, common.StoreFailure(err)
	}
	return &f, nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Freelancer, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *gormRepository) FindByLoginID(ctx context.Context, loginID uuid.UUID) (*Freelancer, error) {
	return r.findOne(ctx, "login_id = ?", loginID)
}

func (r *gormRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Freelancer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		r.logger.Error("Failed to check freelancer existence", zap.Error(err), zap.String("id", id.String()))
		return false, common.StoreFailure(err)
	}
	return count > 0, nil
}

func (r *gormRepository) UpdateMutable(ctx context.Context, f *Freelancer) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Freelancer{}).
		Where("id = ?", f.ID).
		Select(mutableColumns).
		Updates(f)
	if result.Error != nil {
		r.logger.Error("Failed to update freelancer", zap.Error(result.Error), zap.String("id", f.ID.String()))
		return 0, common.StoreFailure(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Freelancer{})
	if result.Error != nil {
		r.logger.Error("Failed to delete freelancer", zap.Error(result.Error), zap.String("id", id.String()))
		return false, common.StoreFailure(result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *gormRepository) Search(ctx context.Context, q SearchQuery, ids []uuid.UUID) ([]Freelancer, error) {
	query := r.db.WithContext(ctx).Model(&Freelancer{})

	if q.Type != "" {
		query = query.Where("type = ?", q.Type)
	}
	if specs := NormalizeSpecializations(q.Specialized); len(specs) > 0 {
		query = query.Where(r.specializedClause(specs))
	}
	if ids != nil {
		if len(ids) == 0 {
			return []Freelancer{}, nil
		}
		query = query.Where("id IN ?", ids)
	} else if text := strings.TrimSpace(q.Q); text != "" {
		like := "%" + strings.ToLower(text) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(bio) LIKE ? OR LOWER(CAST(portfolios AS TEXT)) LIKE ?",
			like, like, like,
		)
	}
	if q.RateUnit != "" {
		query = query.Where("rate_unit = ?", q.RateUnit)
	}
	if q.MinRate != nil {
		query = query.Where("rate >= ?", *q.MinRate)
	}
	if q.MaxRate != nil {
		query = query.Where("rate <= ?", *q.MaxRate)
	}

	var results []Freelancer
	if err := query.Order("created_at DESC").Find(&results).Error; err != nil {
		r.logger.Error("Failed to search freelancers", zap.Error(err), zap.Any("query", q))
		return nil, common.StoreFailure(err)
	}
	return results, nil
}

// specializedClause matches profiles holding any of specs.
func (r *gormRepository) specializedClause(specs []string) *gorm.DB {
	clause := r.db
	for i, s := range specs {
		var cond string
		var arg interface{}
		if r.db.Dialector.Name() == "postgres" {
			cond, arg = "? = ANY(specialized)", s
		} else {
			// Array literals are stored with every element quoted.
			cond, arg = "specialized LIKE ?", fmt.Sprintf("%%%q%%", s)
		}
		if i == 0 {
			clause = clause.Where(cond, arg)
		} else {
			clause = clause.Or(cond, arg)
		}
	}
	return clause
}

func (r *gormRepository) FindInBatches(ctx context.Context, batchSize int, fn func(batch []Freelancer) error) error {
	var batch []Freelancer
	result := r.db.WithContext(ctx).FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
		return fn(batch)
	})
	if result.Error != nil {
		r.logger.Error("Failed to iterate freelancers", zap.Error(result.Error))
		return common.StoreFailure(result.Error)
	}
	return nil
}
