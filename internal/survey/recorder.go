package survey

import (
	"context"

	"wedding_directory_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Recorder appends survey entries. Entries are never updated or deleted.
type Recorder interface {
	Record(ctx context.Context, category string, response map[string]string) (uuid.UUID, error)
}

type gormRecorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGORMRecorder creates a new GORM survey recorder.
func NewGORMRecorder(db *gorm.DB, logger *zap.Logger) Recorder {
	return &gormRecorder{db: db, logger: logger.Named("survey_recorder")}
}

func (r *gormRecorder) Record(ctx context.Context, category string, response map[string]string) (uuid.UUID, error) {
	if response == nil {
		response = map[string]string{}
	}
	entry := &Survey{Category: category, Response: response}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		r.logger.Error("Failed to record survey", zap.Error(err), zap.String("category", category))
		return uuid.Nil, common.StoreFailure(err)
	}
	return entry.ID, nil
}
