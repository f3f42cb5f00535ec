package survey

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category values.
const (
	CategoryAccountDeletion = "account-deletion"
)

// Survey is an append-only feedback record.
type Survey struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Category  string            `gorm:"type:text;not null;index:idx_surveys_category" json:"category"`
	Response  map[string]string `gorm:"serializer:json;type:text;not null" json:"response"`
	CreatedAt time.Time         `gorm:"not null" json:"date"`
}

// TableName specifies the table name for GORM.
func (Survey) TableName() string {
	return "surveys"
}

func (s *Survey) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	return nil
}
