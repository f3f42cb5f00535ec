// File: internal/review/model.go
package review

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultReviewerTag is stamped on every review.
const DefaultReviewerTag = "anonymous"

type Reviewer struct {
	Name  string `gorm:"type:text;not null" json:"name"`
	Email string `gorm:"type:text;not null;default:''" json:"email,omitempty"`
	Tag   string `gorm:"type:text;not null" json:"tag"`
}

// Review is feedback attached to a freelancer profile.
type Review struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileRef  uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_profile_ref" json:"for"`
	Reviewer    Reviewer  `gorm:"embedded;embeddedPrefix:reviewer_" json:"reviewer"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Rating      int       `gorm:"not null" json:"rating"`
	Recommend   bool      `gorm:"not null" json:"recommend"`
	CreatedAt   time.Time `gorm:"not null" json:"date"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// AddReviewRequest is the body of POST /freelancer/:id/review.
type AddReviewRequest struct {
	ReviewerName string `json:"reviewerName" binding:"required,max=200"`
	Email        string `json:"email" binding:"omitempty,email"`
	Description  string `json:"description" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Recommend    *bool  `json:"recommend" binding:"required"`
}

// ReviewResponse is the public projection of a review.
type ReviewResponse struct {
	Rating       int       `json:"rating"`
	Date         time.Time `json:"date"`
	ReviewerName string    `json:"reviewerName"`
	Description  string    `json:"description"`
	Recommend    bool      `json:"recommend"`
}

// AddReviewResponse is returned by POST /freelancer/:id/review.
type AddReviewResponse struct {
	Success  bool      `json:"success"`
	ReviewID uuid.UUID `json:"reviewId"`
}

func ToReviewResponse(r *Review) ReviewResponse {
	return ReviewResponse{
		Rating:       r.Rating,
		Date:         r.CreatedAt,
		ReviewerName: r.Reviewer.Name,
		Description:  r.Description,
		Recommend:    r.Recommend,
	}
}
