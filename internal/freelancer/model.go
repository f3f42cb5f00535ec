// File: internal/freelancer/model.go
package freelancer

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Specializations is stored as a Postgres text[]; other dialects keep the
// same array literal in a text column.
type Specializations []string

func (s Specializations) Value() (driver.Value, error) {
	return pq.StringArray(s).Value()
}

func (s *Specializations) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*s = Specializations(arr)
	return nil
}

func (Specializations) GormDataType() string {
	return "text"
}

func (Specializations) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// SocialMedia links; at least one must be present.
type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty" binding:"omitempty,url"`
	Instagram string `json:"instagram,omitempty" binding:"omitempty,url"`
	TikTok    string `json:"tiktok,omitempty" binding:"omitempty,url"`
}

// Count returns how many links are set.
func (s SocialMedia) Count() int {
	n := 0
	for _, link := range []string{s.Facebook, s.Instagram, s.TikTok} {
		if link != "" {
			n++
		}
	}
	return n
}

type Contact struct {
	Email   string `json:"email" binding:"required,email"`
	Mobile  string `json:"mobile,omitempty"`
	Website string `json:"website,omitempty" binding:"omitempty,url"`
}

type Portfolio struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Complete reports whether every field is populated.
func (p Portfolio) Complete() bool {
	return p.Title != "" && p.Description != "" && p.URL != ""
}

// Freelancer is a public profile listing. LoginID is a weak reference to a
// credential and is never exposed.
type Freelancer struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Type         string          `gorm:"type:text;not null;index:idx_freelancers_type" json:"type"`
	Specialized  Specializations `gorm:"not null" json:"specialized"`
	Rate         int             `gorm:"not null" json:"rate"`
	RateUnit     string          `gorm:"type:text;not null" json:"rateUnit"`
	Name         string          `gorm:"type:text;not null" json:"name"`
	Bio          string          `gorm:"type:text;not null" json:"bio"`
	ShowCase     string          `gorm:"type:text;not null" json:"showCase"`
	ProfileImage string          `gorm:"type:text;not null" json:"profileImage"`
	SocialMedia  SocialMedia     `gorm:"serializer:json;type:text;not null" json:"socialMedia"`
	Contact      Contact         `gorm:"serializer:json;type:text;not null" json:"contact"`
	Portfolios   []Portfolio     `gorm:"serializer:json;type:text;not null" json:"portfolios"`
	LoginID      *uuid.UUID      `gorm:"type:uuid;index:idx_freelancers_login_id" json:"-"`
	CreatedAt    time.Time       `gorm:"not null" json:"createdAt"`
}

// BeforeCreate assigns an ID and stamps creation time server-side.
func (f *Freelancer) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	f.CreatedAt = time.Now()
	return nil
}

// HasLogin reports whether the profile references a credential.
func (f *Freelancer) HasLogin() bool {
	return f.LoginID != nil && *f.LoginID != uuid.Nil
}

// ProfileFields holds everything a client may set on a profile.
type ProfileFields struct {
	Type         string          `json:"type" binding:"required,freelancertype"`
	Specialized  []string        `json:"specialized" binding:"required,min=1,dive,specialization"`
	Rate         int             `json:"rate" binding:"required,gt=0"`
	RateUnit     string          `json:"rateUnit" binding:"required,rateunit"`
	Name         string          `json:"name" binding:"required,max=200"`
	Bio          string          `json:"bio" binding:"required"`
	ShowCase     string          `json:"showCase" binding:"required,url"`
	ProfileImage string          `json:"profileImage" binding:"omitempty,url"`
	SocialMedia  SocialMedia     `json:"socialMedia"`
	Contact      Contact         `json:"contact"`
	Portfolios   []Portfolio     `json:"portfolios" binding:"required,min=1,dive"`
}

// CreateFreelancerRequest may carry a username/password pair to provision a login.
type CreateFreelancerRequest struct {
	ProfileFields
	Username string `json:"username" binding:"omitempty,max=64"`
	Password string `json:"password" binding:"omitempty,max=72"`
}

// UpdateFreelancerRequest replaces the mutable fields. Anything else in the
// payload, such as login or createdAt, is ignored by binding.
type UpdateFreelancerRequest struct {
	ProfileFields
}

// CreateFreelancerResponse is returned by POST /freelancer.
type CreateFreelancerResponse struct {
	Success      bool      `json:"success"`
	FreelancerID uuid.UUID `json:"freelancerId"`
}

// UpdateFreelancerResponse is returned by PUT /freelancer/:id.
type UpdateFreelancerResponse struct {
	Success  bool   `json:"success"`
	Modified bool   `json:"modified"`
	Message  string `json:"message"`
}

// SearchQuery filters GET /freelancer.
type SearchQuery struct {
	Type        string   `form:"type" binding:"omitempty,freelancertype"`
	Specialized []string `form:"specialized"`
	Q           string   `form:"q"`
	MinRate     *int     `form:"minRate" binding:"omitempty,gte=0"`
	MaxRate     *int     `form:"maxRate" binding:"omitempty,gte=0"`
	RateUnit    string   `form:"rateUnit" binding:"omitempty,rateunit"`
}

// HasRateBounds reports whether a rate range was requested.
func (q SearchQuery) HasRateBounds() bool {
	return q.MinRate != nil || q.MaxRate != nil
}
