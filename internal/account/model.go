// File: internal/account/model.go
package account

import (
	"wedding_directory_backend/internal/freelancer"

	"github.com/google/uuid"
)

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest is the body of PUT /change-password.
type ChangePasswordRequest struct {
	Username        string `json:"username" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,max=72"`
}

// DeleteAccountRequest is the body of DELETE /freelancer/:id.
type DeleteAccountRequest struct {
	ReasonToLeave  string `json:"reasonToLeave" binding:"required"`
	AdditionalInfo string `json:"additionalInfo"`
	Password       string `json:"password" binding:"required"`
}

// ProfileView is the profile returned on login. It carries neither the
// login reference nor the creation date.
type ProfileView struct {
	ID           uuid.UUID              `json:"id"`
	Type         string                 `json:"type"`
	Specialized  []string               `json:"specialized"`
	Rate         int                    `json:"rate"`
	RateUnit     string                 `json:"rateUnit"`
	Name         string                 `json:"name"`
	Bio          string                 `json:"bio"`
	ShowCase     string                 `json:"showCase"`
	ProfileImage string                 `json:"profileImage"`
	SocialMedia  freelancer.SocialMedia `json:"socialMedia"`
	Contact      freelancer.Contact     `json:"contact"`
	Portfolios   []freelancer.Portfolio `json:"portfolios"`
}

// ToProfileView converts a Freelancer model to a ProfileView.
func ToProfileView(f *freelancer.Freelancer) ProfileView {
	return ProfileView{
		ID:           f.ID,
		Type:         f.Type,
		Specialized:  []string(f.Specialized),
		Rate:         f.Rate,
		RateUnit:     f.RateUnit,
		Name:         f.Name,
		Bio:          f.Bio,
		ShowCase:     f.ShowCase,
		ProfileImage: f.ProfileImage,
		SocialMedia:  f.SocialMedia,
		Contact:      f.Contact,
		Portfolios:   f.Portfolios,
	}
}

// DeletionStage is a step of the account deletion saga.
type DeletionStage int

const (
	StageLoadProfile DeletionStage = iota
	StageResolveCredential
	StageVerifyPassword
	StageCascadeDelete
	StageDone
)

func (s DeletionStage) String() string {
	switch s {
	case StageLoadProfile:
		return "load_profile"
	case StageResolveCredential:
		return "resolve_credential"
	case StageVerifyPassword:
		return "verify_password"
	case StageCascadeDelete:
		return "cascade_delete"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// DeletionReport describes what a DeleteAccount run achieved. Stage is the
// last stage entered; a run that failed stops at the failing stage.
type DeletionReport struct {
	ProfileID         uuid.UUID     `json:"profileId"`
	Stage             DeletionStage `json:"-"`
	ProfileDeleted    bool          `json:"profileDeleted"`
	CredentialRemoved bool          `json:"credentialRemoved"`
	ReviewsDeleted    int64         `json:"reviewsDeleted"`
	SurveyRecorded    bool          `json:"surveyRecorded"`
}

// DeleteAccountResponse is returned by DELETE /freelancer/:id.
type DeleteAccountResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Report  DeletionReport `json:"report"`
}
