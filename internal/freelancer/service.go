// File: internal/freelancer/service.go
package freelancer

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"wedding_directory_backend/internal/common"
	"wedding_directory_backend/internal/config"
	"wedding_directory_backend/internal/credential"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the profile operations. Remove cleans up the linked
// credential but leaves reviews alone; cascading further is the account
// coordinator's job.
type Service interface {
	Create(ctx context.Context, req CreateFreelancerRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateFreelancerRequest) (matched bool, modified bool, err error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
	Search(ctx context.Context, q SearchQuery) ([]Freelancer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Freelancer, error)
	FindByLoginID(ctx context.Context, loginID uuid.UUID) (*Freelancer, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type service struct {
	repo        Repository
	credentials credential.Service
	index       SearchIndex
	cfg         *config.Config
	logger      *zap.Logger
}

// NewService creates a new freelancer service.
func NewService(repo Repository, credentials credential.Service, index SearchIndex, cfg *config.Config, logger *zap.Logger) Service {
	return &service{
		repo:        repo,
		credentials: credentials,
		index:       index,
		cfg:         cfg,
		logger:      logger.Named("freelancer_service"),
	}
}

// portfolioURLs checks the URL of complete portfolio entries. Incomplete
// entries are dropped before their URL is looked at.
var portfolioURLs = validator.New()

// normalize applies the profile rules binding tags cannot express and copies
// the result onto f.
func (s *service) normalize(fields ProfileFields, f *Freelancer) error {
	details := map[string]string{}

	specs := NormalizeSpecializations(fields.Specialized)
	if !IsValidSpecializations(specs) {
		details["Specialized"] = "Between 1 and 6 known specializations are required."
	}
	if !IsValidType(fields.Type) {
		details["Type"] = "The type field must be a known freelancer type."
	}
	if !IsValidRateUnit(fields.RateUnit) {
		details["RateUnit"] = "The rateunit field must be a known rate unit."
	}
	if fields.Rate <= 0 {
		details["Rate"] = "The rate field must be greater than 0."
	}
	if fields.SocialMedia.Count() == 0 {
		details["SocialMedia"] = "At least one social media link is required."
	}

	submitted := fields.Portfolios
	if len(submitted) > MaxPortfolios {
		details["Portfolios"] = "At most 3 portfolios may be submitted."
	}
	portfolios := make([]Portfolio, 0, len(submitted))
	for _, p := range submitted {
		p.Title = strings.TrimSpace(p.Title)
		p.Description = strings.TrimSpace(p.Description)
		p.URL = strings.TrimSpace(p.URL)
		if !p.Complete() {
			continue
		}
		if err := portfolioURLs.Var(p.URL, "url"); err != nil {
			details["Portfolios"] = "Portfolio URLs must be valid URLs."
			continue
		}
		portfolios = append(portfolios, p)
	}
	if len(portfolios) == 0 && details["Portfolios"] == "" {
		details["Portfolios"] = "At least one fully populated portfolio is required."
	}

	if len(details) > 0 {
		return common.NewValidationAPIError(details)
	}

	profileImage := strings.TrimSpace(fields.ProfileImage)
	if profileImage == "" {
		profileImage = s.cfg.DefaultProfileImageURL
	}

	f.Type = fields.Type
	f.Specialized = Specializations(specs)
	f.Rate = fields.Rate
	f.RateUnit = fields.RateUnit
	f.Name = strings.TrimSpace(fields.Name)
	f.Bio = strings.TrimSpace(fields.Bio)
	f.ShowCase = strings.TrimSpace(fields.ShowCase)
	f.ProfileImage = profileImage
	f.SocialMedia = fields.SocialMedia
	f.Contact = fields.Contact
	f.Portfolios = portfolios
	return nil
}

func (s *service) Create(ctx context.Context, req CreateFreelancerRequest) (uuid.UUID, error) {
	hasUsername := strings.TrimSpace(req.Username) != ""
	hasPassword := req.Password != ""
	if hasUsername != hasPassword {
		return uuid.Nil, common.ErrInvalidCredentialPair
	}

	f := &Freelancer{}
	if err := s.normalize(req.ProfileFields, f); err != nil {
		return uuid.Nil, err
	}

	if hasUsername {
		loginID, err := s.credentials.Register(ctx, req.Username, req.Password)
		if err != nil {
			s.logger.Info("Profile creation stopped, credential registration failed", zap.Error(err))
			return uuid.Nil, err
		}
		f.LoginID = &loginID
	}

	if err := s.repo.Create(ctx, f); err != nil {
		if f.HasLogin() {
			// Roll back the login so the username can be reused.
			if _, rmErr := s.credentials.Remove(ctx, *f.LoginID); rmErr != nil {
				s.logger.Error("Failed to remove credential after profile insert failure",
					zap.Error(rmErr),
					zap.String("login_id", f.LoginID.String()),
				)
			}
		}
		return uuid.Nil, err
	}

	s.reindex(ctx, f)
	s.logger.Info("Freelancer created",
		zap.String("id", f.ID.String()),
		zap.Bool("with_login", f.HasLogin()),
	)
	return f.ID, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateFreelancerRequest) (bool, bool, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, false, nil
		}
		return false, false, err
	}

	updated := *existing
	if err := s.normalize(req.ProfileFields, &updated); err != nil {
		return true, false, err
	}
	// Never taken from the request.
	updated.ID = existing.ID
	updated.LoginID = existing.LoginID
	updated.CreatedAt = existing.CreatedAt

	if reflect.DeepEqual(*existing, updated) {
		return true, false, nil
	}

	rows, err := s.repo.UpdateMutable(ctx, &updated)
	if err != nil {
		return true, false, err
	}
	if rows == 0 {
		// Deleted between read and write.
		return false, false, nil
	}

	s.reindex(ctx, &updated)
	s.logger.Info("Freelancer updated", zap.String("id", id.String()))
	return true, true, nil
}

// Remove deletes the profile and then its credential. The profile goes first
// so that no profile is ever left pointing at a missing credential.
func (s *service) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}

	if f.HasLogin() {
		removed, err := s.credentials.Remove(ctx, *f.LoginID)
		switch {
		case err != nil:
			s.logger.Error("Failed to remove credential of deleted freelancer",
				zap.Error(err),
				zap.String("id", id.String()),
				zap.String("login_id", f.LoginID.String()),
			)
		case !removed:
			s.logger.Warn("Deleted freelancer referenced no existing credential",
				zap.String("id", id.String()),
				zap.String("login_id", f.LoginID.String()),
			)
		}
	}

	if s.index.Enabled() {
		if err := s.index.Delete(ctx, id); err != nil {
			s.logger.Warn("Failed to remove freelancer from search index", zap.Error(err), zap.String("id", id.String()))
		}
	}
	s.logger.Info("Freelancer removed", zap.String("id", id.String()))
	return true, nil
}

func (s *service) Search(ctx context.Context, q SearchQuery) ([]Freelancer, error) {
	if q.HasRateBounds() && q.RateUnit == "" {
		return nil, common.NewValidationAPIError(map[string]string{
			"RateUnit": "The rateunit field is required when filtering by rate.",
		})
	}
	if q.MinRate != nil && q.MaxRate != nil && *q.MinRate > *q.MaxRate {
		return nil, common.NewValidationAPIError(map[string]string{
			"MinRate": "The minrate field may not be greater than maxrate.",
		})
	}

	var ids []uuid.UUID
	if text := strings.TrimSpace(q.Q); text != "" && s.index.Enabled() {
		found, err := s.index.Search(ctx, text)
		if err != nil {
			s.logger.Warn("Search index unavailable, falling back to database", zap.Error(err))
		} else {
			ids = found
			if ids == nil {
				ids = []uuid.UUID{}
			}
		}
	}

	return s.repo.Search(ctx, q, ids)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Freelancer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByLoginID(ctx context.Context, loginID uuid.UUID) (*Freelancer, error) {
	return s.repo.FindByLoginID(ctx, loginID)
}

func (s *service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *service) reindex(ctx context.Context, f *Freelancer) {
	if !s.index.Enabled() {
		return
	}
	if err := s.index.Index(ctx, f); err != nil {
		s.logger.Warn("Failed to index freelancer", zap.Error(err), zap.String("id", f.ID.String()))
	}
}
