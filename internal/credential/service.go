// File: internal/credential/service.go
package credential

import (
	"context"
	"errors"
	"strings"
	"time"

	"wedding_directory_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service owns the credential lifecycle: registration, verification,
// password rotation and removal.
type Service interface {
	Register(ctx context.Context, username, password string) (uuid.UUID, error)
	// Verify returns the credential (hash stripped) on a match and nil when
	// the username is unknown or the password is wrong. The two cases are
	// indistinguishable to callers.
	Verify(ctx context.Context, username, password string) (*Credential, error)
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (bool, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
	GetUsernameByID(ctx context.Context, id uuid.UUID) (string, error)
	RemoveOrphans(ctx context.Context, grace time.Duration) (int64, error)
}

type service struct {
	repo   Repository
	hasher PasswordHasher
	logger *zap.Logger
}

// NewService creates a new credential service.
func NewService(repo Repository, hasher PasswordHasher, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
		logger: logger.Named("credential_service"),
	}
}

func (s *service) hash(password string) (string, error) {
	h, err := s.hasher.Hash(password)
	if err != nil {
		if IsPasswordTooLong(err) {
			return "", common.ErrValidation.WithDetails(map[string]string{"password": "The password may not be longer than 72 bytes."})
		}
		s.logger.Error("Failed to hash password", zap.Error(err))
		return "", common.ErrInternalServer.WithCause(err)
	}
	return h, nil
}

func (s *service) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return uuid.Nil, common.ErrInvalidCredentialPair
	}

	existing, err := s.repo.FindByUsername(ctx, username, false)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return uuid.Nil, err
	}
	if existing != nil {
		s.logger.Info("Registration rejected, username taken", zap.String("username", username))
		return uuid.Nil, common.ErrDuplicateUsername
	}

	hash, err := s.hash(password)
	if err != nil {
		return uuid.Nil, err
	}

	cred := &Credential{Username: username, PasswordHash: hash}
	// The unique index catches registrations racing past the check above.
	if err := s.repo.Create(ctx, cred); err != nil {
		return uuid.Nil, err
	}
	s.logger.Info("Credential registered", zap.String("id", cred.ID.String()), zap.String("username", username))
	return cred.ID, nil
}

func (s *service) Verify(ctx context.Context, username, password string) (*Credential, error) {
	cred, err := s.repo.FindByUsername(ctx, username, true)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !s.hasher.Compare(cred.PasswordHash, password) {
		return nil, nil
	}
	cred.Sanitize()
	return cred, nil
}

func (s *service) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (bool, error) {
	cred, err := s.Verify(ctx, username, currentPassword)
	if err != nil {
		return false, err
	}
	if cred == nil {
		return false, common.ErrAuthenticationFailed
	}

	hash, err := s.hash(newPassword)
	if err != nil {
		return false, err
	}

	rows, err := s.repo.UpdatePasswordHash(ctx, cred.ID, hash)
	if err != nil {
		return false, err
	}
	if rows != 1 {
		s.logger.Warn("Password change affected an unexpected number of rows",
			zap.String("id", cred.ID.String()),
			zap.Int64("rows", rows),
		)
		return false, nil
	}
	s.logger.Info("Password changed", zap.String("id", cred.ID.String()))
	return true, nil
}

func (s *service) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		s.logger.Warn("No credential removed", zap.String("id", id.String()))
	}
	return deleted, nil
}

func (s *service) GetUsernameByID(ctx context.Context, id uuid.UUID) (string, error) {
	cred, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return cred.Username, nil
}

func (s *service) RemoveOrphans(ctx context.Context, grace time.Duration) (int64, error) {
	n, err := s.repo.DeleteOrphans(ctx, time.Now().Add(-grace))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("Removed orphaned credentials", zap.Int64("count", n))
	}
	return n, nil
}
