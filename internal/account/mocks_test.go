package account

import (
	"context"
	"time"

	"wedding_directory_backend/internal/credential"
	"wedding_directory_backend/internal/freelancer"
	"wedding_directory_backend/internal/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProfiles is a mock type for the freelancer.Service type
type MockProfiles struct {
	mock.Mock
}

func (m *MockProfiles) Create(ctx context.Context, req freelancer.CreateFreelancerRequest) (uuid.UUID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockProfiles) Update(ctx context.Context, id uuid.UUID, req freelancer.UpdateFreelancerRequest) (bool, bool, error) {
	args := m.Called(ctx, id, req)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *MockProfiles) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfiles) Search(ctx context.Context, q freelancer.SearchQuery) ([]freelancer.Freelancer, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]freelancer.Freelancer), args.Error(1)
}

func (m *MockProfiles) GetByID(ctx context.Context, id uuid.UUID) (*freelancer.Freelancer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*freelancer.Freelancer), args.Error(1)
}

func (m *MockProfiles) FindByLoginID(ctx context.Context, loginID uuid.UUID) (*freelancer.Freelancer, error) {
	args := m.Called(ctx, loginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*freelancer.Freelancer), args.Error(1)
}

func (m *MockProfiles) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockCredentials is a mock type for the credential.Service type
type MockCredentials struct {
	mock.Mock
}

func (m *MockCredentials) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCredentials) Verify(ctx context.Context, username, password string) (*credential.Credential, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credential.Credential), args.Error(1)
}

func (m *MockCredentials) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (bool, error) {
	args := m.Called(ctx, username, currentPassword, newPassword)
	return args.Bool(0), args.Error(1)
}

func (m *MockCredentials) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCredentials) GetUsernameByID(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockCredentials) RemoveOrphans(ctx context.Context, grace time.Duration) (int64, error) {
	args := m.Called(ctx, grace)
	return args.Get(0).(int64), args.Error(1)
}

// MockReviews is a mock type for the review.Service type
type MockReviews struct {
	mock.Mock
}

func (m *MockReviews) ListForProfile(ctx context.Context, profileID uuid.UUID) ([]review.ReviewResponse, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]review.ReviewResponse), args.Error(1)
}

func (m *MockReviews) AddReview(ctx context.Context, profileID uuid.UUID, req review.AddReviewRequest) (uuid.UUID, error) {
	args := m.Called(ctx, profileID, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockReviews) RemoveAllForProfile(ctx context.Context, profileID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviews) RemoveOrphans(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSurveys is a mock type for the survey.Recorder type
type MockSurveys struct {
	mock.Mock
}

func (m *MockSurveys) Record(ctx context.Context, category string, response map[string]string) (uuid.UUID, error) {
	args := m.Called(ctx, category, response)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
