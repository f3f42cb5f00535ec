package account

import (
	"context"
	"errors"
	"testing"

	"wedding_directory_backend/internal/common"
	"wedding_directory_backend/internal/credential"
	"wedding_directory_backend/internal/freelancer"
	"wedding_directory_backend/internal/survey"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mocks struct {
	profiles    *MockProfiles
	credentials *MockCredentials
	reviews     *MockReviews
	surveys     *MockSurveys
}

func newMockedService() (Service, *mocks) {
	m := &mocks{
		profiles:    new(MockProfiles),
		credentials: new(MockCredentials),
		reviews:     new(MockReviews),
		surveys:     new(MockSurveys),
	}
	return NewService(m.profiles, m.credentials, m.reviews, m.surveys, zap.NewNop()), m
}

func (m *mocks) assertExpectations(t *testing.T) {
	m.profiles.AssertExpectations(t)
	m.credentials.AssertExpectations(t)
	m.reviews.AssertExpectations(t)
	m.surveys.AssertExpectations(t)
}

func profileWithLogin(loginID uuid.UUID) *freelancer.Freelancer {
	f := &freelancer.Freelancer{ID: uuid.New(), Name: "Bob", Type: freelancer.TypePhotographer}
	if loginID != uuid.Nil {
		f.LoginID = &loginID
	}
	return f
}

var deleteReq = DeleteAccountRequest{ReasonToLeave: "Retiring", AdditionalInfo: "bye", Password: "pw1"}

func TestDeleteAccount_FullCascade(t *testing.T) {
	svc, m := newMockedService()
	loginID := uuid.New()
	p := profileWithLogin(loginID)

	m.profiles.On("GetByID", mock.Anything, p.ID).Return(p, nil)
	m.credentials.On("GetUsernameByID", mock.Anything, loginID).Return("bob", nil).Once()
	m.credentials.On("Verify", mock.Anything, "bob", "pw1").Return(&credential.Credential{BaseModel: common.BaseModel{ID: loginID}, Username: "bob"}, nil)
	m.profiles.On("Remove", mock.Anything, p.ID).Return(true, nil)
	m.credentials.On("GetUsernameByID", mock.Anything, loginID).Return("", common.ErrNotFound).Once()
	m.reviews.On("RemoveAllForProfile", mock.Anything, p.ID).Return(int64(2), nil)
	m.surveys.On("Record", mock.Anything, survey.CategoryAccountDeletion, map[string]string{
		"reasonToLeave":  "Retiring",
		"additionalInfo": "bye",
	}).Return(uuid.New(), nil)

	report, err := svc.DeleteAccount(context.Background(), p.ID, deleteReq)
	require.NoError(t, err)
	assert.Equal(t, StageDone, report.Stage)
	assert.True(t, report.ProfileDeleted)
	assert.True(t, report.CredentialRemoved)
	assert.Equal(t, int64(2), report.ReviewsDeleted)
	assert.True(t, report.SurveyRecorded)
	m.assertExpectations(t)
}

func TestDeleteAccount_ProfileNotFound(t *testing.T) {
	svc, m := newMockedService()
	id := uuid.New()
	m.profiles.On("GetByID", mock.Anything, id).Return(nil, common.ErrNotFound)

	report, err := svc.DeleteAccount(context.Background(), id, deleteReq)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, StageLoadProfile, report.Stage)
	assert.False(t, report.ProfileDeleted)
	m.assertExpectations(t)
}

func TestDeleteAccount_NoLoginIsUnauthorized(t *testing.T) {
	svc, m := newMockedService()
	p := profileWithLogin(uuid.Nil)
	m.profiles.On("GetByID", mock.Anything, p.ID).Return(p, nil)

	report, err := svc.DeleteAccount(context.Background(), p.ID, deleteReq)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, StageResolveCredential, report.Stage)
	m.profiles.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	m.assertExpectations(t)
}

func TestDeleteAccount_DanglingLoginIsUnauthorized(t *testing.T) {
	svc, m := newMockedService()
	loginID := uuid.New()
	p := profileWithLogin(loginID)
	m.profiles.On("GetByID", mock.Anything, p.ID).Return(p, nil)
	m.credentials.On("GetUsernameByID", mock.Anything, loginID).Return("", common.ErrNotFound)

	_, err := svc.DeleteAccount(context.Background(), p.ID, deleteReq)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	m.profiles.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestDeleteAccount_WrongPassword(t *testing.T) {
	svc, m := newMockedService()
	loginID := uuid.New()
	p := profileWithLogin(loginID)
	m.profiles.On("GetByID", mock.Anything, p.ID).Return(p, nil)
	m.credentials.On("GetUsernameByID", mock.Anything, loginID).Return("bob", nil)
	m.credentials.On("Verify", mock.Anything, "bob", "pw1").Return(nil, nil)

	report, err := svc.DeleteAccount(context.Background(), p.ID, deleteReq)
	assert.ErrorIs(t, err, common.ErrAuthenticationFailed)
	assert.Equal(t, StageVerifyPassword, report.Stage)
	m.profiles.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	m.reviews.AssertNotCalled(t, "RemoveAllForProfile", mock.Anything, mock.Anything)
	m.surveys.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteAccount_ProfileDeleteFailureAborts(t *testing.T) {
	svc, m := newMockedService()
	loginID := uuid.New()
	p := profileWithLogin(loginID)
	storeErr := common.StoreFailure(errors.New("connection reset"))
	m.profiles.On("GetByID", mock.Anything, p.ID).Return(p, nil)
	m.credentials.On("GetUsernameByID", mock.Anything, loginID).Return("bob", nil)
	m.credentials.On("Verify", mock.Anything, "bob", "pw1").Return(&credential.Credential{BaseModel: common.BaseModel{ID: loginID}}, nil)
	m.profiles.On("Remove", mock.Anything, p.ID).Return(false, storeErr)

	report, err := svc.DeleteAccount(context.Background(), p.ID, deleteReq)
	assert.ErrorIs(t, err, common.ErrStoreFailure)
	assert.Equal(t, StageCascadeDelete, report.Stage)
	assert.False(t, report.ProfileDeleted)
	m.reviews.AssertNotCalled(t, "RemoveAllForProfile", mock.Anything, mock.Anything)
}

func TestDeleteAccount_BestEffortStepsDoNotFail(t *testing.T) {
	svc, m := newMockedService()
	loginID := uuid.New()
	p := profileWithLogin(loginID)
	m.profiles.On("GetByID", mock.Anything, p.ID).Return(p, nil)
	m.credentials.On("GetUsernameByID", mock.Anything, loginID).Return("bob", nil)
	m.credentials.On("Verify", mock.Anything, "bob", "pw1").Return(&credential.Credential{BaseModel: common.BaseModel{ID: loginID}}, nil)
	m.profiles.On("Remove", mock.Anything, p.ID).Return(true, nil)
	// The credential survived profile removal, so the coordinator removes it.
	m.credentials.On("Remove", mock.Anything, loginID).Return(false, common.StoreFailure(errors.New("timeout")))
	m.reviews.On("RemoveAllForProfile", mock.Anything, p.ID).Return(int64(0), common.StoreFailure(errors.New("timeout")))
	m.surveys.On("Record", mock.Anything, survey.CategoryAccountDeletion, mock.Anything).Return(uuid.Nil, common.StoreFailure(errors.New("timeout")))

	report, err := svc.DeleteAccount(context.Background(), p.ID, deleteReq)
	require.NoError(t, err)
	assert.Equal(t, StageDone, report.Stage)
	assert.True(t, report.ProfileDeleted)
	assert.False(t, report.CredentialRemoved)
	assert.Zero(t, report.ReviewsDeleted)
	assert.False(t, report.SurveyRecorded)
	m.assertExpectations(t)
}

func TestLogin(t *testing.T) {
	loginID := uuid.New()
	p := profileWithLogin(loginID)

	t.Run("success", func(t *testing.T) {
		svc, m := newMockedService()
		m.credentials.On("Verify", mock.Anything, "bob", "pw1").Return(&credential.Credential{BaseModel: common.BaseModel{ID: loginID}, Username: "bob"}, nil)
		m.profiles.On("FindByLoginID", mock.Anything, loginID).Return(p, nil)

		view, err := svc.Login(context.Background(), "bob", "pw1")
		require.NoError(t, err)
		assert.Equal(t, p.ID, view.ID)
		assert.Equal(t, "Bob", view.Name)
	})

	failures := []struct {
		name  string
		setup func(m *mocks)
	}{
		{"wrong password", func(m *mocks) {
			m.credentials.On("Verify", mock.Anything, "bob", "pw1").Return(nil, nil)
		}},
		{"store failure", func(m *mocks) {
			m.credentials.On("Verify", mock.Anything, "bob", "pw1").Return(nil, common.StoreFailure(errors.New("down")))
		}},
		{"no linked profile", func(m *mocks) {
			m.credentials.On("Verify", mock.Anything, "bob", "pw1").Return(&credential.Credential{BaseModel: common.BaseModel{ID: loginID}}, nil)
			m.profiles.On("FindByLoginID", mock.Anything, loginID).Return(nil, common.ErrNotFound)
		}},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newMockedService()
			tc.setup(m)
			view, err := svc.Login(context.Background(), "bob", "pw1")
			assert.Nil(t, view)
			assert.Equal(t, common.ErrAuthenticationFailed, err)
		})
	}
}

func TestChangePassword_Delegates(t *testing.T) {
	svc, m := newMockedService()
	m.credentials.On("ChangePassword", mock.Anything, "bob", "pw1", "pw2").Return(true, nil)

	ok, err := svc.ChangePassword(context.Background(), ChangePasswordRequest{Username: "bob", CurrentPassword: "pw1", NewPassword: "pw2"})
	require.NoError(t, err)
	assert.True(t, ok)
	m.assertExpectations(t)
}

func TestDeletionStage_String(t *testing.T) {
	assert.Equal(t, "load_profile", StageLoadProfile.String())
	assert.Equal(t, "cascade_delete", StageCascadeDelete.String())
	assert.Equal(t, "done", StageDone.String())
	assert.Equal(t, "unknown", DeletionStage(42).String())
}
