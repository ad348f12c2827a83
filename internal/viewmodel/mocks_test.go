package viewmodel_test

import (
	"context"

	"linkfatec/internal/models"
	"linkfatec/internal/resource"

	"github.com/stretchr/testify/mock"
)

type MockJobOfferRepo struct {
	mock.Mock
}

func (m *MockJobOfferRepo) GetAllAvailableJobOffers(ctx context.Context, courseID int) resource.AppResource[[]models.JobOffer] {
	return m.Called(ctx, courseID).Get(0).(resource.AppResource[[]models.JobOffer])
}

func (m *MockJobOfferRepo) LikeJob(ctx context.Context, jobID, studentID int, like bool) resource.AppResource[any] {
	return m.Called(ctx, jobID, studentID, like).Get(0).(resource.AppResource[any])
}

func (m *MockJobOfferRepo) SubscribeJob(ctx context.Context, jobID, studentID int) resource.AppResource[any] {
	return m.Called(ctx, jobID, studentID).Get(0).(resource.AppResource[any])
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetUser(ctx context.Context) (models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepo) SaveUser(ctx context.Context, user models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetUpdatedUserInformation(ctx context.Context) resource.AppResource[models.User] {
	return m.Called(ctx).Get(0).(resource.AppResource[models.User])
}

func (m *MockUserRepo) DeleteUser(ctx context.Context, user models.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) SendProfileResume(ctx context.Context, studentID int, pdf []byte) resource.AppResource[any] {
	return m.Called(ctx, studentID, pdf).Get(0).(resource.AppResource[any])
}

func (m *MockProfileRepo) SendProfilePicture(ctx context.Context, studentID int, picture []byte) resource.AppResource[any] {
	return m.Called(ctx, studentID, picture).Get(0).(resource.AppResource[any])
}

type MockAppliedRepo struct {
	mock.Mock
}

func (m *MockAppliedRepo) GetAppliedJobOffers(ctx context.Context, studentID int) resource.AppResource[[]models.JobOffer] {
	return m.Called(ctx, studentID).Get(0).(resource.AppResource[[]models.JobOffer])
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) GetNotifications(ctx context.Context, studentID int) resource.AppResource[[]models.Notification] {
	return m.Called(ctx, studentID).Get(0).(resource.AppResource[[]models.Notification])
}

type MockLoginRepo struct {
	mock.Mock
}

func (m *MockLoginRepo) Login(ctx context.Context, email, password string) models.LoginState {
	return m.Called(ctx, email, password).Get(0).(models.LoginState)
}

func (m *MockLoginRepo) GetLoginState(ctx context.Context) models.LoginState {
	return m.Called(ctx).Get(0).(models.LoginState)
}
