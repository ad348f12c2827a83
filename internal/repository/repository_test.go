package repository

import (
	"context"
	"fmt"
	"testing"

	"linkfatec/internal/cache"
	"linkfatec/internal/cache/memory"
	"linkfatec/internal/config"
	"linkfatec/internal/errors"
	"linkfatec/internal/models"
	"linkfatec/internal/resource"
	"linkfatec/internal/webclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockJobOfferClient struct {
	mock.Mock
}

func (m *MockJobOfferClient) GetAllAvailableJobOffers(ctx context.Context, courseID int) webclient.ApplicationResponse[[]models.JobOffer] {
	return m.Called(ctx, courseID).Get(0).(webclient.ApplicationResponse[[]models.JobOffer])
}

func (m *MockJobOfferClient) LikeJob(ctx context.Context, jobID, studentID int, like bool) webclient.ApplicationResponse[[]byte] {
	return m.Called(ctx, jobID, studentID, like).Get(0).(webclient.ApplicationResponse[[]byte])
}

func (m *MockJobOfferClient) SubscribeJob(ctx context.Context, jobID, studentID int) webclient.ApplicationResponse[[]byte] {
	return m.Called(ctx, jobID, studentID).Get(0).(webclient.ApplicationResponse[[]byte])
}

type MockStudentClient struct {
	mock.Mock
}

func (m *MockStudentClient) GetStudent(ctx context.Context, studentID int) webclient.ApplicationResponse[models.User] {
	return m.Called(ctx, studentID).Get(0).(webclient.ApplicationResponse[models.User])
}

func (m *MockStudentClient) GetAppliedJobOffers(ctx context.Context, studentID int) webclient.ApplicationResponse[[]models.JobOffer] {
	return m.Called(ctx, studentID).Get(0).(webclient.ApplicationResponse[[]models.JobOffer])
}

func (m *MockStudentClient) GetNotifications(ctx context.Context, studentID int) webclient.ApplicationResponse[[]models.Notification] {
	return m.Called(ctx, studentID).Get(0).(webclient.ApplicationResponse[[]models.Notification])
}

type MockLoginClient struct {
	mock.Mock
}

func (m *MockLoginClient) Login(ctx context.Context, email, password string) webclient.ApplicationResponse[models.User] {
	return m.Called(ctx, email, password).Get(0).(webclient.ApplicationResponse[models.User])
}

type MockProfileClient struct {
	mock.Mock
}

func (m *MockProfileClient) SendProfileResume(ctx context.Context, studentID int, pdf []byte) webclient.ApplicationResponse[[]byte] {
	return m.Called(ctx, studentID, pdf).Get(0).(webclient.ApplicationResponse[[]byte])
}

func (m *MockProfileClient) SendProfilePicture(ctx context.Context, studentID int, picture []byte) webclient.ApplicationResponse[[]byte] {
	return m.Called(ctx, studentID, picture).Get(0).(webclient.ApplicationResponse[[]byte])
}

func ok[T any](v T) webclient.ApplicationResponse[T] {
	return webclient.ApplicationResponse[T]{Data: &v, StatusCode: 200}
}

func status[T any](code int) webclient.ApplicationResponse[T] {
	return webclient.ApplicationResponse[T]{Err: errors.FromStatus(code, fmt.Sprintf("unexpected status code: %d", code)), StatusCode: code}
}

func assertUnexpected[T any](t *testing.T, res resource.AppResource[T]) {
	t.Helper()
	assert.True(t, res.Error)
	assert.Nil(t, res.Data)
	assert.Equal(t, resource.Unexpected, res.Kind())
}

func TestJobOfferRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return the offers on success", func(t *testing.T) {
		client := new(MockJobOfferClient)
		client.On("GetAllAvailableJobOffers", mock.Anything, 3).Return(ok([]models.JobOffer{{ID: 1}, {ID: 2}}))

		res := newJobOfferRepository(client, zap.NewNop()).GetAllAvailableJobOffers(ctx, 3)
		assert.False(t, res.Error)
		assert.Nil(t, res.ErrorKind)
		assert.Len(t, res.Payload(), 2)
		client.AssertExpectations(t)
	})

	t.Run("Should map a failed status to Unexpected and log it", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		client := new(MockJobOfferClient)
		client.On("GetAllAvailableJobOffers", mock.Anything, 3).Return(status[[]models.JobOffer](500))

		res := newJobOfferRepository(client, zap.New(core)).GetAllAvailableJobOffers(ctx, 3)
		assertUnexpected(t, res)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, int64(500), logs.All()[0].ContextMap()["status_code"])
	})

	t.Run("Should report like and subscribe without payload", func(t *testing.T) {
		client := new(MockJobOfferClient)
		client.On("LikeJob", mock.Anything, 12, 7, true).Return(ok([]byte{}))
		client.On("SubscribeJob", mock.Anything, 12, 7).Return(status[[]byte](409))
		repo := newJobOfferRepository(client, zap.NewNop())

		liked := repo.LikeJob(ctx, 12, 7, true)
		assert.False(t, liked.Error)
		assert.Nil(t, liked.Data)

		assertUnexpected(t, repo.SubscribeJob(ctx, 12, 7))
	})

	t.Run("Should convert a panic into Unexpected", func(t *testing.T) {
		client := new(MockJobOfferClient)
		client.On("LikeJob", mock.Anything, 12, 7, false).Panic("nil map write")

		var res resource.AppResource[any]
		require.NotPanics(t, func() {
			res = newJobOfferRepository(client, zap.NewNop()).LikeJob(ctx, 12, 7, false)
		})
		assertUnexpected(t, res)
	})
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	client := new(MockProfileClient)
	client.On("SendProfileResume", mock.Anything, 7, []byte("%PDF")).Return(ok([]byte{}))
	client.On("SendProfilePicture", mock.Anything, 7, []byte(nil)).Return(webclient.ApplicationResponse[[]byte]{
		Err: errors.Transport("executing request", fmt.Errorf("no route to host")),
	})
	repo := &profileRepository{client: client, logger: zap.NewNop()}

	sent := repo.SendProfileResume(ctx, 7, []byte("%PDF"))
	assert.False(t, sent.Error)

	assertUnexpected(t, repo.SendProfilePicture(ctx, 7, nil))
	client.AssertExpectations(t)
}

func TestStudentRepository(t *testing.T) {
	ctx := context.Background()
	client := new(MockStudentClient)
	client.On("GetAppliedJobOffers", mock.Anything, 7).Return(ok([]models.JobOffer{{ID: 5}}))
	client.On("GetNotifications", mock.Anything, 7).Return(status[[]models.Notification](404))
	repo := &studentRepository{client: client, logger: zap.NewNop()}

	applied := repo.GetAppliedJobOffers(ctx, 7)
	require.False(t, applied.Error)
	assert.Equal(t, 5, applied.Payload()[0].ID)

	assertUnexpected(t, repo.GetNotifications(ctx, 7))
}

func newTestUsers(client studentClient) (*userRepository, cache.Cache) {
	store := memory.New(cache.Options{})
	return newUserRepository(store, client, &config.Config{}, zap.NewNop()), store
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	ana := models.User{ID: 7, Name: "Ana", Course: models.Course{ID: 3, Name: "ADS"}}

	t.Run("Should report a missing session", func(t *testing.T) {
		users, _ := newTestUsers(new(MockStudentClient))
		_, err := users.GetUser(ctx)
		assert.True(t, errors.Is(err, errors.ErrNoUser))
	})

	t.Run("Should save, read and delete the session", func(t *testing.T) {
		users, _ := newTestUsers(new(MockStudentClient))
		require.NoError(t, users.SaveUser(ctx, ana))

		got, err := users.GetUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, ana, got)

		require.NoError(t, users.DeleteUser(ctx, ana))
		_, err = users.GetUser(ctx)
		assert.True(t, errors.Is(err, errors.ErrNoUser))
	})

	t.Run("Should refresh the stored user", func(t *testing.T) {
		client := new(MockStudentClient)
		renamed := ana
		renamed.Name = "Ana Clara"
		client.On("GetStudent", mock.Anything, 7).Return(ok(renamed))
		users, _ := newTestUsers(client)
		require.NoError(t, users.SaveUser(ctx, ana))

		res := users.GetUpdatedUserInformation(ctx)
		require.False(t, res.Error)
		assert.Equal(t, "Ana Clara", res.Payload().Name)

		stored, err := users.GetUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Ana Clara", stored.Name)
	})

	t.Run("Should fail the refresh without a session", func(t *testing.T) {
		client := new(MockStudentClient)
		users, _ := newTestUsers(client)

		assertUnexpected(t, users.GetUpdatedUserInformation(ctx))
		client.AssertNotCalled(t, "GetStudent", mock.Anything, mock.Anything)
	})
}

func TestLoginRepository(t *testing.T) {
	ctx := context.Background()
	ana := models.User{ID: 7, Name: "Ana"}

	t.Run("Should store the user after a successful login", func(t *testing.T) {
		client := new(MockLoginClient)
		client.On("Login", mock.Anything, "ana@fatec.sp.gov.br", "secret").Return(ok(ana))
		users, _ := newTestUsers(new(MockStudentClient))
		repo := newLoginRepository(client, users, zap.NewNop())

		assert.Equal(t, models.LoggedOut, repo.GetLoginState(ctx).Status)

		state := repo.Login(ctx, "ana@fatec.sp.gov.br", "secret")
		require.Equal(t, models.LoggedIn, state.Status)
		assert.Equal(t, 7, state.User.ID)

		again := repo.GetLoginState(ctx)
		require.Equal(t, models.LoggedIn, again.Status)
		assert.Equal(t, ana, *again.User)
	})

	t.Run("Should distinguish refused credentials from failures", func(t *testing.T) {
		client := new(MockLoginClient)
		client.On("Login", mock.Anything, "ana@fatec.sp.gov.br", "wrong").Return(status[models.User](401))
		client.On("Login", mock.Anything, "ana@fatec.sp.gov.br", "secret").Return(status[models.User](500))
		users, _ := newTestUsers(new(MockStudentClient))
		repo := newLoginRepository(client, users, zap.NewNop())

		assert.Equal(t, models.InvalidCredentials, repo.Login(ctx, "ana@fatec.sp.gov.br", "wrong").Status)
		assert.Equal(t, models.LoginError, repo.Login(ctx, "ana@fatec.sp.gov.br", "secret").Status)
		assert.Equal(t, models.LoggedOut, repo.GetLoginState(ctx).Status)
	})
}
