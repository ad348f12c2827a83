package repository

import (
	"context"

	"linkfatec/internal/errors"
	"linkfatec/internal/models"
	"linkfatec/internal/webclient"

	"go.uber.org/zap"
)

type LoginRepository interface {
	Login(ctx context.Context, email, password string) models.LoginState
	GetLoginState(ctx context.Context) models.LoginState
}

type loginClient interface {
	Login(ctx context.Context, email, password string) webclient.ApplicationResponse[models.User]
}

type loginRepository struct {
	client loginClient
	users  UserRepository
	logger *zap.Logger
}

func NewLoginRepository(client *webclient.LoginWebClient, users UserRepository, logger *zap.Logger) LoginRepository {
	return newLoginRepository(client, users, logger)
}

func newLoginRepository(client loginClient, users UserRepository, logger *zap.Logger) *loginRepository {
	return &loginRepository{client: client, users: users, logger: logger}
}

func (r *loginRepository) Login(ctx context.Context, email, password string) (state models.LoginState) {
	ctx, span := tracer.Start(ctx, "LoginRepository.Login")
	defer span.End()

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("login panicked", zap.Error(errors.FromPanic(rec)))
			state = models.LoginState{Status: models.LoginError}
		}
	}()

	resp := r.client.Login(ctx, email, password)
	if !resp.Succeeded() || resp.Data == nil {
		if errors.TypeOf(resp.Err) == errors.ErrTypeUnauthorized {
			r.logger.Info("login refused", zap.String("email", email), zap.Int("status_code", resp.StatusCode))
			return models.LoginState{Status: models.InvalidCredentials}
		}
		r.logger.Error("login failed", zap.String("email", email), zap.Error(resp.Err))
		return models.LoginState{Status: models.LoginError}
	}

	user := *resp.Data
	if err := r.users.SaveUser(ctx, user); err != nil {
		r.logger.Error("failed to persist session", zap.Error(err))
		return models.LoginState{Status: models.LoginError}
	}
	return models.LoginState{Status: models.LoggedIn, User: &user}
}

func (r *loginRepository) GetLoginState(ctx context.Context) models.LoginState {
	user, err := r.users.GetUser(ctx)
	if errors.Is(err, errors.ErrNoUser) {
		return models.LoginState{Status: models.LoggedOut}
	}
	if err != nil {
		r.logger.Error("failed to read session", zap.Error(err))
		return models.LoginState{Status: models.LoginError}
	}
	return models.LoginState{Status: models.LoggedIn, User: &user}
}
