package repository

import (
	"context"
	stderrors "errors"

	"linkfatec/internal/cache"
	"linkfatec/internal/config"
	"linkfatec/internal/errors"
	"linkfatec/internal/models"
	"linkfatec/internal/resource"
	"linkfatec/internal/webclient"

	"go.uber.org/zap"
)

const userKey = "linkfatec:session:user"

// UserRepository keeps the logged-in student in the local session store.
type UserRepository interface {
	GetUser(ctx context.Context) (models.User, error)
	SaveUser(ctx context.Context, user models.User) error
	// GetUpdatedUserInformation refreshes the stored user from the backend.
	GetUpdatedUserInformation(ctx context.Context) resource.AppResource[models.User]
	DeleteUser(ctx context.Context, user models.User) error
}

type userRepository struct {
	store  cache.Cache
	client studentClient
	config *config.Config
	logger *zap.Logger
}

func NewUserRepository(store cache.Cache, client *webclient.StudentWebClient, cfg *config.Config, logger *zap.Logger) UserRepository {
	return newUserRepository(store, client, cfg, logger)
}

func newUserRepository(store cache.Cache, client studentClient, cfg *config.Config, logger *zap.Logger) *userRepository {
	return &userRepository{store: store, client: client, config: cfg, logger: logger}
}

func (r *userRepository) GetUser(ctx context.Context) (models.User, error) {
	var user models.User
	err := r.store.Get(ctx, userKey, &user)
	if stderrors.Is(err, cache.ErrNotFound) {
		return models.User{}, errors.NotFound("reading session", errors.ErrNoUser)
	}
	if err != nil {
		return models.User{}, errors.Unavailable("reading session", err)
	}
	return user, nil
}

func (r *userRepository) SaveUser(ctx context.Context, user models.User) error {
	if err := r.store.Set(ctx, userKey, user, r.config.SessionTTL); err != nil {
		return errors.Unavailable("saving session", err)
	}
	r.logger.Debug("saved session user", zap.Int("student_id", user.ID))
	return nil
}

func (r *userRepository) GetUpdatedUserInformation(ctx context.Context) resource.AppResource[models.User] {
	return guard(ctx, r.logger, "UserRepository.GetUpdatedUserInformation", func(ctx context.Context) resource.AppResource[models.User] {
		current, err := r.GetUser(ctx)
		if err != nil {
			return failed[models.User](r.logger, "UserRepository.GetUpdatedUserInformation", err)
		}

		resp := r.client.GetStudent(ctx, current.ID)
		if !resp.Succeeded() || resp.Data == nil {
			return failed[models.User](r.logger.With(zap.Int("student_id", current.ID)),
				"UserRepository.GetUpdatedUserInformation", resp.Err)
		}

		if err := r.SaveUser(ctx, *resp.Data); err != nil {
			return failed[models.User](r.logger, "UserRepository.GetUpdatedUserInformation", err)
		}
		return resource.Success(*resp.Data)
	})
}

func (r *userRepository) DeleteUser(ctx context.Context, user models.User) error {
	if err := r.store.Delete(ctx, userKey); err != nil {
		return errors.Unavailable("deleting session", err)
	}
	r.logger.Info("logged out", zap.Int("student_id", user.ID))
	return nil
}
