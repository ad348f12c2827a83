package webclient

import (
	"context"

	"linkfatec/internal/api"
	"linkfatec/internal/models"

	"go.uber.org/zap"
)

type LoginWebClient struct {
	service api.LoginService
	logger  *zap.Logger
}

func NewLoginWebClient(service api.LoginService, logger *zap.Logger) *LoginWebClient {
	return &LoginWebClient{service: service, logger: logger}
}

func (c *LoginWebClient) Login(ctx context.Context, email, password string) ApplicationResponse[models.User] {
	return Execute(ctx, c.logger, func(ctx context.Context) (*api.Response[models.User], error) {
		return c.service.Login(ctx, email, password)
	})
}
