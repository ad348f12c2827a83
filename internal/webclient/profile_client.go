package webclient

import (
	"context"

	"linkfatec/internal/api"

	"go.uber.org/zap"
)

type ProfileWebClient struct {
	service api.ProfileService
	logger  *zap.Logger
}

func NewProfileWebClient(service api.ProfileService, logger *zap.Logger) *ProfileWebClient {
	return &ProfileWebClient{service: service, logger: logger}
}

func (c *ProfileWebClient) SendProfileResume(ctx context.Context, studentID int, pdf []byte) ApplicationResponse[[]byte] {
	return Execute(ctx, c.logger, func(ctx context.Context) (*api.Response[[]byte], error) {
		return c.service.SendProfileResume(ctx, studentID, pdf)
	})
}

func (c *ProfileWebClient) SendProfilePicture(ctx context.Context, studentID int, picture []byte) ApplicationResponse[[]byte] {
	return Execute(ctx, c.logger, func(ctx context.Context) (*api.Response[[]byte], error) {
		return c.service.SendProfilePicture(ctx, studentID, picture)
	})
}
