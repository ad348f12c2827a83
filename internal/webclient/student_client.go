package webclient

import (
	"context"

	"linkfatec/internal/api"
	"linkfatec/internal/models"

	"go.uber.org/zap"
)

type StudentWebClient struct {
	service api.StudentService
	logger  *zap.Logger
}

func NewStudentWebClient(service api.StudentService, logger *zap.Logger) *StudentWebClient {
	return &StudentWebClient{service: service, logger: logger}
}

func (c *StudentWebClient) GetStudent(ctx context.Context, studentID int) ApplicationResponse[models.User] {
	return Execute(ctx, c.logger, func(ctx context.Context) (*api.Response[models.User], error) {
		return c.service.GetStudent(ctx, studentID)
	})
}

func (c *StudentWebClient) GetAppliedJobOffers(ctx context.Context, studentID int) ApplicationResponse[[]models.JobOffer] {
	return Execute(ctx, c.logger, func(ctx context.Context) (*api.Response[[]models.JobOffer], error) {
		return c.service.GetAppliedJobOffers(ctx, studentID)
	})
}

func (c *StudentWebClient) GetNotifications(ctx context.Context, studentID int) ApplicationResponse[[]models.Notification] {
	return Execute(ctx, c.logger, func(ctx context.Context) (*api.Response[[]models.Notification], error) {
		return c.service.GetNotifications(ctx, studentID)
	})
}
