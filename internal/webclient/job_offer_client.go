package webclient

import (
	"context"

	"linkfatec/internal/api"
	"linkfatec/internal/models"

	"go.uber.org/zap"
)

type JobOfferWebClient struct {
	service api.JobOfferService
	logger  *zap.Logger
}

func NewJobOfferWebClient(service api.JobOfferService, logger *zap.Logger) *JobOfferWebClient {
	return &JobOfferWebClient{service: service, logger: logger}
}

func (c *JobOfferWebClient) GetAllAvailableJobOffers(ctx context.Context, courseID int) ApplicationResponse[[]models.JobOffer] {
	return Execute(ctx, c.logger, func(ctx context.Context) (*api.Response[[]models.JobOffer], error) {
		return c.service.GetAllAvailableJobs(ctx, courseID)
	})
}

func (c *JobOfferWebClient) LikeJob(ctx context.Context, jobID, studentID int, like bool) ApplicationResponse[[]byte] {
	return Execute(ctx, c.logger, func(ctx context.Context) (*api.Response[[]byte], error) {
		return c.service.LikeJob(ctx, jobID, studentID, like)
	})
}

func (c *JobOfferWebClient) SubscribeJob(ctx context.Context, jobID, studentID int) ApplicationResponse[[]byte] {
	return Execute(ctx, c.logger, func(ctx context.Context) (*api.Response[[]byte], error) {
		return c.service.SubscribeJob(ctx, jobID, studentID)
	})
}
