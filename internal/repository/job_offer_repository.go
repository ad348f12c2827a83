package repository

import (
	"context"

	"linkfatec/internal/models"
	"linkfatec/internal/resource"
	"linkfatec/internal/webclient"

	"go.uber.org/zap"
)

type JobOfferRepository interface {
	GetAllAvailableJobOffers(ctx context.Context, courseID int) resource.AppResource[[]models.JobOffer]
	LikeJob(ctx context.Context, jobID, studentID int, like bool) resource.AppResource[any]
	SubscribeJob(ctx context.Context, jobID, studentID int) resource.AppResource[any]
}

type jobOfferClient interface {
	GetAllAvailableJobOffers(ctx context.Context, courseID int) webclient.ApplicationResponse[[]models.JobOffer]
	LikeJob(ctx context.Context, jobID, studentID int, like bool) webclient.ApplicationResponse[[]byte]
	SubscribeJob(ctx context.Context, jobID, studentID int) webclient.ApplicationResponse[[]byte]
}

type jobOfferRepository struct {
	client jobOfferClient
	logger *zap.Logger
}

func NewJobOfferRepository(client *webclient.JobOfferWebClient, logger *zap.Logger) JobOfferRepository {
	return newJobOfferRepository(client, logger)
}

func newJobOfferRepository(client jobOfferClient, logger *zap.Logger) *jobOfferRepository {
	return &jobOfferRepository{client: client, logger: logger}
}

func (r *jobOfferRepository) GetAllAvailableJobOffers(ctx context.Context, courseID int) resource.AppResource[[]models.JobOffer] {
	return fetch(ctx, r.logger.With(zap.Int("course_id", courseID)), "JobOfferRepository.GetAllAvailableJobOffers",
		func(ctx context.Context) webclient.ApplicationResponse[[]models.JobOffer] {
			return r.client.GetAllAvailableJobOffers(ctx, courseID)
		})
}

func (r *jobOfferRepository) LikeJob(ctx context.Context, jobID, studentID int, like bool) resource.AppResource[any] {
	logger := r.logger.With(zap.Int("job_id", jobID), zap.Int("student_id", studentID), zap.Bool("like", like))
	return send(ctx, logger, "JobOfferRepository.LikeJob",
		func(ctx context.Context) webclient.ApplicationResponse[[]byte] {
			return r.client.LikeJob(ctx, jobID, studentID, like)
		})
}

func (r *jobOfferRepository) SubscribeJob(ctx context.Context, jobID, studentID int) resource.AppResource[any] {
	logger := r.logger.With(zap.Int("job_id", jobID), zap.Int("student_id", studentID))
	return send(ctx, logger, "JobOfferRepository.SubscribeJob",
		func(ctx context.Context) webclient.ApplicationResponse[[]byte] {
			return r.client.SubscribeJob(ctx, jobID, studentID)
		})
}
