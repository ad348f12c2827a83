package repository

import (
	"context"

	"linkfatec/internal/models"
	"linkfatec/internal/resource"
	"linkfatec/internal/webclient"

	"go.uber.org/zap"
)

type AppliedOffersRepository interface {
	GetAppliedJobOffers(ctx context.Context, studentID int) resource.AppResource[[]models.JobOffer]
}

type NotificationRepository interface {
	GetNotifications(ctx context.Context, studentID int) resource.AppResource[[]models.Notification]
}

type studentClient interface {
	GetStudent(ctx context.Context, studentID int) webclient.ApplicationResponse[models.User]
	GetAppliedJobOffers(ctx context.Context, studentID int) webclient.ApplicationResponse[[]models.JobOffer]
	GetNotifications(ctx context.Context, studentID int) webclient.ApplicationResponse[[]models.Notification]
}

type studentRepository struct {
	client studentClient
	logger *zap.Logger
}

func NewAppliedOffersRepository(client *webclient.StudentWebClient, logger *zap.Logger) AppliedOffersRepository {
	return &studentRepository{client: client, logger: logger}
}

func NewNotificationRepository(client *webclient.StudentWebClient, logger *zap.Logger) NotificationRepository {
	return &studentRepository{client: client, logger: logger}
}

func (r *studentRepository) GetAppliedJobOffers(ctx context.Context, studentID int) resource.AppResource[[]models.JobOffer] {
	return fetch(ctx, r.logger.With(zap.Int("student_id", studentID)), "AppliedOffersRepository.GetAppliedJobOffers",
		func(ctx context.Context) webclient.ApplicationResponse[[]models.JobOffer] {
			return r.client.GetAppliedJobOffers(ctx, studentID)
		})
}

func (r *studentRepository) GetNotifications(ctx context.Context, studentID int) resource.AppResource[[]models.Notification] {
	return fetch(ctx, r.logger.With(zap.Int("student_id", studentID)), "NotificationRepository.GetNotifications",
		func(ctx context.Context) webclient.ApplicationResponse[[]models.Notification] {
			return r.client.GetNotifications(ctx, studentID)
		})
}
