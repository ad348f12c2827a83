package repository

import (
	"context"

	"linkfatec/internal/resource"
	"linkfatec/internal/webclient"

	"go.uber.org/zap"
)

type ProfileRepository interface {
	SendProfileResume(ctx context.Context, studentID int, pdf []byte) resource.AppResource[any]
	SendProfilePicture(ctx context.Context, studentID int, picture []byte) resource.AppResource[any]
}

type profileClient interface {
	SendProfileResume(ctx context.Context, studentID int, pdf []byte) webclient.ApplicationResponse[[]byte]
	SendProfilePicture(ctx context.Context, studentID int, picture []byte) webclient.ApplicationResponse[[]byte]
}

type profileRepository struct {
	client profileClient
	logger *zap.Logger
}

func NewProfileRepository(client *webclient.ProfileWebClient, logger *zap.Logger) ProfileRepository {
	return &profileRepository{client: client, logger: logger}
}

func (r *profileRepository) SendProfileResume(ctx context.Context, studentID int, pdf []byte) resource.AppResource[any] {
	logger := r.logger.With(zap.Int("student_id", studentID), zap.Int("size", len(pdf)))
	return send(ctx, logger, "ProfileRepository.SendProfileResume",
		func(ctx context.Context) webclient.ApplicationResponse[[]byte] {
			return r.client.SendProfileResume(ctx, studentID, pdf)
		})
}

func (r *profileRepository) SendProfilePicture(ctx context.Context, studentID int, picture []byte) resource.AppResource[any] {
	logger := r.logger.With(zap.Int("student_id", studentID), zap.Int("size", len(picture)))
	return send(ctx, logger, "ProfileRepository.SendProfilePicture",
		func(ctx context.Context) webclient.ApplicationResponse[[]byte] {
			return r.client.SendProfilePicture(ctx, studentID, picture)
		})
}
