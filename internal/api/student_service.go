package api

import (
	"context"
	"fmt"

	"linkfatec/internal/models"

	"go.uber.org/zap"
)

type StudentService interface {
	// GET student/{student_id}
	GetStudent(ctx context.Context, studentID int) (*Response[models.User], error)
	// GET student/{student_id}/job-offers/applied
	GetAppliedJobOffers(ctx context.Context, studentID int) (*Response[[]models.JobOffer], error)
	// GET student/{student_id}/notifications
	GetNotifications(ctx context.Context, studentID int) (*Response[[]models.Notification], error)
}

type studentService struct {
	rest   *RestClient
	logger *zap.Logger
}

func NewStudentService(rest *RestClient, logger *zap.Logger) StudentService {
	return &studentService{rest: rest, logger: logger}
}

func (s *studentService) GetStudent(ctx context.Context, studentID int) (*Response[models.User], error) {
	if err := requirePositive("student_id", studentID); err != nil {
		return nil, err
	}
	resp, err := s.rest.Get(ctx, fmt.Sprintf("student/%d", studentID))
	return call[models.User](s.logger, resp, err)
}

func (s *studentService) GetAppliedJobOffers(ctx context.Context, studentID int) (*Response[[]models.JobOffer], error) {
	if err := requirePositive("student_id", studentID); err != nil {
		return nil, err
	}
	resp, err := s.rest.Get(ctx, fmt.Sprintf("student/%d/job-offers/applied", studentID))
	return call[[]models.JobOffer](s.logger, resp, err)
}

func (s *studentService) GetNotifications(ctx context.Context, studentID int) (*Response[[]models.Notification], error) {
	if err := requirePositive("student_id", studentID); err != nil {
		return nil, err
	}
	resp, err := s.rest.Get(ctx, fmt.Sprintf("student/%d/notifications", studentID))
	return call[[]models.Notification](s.logger, resp, err)
}
