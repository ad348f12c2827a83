package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"linkfatec/internal/models"

	"go.uber.org/zap"
)

type JobOfferService interface {
	// GET job-offers/available/course/{course_id}
	GetAllAvailableJobs(ctx context.Context, courseID int) (*Response[[]models.JobOffer], error)
	// POST job-offer/{id}/like, form: student_id, like
	LikeJob(ctx context.Context, jobID, studentID int, shouldLike bool) (*Response[[]byte], error)
	// POST student/job-offer/subscribe, form: job_id, student_id
	SubscribeJob(ctx context.Context, jobID, studentID int) (*Response[[]byte], error)
}

type jobOfferService struct {
	rest   *RestClient
	logger *zap.Logger
}

func NewJobOfferService(rest *RestClient, logger *zap.Logger) JobOfferService {
	return &jobOfferService{rest: rest, logger: logger}
}

func (s *jobOfferService) GetAllAvailableJobs(ctx context.Context, courseID int) (*Response[[]models.JobOffer], error) {
	if err := requirePositive("course_id", courseID); err != nil {
		return nil, err
	}
	resp, err := s.rest.Get(ctx, fmt.Sprintf("job-offers/available/course/%d", courseID))
	return call[[]models.JobOffer](s.logger, resp, err)
}

func (s *jobOfferService) LikeJob(ctx context.Context, jobID, studentID int, shouldLike bool) (*Response[[]byte], error) {
	if err := requirePositive("job_id", jobID); err != nil {
		return nil, err
	}
	if err := requirePositive("student_id", studentID); err != nil {
		return nil, err
	}
	form := url.Values{
		"student_id": {strconv.Itoa(studentID)},
		"like":       {strconv.FormatBool(shouldLike)},
	}
	resp, err := s.rest.PostForm(ctx, fmt.Sprintf("job-offer/%d/like", jobID), form)
	return call[[]byte](s.logger, resp, err)
}

func (s *jobOfferService) SubscribeJob(ctx context.Context, jobID, studentID int) (*Response[[]byte], error) {
	if err := requirePositive("job_id", jobID); err != nil {
		return nil, err
	}
	if err := requirePositive("student_id", studentID); err != nil {
		return nil, err
	}
	form := url.Values{
		"job_id":     {strconv.Itoa(jobID)},
		"student_id": {strconv.Itoa(studentID)},
	}
	resp, err := s.rest.PostForm(ctx, "student/job-offer/subscribe", form)
	return call[[]byte](s.logger, resp, err)
}
