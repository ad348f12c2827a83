package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

const (
	resumeField         = "resume"
	resumeFileName      = "resume.pdf"
	pictureField        = "profile_picture"
	pictureFileName     = "profile_picture"
	pdfContentType      = "application/pdf"
	fallbackContentType = "application/octet-stream"
)

type ProfileService interface {
	// POST student/{student_id}/resume, multipart: resume
	SendProfileResume(ctx context.Context, studentID int, pdf []byte) (*Response[[]byte], error)
	// POST student/{student_id}/profile-picture, multipart: profile_picture
	SendProfilePicture(ctx context.Context, studentID int, picture []byte) (*Response[[]byte], error)
}

type profileService struct {
	rest   *RestClient
	logger *zap.Logger
}

func NewProfileService(rest *RestClient, logger *zap.Logger) ProfileService {
	return &profileService{rest: rest, logger: logger}
}

func (s *profileService) SendProfileResume(ctx context.Context, studentID int, pdf []byte) (*Response[[]byte], error) {
	if err := requirePositive("student_id", studentID); err != nil {
		return nil, err
	}
	resp, err := s.rest.PostMultipart(ctx,
		fmt.Sprintf("student/%d/resume", studentID),
		url.Values{"student_id": {strconv.Itoa(studentID)}},
		FilePart{Field: resumeField, FileName: resumeFileName, ContentType: pdfContentType, Data: pdf},
	)
	return call[[]byte](s.logger, resp, err)
}

func (s *profileService) SendProfilePicture(ctx context.Context, studentID int, picture []byte) (*Response[[]byte], error) {
	if err := requirePositive("student_id", studentID); err != nil {
		return nil, err
	}
	contentType := fallbackContentType
	if len(picture) > 0 {
		contentType = http.DetectContentType(picture)
	}
	resp, err := s.rest.PostMultipart(ctx,
		fmt.Sprintf("student/%d/profile-picture", studentID),
		url.Values{"student_id": {strconv.Itoa(studentID)}},
		FilePart{Field: pictureField, FileName: pictureFileName, ContentType: contentType, Data: picture},
	)
	return call[[]byte](s.logger, resp, err)
}
