package api

import (
	"context"
	"net/url"

	"linkfatec/internal/models"

	"go.uber.org/zap"
)

type LoginService interface {
	// POST login, form: email, password
	Login(ctx context.Context, email, password string) (*Response[models.User], error)
}

type loginService struct {
	rest   *RestClient
	logger *zap.Logger
}

func NewLoginService(rest *RestClient, logger *zap.Logger) LoginService {
	return &loginService{rest: rest, logger: logger}
}

func (s *loginService) Login(ctx context.Context, email, password string) (*Response[models.User], error) {
	form := url.Values{
		"email":    {email},
		"password": {password},
	}
	resp, err := s.rest.PostForm(ctx, "login", form)
	return call[models.User](s.logger, resp, err)
}
