package viewmodel

import (
	"context"
	"strings"

	"linkfatec/internal/models"
	"linkfatec/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type LoginScreenState struct {
	Loading bool
	Login   models.LoginState
}

type LoginScreenViewModel struct {
	scope
	state    *Store[LoginScreenState]
	events   *Events
	login    repository.LoginRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewLoginScreenViewModel(login repository.LoginRepository, validate *validator.Validate, logger *zap.Logger) *LoginScreenViewModel {
	logger = logger.Named("login")
	return &LoginScreenViewModel{
		scope:    newScope(),
		state:    NewStore(LoginScreenState{}),
		events:   newEvents(logger),
		login:    login,
		validate: validate,
		logger:   logger,
	}
}

func (vm *LoginScreenViewModel) State() *Store[LoginScreenState] { return vm.state }

func (vm *LoginScreenViewModel) Events() *Events { return vm.events }

func (vm *LoginScreenViewModel) CheckLoginState(ctx context.Context) {
	state := vm.login.GetLoginState(ctx)
	vm.state.Update(func(s LoginScreenState) LoginScreenState {
		s.Login = state
		return s
	})
}

func (vm *LoginScreenViewModel) Login(ctx context.Context, email, password string) {
	ctx, done := vm.bind(ctx)
	defer done()

	email = strings.TrimSpace(email)
	if err := vm.validate.Struct(credentials{Email: email, Password: password}); err != nil {
		vm.logger.Info("rejected credentials before sending", zap.Error(err))
		vm.state.Update(func(s LoginScreenState) LoginScreenState {
			s.Login = models.LoginState{Status: models.InvalidCredentials}
			return s
		})
		vm.events.emit(UiEventError)
		return
	}

	vm.state.Update(func(s LoginScreenState) LoginScreenState {
		s.Loading = true
		return s
	})

	state := vm.login.Login(ctx, email, password)
	if !vm.live(ctx) {
		if !vm.closed() {
			vm.state.Update(func(s LoginScreenState) LoginScreenState {
				s.Loading = false
				return s
			})
		}
		return
	}

	vm.state.Update(func(s LoginScreenState) LoginScreenState {
		s.Loading = false
		s.Login = state
		return s
	})
	if state.Status == models.LoggedIn {
		vm.events.emit(UiEventSuccess)
	} else {
		vm.events.emit(UiEventError)
	}
}
