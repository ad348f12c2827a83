package viewmodel

import (
	"context"

	"linkfatec/internal/models"
	"linkfatec/internal/repository"
	"linkfatec/internal/resource"

	"go.uber.org/zap"
)

type ProfileState struct {
	User      models.User
	LoggedOut bool
}

type ProfileViewModel struct {
	scope
	state   *Store[ProfileState]
	events  *Events
	users   repository.UserRepository
	profile repository.ProfileRepository
	logger  *zap.Logger
}

func NewProfileViewModel(users repository.UserRepository, profile repository.ProfileRepository, logger *zap.Logger) *ProfileViewModel {
	logger = logger.Named("profile")
	return &ProfileViewModel{
		scope:   newScope(),
		state:   NewStore(ProfileState{}),
		events:  newEvents(logger),
		users:   users,
		profile: profile,
		logger:  logger,
	}
}

func (vm *ProfileViewModel) State() *Store[ProfileState] { return vm.state }

func (vm *ProfileViewModel) Events() *Events { return vm.events }

// LoadUser puts the stored user into the state.
func (vm *ProfileViewModel) LoadUser(ctx context.Context) {
	user, err := vm.users.GetUser(ctx)
	if err != nil {
		vm.logger.Warn("no stored user", zap.Error(err))
		vm.state.Update(func(s ProfileState) ProfileState {
			s.LoggedOut = true
			return s
		})
		return
	}
	vm.state.Update(func(s ProfileState) ProfileState {
		s.User, s.LoggedOut = user, false
		return s
	})
}

func (vm *ProfileViewModel) SendProfileResume(ctx context.Context, pdf []byte) {
	vm.upload(ctx, "resume", func(ctx context.Context, studentID int) resource.AppResource[any] {
		return vm.profile.SendProfileResume(ctx, studentID, pdf)
	})
}

func (vm *ProfileViewModel) SendProfilePicture(ctx context.Context, picture []byte) {
	vm.upload(ctx, "picture", func(ctx context.Context, studentID int) resource.AppResource[any] {
		return vm.profile.SendProfilePicture(ctx, studentID, picture)
	})
}

func (vm *ProfileViewModel) upload(ctx context.Context, what string, send func(ctx context.Context, studentID int) resource.AppResource[any]) {
	ctx, done := vm.bind(ctx)
	defer done()

	user := vm.state.Value().User
	if user.ID == 0 {
		vm.logger.Error("upload without a loaded user", zap.String("upload", what))
		vm.events.emit(UiEventError)
		return
	}

	res := send(ctx, user.ID)
	if !vm.live(ctx) {
		return
	}
	if res.Error {
		vm.events.emit(UiEventError)
		return
	}
	vm.events.emit(UiEventSuccess)
}

// LogoutUser forgets the stored session for user.
func (vm *ProfileViewModel) LogoutUser(ctx context.Context, user models.User) {
	if err := vm.users.DeleteUser(ctx, user); err != nil {
		vm.logger.Error("failed to log out", zap.Error(err))
		vm.events.emit(UiEventError)
		return
	}
	vm.state.Update(func(ProfileState) ProfileState {
		return ProfileState{LoggedOut: true}
	})
}
