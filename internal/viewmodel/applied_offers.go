package viewmodel

import (
	"context"

	"linkfatec/internal/models"
	"linkfatec/internal/repository"

	"go.uber.org/zap"
)

type AppliedOffersState struct {
	Loading    bool
	Refreshing bool
	Loaded     bool
	Posts      []models.Post
	Error      bool
}

type AppliedOffersViewModel struct {
	scope
	state   *Store[AppliedOffersState]
	events  *Events
	applied repository.AppliedOffersRepository
	users   repository.UserRepository
	logger  *zap.Logger
}

func NewAppliedOffersViewModel(applied repository.AppliedOffersRepository, users repository.UserRepository, logger *zap.Logger) *AppliedOffersViewModel {
	logger = logger.Named("applied_offers")
	return &AppliedOffersViewModel{
		scope:   newScope(),
		state:   NewStore(AppliedOffersState{}),
		events:  newEvents(logger),
		applied: applied,
		users:   users,
		logger:  logger,
	}
}

func (vm *AppliedOffersViewModel) State() *Store[AppliedOffersState] { return vm.state }

func (vm *AppliedOffersViewModel) Events() *Events { return vm.events }

// ReloadOrLoadAppliedJob loads the applied offers the first time and refreshes
// them afterwards, keeping the previous list visible while refreshing.
func (vm *AppliedOffersViewModel) ReloadOrLoadAppliedJob(ctx context.Context) {
	ctx, done := vm.bind(ctx)
	defer done()

	user, err := vm.users.GetUser(ctx)
	if err != nil {
		vm.logger.Error("no session to load applied offers for", zap.Error(err))
		vm.state.Update(func(s AppliedOffersState) AppliedOffersState {
			s.Loading, s.Refreshing, s.Error = false, false, true
			return s
		})
		return
	}

	vm.state.Update(func(s AppliedOffersState) AppliedOffersState {
		if s.Loaded {
			s.Refreshing = true
		} else {
			s.Loading = true
		}
		return s
	})

	res := vm.applied.GetAppliedJobOffers(ctx, user.ID)
	if !vm.live(ctx) {
		if !vm.closed() {
			vm.state.Update(func(s AppliedOffersState) AppliedOffersState {
				s.Loading, s.Refreshing = false, false
				return s
			})
		}
		return
	}

	vm.state.Update(func(s AppliedOffersState) AppliedOffersState {
		s.Loading, s.Refreshing = false, false
		s.Error = res.Error
		if !res.Error {
			s.Loaded = true
			s.Posts = models.ToPosts(res.Payload(), user)
		}
		return s
	})
}
