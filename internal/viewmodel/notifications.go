package viewmodel

import (
	"context"

	"linkfatec/internal/models"
	"linkfatec/internal/repository"

	"go.uber.org/zap"
)

type NotificationsState struct {
	Loading       bool
	Notifications []models.Notification
	Error         bool
}

type AppNotificationsViewModel struct {
	scope
	state         *Store[NotificationsState]
	events        *Events
	notifications repository.NotificationRepository
	users         repository.UserRepository
	logger        *zap.Logger
}

func NewAppNotificationsViewModel(notifications repository.NotificationRepository, users repository.UserRepository, logger *zap.Logger) *AppNotificationsViewModel {
	logger = logger.Named("notifications")
	return &AppNotificationsViewModel{
		scope:         newScope(),
		state:         NewStore(NotificationsState{}),
		events:        newEvents(logger),
		notifications: notifications,
		users:         users,
		logger:        logger,
	}
}

func (vm *AppNotificationsViewModel) State() *Store[NotificationsState] { return vm.state }

func (vm *AppNotificationsViewModel) Events() *Events { return vm.events }

func (vm *AppNotificationsViewModel) LoadNotifications(ctx context.Context) {
	ctx, done := vm.bind(ctx)
	defer done()

	user, err := vm.users.GetUser(ctx)
	if err != nil {
		vm.logger.Error("no session to load notifications for", zap.Error(err))
		vm.state.Update(func(s NotificationsState) NotificationsState {
			s.Loading, s.Error = false, true
			return s
		})
		return
	}

	vm.state.Update(func(s NotificationsState) NotificationsState {
		s.Loading = true
		return s
	})

	res := vm.notifications.GetNotifications(ctx, user.ID)
	if !vm.live(ctx) {
		if !vm.closed() {
			vm.state.Update(func(s NotificationsState) NotificationsState {
				s.Loading = false
				return s
			})
		}
		return
	}

	vm.state.Update(func(s NotificationsState) NotificationsState {
		s.Loading = false
		s.Error = res.Error
		if !res.Error {
			s.Notifications = res.Payload()
		}
		return s
	})
}

// Push puts a notification received out of band at the top of the list,
// replacing an older copy with the same id.
func (vm *AppNotificationsViewModel) Push(n models.Notification) {
	if vm.closed() {
		return
	}
	vm.state.Update(func(s NotificationsState) NotificationsState {
		out := make([]models.Notification, 0, len(s.Notifications)+1)
		out = append(out, n)
		for _, existing := range s.Notifications {
			if existing.ID != n.ID {
				out = append(out, existing)
			}
		}
		s.Notifications = out
		return s
	})
}
