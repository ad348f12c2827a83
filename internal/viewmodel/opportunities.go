package viewmodel

import (
	"context"

	"linkfatec/internal/models"
	"linkfatec/internal/repository"

	"go.uber.org/zap"
)

type OpportunitiesState struct {
	Loading bool
	Posts   []models.Post
	Error   bool
}

type OpportunitiesViewModel struct {
	scope
	state  *Store[OpportunitiesState]
	events *Events
	jobs   repository.JobOfferRepository
	users  repository.UserRepository
	logger *zap.Logger
}

func NewOpportunitiesViewModel(jobs repository.JobOfferRepository, users repository.UserRepository, logger *zap.Logger) *OpportunitiesViewModel {
	logger = logger.Named("opportunities")
	return &OpportunitiesViewModel{
		scope:  newScope(),
		state:  NewStore(OpportunitiesState{}),
		events: newEvents(logger),
		jobs:   jobs,
		users:  users,
		logger: logger,
	}
}

func (vm *OpportunitiesViewModel) State() *Store[OpportunitiesState] { return vm.state }

func (vm *OpportunitiesViewModel) Events() *Events { return vm.events }

// GetAvailableJobs loads the offers open to the current student's course.
func (vm *OpportunitiesViewModel) GetAvailableJobs(ctx context.Context) {
	ctx, done := vm.bind(ctx)
	defer done()

	user, err := vm.users.GetUser(ctx)
	if err != nil {
		vm.logger.Error("no session to load offers for", zap.Error(err))
		vm.state.Update(func(s OpportunitiesState) OpportunitiesState {
			s.Loading, s.Error = false, true
			return s
		})
		return
	}

	vm.state.Update(func(s OpportunitiesState) OpportunitiesState {
		s.Loading = true
		return s
	})

	res := vm.jobs.GetAllAvailableJobOffers(ctx, user.Course.ID)
	if !vm.live(ctx) {
		if !vm.closed() {
			vm.state.Update(func(s OpportunitiesState) OpportunitiesState {
				s.Loading = false
				return s
			})
		}
		return
	}

	vm.state.Update(func(s OpportunitiesState) OpportunitiesState {
		s.Loading = false
		s.Error = res.Error
		if !res.Error {
			s.Posts = models.ToPosts(res.Payload(), user)
		}
		return s
	})
}

// LikeJob toggles the student's like on the post with postID.
func (vm *OpportunitiesViewModel) LikeJob(ctx context.Context, postID int) {
	ctx, done := vm.bind(ctx)
	defer done()

	post, found := findPost(vm.state.Value().Posts, postID)
	user, err := vm.users.GetUser(ctx)
	if !found || err != nil {
		vm.logger.Error("cannot like post", zap.Int("job_id", postID), zap.Bool("found", found), zap.Error(err))
		vm.events.emit(UiEventError)
		return
	}

	like := !post.Liked
	res := vm.jobs.LikeJob(ctx, post.ID, user.ID, like)
	if !vm.live(ctx) {
		return
	}
	if res.Error {
		vm.events.emit(UiEventError)
		return
	}

	vm.state.Update(func(s OpportunitiesState) OpportunitiesState {
		s.Posts = replacePost(s.Posts, postID, func(p models.Post) models.Post { return p.WithLike(like) })
		return s
	})
}

// SubscribeJob applies the student to the post with postID.
func (vm *OpportunitiesViewModel) SubscribeJob(ctx context.Context, postID int) {
	ctx, done := vm.bind(ctx)
	defer done()

	post, found := findPost(vm.state.Value().Posts, postID)
	user, err := vm.users.GetUser(ctx)
	if !found || err != nil {
		vm.logger.Error("cannot subscribe to post", zap.Int("job_id", postID), zap.Bool("found", found), zap.Error(err))
		vm.events.emit(UiEventError)
		return
	}

	res := vm.jobs.SubscribeJob(ctx, post.ID, user.ID)
	if !vm.live(ctx) {
		return
	}
	if res.Error {
		vm.events.emit(UiEventError)
		return
	}

	vm.state.Update(func(s OpportunitiesState) OpportunitiesState {
		s.Posts = replacePost(s.Posts, postID, models.Post.WithSubscription)
		return s
	})
	vm.events.emit(UiEventSuccess)
}

func findPost(posts []models.Post, id int) (models.Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// replacePost returns a copy of posts with fn applied to the post with id.
func replacePost(posts []models.Post, id int, fn func(models.Post) models.Post) []models.Post {
	out := make([]models.Post, len(posts))
	for i, p := range posts {
		if p.ID == id {
			p = fn(p)
		}
		out[i] = p
	}
	return out
}
