package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"linkfatec/internal/events"
	"linkfatec/internal/models"
	"linkfatec/internal/pager"
	"linkfatec/internal/repository"
	"linkfatec/internal/screen"
	"linkfatec/internal/viewmodel"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

type screens struct {
	fx.In

	Logger        *zap.Logger
	Users         repository.UserRepository
	Login         *viewmodel.LoginScreenViewModel
	Opportunities *viewmodel.OpportunitiesViewModel
	Applied       *viewmodel.AppliedOffersViewModel
	Notifications *viewmodel.AppNotificationsViewModel
	Profile       *viewmodel.ProfileViewModel
	Uploader      *screen.Uploader
	Live          *events.Handler
	Pager         *pager.Pager
}

type command struct {
	usage string
	run   func(ctx context.Context, s screens, args []string) error
}

var commands = map[string]command{
	"login":          {"login -email <email> [-password <password>]", runLogin},
	"logout":         {"logout", runLogout},
	"whoami":         {"whoami [-refresh]", runWhoAmI},
	"jobs":           {"jobs", runJobs},
	"like":           {"like <job id>", likeCommand(true)},
	"unlike":         {"unlike <job id>", likeCommand(false)},
	"subscribe":      {"subscribe <job id>", runSubscribe},
	"applied":        {"applied", runApplied},
	"notifications":  {"notifications", runNotifications},
	"upload-resume":  {"upload-resume <file.pdf>", uploadCommand(true)},
	"upload-picture": {"upload-picture <image>", uploadCommand(false)},
	"browse":         {"browse", runBrowse},
}

var commandOrder = []string{
	"login", "logout", "whoami", "jobs", "like", "unlike", "subscribe",
	"applied", "notifications", "upload-resume", "upload-picture", "browse",
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: linkfatec <command> [arguments]")
	fmt.Fprintln(os.Stderr)
	for _, name := range commandOrder {
		fmt.Fprintf(os.Stderr, "  %s\n", commands[name].usage)
	}
}

var stdout io.Writer = os.Stdout

func runLogin(ctx context.Context, s screens, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "student e-mail")
	password := fs.String("password", "", "password, read from LINKFATEC_PASSWORD when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *password == "" {
		*password = os.Getenv("LINKFATEC_PASSWORD")
	}

	s.Login.Login(ctx, *email, *password)
	screen.RenderLogin(stdout, s.Login.State().Value())
	return nil
}

func runLogout(ctx context.Context, s screens, _ []string) error {
	s.Profile.LoadUser(ctx)
	state := s.Profile.State().Value()
	if state.LoggedOut {
		screen.RenderProfile(stdout, state)
		return nil
	}

	s.Profile.LogoutUser(ctx, state.User)
	screen.FlushToasts(stdout, s.Profile.Events())
	screen.RenderProfile(stdout, s.Profile.State().Value())
	return nil
}

func runWhoAmI(ctx context.Context, s screens, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	refresh := fs.Bool("refresh", false, "fetch the latest profile from the server")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *refresh {
		if res := s.Users.GetUpdatedUserInformation(ctx); res.Error {
			fmt.Fprintln(stdout, "Não foi possível atualizar o perfil.")
		}
	}
	s.Profile.LoadUser(ctx)
	screen.RenderProfile(stdout, s.Profile.State().Value())
	return nil
}

func runJobs(ctx context.Context, s screens, _ []string) error {
	s.Opportunities.GetAvailableJobs(ctx)
	screen.RenderOpportunities(stdout, s.Opportunities.State().Value())
	return nil
}

func likeCommand(like bool) func(context.Context, screens, []string) error {
	return func(ctx context.Context, s screens, args []string) error {
		id, err := jobID(args)
		if err != nil {
			return err
		}

		s.Opportunities.GetAvailableJobs(ctx)
		post, ok := findPost(s.Opportunities.State().Value().Posts, id)
		if !ok {
			return fmt.Errorf("job offer %d is not available", id)
		}
		if post.Liked != like {
			s.Opportunities.LikeJob(ctx, id)
		}

		screen.FlushToasts(stdout, s.Opportunities.Events())
		screen.RenderOpportunities(stdout, s.Opportunities.State().Value())
		return nil
	}
}

func runSubscribe(ctx context.Context, s screens, args []string) error {
	id, err := jobID(args)
	if err != nil {
		return err
	}

	s.Opportunities.GetAvailableJobs(ctx)
	s.Opportunities.SubscribeJob(ctx, id)
	screen.FlushToasts(stdout, s.Opportunities.Events())
	return nil
}

func runApplied(ctx context.Context, s screens, _ []string) error {
	s.Applied.ReloadOrLoadAppliedJob(ctx)
	screen.RenderAppliedOffers(stdout, s.Applied.State().Value())
	return nil
}

func runNotifications(ctx context.Context, s screens, _ []string) error {
	s.Notifications.LoadNotifications(ctx)
	screen.RenderNotifications(stdout, s.Notifications.State().Value())
	return nil
}

func uploadCommand(resume bool) func(context.Context, screens, []string) error {
	return func(ctx context.Context, s screens, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly one file, got %d", len(args))
		}

		s.Profile.LoadUser(ctx)
		if resume {
			s.Uploader.SendProfileResume(ctx, args[0])
		} else {
			s.Uploader.SendProfilePicture(ctx, args[0])
		}
		screen.FlushToasts(stdout, s.Profile.Events())
		return nil
	}
}

// runBrowse opens on the opportunities tab, then reads tab positions from
// stdin, one per line, and renders each tab once the pager loads it.
func runBrowse(ctx context.Context, s screens, _ []string) error {
	user, err := s.Users.GetUser(ctx)
	if err != nil {
		return err
	}
	if err := s.Live.Subscribe(user.ID); err != nil {
		s.Logger.Warn("live notifications unavailable", zap.Error(err))
	}

	out := &syncWriter{w: stdout}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	watch := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	watch(func() { screen.PrintToasts(ctx, out, s.Opportunities.Events()) })
	for _, follow := range []func(context.Context){
		renderOn(s.Opportunities.State(), func(st viewmodel.OpportunitiesState) {
			if s.Pager.Current() == 0 && !st.Loading {
				out.render(func(w io.Writer) { screen.RenderOpportunities(w, st) })
			}
		}),
		renderOn(s.Applied.State(), func(st viewmodel.AppliedOffersState) {
			if s.Pager.Current() == 1 && !st.Loading {
				out.render(func(w io.Writer) { screen.RenderAppliedOffers(w, st) })
			}
		}),
		renderOn(s.Notifications.State(), func(st viewmodel.NotificationsState) {
			if s.Pager.Current() == 2 && !st.Loading {
				out.render(func(w io.Writer) { screen.RenderNotifications(w, st) })
			}
		}),
	} {
		watch(func() { follow(ctx) })
	}

	fmt.Fprintln(out, "Abas: 0 vagas, 1 candidaturas, 2 notificações. Ctrl-D para sair.")
	positions := make(chan int)
	go readTabs(ctx, os.Stdin, positions, s.Logger)

	err = s.Pager.Run(ctx, 0, positions)
	cancel()
	wg.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// readTabs starts at tab 0 like the pager on screen, then forwards every tab
// number typed on r. It closes positions when r is exhausted.
func readTabs(ctx context.Context, r io.Reader, positions chan<- int, logger *zap.Logger) {
	defer close(positions)

	send := func(tab int) bool {
		select {
		case positions <- tab:
			return true
		case <-ctx.Done():
			return false
		}
	}
	if !send(0) {
		return
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tab, err := strconv.Atoi(line)
		if err != nil {
			logger.Warn("not a tab number", zap.String("input", line))
			continue
		}
		if !send(tab) {
			return
		}
	}
}

// renderOn subscribes to store right away and returns a loop that calls fn
// with every later state until ctx is done.
func renderOn[S any](store *viewmodel.Store[S], fn func(S)) func(ctx context.Context) {
	states, unsubscribe := store.Subscribe()
	<-states

	return func(ctx context.Context) {
		defer unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case st := <-states:
				fn(st)
			}
		}
	}
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *syncWriter) render(fn func(io.Writer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w)
	fn(s.w)
}

func jobID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected a job id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid job id %q", args[0])
	}
	return id, nil
}

func findPost(posts []models.Post, id int) (models.Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}
