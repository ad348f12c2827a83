package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"linkfatec/internal/api"
	"linkfatec/internal/cache"
	"linkfatec/internal/cache/memory"
	"linkfatec/internal/cache/redis"
	"linkfatec/internal/cache/sqlite"
	"linkfatec/internal/config"
	"linkfatec/internal/events"
	"linkfatec/internal/pager"
	"linkfatec/internal/repository"
	"linkfatec/internal/screen"
	"linkfatec/internal/telemetry"
	"linkfatec/internal/viewmodel"
	"linkfatec/internal/webclient"

	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newTracer(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (trace.Tracer, error) {
	shutdown, err := telemetry.InitTracer(context.Background(), cfg.ServiceName, cfg.OTelCollectorURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdown(ctx)
			return nil
		},
	})
	return telemetry.GetTracer("linkfatec"), nil
}

func newSessionStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (cache.Cache, error) {
	opts := cache.Options{
		DefaultTTL:    cfg.SessionTTL,
		RedisURL:      cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	}

	var store cache.Cache
	switch {
	case cfg.RedisAddr != "":
		rc := redis.New(opts)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := rc.Ping(ctx); err != nil {
					return fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
				}
				return nil
			},
		})
		store = rc
	case cfg.SessionPath != "":
		sc, err := sqlite.Open(cfg.SessionPath, opts)
		if err != nil {
			return nil, fmt.Errorf("open session file %s: %w", cfg.SessionPath, err)
		}
		logger.Debug("using session file", zap.String("path", cfg.SessionPath))
		store = sc
	default:
		logger.Warn("no user config dir, the session will not outlive this run")
		store = memory.New(opts)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}

func newNATSConnection(cfg *config.Config, logger *zap.Logger) (*nats.Conn, error) {
	if cfg.NATSURL == "" {
		logger.Debug("live notifications disabled, no NATS url configured")
		return nil, nil
	}
	opts := []nats.Option{
		nats.Timeout(cfg.NATSConnTimeout),
		nats.Name(cfg.ServiceName),
		nats.RetryOnFailedConnect(true),
	}
	return nats.Connect(cfg.NATSURL, opts...)
}

func newPager(cfg *config.Config, logger *zap.Logger, opportunities *viewmodel.OpportunitiesViewModel, applied *viewmodel.AppliedOffersViewModel, notifications *viewmodel.AppNotificationsViewModel) *pager.Pager {
	return pager.New(logger, cfg.TabDebounce,
		opportunities.GetAvailableJobs,
		applied.ReloadOrLoadAppliedJob,
		notifications.LoadNotifications,
	)
}

func closeViewModels(lc fx.Lifecycle, vms screens) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			vms.Login.Close()
			vms.Opportunities.Close()
			vms.Applied.Close()
			vms.Notifications.Close()
			vms.Profile.Close()
			return nil
		},
	})
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	name, args := os.Args[1], os.Args[2:]
	cmd, ok := commands[name]
	if !ok {
		usage()
		os.Exit(2)
	}

	var s screens
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newTracer,
			newSessionStore,
			newNATSConnection,
			api.NewRestClient,
			api.NewJobOfferService,
			api.NewProfileService,
			api.NewStudentService,
			api.NewLoginService,
			webclient.NewJobOfferWebClient,
			webclient.NewProfileWebClient,
			webclient.NewStudentWebClient,
			webclient.NewLoginWebClient,
			repository.NewUserRepository,
			repository.NewJobOfferRepository,
			repository.NewProfileRepository,
			repository.NewAppliedOffersRepository,
			repository.NewNotificationRepository,
			repository.NewLoginRepository,
			viewmodel.NewLoginScreenViewModel,
			viewmodel.NewOpportunitiesViewModel,
			viewmodel.NewAppliedOffersViewModel,
			viewmodel.NewAppNotificationsViewModel,
			viewmodel.NewProfileViewModel,
			func() *validator.Validate { return validator.New() },
			func(vm *viewmodel.AppNotificationsViewModel) events.Pusher { return vm },
			func(vm *viewmodel.ProfileViewModel) screen.ProfileActions { return vm },
			func() screen.ContentResolver { return screen.FileResolver{} },
			screen.NewUploader,
			events.NewHandler,
			newPager,
		),
		fx.Invoke(
			func(handler *events.Handler, lc fx.Lifecycle) {
				handler.RegisterLifecycle(lc)
			},
			closeViewModels,
			func(deps screens) { s = deps },
		),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.run(ctx, s, args)
	stop()

	stopCtx := context.Background()
	if stopErr := app.Stop(stopCtx); stopErr != nil {
		s.Logger.Warn("failed to stop cleanly", zap.Error(stopErr))
	}
	_ = s.Logger.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "linkfatec %s: %v\n", name, err)
		os.Exit(1)
	}
}
