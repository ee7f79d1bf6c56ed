package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"pulse/config"
	"pulse/internal/delivery"
	"pulse/internal/delivery/http"
	"pulse/internal/delivery/http/router/handler"
	"pulse/internal/delivery/notifier"
	"pulse/internal/domain/service"
	logs "pulse/internal/infra/log"
	"pulse/internal/infra/notification"
	"pulse/internal/infra/persistence/postgres"
	"pulse/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		newPushConfig,
		logs.New,
		context.Background,
		postgres.New,
	)
}

// newPushConfig exposes the dispatch loop settings as a standalone dependency.
func newPushConfig(cfg *config.Config) config.PushConfig {
	return cfg.Push
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewParticipantRepository,
			postgres.NewStudyRepository,
			postgres.NewSurveyRepository,
			postgres.NewScheduleRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPushGateway,
		),
	)
}

// newPushGateway creates the FCM gateway. Without Firebase credentials the
// gateway starts unconfigured and dispatch cycles are skipped.
func newPushGateway(ctx context.Context, cfg *config.Config) (service.PushGateway, error) {
	gateway, err := notification.NewFirebaseGateway(ctx, cfg.Firebase)
	if err != nil {
		return nil, fmt.Errorf("failed to create push gateway: %w", err)
	}

	return gateway, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewScheduleService,
			impl.NewDispatchService,
			impl.NewDeviceService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				notifier.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
