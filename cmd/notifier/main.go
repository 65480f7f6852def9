package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"trafficalert/config"
	"trafficalert/internal/delivery"
	"trafficalert/internal/delivery/api"
	"trafficalert/internal/delivery/api/router/handler"
	"trafficalert/internal/delivery/scheduler"
	"trafficalert/internal/domain/service"
	"trafficalert/internal/infra/geo"
	logs "trafficalert/internal/infra/log"
	"trafficalert/internal/infra/persistence/postgres"
	"trafficalert/internal/infra/pubsub"
	"trafficalert/internal/infra/sr"
	"trafficalert/internal/infra/transport"
	"trafficalert/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSubscriberRepository,
			postgres.NewPollCursorRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			sr.NewClient,
			newFeedSource,
			geo.NewGeoClassifier,
			pubsub.NewEventPublisher,
			transport.NewChannelTransport,
		),
	)
}

// newFeedSource exposes the SR client as the dispatch loop's feed
func newFeedSource(client *sr.Client) service.FeedSource {
	return client
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMessageFormatter,
			impl.NewNotificationSender,
			impl.NewDispatchService,
			impl.NewSubscriberService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSubscriberHandler,
			handler.NewDispatchHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
