package main

import (
	"context"
	"log/slog"
	"os"

	"nutribalance/config"
	"nutribalance/internal/delivery"
	"nutribalance/internal/delivery/http"
	"nutribalance/internal/delivery/http/middleware"
	"nutribalance/internal/delivery/http/router/handler"
	"nutribalance/internal/domain/service"
	"nutribalance/internal/infra/advisor"
	"nutribalance/internal/infra/localstore"
	logs "nutribalance/internal/infra/log"
	"nutribalance/internal/infra/reference"
	"nutribalance/internal/usecase/impl"

	"github.com/pkg/errors"
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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		localstore.New,
		reference.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newAdvisorService,
		),
	)
}

// newAdvisorService creates the Gemini advisor when credentials are
// configured. Without an API key the coaching endpoints stay up and serve
// the fallback reply.
func newAdvisorService(ctx context.Context, cfg *config.Config) (service.AdvisorService, error) {
	if cfg.Gemini == nil || cfg.Gemini.APIKey == "" {
		return nil, nil // Advisor is optional
	}

	svc, err := advisor.New(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create advisor service")
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTrackerService,
			impl.NewAdviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewMealHandler,
			handler.NewExerciseHandler,
			handler.NewSummaryHandler,
			handler.NewAdviceHandler,
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
