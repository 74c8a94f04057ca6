package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/mealplan/config"
	"github.com/tidepool-org/mealplan/errors"
	"github.com/tidepool-org/mealplan/logger"
	"github.com/tidepool-org/mealplan/mealplan/service"
)

func Start(e *echo.Echo, cfg *config.Config, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%v", cfg.HttpPort)); err != nil {
					fmt.Println(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// The calculator has no external dependencies to wait for,
			// so the service is ready as soon as the server is up.
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func NewServer(handler *Handler, healthCheck *HealthCheck, zapLogger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// Skip logging for the readiness probe
	skipper := RouteSkipper([]string{"/ready"})

	e.Use(middleware.Recover())
	e.Use(RequestLogger(zapLogger, skipper))

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	RegisterHandlers(e, handler)

	return e, nil
}

// Dependencies is the full DI graph of the meal plan service. CLI tools
// reuse it to run one-shot functions against the same constructors.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			config.NewFromEnv,
			logger.NewProductionLogger,
			logger.Suggar,
			service.NewService,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	options := append(
		Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(options...).Run()
}
