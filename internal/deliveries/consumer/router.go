package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/atlasledger/go-bank-recon/internal/common/graceful"
	cMetrics "github.com/atlasledger/go-bank-recon/internal/common/metrics"
	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/deliveries/http/health"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		return s.e.Shutdown(ctx)
	}
}

// NewHTTPServer serves the liveness and metrics endpoints while a consumer runs.
func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
) *svc {
	app := echo.New()
	svc := &svc{e: app, addr: fmt.Sprintf(":%d", conf.MessageBroker.HTTPPort), gracefulTimeout: conf.App.GracefulTimeout}

	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(cMetrics.BuildFQName(conf.App.Name, "consumer")))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	return svc
}
