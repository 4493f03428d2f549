package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common/graceful"
	commonhttp "github.com/atlasledger/go-bank-recon/internal/common/http"
	"github.com/atlasledger/go-bank-recon/internal/common/http/middleware"
	cMetrics "github.com/atlasledger/go-bank-recon/internal/common/metrics"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/deliveries/http/health"
	"github.com/atlasledger/go-bank-recon/internal/repositories"
	"github.com/atlasledger/go-bank-recon/internal/services"

	v1matching "github.com/atlasledger/go-bank-recon/internal/deliveries/http/v1/matching"
	v1reconciliation "github.com/atlasledger/go-bank-recon/internal/deliveries/http/v1/reconciliation"

	"github.com/atlasledger/go-bank-recon/internal/common/xlog/ctxdata"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	echoSwagger "github.com/swaggo/echo-swagger"

	// for swagger docs
	_ "github.com/atlasledger/go-bank-recon/docs"
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
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// @title GO BANK RECON API DOCUMENTATION
// @version 1.0
// @description This is a go bank recon api docs.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:9567
// @BasePath /api
// @schemes http
func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	cacheRepo repositories.CacheRepository,
	matchingService services.MatchingService,
	reconService services.ReconService,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, cacheRepo)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context(conf.GcloudProjectID))
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", ctxdata.GetCorrelationId(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(cMetrics.FlattenName(conf.App.Name)))
	app.GET("/metrics", echoprometheus.NewHandler())

	// swagger
	app.GET("/swagger/*", echoSwagger.WrapHandler)

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")

	// v1Group middleware
	v1Group.Use(m.InternalAuth())
	// v1Group register api
	v1matching.New(v1Group, matchingService)
	v1reconciliation.New(v1Group, reconService, &m, conf.Reconciler.HandlerTimeout)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
