package job

import (
	"context"
	"errors"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/common/flag"
	"github.com/atlasledger/go-bank-recon/internal/common/log"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog/ctxdata"
	"github.com/atlasledger/go-bank-recon/internal/config"
	v1feed "github.com/atlasledger/go-bank-recon/internal/deliveries/job/v1/feed"
	v1recon "github.com/atlasledger/go-bank-recon/internal/deliveries/job/v1/recon"
	v1report "github.com/atlasledger/go-bank-recon/internal/deliveries/job/v1/report"
	"github.com/atlasledger/go-bank-recon/internal/repositories"
	"github.com/atlasledger/go-bank-recon/internal/services"

	"github.com/google/uuid"
)

type JobRoutes map[string]map[string]func(ctx context.Context, date time.Time, flag flag.Job) error

type Job struct {
	Routes JobRoutes
}

func New(cfg config.Config, srv *services.Services, cloudStorage repositories.CloudStorageRepository) *Job {
	v1group := "v1"

	v1routes := v1report.Routes(srv.Matching)
	for name, fn := range v1recon.Routes(srv.Matching, srv.Recon) {
		v1routes[name] = fn
	}
	for name, fn := range v1feed.Routes(srv.Feed, cloudStorage) {
		v1routes[name] = fn
	}

	jobRoutes := JobRoutes{
		v1group: v1routes,
		// add other version routes
	}

	return &Job{jobRoutes}
}

func (j *Job) Start(ctx context.Context, flag flag.Job) {
	if fn, ok := j.Routes[flag.Version][flag.JobName]; ok {
		var (
			runningDate time.Time
			err         error
		)
		ctx = ctxdata.Sets(ctx, ctxdata.SetCorrelationId(uuid.New().String()))

		defer func() {
			log.LogJob(ctx, flag.JobName, flag.Version, flag.Date, err)
		}()

		if flag.Date != "" {
			runningDate, err = time.Parse(common.DateFormatYYYYMMDD, flag.Date)
			if err != nil {
				return
			}
		}
		if err = fn(ctx, runningDate, flag); err != nil {
			return
		}
	} else {
		log.LogJob(ctx, flag.JobName, flag.Version, flag.Date, errors.New("invalid version or job name"))
	}
}
