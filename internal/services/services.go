package services

import (
	"github.com/atlasledger/go-bank-recon/internal/common/idgenerator"
	"github.com/atlasledger/go-bank-recon/internal/common/ledger"
	"github.com/atlasledger/go-bank-recon/internal/common/metrics"
	"github.com/atlasledger/go-bank-recon/internal/common/publisher"
	"github.com/atlasledger/go-bank-recon/internal/common/retry"
	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo      repositories.SQLRepository
	cacheRepo    repositories.CacheRepository
	cloudStorage repositories.CloudStorageRepository

	ledgerClient ledger.Client
	reconPub     publisher.Publisher
	idgenerator  idgenerator.Generator
	retryer      retry.Retryer
	metrics      metrics.Metrics

	common service

	Matching *matching
	Recon    *recon
	Feed     *feed
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	cloudStorage repositories.CloudStorageRepository,
	ledgerClient ledger.Client,
	reconPub publisher.Publisher,
	idgenerator idgenerator.Generator,
	retryer retry.Retryer,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:         conf,
		sqlRepo:      sqlRepo,
		cacheRepo:    cacheRepo,
		cloudStorage: cloudStorage,
		ledgerClient: ledgerClient,
		reconPub:     reconPub,
		idgenerator:  idgenerator,
		retryer:      retryer,
		metrics:      metrics,
	}
	srv.common.srv = srv
	srv.Matching = (*matching)(&srv.common)
	srv.Recon = (*recon)(&srv.common)
	srv.Feed = (*feed)(&srv.common)

	return srv
}
