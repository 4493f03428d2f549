package setup

import (
	"database/sql"

	cMetrics "github.com/atlasledger/go-bank-recon/internal/common/metrics"
	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/repositories"
	"github.com/atlasledger/go-bank-recon/internal/services"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
)

// Setup is the shared dependency contract handed to every entrypoint.
type Setup struct {
	Config           config.Config
	NewRelic         *newrelic.Application
	WriteDB          *sql.DB
	ReadDB           *sql.DB
	Cache            *redis.Client
	RepoCache        repositories.CacheRepository
	RepoCloudStorage repositories.CloudStorageRepository
	Service          *services.Services
	Metrics          cMetrics.Metrics
}
