package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	genericCache "github.com/atlasledger/go-bank-recon/internal/common/cache"
	"github.com/atlasledger/go-bank-recon/internal/common/graceful"
	"github.com/atlasledger/go-bank-recon/internal/common/idgenerator"
	"github.com/atlasledger/go-bank-recon/internal/common/ledger"
	cMetrics "github.com/atlasledger/go-bank-recon/internal/common/metrics"
	"github.com/atlasledger/go-bank-recon/internal/common/publisher"
	"github.com/atlasledger/go-bank-recon/internal/common/retry"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/repositories"
	"github.com/atlasledger/go-bank-recon/internal/services"

	"cloud.google.com/go/compute/metadata"
	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := xlog.DebugLogLevel()
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}

	if slices.Contains(excludedDebugLevelOnEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logLevel = xlog.InfoLogLevel()
	}

	xlog.Init(cfg.App.Name,
		xlog.WithLogToOption(cfg.App.LogOption),
		xlog.WithLogEnvOption(cfg.App.Env),
		xlog.WithCaller(true),
		xlog.AddCallerSkip(2),
		logLevel)

	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	projectID := cfg.GcloudProjectID
	if projectID == "" {
		projectID, _ = metadata.ProjectID()
		cfg.GcloudProjectID = projectID
		xlog.Info(ctx, "can not determine google cloud project, for local use set the gcloud_project_id in config json")
	}

	newRelic := setupNR(ctx, cfg)

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// connect to redis
	cache := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = cache.Ping(ctx).Result()
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

	if mtc != nil {
		// register DB write stat prometheus metrics
		err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}
		// register DB read stat prometheus metrics
		err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}

		// register redis prometheus metrics
		err = mtc.RegisterRedis(cache, cfg.App.Name, command)
		if err != nil {
			err = fmt.Errorf("failed register redis prometheus: %w", err)
			return
		}
	}

	// account types never change on the ledger side, sharing them through
	// redis saves every process the warmup lookups
	cacheAccountType := genericCache.NewRedisClient[string](cache)

	ledgerClient := ledger.New(cfg.Ledger, mtc, cacheAccountType)

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	cacheRepo := repositories.NewCacheRepository(cache)

	cloudStorageRepo, err := repositories.NewCloudStorageRepository(&cfg)
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cloudStorageRepo.Close() })

	idGenerator := idgenerator.New()
	retryer := retry.NewExponentialBackOff(&cfg.ExponentialBackoff)

	producer, err := publisher.NewKafkaSyncProducer(cfg.MessageBroker.KafkaConsumer.Brokers)
	if err != nil {
		err = fmt.Errorf("unable to create create client kafka sync producer: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

	reconCompletedPub := publisher.NewPublisher(producer, cfg.MessageBroker.KafkaConsumer.TopicReconCompleted)

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		cloudStorageRepo,
		ledgerClient,
		reconCompletedPub,
		idGenerator,
		retryer,
		mtc,
	)

	return &Setup{
		Config:           cfg,
		NewRelic:         newRelic,
		WriteDB:          writeDB,
		ReadDB:           readDB,
		Cache:            cache,
		Service:          srv,
		RepoCache:        cacheRepo,
		RepoCloudStorage: cloudStorageRepo,
		Metrics:          mtc,
	}, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env == config.PROD_ENV {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.App.Name),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			func(config *newrelic.Config) {
				config.Logger = nrzap.Transform(xlog.Base())
			},
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
			return nil
		}
		if err = app.WaitForConnection(15 * time.Second); nil != err {
			xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
		}
		return app
	}
	return nil
}
