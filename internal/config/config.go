package config

import (
	"time"
)

type (
	Config struct {
		App                App      `json:"app"`
		Postgres           Postgres `json:"postgres"`
		Redis              Redis    `json:"redis"`
		SecretKey          string   `json:"secret_key"`
		GcloudProjectID    string   `json:"gcloud_project_id"`
		NewRelicLicenseKey string   `json:"new_relic_license_key"`

		FeatureFlag        FeatureFlag              `json:"feature_flag"`
		Ledger             LedgerConfig             `json:"ledger"`
		Matching           MatchingConfig           `json:"matching"`
		Reconciler         ReconcilerConfig         `json:"reconciler"`
		MessageBroker      MessageBroker            `json:"message_broker"`
		CloudStorageConfig CloudStorageConfig       `json:"cloud_storage"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	FeatureFlag struct {
		EnableCombinationMatching   bool `json:"enable_combination_matching"`
		EnablePartnerTagging        bool `json:"enable_partner_tagging"`
		EnablePublishReconCompleted bool `json:"enable_publish_recon_completed"`
		EnableReportExport          bool `json:"enable_report_export"`
	}

	// LedgerConfig configures the JSON-RPC connection to the accounting
	// ledger. Username and APIKey authenticate once per process, the uid
	// returned by the ledger is cached on the client.
	LedgerConfig struct {
		BaseURL       string        `json:"base_url"`
		Database      string        `json:"database"`
		Username      string        `json:"username"`
		APIKey        string        `json:"api_key"`
		CompanyID     int64         `json:"company_id"`
		RetryCount    int           `json:"retry_count"`
		RetryWaitTime int           `json:"retry_wait_time"`
		Timeout       time.Duration `json:"timeout"`
	}

	MatchingConfig struct {
		// MaxCombinationSize caps the subset size the combination matcher
		// will explore. Anything above 6 gets expensive on large batches.
		MaxCombinationSize   int     `json:"max_combination_size"`
		PartnerNameThreshold float64 `json:"partner_name_threshold"`
		MinSharedKeywords    int     `json:"min_shared_keywords"`
		KeywordOverlapRatio  float64 `json:"keyword_overlap_ratio"`
		WorkerCount          int     `json:"worker_count"`
		BatchSize            int     `json:"batch_size"`
	}

	ReconcilerConfig struct {
		// BalanceTolerance is the absolute drift allowed between the two
		// sides of a ledger entry before a warning is logged.
		BalanceTolerance float64       `json:"balance_tolerance"`
		HandlerTimeout   time.Duration `json:"handler_timeout"`
		SettledGuardTTL  time.Duration `json:"settled_guard_ttl"`
	}

	MessageBroker struct {
		HTTPPort      int            `json:"http_port"`
		KafkaConsumer ConsumerConfig `json:"kafka_consumer"`
	}

	ConsumerConfig struct {
		Brokers                 []string `json:"brokers"`
		ConsumerGroupReconBatch string   `json:"consumer_group_recon_batch"`
		TopicReconBatch         string   `json:"topic_recon_batch"`
		TopicReconBatchDLQ      string   `json:"topic_recon_batch_dlq"`
		TopicReconCompleted     string   `json:"topic_recon_completed"`
		Assignor                string   `json:"assignor"`
		IsOldest                bool     `json:"is_oldest"`
		IsVerbose               bool     `json:"is_verbose"`
	}

	CloudStorageConfig struct {
		BaseURL    string `json:"base_url"`
		BucketName string `json:"bucket_name"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}
)
