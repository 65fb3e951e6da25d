package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ServiceConfig configures cmd/fleet-service.
type ServiceConfig struct {
	Server        ServerConfig
	Log           LogConfig
	SSH           SSHConfig
	Fleet         FleetConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Elasticsearch ElasticsearchConfig
	Mail          MailConfig
}

// SchedulerConfig configures cmd/scheduler.
type SchedulerConfig struct {
	Log       LogConfig
	Scheduler SchedulingConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
}

// WorkerConfig configures cmd/fleet-worker.
type WorkerConfig struct {
	Log           LogConfig
	SSH           SSHConfig
	Fleet         FleetConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Elasticsearch ElasticsearchConfig
	Kafka         KafkaConfig
	Worker        WorkerJobConfig
}

// CLIConfig configures cmd/fleetctl. Redis is not used and history is only
// recorded when ELASTICSEARCH_ADDRESSES is set.
type CLIConfig struct {
	Log           LogConfig
	SSH           SSHConfig
	Fleet         FleetConfig
	Postgres      PostgresConfig
	Elasticsearch OptionalElasticsearchConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	APIToken string `envconfig:"API_TOKEN"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"0"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"7"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"30"`
}

type SSHConfig struct {
	ConnectTimeout time.Duration `envconfig:"SSH_CONNECT_TIMEOUT" default:"10s"`
	CommandTimeout time.Duration `envconfig:"SSH_COMMAND_TIMEOUT" default:"60s"`
	KnownHostsPath string        `envconfig:"SSH_KNOWN_HOSTS"`
}

type FleetConfig struct {
	SweepConcurrency int           `envconfig:"SWEEP_CONCURRENCY" default:"10"`
	LockTTL          time.Duration `envconfig:"LOCK_TTL" default:"10m"`
	ServerCacheTTL   time.Duration `envconfig:"SERVER_CACHE_TTL" default:"5m"`
	ReportSchedule   string        `envconfig:"REPORT_SCHEDULE" default:"0 0 * * *"`
}

type SchedulingConfig struct {
	TickInterval      time.Duration `envconfig:"SCHEDULER_TICK_INTERVAL" default:"30s"`
	DueBatchSize      int           `envconfig:"SCHEDULER_DUE_BATCH_SIZE" default:"100"`
	DispatchBackoff   time.Duration `envconfig:"SCHEDULER_DISPATCH_BACKOFF" default:"5m"`
	StaleRenewalAfter time.Duration `envconfig:"SCHEDULER_STALE_RENEWAL_AFTER" default:"1h"`
	SweepSchedule     string        `envconfig:"SCHEDULER_SWEEP_SCHEDULE" default:"*/5 * * * *"`
}

type PostgresConfig struct {
	Host         string `envconfig:"POSTGRES_HOST" required:"true"`
	Port         int    `envconfig:"POSTGRES_PORT" required:"true"`
	User         string `envconfig:"POSTGRES_USER" required:"true"`
	Password     string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName       string `envconfig:"POSTGRES_DB" required:"true"`
	MaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"20"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" required:"true"`
	Port     int    `envconfig:"REDIS_PORT" required:"true"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
	Username  string   `envconfig:"ELASTICSEARCH_USERNAME"`
	Password  string   `envconfig:"ELASTICSEARCH_PASSWORD"`
}

type OptionalElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES"`
	Username  string   `envconfig:"ELASTICSEARCH_USERNAME"`
	Password  string   `envconfig:"ELASTICSEARCH_PASSWORD"`
}

type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL" required:"true"`
	Username         string `envconfig:"MAIL_USERNAME"`
	Password         string `envconfig:"MAIL_PASSWORD" required:"true"`
	Host             string `envconfig:"MAIL_HOST" required:"true"`
	Port             int    `envconfig:"MAIL_PORT" required:"true"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL" required:"true"`
}

type KafkaConfig struct {
	Brokers         []string `envconfig:"KAFKA_BROKERS" required:"true"`
	JobTopic        string   `envconfig:"KAFKA_JOB_TOPIC" default:"fleet.jobs"`
	ConsumerGroupID string   `envconfig:"KAFKA_CONSUMER_GROUP_ID" default:"fleet-worker"`
	ConsumerCnt     int      `envconfig:"KAFKA_CONSUMER_CNT" default:"4"`
}

type WorkerJobConfig struct {
	JobTimeout      time.Duration `envconfig:"WORKER_JOB_TIMEOUT" default:"10m"`
	JobMaxAttempts  int           `envconfig:"WORKER_JOB_MAX_ATTEMPTS" default:"3"`
	JobRetryBackoff time.Duration `envconfig:"WORKER_JOB_RETRY_BACKOFF" default:"5s"`
	MetricsPort     string        `envconfig:"WORKER_METRICS_PORT" default:"9102"`
}

func LoadServiceConfig(path string) (ServiceConfig, error) {
	return load[ServiceConfig](path)
}

func LoadSchedulerConfig(path string) (SchedulerConfig, error) {
	return load[SchedulerConfig](path)
}

func LoadWorkerConfig(path string) (WorkerConfig, error) {
	return load[WorkerConfig](path)
}

func LoadCLIConfig(path string) (CLIConfig, error) {
	return load[CLIConfig](path)
}

func load[T any](path string) (T, error) {
	_ = godotenv.Load(path)

	var cfg T
	err := envconfig.Process("", &cfg)
	return cfg, err
}
