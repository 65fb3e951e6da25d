package main

import (
	"VCS_SMS_Fleet/internal/fleet/api/routes"
	"VCS_SMS_Fleet/internal/fleet/config"
	"VCS_SMS_Fleet/internal/fleet/executor"
	"VCS_SMS_Fleet/internal/fleet/health"
	"VCS_SMS_Fleet/internal/fleet/metrics"
	"VCS_SMS_Fleet/internal/fleet/renewal"
	"VCS_SMS_Fleet/internal/fleet/repository"
	"VCS_SMS_Fleet/internal/fleet/service"
	"VCS_SMS_Fleet/internal/worker"
	"VCS_SMS_Fleet/pkg/infra"
	"VCS_SMS_Fleet/pkg/lock"
	"VCS_SMS_Fleet/pkg/logger"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadWorkerConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	logFile := appConfig.Log.File
	if logFile == "" {
		logFile = "./log/fleet-worker.log"
	}
	fileSyncer, err := logger.NewFileSyncer(logFile, appConfig.Log.MaxSizeMB, appConfig.Log.MaxBackups, appConfig.Log.MaxAgeDays)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Log.Level, fileSyncer).With(zap.String("service.name", "fleet-worker"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	//set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:         appConfig.Postgres.Host,
		Port:         appConfig.Postgres.Port,
		User:         appConfig.Postgres.User,
		Password:     appConfig.Postgres.Password,
		DBName:       appConfig.Postgres.DBName,
		MaxOpenConns: appConfig.Postgres.MaxOpenConns,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	//set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host:     appConfig.Redis.Host,
		Port:     appConfig.Redis.Port,
		Password: appConfig.Redis.Password,
		DB:       appConfig.Redis.DB,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	//set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
		Username:  appConfig.Elasticsearch.Username,
		Password:  appConfig.Elasticsearch.Password,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}
	esCtx, esCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err = repository.EnsureHistoryIndices(esCtx, esClient); err != nil {
		zapLogger.Fatal("failed to create history indices", zap.Error(err))
	}
	esCancel()

	if err = metrics.Register(prometheus.DefaultRegisterer); err != nil {
		zapLogger.Fatal("failed to register metrics", zap.Error(err))
	}

	// set up dependencies
	sshExecutor, err := executor.NewSSHExecutor(executor.Config{
		ConnectTimeout: appConfig.SSH.ConnectTimeout,
		CommandTimeout: appConfig.SSH.CommandTimeout,
		KnownHostsPath: appConfig.SSH.KnownHostsPath,
	}, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to create ssh executor", zap.Error(err))
	}
	serverRepo := repository.NewCachedServerRepository(redisClient, repository.NewServerRepository(db), appConfig.Fleet.ServerCacheTTL, zapLogger)
	serviceRepo := repository.NewServiceRepository(db)
	renewalRepo := repository.NewRenewalRepository(db)
	// the worker never sends reports, so it has no mail sender
	fleetService := service.NewFleetService(
		serverRepo,
		serviceRepo,
		renewalRepo,
		repository.NewHistoryRepository(esClient),
		health.NewChecker(sshExecutor, serviceRepo, serverRepo, zapLogger),
		renewal.NewRunner(sshExecutor, renewalRepo, zapLogger),
		lock.NewRedisLocker(redisClient, "fleet:lock:"),
		nil,
		service.Options{
			SweepConcurrency: appConfig.Fleet.SweepConcurrency,
			LockTTL:          appConfig.Fleet.LockTTL,
		},
		zapLogger,
	)

	consumers := make([]worker.JobConsumer, appConfig.Kafka.ConsumerCnt)
	for i := 0; i < appConfig.Kafka.ConsumerCnt; i++ {
		consumers[i] = worker.NewJobConsumer(
			infra.NewKafkaReader(appConfig.Kafka.Brokers, appConfig.Kafka.ConsumerGroupID, appConfig.Kafka.JobTopic),
			fleetService,
			worker.Options{
				JobTimeout:   appConfig.Worker.JobTimeout,
				MaxAttempts:  appConfig.Worker.JobMaxAttempts,
				RetryBackoff: appConfig.Worker.JobRetryBackoff,
			},
			zapLogger,
		)
		consumers[i].Start()
	}
	zapLogger.Info(fmt.Sprintf("started %d job consumers", appConfig.Kafka.ConsumerCnt))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.AddMetricsRoute(r, metrics.Handler())
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Worker.MetricsPort),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting metrics server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Error("failed to start metrics server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down worker...")
	for i := 0; i < appConfig.Kafka.ConsumerCnt; i++ {
		consumers[i].Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("metrics server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("worker exiting")
}
