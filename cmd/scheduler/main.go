package main

import (
	"VCS_SMS_Fleet/internal/fleet/config"
	"VCS_SMS_Fleet/internal/fleet/repository"
	"VCS_SMS_Fleet/internal/scheduler/scheduler"
	"VCS_SMS_Fleet/pkg/infra"
	"VCS_SMS_Fleet/pkg/lock"
	"VCS_SMS_Fleet/pkg/logger"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadSchedulerConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	logFile := appConfig.Log.File
	if logFile == "" {
		logFile = "./log/scheduler.log"
	}
	fileSyncer, err := logger.NewFileSyncer(logFile, appConfig.Log.MaxSizeMB, appConfig.Log.MaxBackups, appConfig.Log.MaxAgeDays)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Log.Level, fileSyncer).With(zap.String("service.name", "scheduler"))
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

	s := scheduler.NewJobScheduler(
		zapLogger,
		repository.NewRenewalRepository(db),
		repository.NewServerRepository(db),
		lock.NewRedisLocker(redisClient, "fleet:lock:"),
		infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.JobTopic),
		scheduler.Options{
			TickInterval:      appConfig.Scheduler.TickInterval,
			DueBatchSize:      appConfig.Scheduler.DueBatchSize,
			DispatchBackoff:   appConfig.Scheduler.DispatchBackoff,
			StaleRenewalAfter: appConfig.Scheduler.StaleRenewalAfter,
			SweepSchedule:     appConfig.Scheduler.SweepSchedule,
		},
	)
	if err = s.Start(); err != nil {
		zapLogger.Fatal("failed to start scheduler", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down scheduler...")
	s.Stop()
	zapLogger.Info("scheduler exiting")
}
