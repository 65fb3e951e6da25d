package main

import (
	"VCS_SMS_Fleet/internal/fleet/config"
	"VCS_SMS_Fleet/internal/fleet/executor"
	"VCS_SMS_Fleet/internal/fleet/health"
	"VCS_SMS_Fleet/internal/fleet/renewal"
	"VCS_SMS_Fleet/internal/fleet/repository"
	"VCS_SMS_Fleet/internal/fleet/service"
	"VCS_SMS_Fleet/pkg/infra"
	"VCS_SMS_Fleet/pkg/lock"
	"VCS_SMS_Fleet/pkg/logger"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// connectFleet wires the fleet service against postgres. The CLI is a single
// process, so entity locks are held in memory.
func connectFleet(ctx context.Context, envFile string) (service.FleetService, func(), error) {
	appConfig, err := config.LoadCLIConfig(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config error: %w", err)
	}

	var fileSyncer logger.FileSyncer
	if appConfig.Log.File != "" {
		fileSyncer, err = logger.NewFileSyncer(appConfig.Log.File, appConfig.Log.MaxSizeMB, appConfig.Log.MaxBackups, appConfig.Log.MaxAgeDays)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file error: %w", err)
		}
	}
	zapLogger := logger.NewLogger(appConfig.Log.Level, fileSyncer).With(zap.String("service.name", "fleetctl"))

	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:         appConfig.Postgres.Host,
		Port:         appConfig.Postgres.Port,
		User:         appConfig.Postgres.User,
		Password:     appConfig.Postgres.Password,
		DBName:       appConfig.Postgres.DBName,
		MaxOpenConns: appConfig.Postgres.MaxOpenConns,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres error: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql.DB from gorm error: %w", err)
	}

	historyRepo := repository.NewNopHistoryRepository()
	if len(appConfig.Elasticsearch.Addresses) > 0 {
		esClient, e := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
			Addresses: appConfig.Elasticsearch.Addresses,
			Username:  appConfig.Elasticsearch.Username,
			Password:  appConfig.Elasticsearch.Password,
		})
		if e != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("connect to elasticsearch error: %w", e)
		}
		if e = repository.EnsureHistoryIndices(ctx, esClient); e != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("create history indices error: %w", e)
		}
		historyRepo = repository.NewHistoryRepository(esClient)
	}

	sshExecutor, err := executor.NewSSHExecutor(executor.Config{
		ConnectTimeout: appConfig.SSH.ConnectTimeout,
		CommandTimeout: appConfig.SSH.CommandTimeout,
		KnownHostsPath: appConfig.SSH.KnownHostsPath,
	}, zapLogger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("create ssh executor error: %w", err)
	}

	serverRepo := repository.NewServerRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	renewalRepo := repository.NewRenewalRepository(db)
	fleetService := service.NewFleetService(
		serverRepo,
		serviceRepo,
		renewalRepo,
		historyRepo,
		health.NewChecker(sshExecutor, serviceRepo, serverRepo, zapLogger),
		renewal.NewRunner(sshExecutor, renewalRepo, zapLogger),
		lock.NewMemoryLocker(),
		nil,
		service.Options{
			SweepConcurrency: appConfig.Fleet.SweepConcurrency,
			LockTTL:          appConfig.Fleet.LockTTL,
		},
		zapLogger,
	)

	cleanup := func() {
		_ = zapLogger.Sync()
		_ = sqlDB.Close()
		if fileSyncer != nil {
			_ = fileSyncer.Close()
		}
	}
	return fleetService, cleanup, nil
}
