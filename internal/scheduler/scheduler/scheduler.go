package scheduler

import (
	"VCS_SMS_Fleet/internal/fleet/jobs"
	"VCS_SMS_Fleet/internal/fleet/repository"
	"VCS_SMS_Fleet/pkg/infra"
	"VCS_SMS_Fleet/pkg/lock"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const staleRenewalReason = "Renewal interrupted before completion"

type JobScheduler interface {
	Start() error
	Stop()
}

type Options struct {
	TickInterval      time.Duration
	DueBatchSize      int
	DispatchBackoff   time.Duration
	StaleRenewalAfter time.Duration
	SweepSchedule     string
}

type jobScheduler struct {
	ticker      *time.Ticker
	cron        *cron.Cron
	stopChan    chan struct{}
	renewalRepo repository.RenewalRepository
	serverRepo  repository.ServerRepository
	locker      lock.Locker
	kafka       infra.KafkaWriter
	opts        Options
	now         func() time.Time
	logger      *zap.Logger
}

func dispatchKey(renewalID string) string {
	return "dispatch:renewal:" + renewalID
}

func (s *jobScheduler) Start() error {
	if s.opts.SweepSchedule != "" {
		if _, err := s.cron.AddFunc(s.opts.SweepSchedule, s.sweep); err != nil {
			return fmt.Errorf("jobScheduler.Start: %w", err)
		}
	}
	s.cron.Start()
	go func() {
		s.ticker = time.NewTicker(s.opts.TickInterval)
		defer s.ticker.Stop()
		for {
			select {
			case <-s.ticker.C:
				s.onTick()
			case <-s.stopChan:
				<-s.cron.Stop().Done()
				s.kafka.Close()
				return
			}
		}
	}()
	return nil
}

func (s *jobScheduler) Stop() {
	s.stopChan <- struct{}{}
}

// onTick fails renewals stuck in running, then publishes one job per due renewal.
// A renewal published within the dispatch backoff is not published again.
func (s *jobScheduler) onTick() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	now := s.now()

	if s.opts.StaleRenewalAfter > 0 {
		n, err := s.renewalRepo.FailStaleRenewals(ctx, now.Add(-s.opts.StaleRenewalAfter), staleRenewalReason)
		if err != nil {
			s.logger.Error("failed to fail stale renewals", zap.Error(fmt.Errorf("jobScheduler.onTick: %w", err)))
		} else if n > 0 {
			s.logger.Warn("stale renewals marked failed", zap.Int64("count", n))
		}
	}

	renewals, err := s.renewalRepo.GetDueRenewals(ctx, now, s.opts.DueBatchSize)
	if err != nil {
		s.logger.Error("failed to fetch due renewals", zap.Error(fmt.Errorf("jobScheduler.onTick: %w", err)))
		return
	}
	if len(renewals) == 0 {
		return
	}

	var messages []kafka.Message
	var releases []lock.Release
	for _, r := range renewals {
		release, e := s.locker.Acquire(ctx, dispatchKey(r.ID), s.opts.DispatchBackoff)
		if e != nil {
			if !errors.Is(e, lock.ErrNotAcquired) {
				s.logger.Error("failed to acquire dispatch lock", zap.Error(fmt.Errorf("jobScheduler.onTick: %w", e)), zap.String("renewal_id", r.ID))
			}
			continue
		}
		m, e := jobs.New(jobs.KindExecuteRenewal, r.ID, now).Message()
		if e != nil {
			s.logger.Error("failed to encode job", zap.Error(fmt.Errorf("jobScheduler.onTick: %w", e)), zap.String("renewal_id", r.ID))
			_ = release(context.WithoutCancel(ctx))
			continue
		}
		messages = append(messages, m)
		releases = append(releases, release)
	}
	if len(messages) == 0 {
		return
	}

	if err = s.kafka.WriteMessages(ctx, messages...); err != nil {
		s.logger.Error("failed to write messages to kafka", zap.Error(fmt.Errorf("jobScheduler.onTick: %w", err)))
		for _, release := range releases {
			_ = release(context.WithoutCancel(ctx))
		}
		return
	}
	s.logger.Info("renewal jobs dispatched", zap.Int("count", len(messages)))
}

// sweep publishes a check_server job for every server.
func (s *jobScheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	now := s.now()

	servers, err := s.serverRepo.GetServers(ctx)
	if err != nil {
		s.logger.Error("failed to fetch servers", zap.Error(fmt.Errorf("jobScheduler.sweep: %w", err)))
		return
	}
	if len(servers) == 0 {
		return
	}
	messages := make([]kafka.Message, 0, len(servers))
	for _, server := range servers {
		m, e := jobs.New(jobs.KindCheckServer, server.ID, now).Message()
		if e != nil {
			s.logger.Error("failed to encode job", zap.Error(fmt.Errorf("jobScheduler.sweep: %w", e)), zap.String("server_id", server.ID))
			continue
		}
		messages = append(messages, m)
	}
	if err = s.kafka.WriteMessages(ctx, messages...); err != nil {
		s.logger.Error("failed to write messages to kafka", zap.Error(fmt.Errorf("jobScheduler.sweep: %w", err)))
		return
	}
	s.logger.Info("server sweep dispatched", zap.Int("count", len(messages)))
}

func NewJobScheduler(logger *zap.Logger, renewalRepo repository.RenewalRepository, serverRepo repository.ServerRepository, locker lock.Locker, kafka infra.KafkaWriter, opts Options) JobScheduler {
	if opts.TickInterval <= 0 {
		opts.TickInterval = 30 * time.Second
	}
	if opts.DueBatchSize <= 0 {
		opts.DueBatchSize = 100
	}
	if opts.DispatchBackoff <= 0 {
		opts.DispatchBackoff = 5 * time.Minute
	}
	return &jobScheduler{
		cron:        cron.New(),
		stopChan:    make(chan struct{}),
		renewalRepo: renewalRepo,
		serverRepo:  serverRepo,
		locker:      locker,
		kafka:       kafka,
		opts:        opts,
		now:         time.Now,
		logger:      logger,
	}
}
