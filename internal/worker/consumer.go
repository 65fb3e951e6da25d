package worker

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/jobs"
	"VCS_SMS_Fleet/internal/fleet/service"
	"VCS_SMS_Fleet/pkg/infra"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type JobConsumer interface {
	Start()
	Stop()
}

type Options struct {
	JobTimeout time.Duration
	// MaxAttempts bounds how often a job failing on infrastructure errors is run
	// before its message is committed anyway.
	MaxAttempts int
	// RetryBackoff is the wait before the second attempt; it doubles after each failure.
	RetryBackoff time.Duration
}

type jobConsumer struct {
	kafkaReader  infra.KafkaReader
	fleetService service.FleetService
	opts         Options
	stopCtx      context.Context
	stop         context.CancelFunc
	logger       *zap.Logger
}

func (j *jobConsumer) Start() {
	go func() {
		for {
			m, err := j.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("jobConsumer.Start: %w", err)
				j.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			if m.Value == nil {
				j.commit(m)
				continue
			}
			job, err := jobs.Decode(m.Value)
			if err != nil {
				err = fmt.Errorf("jobConsumer.Start: %w", err)
				j.logger.Log(zap.ErrorLevel, "failed to decode job", zap.Error(err))
				j.commit(m)
				continue
			}
			if !j.process(job) {
				// stopping; the uncommitted message is fetched again after restart
				return
			}
			j.commit(m)
		}
	}()
}

// process runs the job until it is final or out of attempts. Kafka offsets are
// monotonic, so a job skipped here would be acknowledged by the next commit; an
// exhausted renewal job is published again by the scheduler while it stays due.
// It returns false when the consumer is stopped while waiting to retry.
func (j *jobConsumer) process(job jobs.Job) bool {
	backoff := j.opts.RetryBackoff
	for attempt := 1; ; attempt++ {
		if j.handle(job) {
			return true
		}
		if attempt >= j.opts.MaxAttempts {
			j.logger.Error("giving up on job",
				zap.String("job_id", job.ID),
				zap.String("kind", string(job.Kind)),
				zap.String("entity_id", job.EntityID),
				zap.Int("attempts", attempt))
			return true
		}
		timer := time.NewTimer(backoff)
		select {
		case <-j.stopCtx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
		backoff *= 2
	}
}

// handle runs the job and reports whether its message may be committed.
// Outcomes that are already persisted, busy entities and deleted entities are final.
func (j *jobConsumer) handle(job jobs.Job) bool {
	ctx, cancel := context.WithTimeout(context.Background(), j.opts.JobTimeout)
	defer cancel()
	fields := []zap.Field{zap.String("job_id", job.ID), zap.String("kind", string(job.Kind)), zap.String("entity_id", job.EntityID)}

	var err error
	switch job.Kind {
	case jobs.KindExecuteRenewal:
		executed, res, e := j.fleetService.ExecuteRenewalIfDue(ctx, job.EntityID)
		err = e
		if err == nil {
			if executed {
				j.logger.Info("renewal executed", append(fields, zap.String("status", string(res.Status)))...)
			} else {
				j.logger.Debug("renewal no longer due", fields...)
			}
			return true
		}
		if !res.ExecutedAt.IsZero() {
			j.logger.Warn("renewal failed", append(fields, zap.Error(err))...)
			return true
		}
	case jobs.KindCheckServer:
		var res service.SweepResult
		res, err = j.fleetService.SweepServer(ctx, job.EntityID)
		if err == nil {
			if res.Err != nil {
				j.logger.Warn("server sweep finished with failures", append(fields, zap.Error(res.Err))...)
			} else {
				j.logger.Info("server sweep finished", append(fields, zap.Int("services", len(res.Services)))...)
			}
			return true
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrEntityBusy):
		j.logger.Info("job skipped, entity busy", fields...)
		return true
	case errors.Is(err, apperrors.ErrRenewalNotFound), errors.Is(err, apperrors.ErrServerNotFound):
		j.logger.Info("job skipped, entity deleted", fields...)
		return true
	}
	err = fmt.Errorf("jobConsumer.handle: %w", err)
	j.logger.Log(zap.ErrorLevel, "failed to run job", append(fields, zap.Error(err))...)
	return false
}

func (j *jobConsumer) commit(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := j.kafkaReader.CommitMessages(ctx, m); err != nil {
		err = fmt.Errorf("jobConsumer.commit: %w", err)
		j.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
	}
}

func (j *jobConsumer) Stop() {
	j.stop()
	j.kafkaReader.Close()
}

func NewJobConsumer(reader infra.KafkaReader, fleetService service.FleetService, opts Options, logger *zap.Logger) JobConsumer {
	if opts.JobTimeout <= 0 {
		opts.JobTimeout = 10 * time.Minute
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = 5 * time.Second
	}
	stopCtx, stop := context.WithCancel(context.Background())
	return &jobConsumer{
		kafkaReader:  reader,
		fleetService: fleetService,
		opts:         opts,
		stopCtx:      stopCtx,
		stop:         stop,
		logger:       logger,
	}
}
