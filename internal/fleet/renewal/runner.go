package renewal

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/executor"
	"VCS_SMS_Fleet/internal/fleet/model"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=runner.go -destination=mock_runner.go -package=renewal

type RenewalStore interface {
	ApplyRenewalTransition(ctx context.Context, renewalID string, transition model.RenewalTransition) error
}

type ExecutionResult struct {
	Status          model.RenewalStatus
	Output          string
	ExecutedAt      time.Time
	NextExecutionAt *time.Time
}

type Runner interface {
	// Test runs the script once and returns its output without touching the record.
	Test(ctx context.Context, server model.Server, renewal model.Renewal) (string, error)
	// Execute marks the renewal running, runs its script and records success or failure.
	Execute(ctx context.Context, server model.Server, renewal model.Renewal) (ExecutionResult, error)
}

type runner struct {
	executor executor.Executor
	store    RenewalStore
	now      func() time.Time
	logger   *zap.Logger
}

func (r *runner) Test(ctx context.Context, server model.Server, renewal model.Renewal) (string, error) {
	out, err := r.run(ctx, server, renewal)
	if err != nil {
		return "", fmt.Errorf("Runner.Test: %w", err)
	}
	return model.NormalizeOutput(out), nil
}

func (r *runner) Execute(ctx context.Context, server model.Server, renewal model.Renewal) (result ExecutionResult, err error) {
	if err = r.apply(ctx, renewal.ID, model.RenewalStarted()); err != nil {
		return ExecutionResult{}, fmt.Errorf("Runner.Execute: %w", err)
	}

	// the run is already recorded as started; finish it even if the caller went away
	finishCtx := context.WithoutCancel(ctx)
	var executedAt time.Time
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("renewal execution panicked",
				zap.String("renewal_id", renewal.ID),
				zap.Any("panic", p))
			if executedAt.IsZero() {
				executedAt = model.NextStamp(r.now(), renewal.LastExecutedAt)
			}
			result, err = r.finishFailed(finishCtx, renewal, executedAt, fmt.Errorf("renewal execution aborted: %v", p))
		}
	}()

	out, runErr := r.run(ctx, server, renewal)
	executedAt = model.NextStamp(r.now(), renewal.LastExecutedAt)

	if runErr != nil {
		return r.finishFailed(finishCtx, renewal, executedAt, runErr)
	}

	next := NextExecution(renewal.Schedule, executedAt)
	transition := model.RenewalSucceeded(executedAt, out, next)
	if err = r.apply(finishCtx, renewal.ID, transition); err != nil {
		r.logger.Error("failed to record renewal success",
			zap.String("renewal_id", renewal.ID),
			zap.Error(err))
		return r.finishFailed(finishCtx, renewal, executedAt, fmt.Errorf("record result: %w", err))
	}
	return ExecutionResult{
		Status:          model.RenewalStatusSuccess,
		Output:          model.NormalizeOutput(out),
		ExecutedAt:      executedAt,
		NextExecutionAt: next,
	}, nil
}

func (r *runner) finishFailed(ctx context.Context, renewal model.Renewal, executedAt time.Time, cause error) (ExecutionResult, error) {
	transition := model.RenewalFailed(executedAt, cause.Error())
	result := ExecutionResult{
		Status:     model.RenewalStatusFailed,
		Output:     model.NormalizeOutput(cause.Error()),
		ExecutedAt: executedAt,
	}
	if err := r.apply(ctx, renewal.ID, transition); err != nil {
		r.logger.Error("failed to record renewal failure",
			zap.String("renewal_id", renewal.ID),
			zap.Error(err))
		return result, fmt.Errorf("Runner.Execute: %w", errors.Join(cause, err))
	}
	return result, fmt.Errorf("Runner.Execute: %w", cause)
}

// apply writes a transition, reporting a panicking store as an error.
func (r *runner) apply(ctx context.Context, renewalID string, transition model.RenewalTransition) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("store panicked: %v", p)
		}
	}()
	return r.store.ApplyRenewalTransition(ctx, renewalID, transition)
}

func (r *runner) run(ctx context.Context, server model.Server, renewal model.Renewal) (out string, err error) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("renewal script panicked",
				zap.String("renewal_id", renewal.ID),
				zap.Any("panic", p))
			err = fmt.Errorf("renewal execution aborted: %v", p)
		}
	}()
	script := strings.TrimSpace(renewal.Script)
	if script == "" {
		return "", apperrors.ErrScriptRequired
	}
	return r.executor.Execute(ctx, server, script)
}

func NewRunner(exec executor.Executor, store RenewalStore, logger *zap.Logger) Runner {
	return &runner{
		executor: exec,
		store:    store,
		now:      time.Now,
		logger:   logger,
	}
}
