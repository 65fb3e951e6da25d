package health

import (
	"VCS_SMS_Fleet/internal/fleet/executor"
	"VCS_SMS_Fleet/internal/fleet/model"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=checker.go -destination=mock_checker.go -package=health

type ServiceStore interface {
	ApplyServiceTransition(ctx context.Context, serviceID string, transition model.ServiceTransition) error
}

type ServerStore interface {
	ApplyServerTransition(ctx context.Context, serverID string, transition model.ServerTransition) error
}

type CheckResult struct {
	Status    model.ServiceStatus
	Output    string
	CheckedAt time.Time
}

type ServiceCheckOutcome struct {
	ServiceID string
	Result    CheckResult
	Err       error
}

type ConnectionResult struct {
	Status    model.ConnectionStatus
	Output    string
	CheckedAt time.Time
}

// Guard runs check for one service of a batch, for example while holding a lease
// on it. An error returned by the guard becomes that service's outcome.
type Guard func(ctx context.Context, service model.Service, check func(ctx context.Context) error) error

type Checker interface {
	// CheckService runs the service's check command and persists the
	// classified status. A non-nil error still comes with the persisted result.
	CheckService(ctx context.Context, server model.Server, service model.Service) (CheckResult, error)
	// CheckServer checks services one after another; a failed check does not stop the batch.
	// A non-nil guard wraps each check.
	CheckServer(ctx context.Context, server model.Server, services []model.Service, guard Guard) []ServiceCheckOutcome
	// TestConnection probes the server and persists its connection status.
	TestConnection(ctx context.Context, server model.Server) (ConnectionResult, error)
}

type checker struct {
	executor executor.Executor
	services ServiceStore
	servers  ServerStore
	now      func() time.Time
	logger   *zap.Logger
}

func (c *checker) CheckService(ctx context.Context, server model.Server, service model.Service) (CheckResult, error) {
	var output string
	var status model.ServiceStatus
	err := safely(func() error {
		command, err := ResolveCheckCommand(service)
		if err != nil {
			return err
		}
		out, err := c.executor.Execute(ctx, server, command)
		if err != nil {
			return err
		}
		output = model.NormalizeOutput(out)
		strategy, ok := StrategyFor(service.ServiceType)
		if !ok {
			strategy = customStrategy{}
		}
		status = strategy.Classify(output, service.Name)
		return nil
	})
	if err != nil {
		return c.fail(ctx, service, err)
	}
	transition := model.ServiceTransition{
		Status:    status,
		Output:    output,
		CheckedAt: model.NextStamp(c.now(), service.LastCheckedAt),
	}
	result := CheckResult{Status: transition.Status, Output: output, CheckedAt: transition.CheckedAt}
	if err = safely(func() error { return c.services.ApplyServiceTransition(ctx, service.ID, transition) }); err != nil {
		return result, fmt.Errorf("Checker.CheckService: %w", err)
	}
	c.logger.Debug("service checked",
		zap.String("service_id", service.ID),
		zap.String("server_id", server.ID),
		zap.String("status", string(result.Status)))
	return result, nil
}

func (c *checker) fail(ctx context.Context, service model.Service, cause error) (CheckResult, error) {
	transition := model.ServiceTransition{
		Status:    model.ServiceStatusUnknown,
		Output:    cause.Error(),
		CheckedAt: model.NextStamp(c.now(), service.LastCheckedAt),
	}
	result := CheckResult{Status: transition.Status, Output: model.NormalizeOutput(cause.Error()), CheckedAt: transition.CheckedAt}
	if err := safely(func() error { return c.services.ApplyServiceTransition(ctx, service.ID, transition) }); err != nil {
		return result, fmt.Errorf("Checker.CheckService: %w", errors.Join(cause, err))
	}
	return result, fmt.Errorf("Checker.CheckService: %w", cause)
}

func (c *checker) CheckServer(ctx context.Context, server model.Server, services []model.Service, guard Guard) []ServiceCheckOutcome {
	outcomes := make([]ServiceCheckOutcome, 0, len(services))
	for _, service := range services {
		if err := ctx.Err(); err != nil {
			outcomes = append(outcomes, ServiceCheckOutcome{ServiceID: service.ID, Err: err})
			continue
		}
		var result CheckResult
		var checkErr error
		check := func(ctx context.Context) error {
			result, checkErr = c.CheckService(ctx, server, service)
			return nil
		}
		var err error
		if guard != nil {
			err = guard(ctx, service, check)
		} else {
			err = check(ctx)
		}
		if err == nil {
			err = checkErr
		}
		if err != nil {
			c.logger.Warn("service check failed",
				zap.String("service_id", service.ID),
				zap.String("server_id", server.ID),
				zap.Error(err))
		}
		outcomes = append(outcomes, ServiceCheckOutcome{ServiceID: service.ID, Result: result, Err: err})
	}
	return outcomes
}

func (c *checker) TestConnection(ctx context.Context, server model.Server) (ConnectionResult, error) {
	var out string
	connErr := safely(func() error {
		var err error
		out, err = executor.Probe(ctx, c.executor, server)
		return err
	})
	transition := model.ServerTransition{
		Status:    model.ConnectionStatusOnline,
		CheckedAt: model.NextStamp(c.now(), server.LastCheckedAt),
	}
	result := ConnectionResult{Output: model.NormalizeOutput(out)}
	if connErr != nil {
		transition.Status = model.ConnectionStatusOffline
		result.Output = connErr.Error()
	}
	result.Status = transition.Status
	result.CheckedAt = transition.CheckedAt
	if err := safely(func() error { return c.servers.ApplyServerTransition(ctx, server.ID, transition) }); err != nil {
		if connErr != nil {
			err = errors.Join(connErr, err)
		}
		return result, fmt.Errorf("Checker.TestConnection: %w", err)
	}
	if connErr != nil {
		return result, fmt.Errorf("Checker.TestConnection: %w", connErr)
	}
	return result, nil
}

// safely runs fn and reports a panic as an error.
func safely(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("check aborted: %v", p)
		}
	}()
	return fn()
}

func NewChecker(exec executor.Executor, services ServiceStore, servers ServerStore, logger *zap.Logger) Checker {
	return &checker{
		executor: exec,
		services: services,
		servers:  servers,
		now:      time.Now,
		logger:   logger,
	}
}
