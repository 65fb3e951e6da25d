package service

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/health"
	"VCS_SMS_Fleet/internal/fleet/metrics"
	"VCS_SMS_Fleet/internal/fleet/model"
	"VCS_SMS_Fleet/internal/fleet/renewal"
	"VCS_SMS_Fleet/internal/fleet/repository"
	"VCS_SMS_Fleet/pkg/lock"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

type SweepResult struct {
	ServerID   string
	ServerName string
	Connection health.ConnectionResult
	Services   []health.ServiceCheckOutcome
	// Err is the probe error; service failures are carried per outcome.
	Err error
}

const (
	opTestConnection = "test_connection"
	opCheckService   = "check_service"
	opCheckServer    = "check_server"
	opExecuteRenewal = "execute_renewal"
)

func serverLockKey(id string) string  { return "server:" + id }
func serviceLockKey(id string) string { return "service:" + id }
func renewalLockKey(id string) string { return "renewal:" + id }

// withLock runs fn while holding the lease on key. A held lease yields ErrEntityBusy.
func (f *fleetService) withLock(ctx context.Context, op string, key string, fn func(ctx context.Context) error) error {
	release, err := f.locker.Acquire(ctx, key, f.opts.LockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			metrics.IncBusySkip(op)
			return apperrors.ErrEntityBusy
		}
		return err
	}
	defer func() {
		if e := release(context.WithoutCancel(ctx)); e != nil {
			f.logger.Warn("failed to release lock", zap.String("key", key), zap.Error(e))
		}
	}()
	return fn(ctx)
}

func (f *fleetService) TestConnection(ctx context.Context, serverID string) (health.ConnectionResult, error) {
	var res health.ConnectionResult
	err := f.withLock(ctx, opTestConnection, serverLockKey(serverID), func(ctx context.Context) error {
		server, err := f.serverRepo.GetServerById(ctx, serverID)
		if err != nil {
			return err
		}
		res, err = f.testConnection(ctx, server)
		return err
	})
	if err != nil {
		return res, fmt.Errorf("FleetService.TestConnection: %w", err)
	}
	return res, nil
}

func (f *fleetService) testConnection(ctx context.Context, server model.Server) (health.ConnectionResult, error) {
	res, err := f.checker.TestConnection(ctx, server)
	if !res.CheckedAt.IsZero() {
		metrics.IncConnectionProbe(string(res.Status))
	}
	return res, err
}

func (f *fleetService) CheckService(ctx context.Context, serviceID string) (health.CheckResult, error) {
	var res health.CheckResult
	err := f.withLock(ctx, opCheckService, serviceLockKey(serviceID), func(ctx context.Context) error {
		service, err := f.serviceRepo.GetServiceById(ctx, serviceID)
		if err != nil {
			return err
		}
		server, err := f.serverRepo.GetServerById(ctx, service.ServerID)
		if err != nil {
			return err
		}
		res, err = f.checker.CheckService(ctx, server, service)
		f.recordCheck(ctx, service, res)
		return err
	})
	if err != nil {
		return res, fmt.Errorf("FleetService.CheckService: %w", err)
	}
	return res, nil
}

func (f *fleetService) CheckServerServices(ctx context.Context, serverID string) ([]health.ServiceCheckOutcome, error) {
	var outcomes []health.ServiceCheckOutcome
	err := f.withLock(ctx, opCheckServer, serverLockKey(serverID), func(ctx context.Context) error {
		server, err := f.serverRepo.GetServerById(ctx, serverID)
		if err != nil {
			return err
		}
		outcomes, err = f.checkServerServices(ctx, server)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("FleetService.CheckServerServices: %w", err)
	}
	return outcomes, nil
}

func (f *fleetService) checkServerServices(ctx context.Context, server model.Server) ([]health.ServiceCheckOutcome, error) {
	services, err := f.serviceRepo.GetServicesByServerId(ctx, server.ID)
	if err != nil {
		return nil, err
	}
	outcomes := f.checker.CheckServer(ctx, server, services, f.guardService)
	for i, outcome := range outcomes {
		f.recordCheck(ctx, services[i], outcome.Result)
	}
	return outcomes, nil
}

// guardService holds the service lease around one check of a batch.
func (f *fleetService) guardService(ctx context.Context, service model.Service, check func(ctx context.Context) error) error {
	return f.withLock(ctx, opCheckService, serviceLockKey(service.ID), check)
}

// recordCheck feeds metrics and history. History failures are logged only.
func (f *fleetService) recordCheck(ctx context.Context, service model.Service, res health.CheckResult) {
	if res.CheckedAt.IsZero() {
		return
	}
	metrics.IncServiceCheck(string(service.ServiceType), string(res.Status))
	record := repository.NewServiceCheckRecord(service, res.Status, res.Output, res.CheckedAt)
	if err := f.historyRepo.RecordServiceCheck(context.WithoutCancel(ctx), record); err != nil {
		f.logger.Warn("failed to record service check history",
			zap.String("service_id", service.ID),
			zap.Error(err))
	}
}

// SweepServer probes the server and then checks each of its services.
func (f *fleetService) SweepServer(ctx context.Context, serverID string) (SweepResult, error) {
	res := SweepResult{ServerID: serverID}
	err := f.withLock(ctx, opCheckServer, serverLockKey(serverID), func(ctx context.Context) error {
		server, err := f.serverRepo.GetServerById(ctx, serverID)
		if err != nil {
			return err
		}
		res = f.sweep(ctx, server)
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("FleetService.SweepServer: %w", err)
	}
	return res, nil
}

func (f *fleetService) sweep(ctx context.Context, server model.Server) SweepResult {
	res := SweepResult{ServerID: server.ID, ServerName: server.Name}
	res.Connection, res.Err = f.testConnection(ctx, server)
	outcomes, err := f.checkServerServices(ctx, server)
	if err != nil {
		res.Err = errors.Join(res.Err, err)
	}
	res.Services = outcomes
	return res
}

func (f *fleetService) SweepServers(ctx context.Context) ([]SweepResult, error) {
	servers, err := f.serverRepo.GetServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("FleetService.SweepServers: %w", err)
	}
	p := pool.NewWithResults[SweepResult]().WithContext(ctx).WithMaxGoroutines(f.opts.SweepConcurrency)
	for _, server := range servers {
		p.Go(func(ctx context.Context) (SweepResult, error) {
			if err := ctx.Err(); err != nil {
				return SweepResult{}, err
			}
			res, err := f.SweepServer(ctx, server.ID)
			if errors.Is(err, apperrors.ErrEntityBusy) {
				f.logger.Info("server sweep skipped, server busy", zap.String("server_id", server.ID))
				return SweepResult{}, nil
			}
			if err != nil {
				return SweepResult{}, err
			}
			return res, nil
		})
	}
	results, err := p.Wait()
	swept := make([]SweepResult, 0, len(results))
	for _, r := range results {
		if r.ServerID != "" {
			swept = append(swept, r)
		}
	}
	sort.Slice(swept, func(i, j int) bool { return swept[i].ServerName < swept[j].ServerName })
	if err != nil {
		return swept, fmt.Errorf("FleetService.SweepServers: %w", err)
	}
	return swept, nil
}

func (f *fleetService) TestRenewal(ctx context.Context, renewalID string) (string, error) {
	r, err := f.renewalRepo.GetRenewalById(ctx, renewalID)
	if err != nil {
		return "", fmt.Errorf("FleetService.TestRenewal: %w", err)
	}
	server, err := f.serverRepo.GetServerById(ctx, r.ServerID)
	if err != nil {
		return "", fmt.Errorf("FleetService.TestRenewal: %w", err)
	}
	out, err := f.runner.Test(ctx, server, r)
	if err != nil {
		return out, fmt.Errorf("FleetService.TestRenewal: %w", err)
	}
	return out, nil
}

func (f *fleetService) ExecuteRenewal(ctx context.Context, renewalID string) (renewal.ExecutionResult, error) {
	var res renewal.ExecutionResult
	err := f.withLock(ctx, opExecuteRenewal, renewalLockKey(renewalID), func(ctx context.Context) error {
		r, err := f.renewalRepo.GetRenewalById(ctx, renewalID)
		if err != nil {
			return err
		}
		res, err = f.execute(ctx, r)
		return err
	})
	if err != nil {
		return res, fmt.Errorf("FleetService.ExecuteRenewal: %w", err)
	}
	return res, nil
}

func (f *fleetService) ExecuteRenewalIfDue(ctx context.Context, renewalID string) (bool, renewal.ExecutionResult, error) {
	var (
		executed bool
		res      renewal.ExecutionResult
	)
	err := f.withLock(ctx, opExecuteRenewal, renewalLockKey(renewalID), func(ctx context.Context) error {
		r, err := f.renewalRepo.GetRenewalById(ctx, renewalID)
		if err != nil {
			return err
		}
		if r.Status == model.RenewalStatusRunning || !r.IsOverdue(f.now()) {
			return nil
		}
		executed = true
		res, err = f.execute(ctx, r)
		return err
	})
	if err != nil {
		return executed, res, fmt.Errorf("FleetService.ExecuteRenewalIfDue: %w", err)
	}
	return executed, res, nil
}

func (f *fleetService) execute(ctx context.Context, r model.Renewal) (renewal.ExecutionResult, error) {
	server, err := f.serverRepo.GetServerById(ctx, r.ServerID)
	if err != nil {
		return renewal.ExecutionResult{}, err
	}
	start := f.now()
	res, err := f.runner.Execute(ctx, server, r)
	if res.ExecutedAt.IsZero() {
		return res, err
	}
	duration := f.now().Sub(start)
	metrics.ObserveRenewalRun(string(res.Status), duration)
	record := repository.RenewalRunRecord{
		RenewalID:  r.ID,
		ServerID:   r.ServerID,
		Status:     res.Status,
		Output:     res.Output,
		DurationMs: duration.Milliseconds(),
		Timestamp:  res.ExecutedAt,
	}
	if e := f.historyRepo.RecordRenewalRun(context.WithoutCancel(ctx), record); e != nil {
		f.logger.Warn("failed to record renewal run history",
			zap.String("renewal_id", r.ID),
			zap.Error(e))
	}
	return res, err
}

// ExecuteDueRenewals runs up to limit overdue renewals in parallel and returns
// how many were executed. Renewals held by another worker are skipped.
func (f *fleetService) ExecuteDueRenewals(ctx context.Context, limit int) (int, error) {
	due, err := f.renewalRepo.GetDueRenewals(ctx, f.now(), limit)
	if err != nil {
		return 0, fmt.Errorf("FleetService.ExecuteDueRenewals: %w", err)
	}
	var executed atomic.Int64
	p := pool.New().WithContext(ctx).WithMaxGoroutines(f.opts.SweepConcurrency)
	for _, r := range due {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ran, _, err := f.ExecuteRenewalIfDue(ctx, r.ID)
			if ran {
				executed.Add(1)
			}
			if errors.Is(err, apperrors.ErrEntityBusy) {
				return nil
			}
			if err != nil {
				f.logger.Warn("renewal execution failed", zap.String("renewal_id", r.ID), zap.Error(err))
				if !ran {
					return err
				}
			}
			return nil
		})
	}
	if err = p.Wait(); err != nil {
		return int(executed.Load()), fmt.Errorf("FleetService.ExecuteDueRenewals: %w", err)
	}
	return int(executed.Load()), nil
}
