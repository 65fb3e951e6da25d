package service

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/health"
	"VCS_SMS_Fleet/internal/fleet/model"
	"VCS_SMS_Fleet/internal/fleet/renewal"
	"VCS_SMS_Fleet/internal/fleet/repository"
	"VCS_SMS_Fleet/internal/fleet/summary"
	"VCS_SMS_Fleet/pkg/lock"
	"VCS_SMS_Fleet/pkg/mail"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type FleetService interface {
	CreateServer(ctx context.Context, server model.Server) (model.Server, error)
	CreateServers(ctx context.Context, servers []model.Server) (insertedServers []model.Server, nonInsertedServers []model.Server, err error)
	GetServer(ctx context.Context, id string) (model.Server, error)
	GetServers(ctx context.Context) ([]model.Server, error)
	DeleteServer(ctx context.Context, id string) error

	CreateService(ctx context.Context, service model.Service) (model.Service, error)
	GetService(ctx context.Context, id string) (model.Service, error)
	GetServicesByServer(ctx context.Context, serverID string) ([]model.Service, error)
	DeleteService(ctx context.Context, id string) error

	CreateRenewal(ctx context.Context, renewal model.Renewal) (model.Renewal, error)
	GetRenewal(ctx context.Context, id string) (model.Renewal, error)
	GetRenewals(ctx context.Context) ([]model.Renewal, error)
	DeleteRenewal(ctx context.Context, id string) error

	TestConnection(ctx context.Context, serverID string) (health.ConnectionResult, error)
	CheckService(ctx context.Context, serviceID string) (health.CheckResult, error)
	CheckServerServices(ctx context.Context, serverID string) ([]health.ServiceCheckOutcome, error)
	SweepServer(ctx context.Context, serverID string) (SweepResult, error)
	SweepServers(ctx context.Context) ([]SweepResult, error)

	TestRenewal(ctx context.Context, renewalID string) (string, error)
	ExecuteRenewal(ctx context.Context, renewalID string) (renewal.ExecutionResult, error)
	// ExecuteRenewalIfDue re-reads the renewal under its lock and executes it only
	// while it is still overdue and not running.
	ExecuteRenewalIfDue(ctx context.Context, renewalID string) (bool, renewal.ExecutionResult, error)
	ExecuteDueRenewals(ctx context.Context, limit int) (int, error)

	GetSummary(ctx context.Context) (summary.FleetSummary, error)
	GetServicesAvailability(ctx context.Context, startTime time.Time, endTime time.Time) (map[string]float64, error)
	ExportFleetReport(ctx context.Context, startTime time.Time, endTime time.Time) (*excelize.File, error)
	ReportFleetStatus(ctx context.Context, startTime time.Time, endTime time.Time, mail string) error
}

type Options struct {
	// SweepConcurrency bounds fan-out in SweepServers and ExecuteDueRenewals.
	SweepConcurrency int
	// LockTTL is the lease held on an entity while an operation runs on it.
	LockTTL time.Duration
}

type fleetService struct {
	serverRepo  repository.ServerRepository
	serviceRepo repository.ServiceRepository
	renewalRepo repository.RenewalRepository
	historyRepo repository.HistoryRepository
	checker     health.Checker
	runner      renewal.Runner
	locker      lock.Locker
	mailSender  mail.Sender
	opts        Options
	now         func() time.Time
	logger      *zap.Logger
}

func (f *fleetService) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	server.Status = model.ConnectionStatusUnknown
	server.LastCheckedAt = nil
	createdServer, err := f.serverRepo.CreateServer(ctx, server)
	if err != nil {
		return server, fmt.Errorf("FleetService.CreateServer: %w", err)
	}
	return createdServer, nil
}

func (f *fleetService) CreateServers(ctx context.Context, servers []model.Server) (insertedServers []model.Server, nonInsertedServers []model.Server, err error) {
	for _, server := range servers {
		created, e := f.CreateServer(ctx, server)
		if e != nil {
			if errors.Is(e, apperrors.ErrServerAlreadyExists) {
				nonInsertedServers = append(nonInsertedServers, server)
				continue
			}
			err = fmt.Errorf("FleetService.CreateServers: %w", e)
			return
		}
		insertedServers = append(insertedServers, created)
	}
	return
}

func (f *fleetService) GetServer(ctx context.Context, id string) (model.Server, error) {
	server, err := f.serverRepo.GetServerById(ctx, id)
	if err != nil {
		return model.Server{}, fmt.Errorf("FleetService.GetServer: %w", err)
	}
	return server, nil
}

func (f *fleetService) GetServers(ctx context.Context) ([]model.Server, error) {
	servers, err := f.serverRepo.GetServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("FleetService.GetServers: %w", err)
	}
	return servers, nil
}

func (f *fleetService) DeleteServer(ctx context.Context, id string) error {
	if err := f.serverRepo.DeleteServerById(ctx, id); err != nil {
		return fmt.Errorf("FleetService.DeleteServer: %w", err)
	}
	return nil
}

// CreateService stores the resolved check command, so a service created
// without one carries the default for its type from then on.
func (f *fleetService) CreateService(ctx context.Context, service model.Service) (model.Service, error) {
	if _, err := f.serverRepo.GetServerById(ctx, service.ServerID); err != nil {
		return service, fmt.Errorf("FleetService.CreateService: %w", err)
	}
	if _, ok := health.StrategyFor(service.ServiceType); !ok {
		return service, fmt.Errorf("FleetService.CreateService: %w: %q", apperrors.ErrUnsupportedServiceType, service.ServiceType)
	}
	// a custom service may be stored without a command; its checks then record unknown
	cmd, err := health.ResolveCheckCommand(service)
	if err != nil && !errors.Is(err, apperrors.ErrCheckCommandRequired) {
		return service, fmt.Errorf("FleetService.CreateService: %w", err)
	}
	service.CheckCommand = cmd
	service.Status = model.ServiceStatusUnknown
	service.StatusOutput = ""
	service.LastCheckedAt = nil
	created, err := f.serviceRepo.CreateService(ctx, service)
	if err != nil {
		return service, fmt.Errorf("FleetService.CreateService: %w", err)
	}
	return created, nil
}

func (f *fleetService) GetService(ctx context.Context, id string) (model.Service, error) {
	service, err := f.serviceRepo.GetServiceById(ctx, id)
	if err != nil {
		return model.Service{}, fmt.Errorf("FleetService.GetService: %w", err)
	}
	return service, nil
}

func (f *fleetService) GetServicesByServer(ctx context.Context, serverID string) ([]model.Service, error) {
	if _, err := f.serverRepo.GetServerById(ctx, serverID); err != nil {
		return nil, fmt.Errorf("FleetService.GetServicesByServer: %w", err)
	}
	services, err := f.serviceRepo.GetServicesByServerId(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf("FleetService.GetServicesByServer: %w", err)
	}
	return services, nil
}

func (f *fleetService) DeleteService(ctx context.Context, id string) error {
	if err := f.serviceRepo.DeleteServiceById(ctx, id); err != nil {
		return fmt.Errorf("FleetService.DeleteService: %w", err)
	}
	return nil
}

func (f *fleetService) CreateRenewal(ctx context.Context, r model.Renewal) (model.Renewal, error) {
	if !r.RenewalType.Valid() {
		return r, fmt.Errorf("FleetService.CreateRenewal: %w: %q", apperrors.ErrInvalidRenewalType, r.RenewalType)
	}
	if strings.TrimSpace(r.Script) == "" {
		return r, fmt.Errorf("FleetService.CreateRenewal: %w", apperrors.ErrScriptRequired)
	}
	if _, err := f.serverRepo.GetServerById(ctx, r.ServerID); err != nil {
		return r, fmt.Errorf("FleetService.CreateRenewal: %w", err)
	}
	r.Status = model.RenewalStatusPending
	r.LastExecutedAt = nil
	r.LastOutput = ""
	r.NextExecutionAt = renewal.NextExecution(r.Schedule, f.now())
	created, err := f.renewalRepo.CreateRenewal(ctx, r)
	if err != nil {
		return r, fmt.Errorf("FleetService.CreateRenewal: %w", err)
	}
	return created, nil
}

func (f *fleetService) GetRenewal(ctx context.Context, id string) (model.Renewal, error) {
	r, err := f.renewalRepo.GetRenewalById(ctx, id)
	if err != nil {
		return model.Renewal{}, fmt.Errorf("FleetService.GetRenewal: %w", err)
	}
	return r, nil
}

func (f *fleetService) GetRenewals(ctx context.Context) ([]model.Renewal, error) {
	renewals, err := f.renewalRepo.GetRenewals(ctx)
	if err != nil {
		return nil, fmt.Errorf("FleetService.GetRenewals: %w", err)
	}
	return renewals, nil
}

func (f *fleetService) DeleteRenewal(ctx context.Context, id string) error {
	if err := f.renewalRepo.DeleteRenewalById(ctx, id); err != nil {
		return fmt.Errorf("FleetService.DeleteRenewal: %w", err)
	}
	return nil
}

func (f *fleetService) GetSummary(ctx context.Context) (summary.FleetSummary, error) {
	servers, err := f.serverRepo.GetServers(ctx)
	if err != nil {
		return summary.FleetSummary{}, fmt.Errorf("FleetService.GetSummary: %w", err)
	}
	services, err := f.serviceRepo.GetServices(ctx)
	if err != nil {
		return summary.FleetSummary{}, fmt.Errorf("FleetService.GetSummary: %w", err)
	}
	renewals, err := f.renewalRepo.GetRenewals(ctx)
	if err != nil {
		return summary.FleetSummary{}, fmt.Errorf("FleetService.GetSummary: %w", err)
	}
	return summary.Summarize(servers, services, renewals, f.now()), nil
}

func (f *fleetService) GetServicesAvailability(ctx context.Context, startTime time.Time, endTime time.Time) (map[string]float64, error) {
	res, err := f.historyRepo.GetServicesAvailability(ctx, startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("FleetService.GetServicesAvailability: %w", err)
	}
	return res, nil
}

func NewFleetService(
	serverRepo repository.ServerRepository,
	serviceRepo repository.ServiceRepository,
	renewalRepo repository.RenewalRepository,
	historyRepo repository.HistoryRepository,
	checker health.Checker,
	runner renewal.Runner,
	locker lock.Locker,
	mailSender mail.Sender,
	opts Options,
	logger *zap.Logger,
) FleetService {
	if opts.SweepConcurrency <= 0 {
		opts.SweepConcurrency = 1
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = 5 * time.Minute
	}
	return &fleetService{
		serverRepo:  serverRepo,
		serviceRepo: serviceRepo,
		renewalRepo: renewalRepo,
		historyRepo: historyRepo,
		checker:     checker,
		runner:      runner,
		locker:      locker,
		mailSender:  mailSender,
		opts:        opts,
		now:         time.Now,
		logger:      logger,
	}
}
