package main

import (
	"VCS_SMS_Fleet/internal/fleet/health"
	"VCS_SMS_Fleet/internal/fleet/service"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var errOperationFailed = errors.New("operation failed")

// connectFunc builds a fleet service from the env file and returns a cleanup func.
type connectFunc func(ctx context.Context, envFile string) (service.FleetService, func(), error)

type command struct {
	connect connectFunc
	envFile *string
	out     io.Writer
}

type outcome struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type serviceCheckView struct {
	ServiceID string `json:"service_id"`
	Status    string `json:"status"`
	Output    string `json:"output,omitempty"`
	Error     string `json:"error,omitempty"`
}

type sweepView struct {
	ServerID   string             `json:"server_id"`
	ServerName string             `json:"server_name"`
	Connection string             `json:"connection"`
	Error      string             `json:"error,omitempty"`
	Services   []serviceCheckView `json:"services"`
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// toServiceViews converts outcomes for printing and counts the failed checks.
func toServiceViews(outcomes []health.ServiceCheckOutcome) ([]serviceCheckView, int) {
	views := make([]serviceCheckView, 0, len(outcomes))
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
		views = append(views, serviceCheckView{
			ServiceID: o.ServiceID,
			Status:    string(o.Result.Status),
			Output:    o.Result.Output,
			Error:     errText(o.Err),
		})
	}
	return views, failed
}

func (c command) printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, string(b))
	return err
}

func (c command) withService(ctx context.Context, fn func(fs service.FleetService) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	envFile := ""
	if c.envFile != nil {
		envFile = *c.envFile
	}
	fs, cleanup, err := c.connect(ctx, envFile)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(fs)
}

// report prints the outcome and turns a recorded failure into errOperationFailed.
func (c command) report(result interface{}, err error) error {
	o := outcome{Success: err == nil, Result: result}
	if err != nil {
		o.Error = err.Error()
	}
	if e := c.printJSON(o); e != nil {
		return e
	}
	if err != nil {
		return errOperationFailed
	}
	return nil
}

func (c command) Probe(ctx context.Context, serverID string) error {
	return c.withService(ctx, func(fs service.FleetService) error {
		res, err := fs.TestConnection(ctx, serverID)
		return c.report(res, err)
	})
}

func (c command) Check(ctx context.Context, serviceID string) error {
	return c.withService(ctx, func(fs service.FleetService) error {
		res, err := fs.CheckService(ctx, serviceID)
		return c.report(res, err)
	})
}

func (c command) CheckServer(ctx context.Context, serverID string) error {
	return c.withService(ctx, func(fs service.FleetService) error {
		outcomes, err := fs.CheckServerServices(ctx, serverID)
		if err != nil {
			return c.report(nil, err)
		}
		views, failed := toServiceViews(outcomes)
		if failed > 0 {
			return c.report(views, fmt.Errorf("%d of %d service checks failed", failed, len(views)))
		}
		return c.report(views, nil)
	})
}

func (c command) Renew(ctx context.Context, renewalID string) error {
	return c.withService(ctx, func(fs service.FleetService) error {
		res, err := fs.ExecuteRenewal(ctx, renewalID)
		return c.report(res, err)
	})
}

func (c command) Test(ctx context.Context, renewalID string) error {
	return c.withService(ctx, func(fs service.FleetService) error {
		out, err := fs.TestRenewal(ctx, renewalID)
		return c.report(out, err)
	})
}

func (c command) Due(ctx context.Context, f DueFlags) error {
	return c.withService(ctx, func(fs service.FleetService) error {
		n, err := fs.ExecuteDueRenewals(ctx, f.Limit)
		return c.report(map[string]int{"executed": n}, err)
	})
}

func (c command) Sweep(ctx context.Context, f SweepFlags) error {
	return c.withService(ctx, func(fs service.FleetService) error {
		var results []service.SweepResult
		if f.ServerID != "" {
			res, err := fs.SweepServer(ctx, f.ServerID)
			if err != nil {
				return c.report(nil, err)
			}
			results = append(results, res)
		} else {
			var err error
			results, err = fs.SweepServers(ctx)
			if err != nil {
				return c.report(nil, err)
			}
		}
		views := make([]sweepView, 0, len(results))
		failed := 0
		for _, r := range results {
			services, failedChecks := toServiceViews(r.Services)
			if r.Err != nil || failedChecks > 0 {
				failed++
			}
			views = append(views, sweepView{
				ServerID:   r.ServerID,
				ServerName: r.ServerName,
				Connection: string(r.Connection.Status),
				Error:      errText(r.Err),
				Services:   services,
			})
		}
		if failed > 0 {
			return c.report(views, fmt.Errorf("%d of %d servers had failures", failed, len(views)))
		}
		return c.report(views, nil)
	})
}

func (c command) Summary(ctx context.Context) error {
	return c.withService(ctx, func(fs service.FleetService) error {
		res, err := fs.GetSummary(ctx)
		if err != nil {
			return err
		}
		return c.printJSON(res)
	})
}
