package summary

import (
	"VCS_SMS_Fleet/internal/fleet/model"
	"sort"
	"time"
)

type ConnectionCounts struct {
	Total   int `json:"total"`
	Online  int `json:"online"`
	Offline int `json:"offline"`
	Unknown int `json:"unknown"`
}

type ServiceCounts struct {
	Total   int `json:"total"`
	Running int `json:"running"`
	Stopped int `json:"stopped"`
	Unknown int `json:"unknown"`
}

func (c *ServiceCounts) add(status model.ServiceStatus) {
	c.Total++
	switch status {
	case model.ServiceStatusRunning:
		c.Running++
	case model.ServiceStatusStopped:
		c.Stopped++
	default:
		c.Unknown++
	}
}

type RenewalCounts struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Running int `json:"running"`
	Success int `json:"success"`
	Failed  int `json:"failed"`
	Overdue int `json:"overdue"`
}

type ServerSummary struct {
	ServerID string                 `json:"server_id"`
	Name     string                 `json:"name"`
	Hostname string                 `json:"hostname"`
	Status   model.ConnectionStatus `json:"status"`
	Services ServiceCounts          `json:"services"`
}

type OverdueRenewal struct {
	RenewalID       string              `json:"renewal_id"`
	ServerID        string              `json:"server_id"`
	Name            string              `json:"name"`
	Status          model.RenewalStatus `json:"status"`
	NextExecutionAt time.Time           `json:"next_execution_at"`
}

type FleetSummary struct {
	GeneratedAt     time.Time        `json:"generated_at"`
	Servers         ConnectionCounts `json:"servers"`
	Services        ServiceCounts    `json:"services"`
	Renewals        RenewalCounts    `json:"renewals"`
	ServerServices  []ServerSummary  `json:"server_services"`
	OverdueRenewals []OverdueRenewal `json:"overdue_renewals"`
}

// Summarize rolls up persisted state. It reads only its arguments.
func Summarize(servers []model.Server, services []model.Service, renewals []model.Renewal, now time.Time) FleetSummary {
	s := FleetSummary{
		GeneratedAt:     now,
		ServerServices:  make([]ServerSummary, 0, len(servers)),
		OverdueRenewals: make([]OverdueRenewal, 0),
	}

	index := make(map[string]int, len(servers))
	for _, server := range servers {
		s.Servers.Total++
		switch server.Status {
		case model.ConnectionStatusOnline:
			s.Servers.Online++
		case model.ConnectionStatusOffline:
			s.Servers.Offline++
		default:
			s.Servers.Unknown++
		}
		index[server.ID] = len(s.ServerServices)
		s.ServerServices = append(s.ServerServices, ServerSummary{
			ServerID: server.ID,
			Name:     server.Name,
			Hostname: server.Hostname,
			Status:   server.Status,
		})
	}

	for _, service := range services {
		s.Services.add(service.Status)
		if i, ok := index[service.ServerID]; ok {
			s.ServerServices[i].Services.add(service.Status)
		}
	}

	for _, renewal := range renewals {
		s.Renewals.Total++
		switch renewal.Status {
		case model.RenewalStatusRunning:
			s.Renewals.Running++
		case model.RenewalStatusSuccess:
			s.Renewals.Success++
		case model.RenewalStatusFailed:
			s.Renewals.Failed++
		default:
			s.Renewals.Pending++
		}
		if renewal.IsOverdue(now) {
			s.Renewals.Overdue++
			s.OverdueRenewals = append(s.OverdueRenewals, OverdueRenewal{
				RenewalID:       renewal.ID,
				ServerID:        renewal.ServerID,
				Name:            renewal.Name,
				Status:          renewal.Status,
				NextExecutionAt: *renewal.NextExecutionAt,
			})
		}
	}

	sort.SliceStable(s.OverdueRenewals, func(i, j int) bool {
		return s.OverdueRenewals[i].NextExecutionAt.Before(s.OverdueRenewals[j].NextExecutionAt)
	})
	return s
}
