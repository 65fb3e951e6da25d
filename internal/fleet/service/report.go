package service

import (
	"VCS_SMS_Fleet/internal/fleet/model"
	"VCS_SMS_Fleet/internal/fleet/summary"
	"VCS_SMS_Fleet/pkg/mail"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	reportTimeLayout      = "2006-01-02 15:04:05"
	serversSheetName      = "Servers"
	servicesSheetName     = "Services"
	overdueSheetName      = "Overdue Renewals"
	defaultSheetName      = "Sheet1"
	fleetReportFileLayout = "fleet-report-2006-01-02.xlsx"
)

type fleetReport struct {
	summary      summary.FleetSummary
	servers      []model.Server
	services     []model.Service
	availability map[string]float64
	// average availability across services that have history in the window
	averageAvailability float64
}

func (f *fleetService) buildReport(ctx context.Context, startTime time.Time, endTime time.Time) (fleetReport, error) {
	servers, err := f.serverRepo.GetServers(ctx)
	if err != nil {
		return fleetReport{}, err
	}
	services, err := f.serviceRepo.GetServices(ctx)
	if err != nil {
		return fleetReport{}, err
	}
	renewals, err := f.renewalRepo.GetRenewals(ctx)
	if err != nil {
		return fleetReport{}, err
	}
	availability, err := f.historyRepo.GetServicesAvailability(ctx, startTime, endTime)
	if err != nil {
		return fleetReport{}, err
	}
	report := fleetReport{
		summary:      summary.Summarize(servers, services, renewals, f.now()),
		servers:      servers,
		services:     services,
		availability: availability,
	}
	if len(availability) > 0 {
		var total float64
		for _, v := range availability {
			total += v
		}
		report.averageAvailability = total / float64(len(availability))
	}
	return report, nil
}

func (f *fleetService) ExportFleetReport(ctx context.Context, startTime time.Time, endTime time.Time) (*excelize.File, error) {
	report, err := f.buildReport(ctx, startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("FleetService.ExportFleetReport: %w", err)
	}
	file, err := generateExcelFile(report)
	if err != nil {
		return nil, fmt.Errorf("FleetService.ExportFleetReport: %w", err)
	}
	return file, nil
}

func (f *fleetService) ReportFleetStatus(ctx context.Context, startTime time.Time, endTime time.Time, to string) error {
	report, err := f.buildReport(ctx, startTime, endTime)
	if err != nil {
		return fmt.Errorf("FleetService.ReportFleetStatus: %w", err)
	}
	file, err := generateExcelFile(report)
	if err != nil {
		return fmt.Errorf("FleetService.ReportFleetStatus: %w", err)
	}
	defer file.Close()
	buf, err := file.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("FleetService.ReportFleetStatus: %w", err)
	}
	attachments := []mail.Attachment{
		{Name: endTime.Add(-1 * time.Second).Format(fleetReportFileLayout), Content: buf},
	}
	subject := fmt.Sprintf("Fleet Status Report From %s To %s", startTime.Format(reportTimeLayout), endTime.Add(-1*time.Second).Format(reportTimeLayout))
	err = f.mailSender.SendMail([]string{to}, subject, generateHTMLBody(report), generateTextMailBody(report), attachments)
	if err != nil {
		return fmt.Errorf("FleetService.ReportFleetStatus: %w", err)
	}
	return nil
}

func generateTextMailBody(report fleetReport) string {
	s := report.summary
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Servers: %d\n"+
			"Online: %d\n"+
			"Offline: %d\n"+
			"Unknown: %d\n\n"+
			"Total Services: %d\n"+
			"Running: %d\n"+
			"Stopped: %d\n"+
			"Unknown: %d\n\n"+
			"Overdue Renewals: %d\n"+
			"Failed Renewals: %d\n\n"+
			"Average Service Availability: %.2f%%",
		s.Servers.Total,
		s.Servers.Online,
		s.Servers.Offline,
		s.Servers.Unknown,
		s.Services.Total,
		s.Services.Running,
		s.Services.Stopped,
		s.Services.Unknown,
		s.Renewals.Overdue,
		s.Renewals.Failed,
		report.averageAvailability,
	)
}

func generateHTMLBody(report fleetReport) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Total Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Online Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Offline Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Total Services:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Running Services:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Overdue Renewals:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Average Service Availability:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%.2f%%</td>
        </tr>
    </table>
</body>`

	s := report.summary
	return fmt.Sprintf(htmlFormat,
		s.Servers.Total,
		s.Servers.Online,
		s.Servers.Offline,
		s.Services.Total,
		s.Services.Running,
		s.Renewals.Overdue,
		report.averageAvailability,
	)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(reportTimeLayout)
}

func generateExcelFile(report fleetReport) (*excelize.File, error) {
	f := excelize.NewFile()
	_, err := f.NewSheet(serversSheetName)
	if err != nil {
		f.Close()
		return nil, err
	}
	serverNames := make(map[string]string, len(report.servers))
	headers := []interface{}{"id", "name", "hostname", "port", "username", "status", "last_checked_at"}
	rows := make([][]interface{}, 0, len(report.servers))
	for _, server := range report.servers {
		serverNames[server.ID] = server.Name
		rows = append(rows, []interface{}{
			server.ID,
			server.Name,
			server.Hostname,
			server.Port,
			server.Username,
			string(server.Status),
			formatTime(server.LastCheckedAt),
		})
	}
	if err = writeSheet(f, serversSheetName, headers, rows); err != nil {
		f.Close()
		return nil, err
	}

	if _, err = f.NewSheet(servicesSheetName); err != nil {
		f.Close()
		return nil, err
	}
	headers = []interface{}{"id", "server", "name", "service_type", "status", "status_output", "last_checked_at", "availability_percentage"}
	rows = rows[:0]
	for _, service := range report.services {
		availability := ""
		if v, ok := report.availability[service.ID]; ok {
			availability = fmt.Sprintf("%.2f", v)
		}
		rows = append(rows, []interface{}{
			service.ID,
			serverNames[service.ServerID],
			service.Name,
			string(service.ServiceType),
			string(service.Status),
			service.StatusOutput,
			formatTime(service.LastCheckedAt),
			availability,
		})
	}
	if err = writeSheet(f, servicesSheetName, headers, rows); err != nil {
		f.Close()
		return nil, err
	}

	if _, err = f.NewSheet(overdueSheetName); err != nil {
		f.Close()
		return nil, err
	}
	headers = []interface{}{"id", "server", "name", "status", "next_execution_at"}
	rows = rows[:0]
	for _, overdue := range report.summary.OverdueRenewals {
		rows = append(rows, []interface{}{
			overdue.RenewalID,
			serverNames[overdue.ServerID],
			overdue.Name,
			string(overdue.Status),
			overdue.NextExecutionAt.Format(reportTimeLayout),
		})
	}
	if err = writeSheet(f, overdueSheetName, headers, rows); err != nil {
		f.Close()
		return nil, err
	}

	if err = f.DeleteSheet(defaultSheetName); err != nil {
		f.Close()
		return nil, err
	}
	index, err := f.GetSheetIndex(serversSheetName)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(index)
	return f, nil
}

func writeSheet(f *excelize.File, sheetName string, headers []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return err
	}
	for i := range rows {
		startCell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, startCell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
