package handler

import (
	"VCS_SMS_Fleet/internal/fleet/api/dto/request"
	"VCS_SMS_Fleet/internal/fleet/api/dto/response"
	"VCS_SMS_Fleet/internal/fleet/service"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=fleet_handler.go -destination=../../mocks/api/handler/mock_fleet_handler.go -package=mockhandler

type FleetHandler interface {
	GetSummary() gin.HandlerFunc
	GetServicesAvailability() gin.HandlerFunc
	ExportFleetReport() gin.HandlerFunc
	ReportFleetStatus() gin.HandlerFunc
}

type fleetHandler struct {
	logger       Logger
	fleetService service.FleetService
	now          func() time.Time
}

// parseDateRange returns [start, end+1day) for YYYY-MM-DD inputs, writing a 400 on failure.
func parseDateRange(c *gin.Context, startDate string, endDate string) (time.Time, time.Time, bool) {
	startTime, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid start date",
		})
		return time.Time{}, time.Time{}, false
	}
	endTime, err := time.Parse("2006-01-02", endDate)
	if err != nil || endTime.Before(startTime) {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid end date",
		})
		return time.Time{}, time.Time{}, false
	}
	return startTime, endTime.AddDate(0, 0, 1), true
}

func (h *fleetHandler) GetSummary() gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := h.fleetService.GetSummary(c)
		if err != nil {
			err = fmt.Errorf("FleetHandler.GetSummary: %w", err)
			h.logger.LoggingError(c, err, "failed to get fleet summary", zap.ErrorLevel)
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *fleetHandler) GetServicesAvailability() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime, endTime, ok := parseDateRange(c, c.Query("start_date"), c.Query("end_date"))
		if !ok {
			return
		}
		res, err := h.fleetService.GetServicesAvailability(c, startTime, endTime)
		if err != nil {
			err = fmt.Errorf("FleetHandler.GetServicesAvailability: %w", err)
			h.logger.LoggingError(c, err, "failed to get services availability", zap.ErrorLevel)
			internalError(c)
			return
		}
		body := make([]response.AvailabilityResponse, 0, len(res))
		for id, v := range res {
			body = append(body, response.AvailabilityResponse{
				ServiceID:              id,
				AvailabilityPercentage: v,
			})
		}
		sort.Slice(body, func(i, j int) bool { return body[i].ServiceID < body[j].ServiceID })
		c.JSON(http.StatusOK, body)
	}
}

func (h *fleetHandler) ExportFleetReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		today := h.now().Format("2006-01-02")
		startTime, endTime, ok := parseDateRange(c, c.DefaultQuery("start_date", today), c.DefaultQuery("end_date", today))
		if !ok {
			return
		}
		file, err := h.fleetService.ExportFleetReport(c, startTime, endTime)
		if err != nil {
			err = fmt.Errorf("FleetHandler.ExportFleetReport: %w", err)
			h.logger.LoggingError(c, err, "failed to export fleet report", zap.ErrorLevel)
			internalError(c)
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("fleet-%s.xlsx", h.now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("FleetHandler.ExportFleetReport: %w", err)
			h.logger.LoggingError(c, err, "failed to write fleet report", zap.ErrorLevel)
			return
		}
		c.Status(http.StatusOK)
	}
}

func (h *fleetHandler) ReportFleetStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if !bindJSON(c, &req) {
			return
		}
		startTime, endTime, ok := parseDateRange(c, req.StartDate, req.EndDate)
		if !ok {
			return
		}
		err := h.fleetService.ReportFleetStatus(c, startTime, endTime, req.Email)
		if err != nil {
			err = fmt.Errorf("FleetHandler.ReportFleetStatus: %w", err)
			h.logger.LoggingError(c, err, "failed to send fleet report", zap.ErrorLevel)
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

func NewFleetHandler(logger *zap.Logger, fleetService service.FleetService) FleetHandler {
	return &fleetHandler{
		logger:       NewLogger(logger),
		fleetService: fleetService,
		now:          time.Now,
	}
}
