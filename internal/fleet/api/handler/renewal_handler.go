package handler

import (
	"VCS_SMS_Fleet/internal/fleet/api/dto/request"
	"VCS_SMS_Fleet/internal/fleet/api/dto/response"
	"VCS_SMS_Fleet/internal/fleet/executor"
	"VCS_SMS_Fleet/internal/fleet/model"
	"VCS_SMS_Fleet/internal/fleet/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=renewal_handler.go -destination=../../mocks/api/handler/mock_renewal_handler.go -package=mockhandler

type RenewalHandler interface {
	CreateRenewal() gin.HandlerFunc
	GetRenewals() gin.HandlerFunc
	GetRenewal() gin.HandlerFunc
	DeleteRenewal() gin.HandlerFunc
	ExecuteRenewal() gin.HandlerFunc
	TestRenewal() gin.HandlerFunc
}

type renewalHandler struct {
	logger       Logger
	fleetService service.FleetService
}

func toRenewalResponse(r model.Renewal) response.RenewalResponse {
	return response.RenewalResponse{
		ID:              r.ID,
		ServerID:        r.ServerID,
		Name:            r.Name,
		RenewalType:     string(r.RenewalType),
		Script:          r.Script,
		Description:     r.Description,
		Schedule:        r.Schedule,
		Status:          string(r.Status),
		LastExecutedAt:  r.LastExecutedAt,
		NextExecutionAt: r.NextExecutionAt,
		LastOutput:      r.LastOutput,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (h *renewalHandler) CreateRenewal() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.RenewalRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := h.fleetService.CreateRenewal(c, model.Renewal{
			ServerID:    req.ServerID,
			Name:        req.Name,
			RenewalType: model.RenewalType(req.RenewalType),
			Script:      req.Script,
			Description: req.Description,
			Schedule:    req.Schedule,
		})
		if err != nil {
			if writeKnownError(c, err) {
				return
			}
			err = fmt.Errorf("RenewalHandler.CreateRenewal: %w", err)
			h.logger.LoggingError(c, err, "failed to create renewal", zap.ErrorLevel)
			internalError(c)
			return
		}
		c.JSON(http.StatusCreated, toRenewalResponse(res))
	}
}

func (h *renewalHandler) GetRenewals() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		renewals, err := h.fleetService.GetRenewals(c)
		if err != nil {
			err = fmt.Errorf("RenewalHandler.GetRenewals: %w", err)
			h.logger.LoggingError(c, err, "failed to get renewals", zap.ErrorLevel)
			internalError(c)
			return
		}
		res := make([]response.RenewalResponse, 0, len(renewals))
		for _, r := range renewals {
			if status != "" && string(r.Status) != status {
				continue
			}
			res = append(res, toRenewalResponse(r))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *renewalHandler) GetRenewal() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := h.fleetService.GetRenewal(c, id)
		if err != nil {
			if writeKnownError(c, err) {
				return
			}
			err = fmt.Errorf("RenewalHandler.GetRenewal: %w", err)
			h.logger.LoggingError(c, err, fmt.Sprintf("failed to get renewal %s", id), zap.ErrorLevel)
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, toRenewalResponse(res))
	}
}

func (h *renewalHandler) DeleteRenewal() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := h.fleetService.DeleteRenewal(c, id); err != nil {
			if writeKnownError(c, err) {
				return
			}
			err = fmt.Errorf("RenewalHandler.DeleteRenewal: %w", err)
			h.logger.LoggingError(c, err, fmt.Sprintf("failed to delete renewal %s", id), zap.ErrorLevel)
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Renewal deleted",
		})
	}
}

func (h *renewalHandler) ExecuteRenewal() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := h.fleetService.ExecuteRenewal(c, id)
		if err != nil && writeKnownError(c, err) {
			return
		}
		if err != nil && res.ExecutedAt.IsZero() {
			err = fmt.Errorf("RenewalHandler.ExecuteRenewal: %w", err)
			h.logger.LoggingError(c, err, fmt.Sprintf("failed to execute renewal %s", id), zap.ErrorLevel)
			internalError(c)
			return
		}
		body := response.ExecutionResponse{
			Success:         err == nil,
			Status:          string(res.Status),
			ExecutedAt:      res.ExecutedAt,
			NextExecutionAt: res.NextExecutionAt,
		}
		if err != nil {
			body.Error = res.Output
		} else {
			body.Output = res.Output
		}
		c.JSON(http.StatusOK, body)
	}
}

func (h *renewalHandler) TestRenewal() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		out, err := h.fleetService.TestRenewal(c, id)
		if err != nil {
			if writeKnownError(c, err) {
				return
			}
			var execErr *executor.ExecError
			if errors.As(err, &execErr) {
				c.JSON(http.StatusOK, response.TestRenewalResponse{
					Success: false,
					Error:   execErr.Error(),
				})
				return
			}
			err = fmt.Errorf("RenewalHandler.TestRenewal: %w", err)
			h.logger.LoggingError(c, err, fmt.Sprintf("failed to test renewal %s", id), zap.ErrorLevel)
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, response.TestRenewalResponse{
			Success: true,
			Output:  out,
		})
	}
}

func NewRenewalHandler(logger *zap.Logger, fleetService service.FleetService) RenewalHandler {
	return &renewalHandler{
		logger:       NewLogger(logger),
		fleetService: fleetService,
	}
}
