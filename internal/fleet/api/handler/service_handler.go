package handler

import (
	"VCS_SMS_Fleet/internal/fleet/api/dto/request"
	"VCS_SMS_Fleet/internal/fleet/api/dto/response"
	"VCS_SMS_Fleet/internal/fleet/model"
	"VCS_SMS_Fleet/internal/fleet/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service_handler.go -destination=../../mocks/api/handler/mock_service_handler.go -package=mockhandler

type ServiceHandler interface {
	CreateService() gin.HandlerFunc
	GetService() gin.HandlerFunc
	DeleteService() gin.HandlerFunc
	CheckService() gin.HandlerFunc
}

type serviceHandler struct {
	logger       Logger
	fleetService service.FleetService
}

func toServiceResponse(s model.Service) response.ServiceResponse {
	return response.ServiceResponse{
		ID:            s.ID,
		ServerID:      s.ServerID,
		Name:          s.Name,
		ServiceType:   string(s.ServiceType),
		CheckCommand:  s.CheckCommand,
		Status:        string(s.Status),
		StatusOutput:  s.StatusOutput,
		LastCheckedAt: s.LastCheckedAt,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (s *serviceHandler) CreateService() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ServiceRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := s.fleetService.CreateService(c, model.Service{
			ServerID:     req.ServerID,
			Name:         req.Name,
			ServiceType:  model.ServiceType(req.ServiceType),
			CheckCommand: req.CheckCommand,
		})
		if err != nil {
			if writeKnownError(c, err) {
				return
			}
			err = fmt.Errorf("ServiceHandler.CreateService: %w", err)
			s.logger.LoggingError(c, err, "failed to create service", zap.ErrorLevel)
			internalError(c)
			return
		}
		c.JSON(http.StatusCreated, toServiceResponse(res))
	}
}

func (s *serviceHandler) GetService() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := s.fleetService.GetService(c, id)
		if err != nil {
			if writeKnownError(c, err) {
				return
			}
			err = fmt.Errorf("ServiceHandler.GetService: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to get service %s", id), zap.ErrorLevel)
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, toServiceResponse(res))
	}
}

func (s *serviceHandler) DeleteService() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := s.fleetService.DeleteService(c, id); err != nil {
			if writeKnownError(c, err) {
				return
			}
			err = fmt.Errorf("ServiceHandler.DeleteService: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to delete service %s", id), zap.ErrorLevel)
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Service deleted",
		})
	}
}

// CheckService answers 200 for any recorded outcome; a failed check carries success=false.
func (s *serviceHandler) CheckService() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := s.fleetService.CheckService(c, id)
		if err != nil && writeKnownError(c, err) {
			return
		}
		if err != nil && res.CheckedAt.IsZero() {
			err = fmt.Errorf("ServiceHandler.CheckService: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to check service %s", id), zap.ErrorLevel)
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, toCheckResponse(res, err))
	}
}

func NewServiceHandler(logger *zap.Logger, fleetService service.FleetService) ServiceHandler {
	return &serviceHandler{
		logger:       NewLogger(logger),
		fleetService: fleetService,
	}
}
