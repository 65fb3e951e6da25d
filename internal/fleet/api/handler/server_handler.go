package handler

import (
	"VCS_SMS_Fleet/internal/fleet/api/dto/request"
	"VCS_SMS_Fleet/internal/fleet/api/dto/response"
	"VCS_SMS_Fleet/internal/fleet/health"
	"VCS_SMS_Fleet/internal/fleet/model"
	"VCS_SMS_Fleet/internal/fleet/service"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=server_handler.go -destination=../../mocks/api/handler/mock_server_handler.go -package=mockhandler

type ServerHandler interface {
	CreateServer() gin.HandlerFunc
	ImportServersFromExcelFile() gin.HandlerFunc
	GetServers() gin.HandlerFunc
	GetServer() gin.HandlerFunc
	DeleteServer() gin.HandlerFunc
	GetServerServices() gin.HandlerFunc
	TestConnection() gin.HandlerFunc
	CheckServerServices() gin.HandlerFunc
}

type serverHandler struct {
	logger       Logger
	fleetService service.FleetService
	validator    *validator.Validate
}

func toServerResponse(s model.Server) response.ServerResponse {
	port := s.Port
	if port <= 0 {
		port = model.DefaultSSHPort
	}
	return response.ServerResponse{
		ID:            s.ID,
		Name:          s.Name,
		Hostname:      s.Hostname,
		Port:          port,
		Username:      s.Username,
		SSHKeyPath:    s.SSHKeyPath,
		HasInlineKey:  strings.TrimSpace(s.SSHKey) != "",
		Description:   s.Description,
		Status:        string(s.Status),
		LastCheckedAt: s.LastCheckedAt,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toServer(req request.ServerRequest) model.Server {
	server := model.Server{
		Name:        req.Name,
		Hostname:    req.Hostname,
		Username:    req.Username,
		SSHKey:      req.SSHKey,
		SSHKeyPath:  req.SSHKeyPath,
		Description: req.Description,
	}
	if req.Port != nil {
		server.Port = *req.Port
	}
	return server
}

func (s *serverHandler) CreateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ServerRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := s.fleetService.CreateServer(c, toServer(req))
		if err != nil {
			if writeKnownError(c, err) {
				return
			}
			err = fmt.Errorf("ServerHandler.CreateServer: %w", err)
			s.logger.LoggingError(c, err, "failed to create server", zap.ErrorLevel)
			internalError(c)
			return
		}
		c.JSON(http.StatusCreated, toServerResponse(res))
	}
}

func (s *serverHandler) GetServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		if status != "" && status != string(model.ConnectionStatusOnline) && status != string(model.ConnectionStatusOffline) && status != string(model.ConnectionStatusUnknown) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid status",
			})
			return
		}
		servers, err := s.fleetService.GetServers(c)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServers: %w", err)
			s.logger.LoggingError(c, err, "failed to get servers", zap.ErrorLevel)
			internalError(c)
			return
		}
		serversRes := make([]response.ServerResponse, 0, len(servers))
		for _, server := range servers {
			if status != "" && string(server.Status) != status {
				continue
			}
			serversRes = append(serversRes, toServerResponse(server))
		}
		c.JSON(http.StatusOK, serversRes)
	}
}

func (s *serverHandler) GetServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		server, err := s.fleetService.GetServer(c, id)
		if err != nil {
			if writeKnownError(c, err) {
				return
			}
			err = fmt.Errorf("ServerHandler.GetServer: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to get server %s", id), zap.ErrorLevel)
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, toServerResponse(server))
	}
}

func (s *serverHandler) DeleteServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := s.fleetService.DeleteServer(c, id)
		if err != nil {
			if writeKnownError(c, err) {
				return
			}
			err = fmt.Errorf("ServerHandler.DeleteServer: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to delete server %s", id), zap.ErrorLevel)
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Server deleted",
		})
	}
}

func (s *serverHandler) GetServerServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		services, err := s.fleetService.GetServicesByServer(c, id)
		if err != nil {
			if writeKnownError(c, err) {
				return
			}
			err = fmt.Errorf("ServerHandler.GetServerServices: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to get services of server %s", id), zap.ErrorLevel)
			internalError(c)
			return
		}
		res := make([]response.ServiceResponse, 0, len(services))
		for _, svc := range services {
			res = append(res, toServiceResponse(svc))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (s *serverHandler) TestConnection() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := s.fleetService.TestConnection(c, id)
		if err != nil && writeKnownError(c, err) {
			return
		}
		if err != nil && res.CheckedAt.IsZero() {
			err = fmt.Errorf("ServerHandler.TestConnection: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to test connection of server %s", id), zap.ErrorLevel)
			internalError(c)
			return
		}
		body := response.ConnectionResponse{
			Success:   err == nil,
			Status:    string(res.Status),
			CheckedAt: res.CheckedAt,
		}
		if err != nil {
			body.Error = res.Output
		} else {
			body.Output = res.Output
		}
		c.JSON(http.StatusOK, body)
	}
}

func (s *serverHandler) CheckServerServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		outcomes, err := s.fleetService.CheckServerServices(c, id)
		if err != nil {
			if writeKnownError(c, err) {
				return
			}
			err = fmt.Errorf("ServerHandler.CheckServerServices: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to check services of server %s", id), zap.ErrorLevel)
			internalError(c)
			return
		}
		res := make([]response.CheckResponse, 0, len(outcomes))
		for _, outcome := range outcomes {
			r := toCheckResponse(outcome.Result, outcome.Err)
			r.ServiceID = outcome.ServiceID
			res = append(res, r)
		}
		c.JSON(http.StatusOK, res)
	}
}

func toCheckResponse(res health.CheckResult, err error) response.CheckResponse {
	r := response.CheckResponse{
		Success:   err == nil,
		Status:    string(res.Status),
		CheckedAt: res.CheckedAt,
	}
	switch {
	case err == nil:
		r.Output = res.Output
	case res.CheckedAt.IsZero():
		r.Error = err.Error()
	default:
		r.Error = res.Output
	}
	return r
}

func (s *serverHandler) ImportServersFromExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		ext := filepath.Ext(file.Filename)
		if ext != ".xlsx" && ext != ".xls" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "File must be excel file",
			})
			return
		}
		importSheet := c.Query("sheet_name")

		validServers, invalidServers, err := s.extractServersFromExcelFile(file, importSheet)
		if err != nil {
			switch {
			case errors.Is(err, errEmptyFile):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "File is empty",
				})
			case errors.Is(err, errSheetNotFound):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Sheet not found",
				})
			case errors.Is(err, errMissingRequiredColumn):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Missing required column",
				})
			default:
				err = fmt.Errorf("ServerHandler.ImportServersFromExcelFile: %w", err)
				s.logger.LoggingError(c, err, "failed to import servers", zap.ErrorLevel)
				internalError(c)
			}
			return
		}

		importedServers, nonImportedServers, err := s.fleetService.CreateServers(c, validServers)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ImportServersFromExcelFile: %w", err)
			s.logger.LoggingError(c, err, "failed to import servers", zap.ErrorLevel)
			internalError(c)
			return
		}
		var importedServerNames []string
		for _, importedServer := range importedServers {
			importedServerNames = append(importedServerNames, importedServer.Name)
		}
		for _, nonImportedServer := range nonImportedServers {
			invalidServers = append(invalidServers, nonImportedServer.Name)
		}
		c.JSON(http.StatusOK, response.ImportServerResponse{
			ImportedCount:   len(importedServerNames),
			ImportedServers: importedServerNames,
			FailedCount:     len(invalidServers),
			FailedServers:   invalidServers,
		})
	}
}

var errSheetNotFound = errors.New("sheet not found")
var errEmptyFile = errors.New("file is empty")
var errMissingRequiredColumn = errors.New("missing required column")

var requiredImportColumns = []string{"name", "hostname", "username"}

func (s *serverHandler) extractServersFromExcelFile(file *multipart.FileHeader, importSheet string) (validServers []model.Server, invalidServers []string, err error) {
	fileContent, err := file.Open()
	if err != nil {
		return
	}
	defer fileContent.Close()

	xlsx, err := excelize.OpenReader(fileContent)
	if err != nil {
		return
	}
	defer xlsx.Close()

	if importSheet == "" {
		importSheet = xlsx.GetSheetName(0)
	} else {
		index, _ := xlsx.GetSheetIndex(importSheet)
		if index == -1 {
			err = errSheetNotFound
			return
		}
	}

	rows, err := xlsx.GetRows(importSheet)
	if err != nil {
		return
	}
	if len(rows) < 2 {
		err = errEmptyFile
		return
	}

	columnMap := make(map[string]int)
	for i, cell := range rows[0] {
		columnMap[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	for _, requiredColumn := range requiredImportColumns {
		if _, ok := columnMap[requiredColumn]; !ok {
			err = errMissingRequiredColumn
			return
		}
	}
	cell := func(row []string, column string) string {
		i, ok := columnMap[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for _, row := range rows[1:] {
		name := cell(row, "name")
		req := request.ServerRequest{
			Name:        name,
			Hostname:    cell(row, "hostname"),
			Username:    cell(row, "username"),
			SSHKeyPath:  cell(row, "ssh_key_path"),
			Description: cell(row, "description"),
		}
		if port := cell(row, "port"); port != "" {
			p, e := strconv.Atoi(port)
			if e != nil {
				invalidServers = append(invalidServers, name)
				continue
			}
			req.Port = &p
		}
		if e := s.validator.Struct(req); e != nil {
			invalidServers = append(invalidServers, name)
			continue
		}
		validServers = append(validServers, toServer(req))
	}
	return
}

func NewServerHandler(logger *zap.Logger, fleetService service.FleetService) ServerHandler {
	return &serverHandler{
		logger:       NewLogger(logger),
		fleetService: fleetService,
		validator:    validator.New(),
	}
}
