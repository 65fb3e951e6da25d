package handler

import (
	"VCS_SMS_Fleet/internal/fleet/api/dto/request"
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/health"
	mockservice "VCS_SMS_Fleet/internal/fleet/mocks/service"
	"VCS_SMS_Fleet/internal/fleet/model"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestServiceHandler_CreateService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	serverID := "4f1c3a5e-7c55-4b8a-9d1e-2b7f6d2a9c10"

	serviceReq := request.ServiceRequest{
		ServerID:    serverID,
		Name:        "nginx",
		ServiceType: "systemd",
	}
	serviceModel := model.Service{
		ServerID:    serverID,
		Name:        "nginx",
		ServiceType: model.ServiceTypeSystemd,
	}
	created := serviceModel
	created.ID = "svc-1"
	created.CheckCommand = "systemctl is-active nginx"
	created.Status = model.ServiceStatusUnknown

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockFleetService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Service Created",
			body: serviceReq,
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().CreateService(gomock.Any(), serviceModel).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"check_command":"systemctl is-active nginx"`,
		},
		{
			name:           "Error Unsupported Type",
			body:           request.ServiceRequest{ServerID: serverID, Name: "nginx", ServiceType: "kubernetes"},
			setupMocks:     func(mockService *mockservice.MockFleetService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The ServiceType field must be one of: systemd docker process custom"`,
		},
		{
			name:           "Error Invalid Server ID",
			body:           request.ServiceRequest{ServerID: "not-a-uuid", Name: "nginx", ServiceType: "docker"},
			setupMocks:     func(mockService *mockservice.MockFleetService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The ServerID field is not a valid uuid"`,
		},
		{
			name: "Error Server Not Found",
			body: serviceReq,
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().CreateService(gomock.Any(), serviceModel).Return(model.Service{}, apperrors.ErrServerNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Server not found"`,
		},
		{
			name: "Error Service Already Exists",
			body: serviceReq,
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().CreateService(gomock.Any(), serviceModel).Return(model.Service{}, apperrors.ErrServiceAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"message":"Service already exists on this server"`,
		},
		{
			name: "Error Internal Server Error",
			body: serviceReq,
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().CreateService(gomock.Any(), serviceModel).Return(model.Service{}, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockFleetService(ctrl)
			tc.setupMocks(mockService)

			handler := NewServiceHandler(zap.NewNop(), mockService)

			w, c := setupTestContext(t, http.MethodPost, "/services", jsonBody(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.CreateService()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestServiceHandler_GetAndDeleteService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockFleetService(ctrl)
	mockService.EXPECT().GetService(gomock.Any(), "svc-1").Return(model.Service{ID: "svc-1", Name: "nginx"}, nil)
	mockService.EXPECT().GetService(gomock.Any(), "missing").Return(model.Service{}, apperrors.ErrServiceNotFound)
	mockService.EXPECT().DeleteService(gomock.Any(), "svc-1").Return(nil)

	handler := NewServiceHandler(zap.NewNop(), mockService)

	w, c := setupTestContext(t, http.MethodGet, "/services/svc-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "svc-1"}}
	handler.GetService()(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"nginx"`)

	w, c = setupTestContext(t, http.MethodGet, "/services/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	handler.GetService()(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Service not found"`)

	w, c = setupTestContext(t, http.MethodDelete, "/services/svc-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "svc-1"}}
	handler.DeleteService()(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Service deleted"`)
}

func TestServiceHandler_CheckService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	checkedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockFleetService)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name: "Success Running",
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().CheckService(gomock.Any(), "svc-1").Return(health.CheckResult{
					Status:    model.ServiceStatusRunning,
					Output:    "active",
					CheckedAt: checkedAt,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"success":true`, `"status":"running"`, `"output":"active"`},
		},
		{
			name: "Recorded Failure",
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().CheckService(gomock.Any(), "svc-1").Return(health.CheckResult{
					Status:    model.ServiceStatusUnknown,
					Output:    "No SSH authentication method configured",
					CheckedAt: checkedAt,
				}, apperrors.ErrAuthConfiguration)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"success":false`, `"status":"unknown"`, `"error":"No SSH authentication method configured"`},
		},
		{
			name: "Error Service Not Found",
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().CheckService(gomock.Any(), "svc-1").Return(health.CheckResult{}, apperrors.ErrServiceNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   []string{`"message":"Service not found"`},
		},
		{
			name: "Error Busy",
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().CheckService(gomock.Any(), "svc-1").Return(health.CheckResult{}, apperrors.ErrEntityBusy)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   []string{`"message":"Another operation is in progress"`},
		},
		{
			name: "Error Not Recorded",
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().CheckService(gomock.Any(), "svc-1").Return(health.CheckResult{}, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   []string{`"message":"Internal server error"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockFleetService(ctrl)
			tc.setupMocks(mockService)

			handler := NewServiceHandler(zap.NewNop(), mockService)

			w, c := setupTestContext(t, http.MethodPost, "/services/svc-1/check", nil)
			c.Params = gin.Params{{Key: "id", Value: "svc-1"}}

			handler.CheckService()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			for _, b := range tc.expectedBody {
				assert.Contains(t, w.Body.String(), b)
			}
		})
	}
}
