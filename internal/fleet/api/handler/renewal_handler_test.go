package handler

import (
	"VCS_SMS_Fleet/internal/fleet/api/dto/request"
	"VCS_SMS_Fleet/internal/fleet/api/dto/response"
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/executor"
	mockservice "VCS_SMS_Fleet/internal/fleet/mocks/service"
	"VCS_SMS_Fleet/internal/fleet/model"
	"VCS_SMS_Fleet/internal/fleet/renewal"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRenewalHandler_CreateRenewal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	serverID := "4f1c3a5e-7c55-4b8a-9d1e-2b7f6d2a9c10"

	renewalReq := request.RenewalRequest{
		ServerID:    serverID,
		Name:        "web cert",
		RenewalType: "lets_encrypt",
		Script:      "certbot renew",
		Schedule:    "daily",
	}
	renewalModel := model.Renewal{
		ServerID:    serverID,
		Name:        "web cert",
		RenewalType: model.RenewalTypeLetsEncrypt,
		Script:      "certbot renew",
		Schedule:    "daily",
	}
	created := renewalModel
	created.ID = "ren-1"
	created.Status = model.RenewalStatusPending

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockFleetService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Renewal Created",
			body: renewalReq,
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().CreateRenewal(gomock.Any(), renewalModel).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"status":"pending"`,
		},
		{
			name:           "Error Missing Script",
			body:           request.RenewalRequest{ServerID: serverID, Name: "web cert", RenewalType: "ssl"},
			setupMocks:     func(mockService *mockservice.MockFleetService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Script field is required"`,
		},
		{
			name:           "Error Invalid Renewal Type",
			body:           request.RenewalRequest{ServerID: serverID, Name: "web cert", RenewalType: "acme", Script: "x"},
			setupMocks:     func(mockService *mockservice.MockFleetService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The RenewalType field must be one of: ssl certificate lets_encrypt custom"`,
		},
		{
			name: "Error Blank Script",
			body: renewalReq,
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().CreateRenewal(gomock.Any(), renewalModel).Return(model.Renewal{}, apperrors.ErrScriptRequired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Renewal script is required"`,
		},
		{
			name: "Error Internal Server Error",
			body: renewalReq,
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().CreateRenewal(gomock.Any(), renewalModel).Return(model.Renewal{}, errors.New("db down"))
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

			handler := NewRenewalHandler(zap.NewNop(), mockService)

			w, c := setupTestContext(t, http.MethodPost, "/renewals", jsonBody(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.CreateRenewal()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestRenewalHandler_GetRenewals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockFleetService(ctrl)
	mockService.EXPECT().GetRenewals(gomock.Any()).Return([]model.Renewal{
		{ID: "r1", Status: model.RenewalStatusPending},
		{ID: "r2", Status: model.RenewalStatusFailed},
	}, nil).Times(2)

	handler := NewRenewalHandler(zap.NewNop(), mockService)

	w, c := setupTestContext(t, http.MethodGet, "/renewals", nil)
	handler.GetRenewals()(c)
	require.Equal(t, http.StatusOK, w.Code)
	var res []response.RenewalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res, 2)

	w, c = setupTestContext(t, http.MethodGet, "/renewals?status=failed", nil)
	handler.GetRenewals()(c)
	require.Equal(t, http.StatusOK, w.Code)
	res = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, "r2", res[0].ID)
}

func TestRenewalHandler_GetAndDeleteRenewal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockFleetService(ctrl)
	mockService.EXPECT().GetRenewal(gomock.Any(), "r1").Return(model.Renewal{ID: "r1", Name: "cert"}, nil)
	mockService.EXPECT().DeleteRenewal(gomock.Any(), "missing").Return(apperrors.ErrRenewalNotFound)

	handler := NewRenewalHandler(zap.NewNop(), mockService)

	w, c := setupTestContext(t, http.MethodGet, "/renewals/r1", nil)
	c.Params = gin.Params{{Key: "id", Value: "r1"}}
	handler.GetRenewal()(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"cert"`)

	w, c = setupTestContext(t, http.MethodDelete, "/renewals/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	handler.DeleteRenewal()(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Renewal not found"`)
}

func TestRenewalHandler_ExecuteRenewal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	executedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	next := executedAt.AddDate(0, 0, 1)

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockFleetService)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name: "Success",
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().ExecuteRenewal(gomock.Any(), "r1").Return(renewal.ExecutionResult{
					Status:          model.RenewalStatusSuccess,
					Output:          "renewed",
					ExecutedAt:      executedAt,
					NextExecutionAt: &next,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"success":true`, `"status":"success"`, `"output":"renewed"`, `"next_execution_at":"2026-03-02T12:00:00Z"`},
		},
		{
			name: "Recorded Failure",
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().ExecuteRenewal(gomock.Any(), "r1").Return(renewal.ExecutionResult{
					Status:     model.RenewalStatusFailed,
					Output:     "connection refused",
					ExecutedAt: executedAt,
				}, apperrors.ErrConnectivity)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"success":false`, `"status":"failed"`, `"error":"connection refused"`, `"next_execution_at":null`},
		},
		{
			name: "Error Busy",
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().ExecuteRenewal(gomock.Any(), "r1").Return(renewal.ExecutionResult{}, apperrors.ErrEntityBusy)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   []string{`"message":"Another operation is in progress"`},
		},
		{
			name: "Error Not Recorded",
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().ExecuteRenewal(gomock.Any(), "r1").Return(renewal.ExecutionResult{}, errors.New("db down"))
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

			handler := NewRenewalHandler(zap.NewNop(), mockService)

			w, c := setupTestContext(t, http.MethodPost, "/renewals/r1/execute", nil)
			c.Params = gin.Params{{Key: "id", Value: "r1"}}

			handler.ExecuteRenewal()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			for _, b := range tc.expectedBody {
				assert.Contains(t, w.Body.String(), b)
			}
		})
	}
}

func TestRenewalHandler_TestRenewal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockFleetService)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name: "Success",
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().TestRenewal(gomock.Any(), "r1").Return("dry run ok", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"success":true`, `"output":"dry run ok"`},
		},
		{
			name: "Execution Failure",
			setupMocks: func(mockService *mockservice.MockFleetService) {
				execErr := &executor.ExecError{Kind: apperrors.ErrConnectivity, Reason: "dial tcp 10.0.0.1:22: i/o timeout"}
				mockService.EXPECT().TestRenewal(gomock.Any(), "r1").Return("", fmt.Errorf("FleetService.TestRenewal: %w", execErr))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"success":false`, `"error":"dial tcp 10.0.0.1:22: i/o timeout"`},
		},
		{
			name: "Error Renewal Not Found",
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().TestRenewal(gomock.Any(), "r1").Return("", apperrors.ErrRenewalNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   []string{`"message":"Renewal not found"`},
		},
		{
			name: "Error Internal",
			setupMocks: func(mockService *mockservice.MockFleetService) {
				mockService.EXPECT().TestRenewal(gomock.Any(), "r1").Return("", errors.New("db down"))
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

			handler := NewRenewalHandler(zap.NewNop(), mockService)

			w, c := setupTestContext(t, http.MethodPost, "/renewals/r1/test", nil)
			c.Params = gin.Params{{Key: "id", Value: "r1"}}

			handler.TestRenewal()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			for _, b := range tc.expectedBody {
				assert.Contains(t, w.Body.String(), b)
			}
		})
	}
}
