package routes

import (
	mockhandler "VCS_SMS_Fleet/internal/fleet/mocks/api/handler"
	"VCS_SMS_Fleet/pkg/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetUpFleetRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	serverHandler := mockhandler.NewMockServerHandler(ctrl)
	serviceHandler := mockhandler.NewMockServiceHandler(ctrl)
	renewalHandler := mockhandler.NewMockRenewalHandler(ctrl)
	fleetHandler := mockhandler.NewMockFleetHandler(ctrl)
	mockMiddleware := middleware.NewMockAuthMiddleware(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	emptySuccessHandler := func(c *gin.Context) {
		c.Status(http.StatusOK)
	}
	nextMiddleware := func(c *gin.Context) {
		c.Next()
	}

	mockMiddleware.EXPECT().RequireToken().Return(nextMiddleware).Times(4)

	serverHandler.EXPECT().CreateServer().Return(emptySuccessHandler)
	serverHandler.EXPECT().GetServers().Return(emptySuccessHandler)
	serverHandler.EXPECT().ImportServersFromExcelFile().Return(emptySuccessHandler)
	serverHandler.EXPECT().GetServer().Return(emptySuccessHandler)
	serverHandler.EXPECT().DeleteServer().Return(emptySuccessHandler)
	serverHandler.EXPECT().GetServerServices().Return(emptySuccessHandler)
	serverHandler.EXPECT().TestConnection().Return(emptySuccessHandler)
	serverHandler.EXPECT().CheckServerServices().Return(emptySuccessHandler)

	serviceHandler.EXPECT().CreateService().Return(emptySuccessHandler)
	serviceHandler.EXPECT().GetService().Return(emptySuccessHandler)
	serviceHandler.EXPECT().DeleteService().Return(emptySuccessHandler)
	serviceHandler.EXPECT().CheckService().Return(emptySuccessHandler)

	renewalHandler.EXPECT().CreateRenewal().Return(emptySuccessHandler)
	renewalHandler.EXPECT().GetRenewals().Return(emptySuccessHandler)
	renewalHandler.EXPECT().GetRenewal().Return(emptySuccessHandler)
	renewalHandler.EXPECT().DeleteRenewal().Return(emptySuccessHandler)
	renewalHandler.EXPECT().ExecuteRenewal().Return(emptySuccessHandler)
	renewalHandler.EXPECT().TestRenewal().Return(emptySuccessHandler)

	fleetHandler.EXPECT().GetSummary().Return(emptySuccessHandler)
	fleetHandler.EXPECT().GetServicesAvailability().Return(emptySuccessHandler)
	fleetHandler.EXPECT().ExportFleetReport().Return(emptySuccessHandler)
	fleetHandler.EXPECT().ReportFleetStatus().Return(emptySuccessHandler)

	AddServerRoutes(r, serverHandler, mockMiddleware)
	AddServiceRoutes(r, serviceHandler, mockMiddleware)
	AddRenewalRoutes(r, renewalHandler, mockMiddleware)
	AddFleetRoutes(r, fleetHandler, mockMiddleware)
	AddMetricsRoute(r, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "Create Server Route", method: http.MethodPost, path: "/servers", expectedStatus: http.StatusOK},
		{name: "Get Servers Route", method: http.MethodGet, path: "/servers", expectedStatus: http.StatusOK},
		{name: "Import Servers Route", method: http.MethodPost, path: "/servers/import", expectedStatus: http.StatusOK},
		{name: "Get Server Route", method: http.MethodGet, path: "/servers/some-id", expectedStatus: http.StatusOK},
		{name: "Delete Server Route", method: http.MethodDelete, path: "/servers/some-id", expectedStatus: http.StatusOK},
		{name: "Get Server Services Route", method: http.MethodGet, path: "/servers/some-id/services", expectedStatus: http.StatusOK},
		{name: "Test Connection Route", method: http.MethodPost, path: "/servers/some-id/test-connection", expectedStatus: http.StatusOK},
		{name: "Check Server Services Route", method: http.MethodPost, path: "/servers/some-id/check-services", expectedStatus: http.StatusOK},
		{name: "Create Service Route", method: http.MethodPost, path: "/services", expectedStatus: http.StatusOK},
		{name: "Get Service Route", method: http.MethodGet, path: "/services/some-id", expectedStatus: http.StatusOK},
		{name: "Delete Service Route", method: http.MethodDelete, path: "/services/some-id", expectedStatus: http.StatusOK},
		{name: "Check Service Route", method: http.MethodPost, path: "/services/some-id/check", expectedStatus: http.StatusOK},
		{name: "Create Renewal Route", method: http.MethodPost, path: "/renewals", expectedStatus: http.StatusOK},
		{name: "Get Renewals Route", method: http.MethodGet, path: "/renewals", expectedStatus: http.StatusOK},
		{name: "Get Renewal Route", method: http.MethodGet, path: "/renewals/some-id", expectedStatus: http.StatusOK},
		{name: "Delete Renewal Route", method: http.MethodDelete, path: "/renewals/some-id", expectedStatus: http.StatusOK},
		{name: "Execute Renewal Route", method: http.MethodPost, path: "/renewals/some-id/execute", expectedStatus: http.StatusOK},
		{name: "Test Renewal Route", method: http.MethodPost, path: "/renewals/some-id/test", expectedStatus: http.StatusOK},
		{name: "Summary Route", method: http.MethodGet, path: "/summary", expectedStatus: http.StatusOK},
		{name: "Availability Route", method: http.MethodGet, path: "/availability", expectedStatus: http.StatusOK},
		{name: "Export Report Route", method: http.MethodGet, path: "/reports/export", expectedStatus: http.StatusOK},
		{name: "Send Report Route", method: http.MethodPost, path: "/reports", expectedStatus: http.StatusOK},
		{name: "Metrics Route", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "Unknown Route", method: http.MethodGet, path: "/unknown", expectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
