package main

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/executor"
	"VCS_SMS_Fleet/internal/fleet/health"
	"VCS_SMS_Fleet/internal/fleet/mocks/service"
	"VCS_SMS_Fleet/internal/fleet/model"
	"VCS_SMS_Fleet/internal/fleet/renewal"
	"VCS_SMS_Fleet/internal/fleet/service"
	"VCS_SMS_Fleet/internal/fleet/summary"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupTestCommand(t *testing.T) (*mockservice.MockFleetService, *bytes.Buffer, *[]string, command) {
	ctrl := gomock.NewController(t)
	fs := mockservice.NewMockFleetService(ctrl)
	out := &bytes.Buffer{}
	var envFiles []string
	c := command{
		connect: func(ctx context.Context, envFile string) (service.FleetService, func(), error) {
			envFiles = append(envFiles, envFile)
			return fs, func() {}, nil
		},
		out: out,
	}
	return fs, out, &envFiles, c
}

func runRoot(c command, args ...string) error {
	root := buildRoot(c)
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func decodeOutcome(t *testing.T, out *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var o map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &o))
	return o
}

func TestCommands(t *testing.T) {
	checkedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	connErr := &executor.ExecError{Kind: apperrors.ErrConnectivity, Reason: "Connection failed: dial tcp: connection refused"}

	testCases := []struct {
		name          string
		args          []string
		setupMock     func(fs *mockservice.MockFleetService)
		expectedErr   error
		expectSuccess bool
		expectedError string
	}{
		{
			name: "probe online",
			args: []string{"probe", "srv-1"},
			setupMock: func(fs *mockservice.MockFleetService) {
				fs.EXPECT().TestConnection(gomock.Any(), "srv-1").Return(health.ConnectionResult{
					Status:    model.ConnectionStatusOnline,
					Output:    "Connection successful",
					CheckedAt: checkedAt,
				}, nil)
			},
			expectSuccess: true,
		},
		{
			name: "probe offline",
			args: []string{"probe", "srv-1"},
			setupMock: func(fs *mockservice.MockFleetService) {
				fs.EXPECT().TestConnection(gomock.Any(), "srv-1").Return(health.ConnectionResult{
					Status:    model.ConnectionStatusOffline,
					CheckedAt: checkedAt,
				}, connErr)
			},
			expectedErr:   errOperationFailed,
			expectedError: connErr.Error(),
		},
		{
			name: "check service",
			args: []string{"check", "svc-1"},
			setupMock: func(fs *mockservice.MockFleetService) {
				fs.EXPECT().CheckService(gomock.Any(), "svc-1").Return(health.CheckResult{
					Status: model.ServiceStatusRunning,
					Output: "active",
				}, nil)
			},
			expectSuccess: true,
		},
		{
			name: "check server with one failed service",
			args: []string{"check-server", "srv-1"},
			setupMock: func(fs *mockservice.MockFleetService) {
				fs.EXPECT().CheckServerServices(gomock.Any(), "srv-1").Return([]health.ServiceCheckOutcome{
					{ServiceID: "svc-1", Result: health.CheckResult{Status: model.ServiceStatusRunning}},
					{ServiceID: "svc-2", Result: health.CheckResult{Status: model.ServiceStatusUnknown}, Err: connErr},
				}, nil)
			},
			expectedErr:   errOperationFailed,
			expectedError: "1 of 2 service checks failed",
		},
		{
			name: "renew succeeds",
			args: []string{"renew", "ren-1"},
			setupMock: func(fs *mockservice.MockFleetService) {
				fs.EXPECT().ExecuteRenewal(gomock.Any(), "ren-1").Return(renewal.ExecutionResult{
					Status:     model.RenewalStatusSuccess,
					Output:     "renewed",
					ExecutedAt: checkedAt,
				}, nil)
			},
			expectSuccess: true,
		},
		{
			name: "test renewal fails",
			args: []string{"test", "ren-1"},
			setupMock: func(fs *mockservice.MockFleetService) {
				fs.EXPECT().TestRenewal(gomock.Any(), "ren-1").Return("", connErr)
			},
			expectedErr:   errOperationFailed,
			expectedError: connErr.Error(),
		},
		{
			name: "due with limit",
			args: []string{"due", "--limit", "5"},
			setupMock: func(fs *mockservice.MockFleetService) {
				fs.EXPECT().ExecuteDueRenewals(gomock.Any(), 5).Return(2, nil)
			},
			expectSuccess: true,
		},
		{
			name: "sweep all servers",
			args: []string{"sweep"},
			setupMock: func(fs *mockservice.MockFleetService) {
				fs.EXPECT().SweepServers(gomock.Any()).Return([]service.SweepResult{
					{ServerID: "srv-1", Connection: health.ConnectionResult{Status: model.ConnectionStatusOnline}},
					{ServerID: "srv-2", Connection: health.ConnectionResult{Status: model.ConnectionStatusOffline}, Err: connErr},
				}, nil)
			},
			expectedErr:   errOperationFailed,
			expectedError: "1 of 2 servers had failures",
		},
		{
			name: "sweep one server",
			args: []string{"sweep", "--server", "srv-1"},
			setupMock: func(fs *mockservice.MockFleetService) {
				fs.EXPECT().SweepServer(gomock.Any(), "srv-1").Return(service.SweepResult{
					ServerID:   "srv-1",
					Connection: health.ConnectionResult{Status: model.ConnectionStatusOnline},
				}, nil)
			},
			expectSuccess: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fs, out, envFiles, c := setupTestCommand(t)
			tc.setupMock(fs)

			err := runRoot(c, tc.args...)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			o := decodeOutcome(t, out)
			assert.Equal(t, tc.expectSuccess, o["success"])
			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, o["error"])
			}
			assert.Equal(t, []string{"./.env"}, *envFiles)
		})
	}
}

func TestSummaryCommand(t *testing.T) {
	fs, out, _, c := setupTestCommand(t)
	fs.EXPECT().GetSummary(gomock.Any()).Return(summary.FleetSummary{
		Servers: summary.ConnectionCounts{Total: 3, Online: 2, Offline: 1},
	}, nil)

	err := runRoot(c, "summary")
	require.NoError(t, err)

	var s summary.FleetSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &s))
	assert.Equal(t, 3, s.Servers.Total)
	assert.Equal(t, 2, s.Servers.Online)
}

func TestEnvFileFlag(t *testing.T) {
	fs, _, envFiles, c := setupTestCommand(t)
	fs.EXPECT().ExecuteDueRenewals(gomock.Any(), 100).Return(0, nil)

	err := runRoot(c, "--env-file", "/etc/fleet/.env", "due")
	require.NoError(t, err)
	assert.Equal(t, []string{"/etc/fleet/.env"}, *envFiles)
}

func TestConnectError(t *testing.T) {
	connectErr := errors.New("connect to postgres error: refused")
	c := command{
		connect: func(ctx context.Context, envFile string) (service.FleetService, func(), error) {
			return nil, nil, connectErr
		},
		out: &bytes.Buffer{},
	}

	err := runRoot(c, "probe", "srv-1")
	assert.ErrorIs(t, err, connectErr)
}

func TestArgsValidation(t *testing.T) {
	_, out, envFiles, c := setupTestCommand(t)

	err := runRoot(c, "probe")
	assert.Error(t, err)
	assert.Empty(t, *envFiles)
	assert.Zero(t, out.Len())
}
