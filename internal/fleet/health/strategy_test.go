package health

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCheckCommand(t *testing.T) {
	testCases := []struct {
		name            string
		service         model.Service
		expectedCommand string
		expectedError   error
	}{
		{
			name:            "Systemd default",
			service:         model.Service{Name: "nginx", ServiceType: model.ServiceTypeSystemd},
			expectedCommand: "systemctl is-active nginx",
		},
		{
			name:            "Docker default",
			service:         model.Service{Name: "web", ServiceType: model.ServiceTypeDocker},
			expectedCommand: "docker ps --filter name=web --filter status=running --format '{{.Names}}'",
		},
		{
			name:            "Process default",
			service:         model.Service{Name: "sidekiq", ServiceType: model.ServiceTypeProcess},
			expectedCommand: "pgrep -f sidekiq > /dev/null && echo 'running' || echo 'stopped'",
		},
		{
			name:            "Systemd unit with spaces is quoted",
			service:         model.Service{Name: "my unit", ServiceType: model.ServiceTypeSystemd},
			expectedCommand: "systemctl is-active 'my unit'",
		},
		{
			name:            "Docker name with command separator is quoted",
			service:         model.Service{Name: "web; rm -rf /", ServiceType: model.ServiceTypeDocker},
			expectedCommand: "docker ps --filter name='web; rm -rf /' --filter status=running --format '{{.Names}}'",
		},
		{
			name:            "Process pattern with single quote is escaped",
			service:         model.Service{Name: "it's", ServiceType: model.ServiceTypeProcess},
			expectedCommand: `pgrep -f 'it'\''s' > /dev/null && echo 'running' || echo 'stopped'`,
		},
		{
			name:            "Systemd template unit stays bare",
			service:         model.Service{Name: "getty@tty1.service", ServiceType: model.ServiceTypeSystemd},
			expectedCommand: "systemctl is-active getty@tty1.service",
		},
		{
			name:            "Explicit command is trimmed",
			service:         model.Service{Name: "nginx", ServiceType: model.ServiceTypeSystemd, CheckCommand: " curl -sf localhost/health \n"},
			expectedCommand: "curl -sf localhost/health",
		},
		{
			name:          "Custom requires command",
			service:       model.Service{Name: "batch", ServiceType: model.ServiceTypeCustom, CheckCommand: "   "},
			expectedError: apperrors.ErrCheckCommandRequired,
		},
		{
			name:          "Unknown type",
			service:       model.Service{Name: "batch", ServiceType: "launchd"},
			expectedError: apperrors.ErrUnsupportedServiceType,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := ResolveCheckCommand(tc.service)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCommand, cmd)
		})
	}
}

func TestCustomStrategy_Classify(t *testing.T) {
	testCases := []struct {
		output   string
		expected model.ServiceStatus
	}{
		{"Service is RUNNING", model.ServiceStatusRunning},
		{"status: ok", model.ServiceStatusRunning},
		{"inactive", model.ServiceStatusRunning},
		{"process failed", model.ServiceStatusStopped},
		{"Stopped", model.ServiceStatusStopped},
		{"hello", model.ServiceStatusUnknown},
		{"", model.ServiceStatusUnknown},
	}

	s := customStrategy{}
	for _, tc := range testCases {
		t.Run(tc.output, func(t *testing.T) {
			assert.Equal(t, tc.expected, s.Classify(tc.output, "svc"))
		})
	}
}

func TestDockerStrategy_Classify(t *testing.T) {
	s := dockerStrategy{}
	assert.Equal(t, model.ServiceStatusRunning, s.Classify("nginx", "nginx"))
	assert.Equal(t, model.ServiceStatusRunning, s.Classify("nginx-proxy", "nginx"))
	assert.Equal(t, model.ServiceStatusStopped, s.Classify("redis", "nginx"))
	assert.Equal(t, model.ServiceStatusStopped, s.Classify("", "nginx"))
}

func TestProcessStrategy_Classify(t *testing.T) {
	s := processStrategy{}
	assert.Equal(t, model.ServiceStatusRunning, s.Classify("running", "x"))
	assert.Equal(t, model.ServiceStatusStopped, s.Classify("stopped", "x"))
}

type fixedStrategy struct{}

func (fixedStrategy) DefaultCommand(name string) (string, bool) { return "check " + name, true }

func (fixedStrategy) Classify(string, string) model.ServiceStatus { return model.ServiceStatusRunning }

func TestRegisterStrategy(t *testing.T) {
	const launchd model.ServiceType = "launchd"
	RegisterStrategy(launchd, fixedStrategy{})
	t.Cleanup(func() {
		strategiesMu.Lock()
		delete(strategies, launchd)
		strategiesMu.Unlock()
	})

	cmd, err := ResolveCheckCommand(model.Service{Name: "agent", ServiceType: launchd})
	require.NoError(t, err)
	assert.Equal(t, "check agent", cmd)

	s, ok := StrategyFor(launchd)
	require.True(t, ok)
	assert.Equal(t, model.ServiceStatusRunning, s.Classify("", "agent"))
}
