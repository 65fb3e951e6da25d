package health

import (
	"VCS_SMS_Fleet/internal/fleet/model"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Strategy derives the default check command for a service type and
// classifies the trimmed command output into a service status.
type Strategy interface {
	DefaultCommand(name string) (string, bool)
	Classify(output string, name string) model.ServiceStatus
}

var shellSafe = regexp.MustCompile(`^[A-Za-z0-9@%+=:,./_-]+$`)

// shellQuote returns name as a single POSIX shell word. Plain names are left as is.
func shellQuote(name string) string {
	if shellSafe.MatchString(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", `'\''`) + "'"
}

type systemdStrategy struct{}

func (systemdStrategy) DefaultCommand(name string) (string, bool) {
	return fmt.Sprintf("systemctl is-active %s", shellQuote(name)), true
}

func (systemdStrategy) Classify(output string, _ string) model.ServiceStatus {
	if strings.Contains(output, "active") {
		return model.ServiceStatusRunning
	}
	return model.ServiceStatusStopped
}

type dockerStrategy struct{}

func (dockerStrategy) DefaultCommand(name string) (string, bool) {
	return fmt.Sprintf("docker ps --filter name=%s --filter status=running --format '{{.Names}}'", shellQuote(name)), true
}

func (dockerStrategy) Classify(output string, name string) model.ServiceStatus {
	if output != "" && strings.Contains(output, name) {
		return model.ServiceStatusRunning
	}
	return model.ServiceStatusStopped
}

type processStrategy struct{}

func (processStrategy) DefaultCommand(name string) (string, bool) {
	return fmt.Sprintf("pgrep -f %s > /dev/null && echo 'running' || echo 'stopped'", shellQuote(name)), true
}

func (processStrategy) Classify(output string, _ string) model.ServiceStatus {
	if strings.Contains(output, "running") {
		return model.ServiceStatusRunning
	}
	return model.ServiceStatusStopped
}

var (
	customRunningPattern = regexp.MustCompile(`(?i)running|active|up|ok`)
	customStoppedPattern = regexp.MustCompile(`(?i)stopped|inactive|down|failed`)
)

// customStrategy has no default command; the operator supplies one.
type customStrategy struct{}

func (customStrategy) DefaultCommand(string) (string, bool) {
	return "", false
}

func (customStrategy) Classify(output string, _ string) model.ServiceStatus {
	if customRunningPattern.MatchString(output) {
		return model.ServiceStatusRunning
	}
	if customStoppedPattern.MatchString(output) {
		return model.ServiceStatusStopped
	}
	return model.ServiceStatusUnknown
}

var (
	strategiesMu sync.RWMutex
	strategies   = map[model.ServiceType]Strategy{
		model.ServiceTypeSystemd: systemdStrategy{},
		model.ServiceTypeDocker:  dockerStrategy{},
		model.ServiceTypeProcess: processStrategy{},
		model.ServiceTypeCustom:  customStrategy{},
	}
)

// RegisterStrategy adds or replaces the strategy for a service type.
func RegisterStrategy(t model.ServiceType, s Strategy) {
	strategiesMu.Lock()
	defer strategiesMu.Unlock()
	strategies[t] = s
}

func StrategyFor(t model.ServiceType) (Strategy, bool) {
	strategiesMu.RLock()
	defer strategiesMu.RUnlock()
	s, ok := strategies[t]
	return s, ok
}
