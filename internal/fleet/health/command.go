package health

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/model"
	"fmt"
	"strings"
)

// ResolveCheckCommand returns the explicit check command, or the default
// derived from the service type and name.
func ResolveCheckCommand(service model.Service) (string, error) {
	if cmd := strings.TrimSpace(service.CheckCommand); cmd != "" {
		return cmd, nil
	}
	s, ok := StrategyFor(service.ServiceType)
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedServiceType, service.ServiceType)
	}
	cmd, ok := s.DefaultCommand(service.Name)
	if !ok {
		return "", apperrors.ErrCheckCommandRequired
	}
	return cmd, nil
}
