package apperrors

import (
	"errors"
)

var (
	ErrServerNotFound         = errors.New("server not found")
	ErrServerAlreadyExists    = errors.New("server with this hostname and port already exists")
	ErrServiceNotFound        = errors.New("service not found")
	ErrRenewalNotFound        = errors.New("renewal not found")
	ErrServiceAlreadyExists   = errors.New("service already exists on this server")
	ErrCheckCommandRequired   = errors.New("check command is required for custom services")
	ErrUnsupportedServiceType = errors.New("unsupported service type")
	ErrInvalidRenewalType     = errors.New("invalid renewal type")
	ErrScriptRequired         = errors.New("renewal script is required")
	ErrEntityBusy             = errors.New("another operation is in progress for this entity")
)

// Remote execution failure taxonomy.
var (
	ErrAuthConfiguration = errors.New("authentication configuration error")
	ErrConnectivity      = errors.New("connectivity error")
	ErrRemoteCommand     = errors.New("remote command error")
)
