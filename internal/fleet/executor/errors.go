package executor

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
)

// ExecError is a recovered remote execution failure. Error returns the
// human-readable reason that ends up on the persisted record.
type ExecError struct {
	Kind   error
	Reason string
	Err    error
}

func (e *ExecError) Error() string {
	return e.Reason
}

func (e *ExecError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func authConfigurationError(reason string, err error) error {
	return &ExecError{Kind: apperrors.ErrAuthConfiguration, Reason: reason, Err: err}
}

func connectivityError(reason string, err error) error {
	return &ExecError{Kind: apperrors.ErrConnectivity, Reason: reason, Err: err}
}

func remoteCommandError(reason string, err error) error {
	return &ExecError{Kind: apperrors.ErrRemoteCommand, Reason: reason, Err: err}
}
