package errorz

import "errors"

var (
	ErrSessionExpired      = errors.New("session expired")
	ErrInvalidCallbackData = errors.New("invalid callback data")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAdminLocked         = errors.New("admin accounts cannot be deactivated")
	ErrEmptyRejectReason   = errors.New("rejection reason must not be empty")
)
