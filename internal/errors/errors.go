package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAdminNotFound       = errors.New("admin not found")
	ErrWrongPassword       = errors.New("current password is incorrect")
	ErrPasswordTooShort    = errors.New("new password must be at least 8 characters")
	ErrInvalidTwoFAMethod  = errors.New("unsupported two-factor method")
	ErrCodeInvalidOrUsed   = errors.New("invalid or expired code")
	ErrConfigurationEmpty  = errors.New("configuration must contain at least one product")
	ErrConfigurationAbsent = errors.New("configuration not found")
)
