package auth

import "errors"

// Authorization errors surfaced by the capability-gate middleware.
var (
	ErrInvalidToken           = errors.New("invalid or missing token")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
