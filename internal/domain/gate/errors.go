package gate

import "errors"

// Gate domain errors
var (
	ErrSessionNotFound = errors.New("attendance session not found")
)
