package service

import "errors"

// Error families shared by every service. Handlers map these onto HTTP
// status codes; services never format user-facing messages themselves.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrGoalTerminal = errors.New("goal is in a terminal state")
)
