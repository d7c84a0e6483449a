package dto

import (
	"errors"
	"fmt"
)

var (
	ErrEngineUnavailable = errors.New("scan engine unavailable")
	ErrEngineStatus      = errors.New("scan engine returned non-success status")
	ErrEngineResponse    = errors.New("scan engine returned an unreadable response")
	ErrStrategyNotFound  = errors.New("strategy not found")
	ErrUnknownMarket     = errors.New("unknown market")
)

// EngineStatusError carries the engine's status and body untouched so the
// proxy can relay them.
type EngineStatusError struct {
	StatusCode int
	Body       []byte
}

func (e *EngineStatusError) Error() string {
	return fmt.Sprintf("scan engine returned status: %d", e.StatusCode)
}

func (e *EngineStatusError) Unwrap() error {
	return ErrEngineStatus
}
