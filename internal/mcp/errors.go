package mcp

import (
	"errors"
	"fmt"

	"github.com/lmoretto/wanderlust/internal/domain/activity"
	"github.com/lmoretto/wanderlust/internal/domain/experience"
	"github.com/lmoretto/wanderlust/internal/domain/game"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unrecognized errors pass
// through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		return &APIError{Code: "SESSION_NOT_FOUND", Message: "game session not found", RecoveryHint: "Call list_sessions to see the available sessions"}
	case errors.Is(err, game.ErrInvalidState):
		return &APIError{Code: "INVALID_STATE", Message: "session is not in a state that allows this operation", RecoveryHint: "Check session_status before retrying"}
	case errors.Is(err, game.ErrInvalidArgument):
		return &APIError{Code: "INVALID_ARGUMENT", Message: "invalid argument", RecoveryHint: "Check the tool input fields"}
	case errors.Is(err, experience.ErrNegativeGain):
		return &APIError{Code: "INVALID_ARGUMENT", Message: "experience gain cannot be negative"}
	case errors.Is(err, activity.ErrInvalidInput):
		return &APIError{Code: "INVALID_ARGUMENT", Message: "invalid activity query"}
	default:
		return err
	}
}
