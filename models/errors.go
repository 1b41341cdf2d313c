package models

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
)

// ValidationError signals malformed or missing input. The caller can
// recover by re-prompting the actor.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PermissionError signals that the actor lacks the role or ownership the
// operation requires. Never retried; surfaced as access denied.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

func NewPermissionError(format string, args ...any) *PermissionError {
	return &PermissionError{Message: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError signals a state change that is illegal from the
// task's current status. Callers should refresh their view of the task
// rather than retry.
type InvalidTransitionError struct {
	From    TaskStatus
	Message string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s (current status: %s)", e.Message, e.From)
}

func NewInvalidTransitionError(from TaskStatus, format string, args ...any) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Message: fmt.Sprintf(format, args...)}
}
