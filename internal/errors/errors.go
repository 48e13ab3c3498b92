// Package errors provides custom error types for goal-crew.
// It distinguishes between recoverable errors (logged, the command still
// produces its envelope) and fatal errors (the command reports the error
// envelope and exits 1).
package errors

import (
	"errors"
	"fmt"

	"github.com/betteros/goal-crew/internal/i18n"
)

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityRecoverable indicates an error that can be logged and execution can continue
	SeverityRecoverable Severity = iota
	// SeverityFatal indicates an error that must halt execution
	SeverityFatal
)

// CrewError is the base interface for all goal-crew errors
type CrewError interface {
	error
	Severity() Severity
	Unwrap() error
}

// RecoverableError represents an error that can be logged and execution can continue
type RecoverableError struct {
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *RecoverableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *RecoverableError) Severity() Severity {
	return SeverityRecoverable
}

func (e *RecoverableError) Unwrap() error {
	return e.Err
}

// FatalError represents an error that must halt execution
type FatalError struct {
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *FatalError) Severity() Severity {
	return SeverityFatal
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// NewRecoverable creates a new recoverable error
func NewRecoverable(op, message string, err error) *RecoverableError {
	return &RecoverableError{
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewFatal creates a new fatal error
func NewFatal(op, message string, err error) *FatalError {
	return &FatalError{
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsRecoverable checks if an error is recoverable
func IsRecoverable(err error) bool {
	var recErr *RecoverableError
	if errors.As(err, &recErr) {
		return true
	}

	var crewErr CrewError
	if errors.As(err, &crewErr) {
		return crewErr.Severity() == SeverityRecoverable
	}

	return false
}

// IsFatal checks if an error is fatal
func IsFatal(err error) bool {
	var fatalErr *FatalError
	if errors.As(err, &fatalErr) {
		return true
	}

	var crewErr CrewError
	if errors.As(err, &crewErr) {
		return crewErr.Severity() == SeverityFatal
	}

	// By default, unknown errors are treated as fatal
	return err != nil
}

// Common error constructors for specific scenarios

// ErrUsage creates an error for missing or malformed command arguments
func ErrUsage(usage string) *FatalError {
	return NewFatal(i18n.ErrOpUsage, usage, nil)
}

// ErrInvalidContext creates an error for a context blob that is not a JSON object
func ErrInvalidContext(err error) *FatalError {
	return NewFatal(i18n.ErrOpContext, i18n.ErrMsgInvalidContext, err)
}

// ErrInvalidDeadline creates an error for a non-integer deadline argument
func ErrInvalidDeadline(value string) *FatalError {
	return NewFatal(i18n.ErrOpUsage, fmt.Sprintf(i18n.ErrMsgInvalidDeadline, value), nil)
}

// ErrConfig creates an error for configuration load or validation failures
func ErrConfig(err error) *FatalError {
	return NewFatal(i18n.ErrOpConfig, i18n.ErrMsgLoadConfig, err)
}

// ErrCrewDefinition creates an error for broken agent, task or pipeline definitions
func ErrCrewDefinition(err error) *FatalError {
	return NewFatal(i18n.ErrOpCrew, i18n.ErrMsgInvalidDefinition, err)
}

// ErrUnknownPipeline creates an error for a command without a pipeline
func ErrUnknownPipeline(command string) *FatalError {
	return NewFatal(i18n.ErrOpCrew, fmt.Sprintf(i18n.ErrMsgUnknownPipeline, command), nil)
}

// ErrMissingInput creates an error for a template placeholder with no input value
func ErrMissingInput(name string) *FatalError {
	return NewFatal(i18n.ErrOpCrew, fmt.Sprintf(i18n.ErrMsgMissingInput, name), nil)
}

// ErrTaskFailed creates an error for a task whose model call failed
func ErrTaskFailed(task string, err error) *FatalError {
	return NewFatal(i18n.ErrOpCrew, fmt.Sprintf(i18n.ErrMsgTaskFailed, task), err)
}

// ErrUnknownProvider creates an error for an unregistered LLM provider
func ErrUnknownProvider(name string) *FatalError {
	return NewFatal(i18n.ErrOpProvider, fmt.Sprintf(i18n.ErrMsgProviderUnknown, name), nil)
}

// ErrProviderNotAvailable creates an error for a provider that cannot run here
func ErrProviderNotAvailable(name string, err error) *FatalError {
	return NewFatal(i18n.ErrOpProvider, fmt.Sprintf(i18n.ErrMsgProviderUnavail, name), err)
}

// ErrMissingAPIKey creates an error for a provider without credentials
func ErrMissingAPIKey(envVar string) *FatalError {
	return NewFatal(i18n.ErrOpProvider, fmt.Sprintf(i18n.ErrMsgMissingAPIKey, envVar), nil)
}

// ErrFileNotFound creates an error for when a file is not found
func ErrFileNotFound(path string) *FatalError {
	return NewFatal(i18n.ErrOpFile, fmt.Sprintf(i18n.ErrMsgFileNotFound, path), nil)
}

// ErrBriefingParse creates a recoverable error for briefings without usable JSON
func ErrBriefingParse(err error) *RecoverableError {
	return NewRecoverable(i18n.ErrOpResult, i18n.ErrMsgBriefingParse, err)
}
