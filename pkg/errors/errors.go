package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PlatformError reports a host that cannot receive system packages automatically.
type PlatformError struct {
	OS     string
	Reason string
}

// NewPlatformError constructs a PlatformError.
func NewPlatformError(os, reason string) error {
	return &PlatformError{OS: os, Reason: reason}
}

func (e *PlatformError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unsupported platform %s: %s", e.OS, e.Reason)
}

// PrivilegeError reports that privileged commands were refused before running.
// Suggested holds the full command line the operator should re-run.
type PrivilegeError struct {
	Suggested string
}

// NewPrivilegeError constructs a PrivilegeError.
func NewPrivilegeError(suggested string) error {
	return &PrivilegeError{Suggested: suggested}
}

func (e *PrivilegeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Suggested == "" {
		return "insufficient privilege"
	}
	return fmt.Sprintf("insufficient privilege: re-run as %q", e.Suggested)
}

// CommandError represents an external command that did not succeed.
type CommandError struct {
	Argv     []string
	ExitCode int
}

// NewCommandError constructs a CommandError.
func NewCommandError(argv []string, exitCode int) error {
	return &CommandError{Argv: append([]string(nil), argv...), ExitCode: exitCode}
}

func (e *CommandError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("command %q exited with code %d", strings.Join(e.Argv, " "), e.ExitCode)
}

// VerificationError reports a binding that is not functional.
// Installed distinguishes "loads but fails" from "cannot be loaded".
type VerificationError struct {
	Detail    string
	Installed bool
}

// NewVerificationError constructs a VerificationError.
func NewVerificationError(detail string, installed bool) error {
	return &VerificationError{Detail: detail, Installed: installed}
}

func (e *VerificationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Installed {
		return fmt.Sprintf("installed but not working: %s", e.Detail)
	}
	return fmt.Sprintf("not functional: %s", e.Detail)
}

// DelegationError reports a failed installer subprocess spawned on behalf of another command.
type DelegationError struct {
	Argv     []string
	ExitCode int
}

// NewDelegationError constructs a DelegationError.
func NewDelegationError(argv []string, exitCode int) error {
	return &DelegationError{Argv: append([]string(nil), argv...), ExitCode: exitCode}
}

func (e *DelegationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("delegated installer %q failed with code %d", strings.Join(e.Argv, " "), e.ExitCode)
}

// ExitError carries a process exit status up to main.
type ExitError struct {
	Code int
	Err  error
}

// NewExitError constructs an ExitError.
func NewExitError(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap exposes the underlying error.
func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
