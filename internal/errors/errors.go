// Package errors defines the stable error code system for stackup.
package errors

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// Code is a stable error code string.
type Code string

// Error codes. Printed verbatim on stderr; treat as a public contract.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"
	EConfig   Code = "E_CONFIG"

	// Input collection
	EMissingInput Code = "E_MISSING_INPUT"
	EAborted      Code = "E_ABORTED"

	// Scaffold pipeline
	EInvalidRepoURL  Code = "E_INVALID_REPO_URL"
	EGitNotInstalled Code = "E_GIT_NOT_INSTALLED"
	ECloneFailed     Code = "E_CLONE_FAILED"
	EDirCreateFailed Code = "E_DIR_CREATE_FAILED"
	EFileWriteFailed Code = "E_FILE_WRITE_FAILED"
)

// Exit codes returned by ExitCode.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitAborted = 130
)

// AppError is the standard error type for stackup errors.
type AppError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError with the given code and message.
func New(code Code, msg string) error {
	return &AppError{Code: code, Msg: msg}
}

// NewWithDetails creates a new AppError with code, message, and details.
// Details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &AppError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new AppError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &AppError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new AppError wrapping an underlying error with details.
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &AppError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not an AppError.
func GetCode(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// AsAppError returns (*AppError, true) if err is or wraps an AppError.
func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the process exit code for an error.
// 0 for nil, 2 for E_USAGE, 130 for E_ABORTED, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetCode(err) {
	case EUsage:
		return ExitUsage
	case EAborted:
		return ExitAborted
	}
	return ExitFailure
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
//	<key>: <value>   (one line per detail, sorted by key)
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var ae *AppError
	if !errors.As(err, &ae) {
		fmt.Fprintln(w, err.Error())
		return
	}
	fmt.Fprintf(w, "error_code: %s\n", ae.Code)
	fmt.Fprintln(w, ae.Msg)
	if ae.Cause != nil {
		fmt.Fprintf(w, "cause: %v\n", ae.Cause)
	}
	keys := make([]string, 0, len(ae.Details))
	for k := range ae.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %s\n", k, ae.Details[k])
	}
}
