// Package apperr is the tool-orchestration boundary's error shape. Numerical
// packages never import it — they return the typed errors in
// corrosionengine/domain/errs; the tools package translates those into an
// AppError carrying the machine-readable code the response envelope reports.
package apperr

import "fmt"

// AppError represents a structured application error.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{Code: appErr.Code, Message: message, Cause: appErr}
	}
	return &AppError{Code: CodeInternalError, Message: message, Cause: err}
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode sets the error code on an existing error, preserving its message/cause.
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{Code: code, Message: appErr.Message, Cause: appErr.Cause}
	}
	return &AppError{Code: code, Message: err.Error(), Cause: err}
}

// GetCode returns the error code if err is an AppError, otherwise "UNKNOWN".
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Error kinds, one per spec.md §7 error policy.
const (
	CodeInputValidation      = "INPUT_VALIDATION"
	CodeOutOfValidatedRegion = "OUT_OF_VALIDATED_REGION"
	CodeSolverNonConvergence = "SOLVER_NON_CONVERGENCE"
	CodeTier2Unavailable     = "TIER2_UNAVAILABLE"
	CodeCatalogLoad          = "CATALOG_LOAD"
	CodeConfigInvalid        = "CONFIG_INVALID"
	CodeInternalError        = "INTERNAL_ERROR"
)

func InputValidation(message string) *AppError      { return New(CodeInputValidation, message) }
func OutOfValidatedRegion(message string) *AppError  { return New(CodeOutOfValidatedRegion, message) }
func SolverNonConvergence(message string) *AppError  { return New(CodeSolverNonConvergence, message) }
func CatalogLoad(message string) *AppError           { return New(CodeCatalogLoad, message) }
func ConfigInvalid(message string) *AppError         { return New(CodeConfigInvalid, message) }
func InternalError(message string) *AppError         { return New(CodeInternalError, message) }
