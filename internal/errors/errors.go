package errors

import (
	"fmt"
	"runtime"
	"strings"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// NotARepository - target path has no recognized git metadata
	ErrorTypeNotARepository ErrorType = iota
	// ToolUnavailable - the git executable cannot be invoked
	ErrorTypeToolUnavailable
	// CommandFailed - git ran but returned a failure exit code
	ErrorTypeCommandFailed
	// ParseAnomaly - tool output did not match the expected structure
	ErrorTypeParseAnomaly
	// InvalidArgument - caller-supplied argument is missing or malformed
	ErrorTypeInvalidArgument
	// Config errors - missing or invalid configuration
	ErrorTypeConfig
	// Internal errors - unexpected internal state
	ErrorTypeInternal
)

// Severity represents how critical an error is
type Severity int

const (
	// SeverityLow - can continue with degraded functionality
	SeverityLow Severity = iota
	// SeverityMedium - should be addressed but not fatal
	SeverityMedium
	// SeverityHigh - significant issue, may impact functionality
	SeverityHigh
	// SeverityCritical - must be addressed, stops execution
	SeverityCritical
)

// Error represents a structured error with context
type Error struct {
	Type       ErrorType
	Severity   Severity
	Message    string
	Cause      error
	Context    map[string]interface{}
	StackTrace string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Is checks if this error matches the target error type
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// IsFatal returns true if this error should stop execution
func (e *Error) IsFatal() bool {
	return e.Severity == SeverityCritical
}

// DetailedString returns a detailed error message with context
func (e *Error) DetailedString() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] [%s] %s\n",
		severityString(e.Severity),
		typeString(e.Type),
		e.Message))

	if e.Cause != nil {
		sb.WriteString(fmt.Sprintf("Caused by: %v\n", e.Cause))
	}

	if len(e.Context) > 0 {
		sb.WriteString("Context:\n")
		for k, v := range e.Context {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", k, v))
		}
	}

	if e.StackTrace != "" {
		sb.WriteString(fmt.Sprintf("Stack trace:\n%s\n", e.StackTrace))
	}

	return sb.String()
}

func typeString(t ErrorType) string {
	switch t {
	case ErrorTypeNotARepository:
		return "NOT_A_REPOSITORY"
	case ErrorTypeToolUnavailable:
		return "TOOL_UNAVAILABLE"
	case ErrorTypeCommandFailed:
		return "COMMAND_FAILED"
	case ErrorTypeParseAnomaly:
		return "PARSE_ANOMALY"
	case ErrorTypeInvalidArgument:
		return "INVALID_ARGUMENT"
	case ErrorTypeConfig:
		return "CONFIG"
	case ErrorTypeInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

func severityString(s Severity) string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// captureStackTrace captures the current stack trace
func captureStackTrace(skip int) string {
	var sb strings.Builder
	for i := skip; i < skip+10; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			break
		}
		sb.WriteString(fmt.Sprintf("  %s:%d %s\n", file, line, fn.Name()))
	}
	return sb.String()
}

// New creates a new error with the given type, severity, and message
func New(errType ErrorType, severity Severity, message string) *Error {
	return &Error{
		Type:       errType,
		Severity:   severity,
		Message:    message,
		Context:    make(map[string]interface{}),
		StackTrace: captureStackTrace(2),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, severity Severity, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Type:       errType,
		Severity:   severity,
		Message:    message,
		Cause:      err,
		Context:    make(map[string]interface{}),
		StackTrace: captureStackTrace(2),
	}
}

// Convenience constructors for the gateway and service error taxonomy

// NotARepositoryError reports that a path has no git metadata
func NotARepositoryError(path string) *Error {
	return New(ErrorTypeNotARepository, SeverityHigh,
		fmt.Sprintf("not a git repository: %s", path)).
		WithContext("path", path)
}

// ToolUnavailableError reports that the git binary could not be invoked
func ToolUnavailableError(err error, gitPath string) *Error {
	return Wrap(err, ErrorTypeToolUnavailable, SeverityCritical,
		fmt.Sprintf("git executable unavailable: %s", gitPath)).
		WithContext("git_path", gitPath)
}

// CommandFailedError reports a non-zero git exit, carrying exit code and stderr
func CommandFailedError(err error, args []string, exitCode int, stderr string) *Error {
	return Wrap(err, ErrorTypeCommandFailed, SeverityHigh,
		fmt.Sprintf("git %s failed with exit code %d", strings.Join(args, " "), exitCode)).
		WithContext("args", strings.Join(args, " ")).
		WithContext("exit_code", exitCode).
		WithContext("stderr", stderr)
}

// ParseAnomalyError reports tool output that did not match the expected structure
func ParseAnomalyError(parser, detail string) *Error {
	return New(ErrorTypeParseAnomaly, SeverityLow,
		fmt.Sprintf("%s parser: %s", parser, detail)).
		WithContext("parser", parser)
}

// InvalidArgumentError reports a missing or malformed caller argument
func InvalidArgumentError(field, reason string) *Error {
	return New(ErrorTypeInvalidArgument, SeverityHigh,
		fmt.Sprintf("invalid argument %q: %s", field, reason)).
		WithContext("field", field)
}

// InvalidArgumentErrorf reports a missing or malformed caller argument with formatting
func InvalidArgumentErrorf(field, format string, args ...interface{}) *Error {
	return InvalidArgumentError(field, fmt.Sprintf(format, args...))
}

// ConfigError creates a configuration error
func ConfigError(message string) *Error {
	return New(ErrorTypeConfig, SeverityCritical, message)
}

// ConfigErrorf creates a configuration error with formatting
func ConfigErrorf(format string, args ...interface{}) *Error {
	return New(ErrorTypeConfig, SeverityCritical, fmt.Sprintf(format, args...))
}

// InternalError creates an internal error
func InternalError(message string) *Error {
	return New(ErrorTypeInternal, SeverityCritical, message)
}

// InternalErrorf creates an internal error with formatting
func InternalErrorf(format string, args ...interface{}) *Error {
	return New(ErrorTypeInternal, SeverityCritical, fmt.Sprintf(format, args...))
}

// IsNotARepository reports whether err is a NotARepository error
func IsNotARepository(err error) bool {
	return GetType(err) == ErrorTypeNotARepository
}

// IsToolUnavailable reports whether err is a ToolUnavailable error
func IsToolUnavailable(err error) bool {
	return GetType(err) == ErrorTypeToolUnavailable
}

// IsCommandFailed reports whether err is a CommandFailed error
func IsCommandFailed(err error) bool {
	return GetType(err) == ErrorTypeCommandFailed
}

// IsInvalidArgument reports whether err is an InvalidArgument error
func IsInvalidArgument(err error) bool {
	return GetType(err) == ErrorTypeInvalidArgument
}

// ExitCode returns the recorded exit code of a CommandFailed error
func ExitCode(err error) (int, bool) {
	e, ok := err.(*Error)
	if !ok || e.Type != ErrorTypeCommandFailed {
		return 0, false
	}
	code, ok := e.Context["exit_code"].(int)
	return code, ok
}

// Stderr returns the recorded stderr of a CommandFailed error, if any
func Stderr(err error) string {
	e, ok := err.(*Error)
	if !ok {
		return ""
	}
	s, _ := e.Context["stderr"].(string)
	return s
}

// IsFatal checks if an error is fatal (should stop execution)
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*Error); ok {
		return e.IsFatal()
	}

	return false
}

// GetSeverity returns the severity of an error
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityLow
	}

	if e, ok := err.(*Error); ok {
		return e.Severity
	}

	return SeverityMedium
}

// GetType returns the type of an error
func GetType(err error) ErrorType {
	if err == nil {
		return ErrorTypeInternal
	}

	if e, ok := err.(*Error); ok {
		return e.Type
	}

	return ErrorTypeInternal
}
