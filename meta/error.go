package meta

import "fmt"

// ErrPatternTooLong indicates that the pattern exceeds Config.MaxPatternLen.
var ErrPatternTooLong = &CompileError{
	Kind:    PatternTooLong,
	Message: "pattern too long",
}

// ErrInvalidConfig indicates that the configuration failed validation.
var ErrInvalidConfig = &CompileError{
	Kind:    InvalidConfig,
	Message: "invalid configuration",
}

// ErrorKind classifies compile errors.
type ErrorKind uint8

const (
	// PatternTooLong indicates the pattern length limit was exceeded
	PatternTooLong ErrorKind = iota + 1

	// InvalidConfig indicates configuration validation failed
	InvalidConfig
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case PatternTooLong:
		return "PatternTooLong"
	case InvalidConfig:
		return "InvalidConfig"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// CompileError represents a pattern compilation error.
type CompileError struct {
	Kind    ErrorKind
	Message string
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("wildmatch: %s: %v", e.Message, e.Cause)
	}
	return "wildmatch: " + e.Message
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *CompileError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *CompileError of the same kind.
func (e *CompileError) Is(target error) bool {
	t, ok := target.(*CompileError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
