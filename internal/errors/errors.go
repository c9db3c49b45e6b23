package apperrors

import (
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0 // Indicates successful execution.
	ExitErrorGeneric  = 1 // Indicates a generic error.
	ExitErrorMismatch = 3 // Indicates the assembled message did not match the expected constant.
	ExitErrorConfig   = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// EncodingError represents a decoded code point that falls outside the valid
// Unicode range. It propagates to the caller of the decoder that produced it;
// nothing is recovered or clamped.
type EncodingError struct {
	// CodePoint is the offending value.
	CodePoint int64
}

// Error returns a formatted message describing the invalid code point.
//
// Returns:
//   - string: The error message string.
func (e EncodingError) Error() string {
	return fmt.Sprintf("encoding error: code point %d is outside the valid Unicode range", e.CodePoint)
}

// IntegrityError represents a ledger entry whose stored link does not match
// the link recomputed from its predecessor. It is a hard stop for the
// extraction that detected it.
type IntegrityError struct {
	// Position is the index of the corrupted ledger entry.
	Position int
	// Want is the recomputed expected link.
	Want uint64
	// Got is the link stored in the entry.
	Got uint64
}

// Error returns a formatted message describing the broken chain link.
//
// Returns:
//   - string: The error message string.
func (e IntegrityError) Error() string {
	return fmt.Sprintf("integrity error: ledger entry %d has link %#x, expected %#x (chain corrupted)", e.Position, e.Got, e.Want)
}

// MismatchError represents the single fatal, top-level failure mode: the
// fully assembled message does not equal the expected constant.
type MismatchError struct {
	// Want is the expected message.
	Want string
	// Got is the message that was actually assembled.
	Got string
}

// Error returns a formatted message describing the mismatch.
//
// Returns:
//   - string: The error message string.
func (e MismatchError) Error() string {
	return fmt.Sprintf("reality check failed: got %q, want %q", e.Got, e.Want)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
