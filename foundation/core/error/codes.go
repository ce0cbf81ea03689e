// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify rejected document
//              operations, malformed commands and configuration problems.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Reduced to editor and configuration codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Document operations
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength   Code = "INVALID_LENGTH"

	// Command interpretation
	CodeInvalidSyntax  Code = "INVALID_SYNTAX"
	CodeUnknownCommand Code = "UNKNOWN_COMMAND"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeValueOutOfRange, CodeInvalidLength,
		CodeInvalidSyntax, CodeUnknownCommand,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// IsRejection reports whether the code marks a request that was refused
// without side effects (as opposed to a failure of the program itself).
func (c Code) IsRejection() bool {
	switch c {
	case CodeValueOutOfRange, CodeInvalidLength, CodeInvalidSyntax, CodeUnknownCommand:
		return true
	default:
		return false
	}
}
