// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              the errors.Is/As integration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-12 v0.2.0: Editor codes, Is matching

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("line 9 does not exist").WithCode(CodeValueOutOfRange),
			message:  "delete failed",
			wantMsg:  "delete failed: line 9 does not exist",
			wantCode: CodeValueOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeValueOutOfRange, SeverityLow},
		{CodeInvalidLength, SeverityLow},
		{CodeInvalidSyntax, SeverityLow},
		{CodeUnknownCommand, SeverityLow},
		{CodeNotFound, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodeNotFound)
	if explicit.Severity() != SeverityHigh {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetail("lineNumber", 3)
	details := err.Details()
	details["lineNumber"] = 99

	if err.Details()["lineNumber"] != 3 {
		t.Errorf("Details() leaked internal map")
	}
}

func TestHasCodeThroughFmtWrap(t *testing.T) {
	base := New("too long").WithCode(CodeInvalidLength)
	wrapped := fmt.Errorf("insert: %w", base)

	if !HasCode(wrapped, CodeInvalidLength) {
		t.Error("HasCode() should see through fmt.Errorf wrapping")
	}
	if GetCode(wrapped) != CodeInvalidLength {
		t.Errorf("GetCode() = %v", GetCode(wrapped))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of plain error should be UNKNOWN")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of plain error should be medium")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	notFound := New("").WithCode(CodeNotFound)
	err := New("no line contains \"z\"").WithCode(CodeNotFound)

	if !errors.Is(err, notFound) {
		t.Error("errors.Is should match errors with the same code")
	}
	if errors.Is(err, New("").WithCode(CodeInvalidLength)) {
		t.Error("errors.Is should not match a different code")
	}
	if errors.Is(New("a"), New("b")) {
		t.Error("errors with CodeUnknown must not match each other")
	}
}

func TestIsRejection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"out of range", New("x").WithCode(CodeValueOutOfRange), true},
		{"oversize", New("x").WithCode(CodeInvalidLength), true},
		{"syntax", New("x").WithCode(CodeInvalidSyntax), true},
		{"unknown command", New("x").WithCode(CodeUnknownCommand), true},
		{"not found", New("x").WithCode(CodeNotFound), false},
		{"config", New("x").WithCode(CodeConfigError), false},
		{"plain", errors.New("x"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRejection(tt.err); got != tt.want {
				t.Errorf("IsRejection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	err := New("line number too large").
		WithCode(CodeValueOutOfRange).
		WithOperation("document.EditLine").
		WithDetail("size", 2).
		WithDetail("lineNumber", 5)

	s := err.String()
	for _, want := range []string{
		"Error: line number too large",
		"Code: VALUE_OUT_OF_RANGE",
		"Severity: low",
		"Operation: document.EditLine",
		"Details: {lineNumber=5, size=2}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "load failed").
		WithCode(CodeConfigError).
		WithOperation("config.Load")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("json.Marshal() error = %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", uErr)
	}

	if decoded["code"] != "CONFIG_ERROR" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "high" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["operation"] != "config.Load" {
		t.Errorf("operation = %v", decoded["operation"])
	}
}

func TestCodeIsValid(t *testing.T) {
	if !CodeInvalidSyntax.IsValid() {
		t.Error("CodeInvalidSyntax should be valid")
	}
	if Code("TCOL_SYNTAX").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
