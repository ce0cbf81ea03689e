// Package error provides the structured error type used across lined.
//
// Package: error
// Title: lined Error Handling
// Description: Structured errors with codes, severity levels, the failing
//              operation and key/value details. Document and interpreter
//              operations report rejected requests through this type so
//              that callers can stay silent or surface a diagnostic without
//              changing the core semantics.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Editor error codes, dropped stack traces and i18n keys
//
// Usage:
//   import mdwerror "github.com/msto63/lined/foundation/core/error"
//
//   err := mdwerror.New("line number out of range").
//     WithCode(mdwerror.CodeValueOutOfRange).
//     WithOperation("document.DeleteLine").
//     WithDetail("lineNumber", 7)
//
//   if mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
//     // rejected, nothing changed
//   }
package error
