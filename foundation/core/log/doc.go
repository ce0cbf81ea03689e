// Package log provides structured logging for lined.
//
// Package: log
// Title: lined Structured Logging
// Description: Leveled, structured logging with JSON and text formats and
//              integration with the structured error type. Log output is
//              kept apart from command output: the CLI points the logger
//              at stderr so stdout only carries printed documents and
//              search results.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-12 v0.2.0: Dropped async mode, timers and tracing ids
//
// Usage:
//   import mdwlog "github.com/msto63/lined/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithField("component", "interpreter")
//
//   logger.Debug("command rejected", mdwlog.Fields{
//     "command": "delete",
//     "reason":  "line number out of range",
//   })
//   logger.LogError(err)
package log
