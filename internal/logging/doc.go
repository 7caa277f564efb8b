// Package logging provides logging utilities for subnet-ctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("placing block", "hosts", hosts, "prefix", prefix)
//	logging.Warn("config not found", "path", path)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Planning %s...", network)
//	logging.UserSuccess("Placed %d subnets", n)
//	logging.UserWarning("Requirement %d wastes %d addresses", hosts, wasted)
//	logging.UserError("Failed to plan: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
