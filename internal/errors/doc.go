// Package errors provides typed errors with exit codes for subnet-ctl.
//
// # Error Types
//
// PlanError is the base error type that wraps an error with an exit code:
//
//	type PlanError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors
//	ExitInvalidInput = 2  // Malformed network or host count
//	ExitOutOfSpace   = 3  // Requirements exceed the network
//	ExitConfigError  = 4  // Configuration error
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.InvalidInput("cannot parse network", err)
//	errors.OutOfSpace(err)
//	errors.ConfigError("cannot read config", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err := cmd.Execute(); err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
