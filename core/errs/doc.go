// Package errs defines the business error kinds of the inventory core.
//
// Errors are plain sentinel values so callers can classify failures with
// errors.Is while still wrapping them with request-specific detail
// (fmt.Errorf + %w). StatusCode centralizes the HTTP mapping so every
// handler reports the same status for the same kind of failure.
package errs
