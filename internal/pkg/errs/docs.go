// Package errs provides standardized error types for the eats backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the failure taxonomy of the order core:
//   - ObjectNotFoundError: a referenced entity is absent
//   - PermissionDeniedError: an authorization check failed
//   - ConflictError: an optimistic precondition was violated
//   - ValueIsInvalidError / ValueIsRequiredError: malformed request shape
//   - StorageUnavailableError: an underlying storage collaborator failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the kind
//
// Use case handlers return exactly one of these kinds for every failure; no
// operation lets a raw storage or driver error escape its boundary.
package errs
