// Package errs provides standardized error types for the storefront backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for common scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when an object cannot be found
//   - ConflictError: for lost concurrent updates (e.g. a claim race)
//   - InsufficientStockError / MinimumOrderNotMetError: checkout validation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict) for errors.Is classification
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for error-chain support
//
// The HTTP adapter maps these classes to transport status codes in exactly
// one place, so domain and application code never mention HTTP.
package errs
