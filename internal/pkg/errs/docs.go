// Package errs provides the standardized error types used across the
// fulfillment backend.
//
// Each error type follows the same pattern: a sentinel error variable for
// errors.Is checks, a struct carrying the error details, constructors with
// and without a cause, and Error/Unwrap methods. Persistence and domain code
// return these types so callers can classify failures (for example, an
// absent order tracking row surfaces as an ObjectNotFoundError) without
// string matching.
package errs
