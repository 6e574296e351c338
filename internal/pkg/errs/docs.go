// Package errs provides the standardized error types used across orderdesk.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing (e.g. an empty cart)
//   - ValueIsInvalidError: a value failed validation (e.g. an illegal status transition)
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds (e.g. a line quantity)
//   - ObjectNotFoundError: an order, cart or menu item does not exist
//
// Each type has a sentinel (ErrValueIsRequired, ...), constructors with and without a
// cause, and an Unwrap method returning the sentinel so callers can use errors.Is.
package errs
