// Package errs provides the error types shared by the tracking service.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrForbidden, ErrConflict) with a
// struct carrying the details. Constructors come in plain and WithCause
// variants, and Unwrap returns the sentinel so callers classify errors with
// errors.Is. The HTTP adapter relies on that classification to pick status
// codes.
package errs
