// Package errs provides the typed errors shared by the worker's domain and
// application layers.
//
// Every error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) with a struct carrying the offending
// parameter. The structs implement Unwrap so callers classify failures with
// errors.Is:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no live tracking record for this engineer
//	}
package errs
