// Package kernel provides the small value objects shared across the worker's
// domain model.
//
// The package includes:
//   - OperativeDay: the dispatch day window that starts at a fixed local clock
//     time (08:30 by default) and decides which ticket updates are stale
//   - PhoneNumber: an MSISDN normalized to digits with the 62 country prefix
//
// Both are immutable and safe for concurrent use.
package kernel
