// Package queries contains the read-only use cases. A query never writes to
// any store or sends any message.
package queries
