package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction on the billing database. Client code manages
// the lifecycle explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. It is a no-op when the
	// transaction was already committed.
	Rollback(ctx context.Context) error

	// GraphLinkRepository returns a GraphLinkRepository bound to the current
	// transaction.
	GraphLinkRepository() GraphLinkRepository
}
