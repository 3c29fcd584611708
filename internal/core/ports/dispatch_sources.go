// Package ports defines the contracts between the core and the outside world:
// the stores, feeds and services the jobs read from and write to.
package ports

import (
	"context"

	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/domain/model/fieldtrack"
	"opsworker/internal/core/domain/model/kernel"
	"opsworker/internal/core/domain/model/ticket"
)

// TicketSource reads the ticketing store.
type TicketSource interface {
	// FetchTicketRows returns the update rows of every live ticket, ordered
	// by ticket id and then by update time, newest first. day bounds the
	// search; rows outside it may still be returned and are filtered by
	// ticket.Normalize.
	FetchTicketRows(ctx context.Context, day kernel.OperativeDay) ([]ticket.UpdateRow, error)

	// FetchPicAssignments returns the employees holding the given
	// (ticket, slot) pairs. An empty slots slice yields no assignments.
	FetchPicAssignments(ctx context.Context, slots []ticket.PicSlot) ([]engineer.PicAssignment, error)

	// FetchRoster returns every engineer that has not quit.
	FetchRoster(ctx context.Context) ([]engineer.RosterRow, error)
}

// PresenceFeed reads the HR attendance feed.
type PresenceFeed interface {
	// FetchPresentEmployeeIDs returns the employees clocked in today.
	FetchPresentEmployeeIDs(ctx context.Context) (engineer.IDSet, error)
}

// FieldTrackingFeed reads the live field-visit feed.
type FieldTrackingFeed interface {
	// FetchFieldTrackingSnapshot returns every live record currently known.
	FetchFieldTrackingSnapshot(ctx context.Context) ([]fieldtrack.State, error)
}

// EngineerDirectory holds the per-team engineer settings that are not kept
// in the ticketing store.
type EngineerDirectory interface {
	// Nickname returns the display-name override for id.
	Nickname(id engineer.EmployeeID) (string, bool)

	// Excluded returns the employees listed as engineers by mistake.
	Excluded() engineer.IDSet
}
