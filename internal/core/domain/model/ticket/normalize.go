package ticket

import (
	"time"

	"opsworker/internal/core/domain/model/kernel"
)

// UpdateRow is one entry of the ticketing store's update log joined with its
// ticket. Rows arrive ordered by ticket id, newest update first.
type UpdateRow struct {
	TicketID     ID
	PicSlot      int
	VisitCardID  VisitCardID
	UpdatedAt    time.Time
	Status       string
	UpdateStatus string
	VisitAt      *time.Time
}

// ExclusionReason explains why a row did not make it into the Book.
type ExclusionReason string

const (
	// ExcludedMalformed rows lack an identifying field.
	ExcludedMalformed ExclusionReason = "malformed"

	// ExcludedStale tickets are Call/Pending and untouched since before the day started.
	ExcludedStale ExclusionReason = "stale"

	// ExcludedNotDue tickets have a visit scheduled on a later date and are not pending.
	ExcludedNotDue ExclusionReason = "not_due"
)

// Exclusion records a ticket dropped by Normalize.
type Exclusion struct {
	TicketID ID
	Reason   ExclusionReason
	Err      error
}

// Normalize builds the Book for day from update rows ordered by
// (ticket id, update time desc).
//
// Rules:
//   - only the first row seen per ticket id counts
//   - Call/Pending tickets last updated before the day start are excluded
//   - tickets with a visit on a later date are excluded unless the latest
//     update is Pending
//   - base priority is Open=3, otherwise 0; a scheduled visit replaces it with
//     2 when the update is Open on a non-Call ticket or a stale Pending, else 0
//   - the effective status is the update status when the row is newer than
//     the day start and the ticket is not Call, otherwise the ticket status
//
// Malformed rows are returned as exclusions and never abort normalization.
func Normalize(rows []UpdateRow, day kernel.OperativeDay) (*Book, []Exclusion) {
	book := newBook()
	seen := make(map[ID]struct{}, len(rows))
	var excluded []Exclusion

	for _, row := range rows {
		if row.TicketID <= 0 {
			excluded = append(excluded, Exclusion{TicketID: row.TicketID, Reason: ExcludedMalformed})
			continue
		}
		if _, ok := seen[row.TicketID]; ok {
			continue
		}
		seen[row.TicketID] = struct{}{}

		if row.PicSlot <= 0 {
			excluded = append(excluded, Exclusion{TicketID: row.TicketID, Reason: ExcludedMalformed})
			continue
		}

		status := StoreStatusFromString(row.Status)
		update := StoreStatusFromString(row.UpdateStatus)

		if (status == Call || status == Pending) && day.IsBeforeStart(row.UpdatedAt) {
			excluded = append(excluded, Exclusion{TicketID: row.TicketID, Reason: ExcludedStale})
			continue
		}

		priority := PriorityDeferred
		if status == Open {
			priority = PriorityOpen
		}

		if row.VisitAt != nil && !row.VisitAt.IsZero() {
			if update != Pending && day.IsDueLater(*row.VisitAt) {
				excluded = append(excluded, Exclusion{TicketID: row.TicketID, Reason: ExcludedNotDue})
				continue
			}

			switch {
			case update == Open && status != Call:
				priority = PriorityScheduled
			case update == Pending && day.IsBeforeStart(row.UpdatedAt):
				priority = PriorityScheduled
			default:
				priority = PriorityDeferred
			}
		}

		effective := status
		if status != Call && day.IsAfterStart(row.UpdatedAt) {
			effective = update
		}

		t, err := NewTicket(row.TicketID, row.VisitCardID, row.UpdatedAt, effective, row.VisitAt, priority)
		if err != nil {
			excluded = append(excluded, Exclusion{TicketID: row.TicketID, Reason: ExcludedMalformed, Err: err})
			continue
		}
		book.add(t, row.PicSlot)
	}

	return book, excluded
}
