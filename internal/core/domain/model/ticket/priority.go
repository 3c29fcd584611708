package ticket

import (
	"strconv"

	"opsworker/internal/pkg/errs"
)

// Priority is the ordering band of a ticket within an engineer's list.
// Lower values sort first.
type Priority int

const (
	// PriorityDeferred covers fresh Call/Pending tickets and scheduled visits
	// that are not yet actionable.
	PriorityDeferred Priority = 0

	// PriorityLive is assigned during reconciliation to the ticket the live
	// feed says the engineer is handling.
	PriorityLive Priority = 1

	// PriorityScheduled covers scheduled visits that need attention today.
	PriorityScheduled Priority = 2

	// PriorityOpen covers unscheduled Open tickets.
	PriorityOpen Priority = 3
)

// Validate checks that p lies in the defined bands.
func (p Priority) Validate() error {
	if p < PriorityDeferred || p > PriorityOpen {
		return errs.NewValueIsOutOfRangeError("priority",
			strconv.Itoa(int(p)), strconv.Itoa(int(PriorityDeferred)), strconv.Itoa(int(PriorityOpen)))
	}
	return nil
}
