package services_test

import (
	"testing"
	"time"

	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/domain/model/fieldtrack"
	"opsworker/internal/core/domain/model/kernel"
	"opsworker/internal/core/domain/model/ticket"
	"opsworker/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusReconciler_Reconcile(t *testing.T) {
	day := fixtureDay(t)
	rows := []ticket.UpdateRow{
		{TicketID: 1, PicSlot: 1, VisitCardID: 10, UpdatedAt: yesterday(16, 0), Status: "Open", UpdateStatus: "Open"},
		{TicketID: 2, PicSlot: 1, VisitCardID: 20, UpdatedAt: at(9, 0), Status: "Open", UpdateStatus: "Open", VisitAt: ptr(at(14, 0))},
		{TicketID: 3, PicSlot: 1, VisitCardID: 30, UpdatedAt: at(9, 5), Status: "Call", UpdateStatus: "Open"},
	}
	book, excluded := ticket.Normalize(rows, day)
	require.Empty(t, excluded)

	assignments := []engineer.PicAssignment{
		{TicketID: 1, Slot: 1, EmployeeID: "e1"},
		{TicketID: 2, Slot: 1, EmployeeID: "e1"},
		{TicketID: 3, Slot: 1, EmployeeID: "e1"},
		{TicketID: 404, Slot: 1, EmployeeID: "e1"},
	}
	roster, _ := engineer.Assemble(
		[]engineer.RosterRow{{EmployeeID: "e1", Name: "One", VisitCardUserID: 7}},
		nil, append(book.PicSlots(), ticket.PicSlot{TicketID: 404, Slot: 1}), assignments)
	eng, _ := roster.Get("e1")

	reconciler := services.NewStatusReconciler()

	t.Run("should overlay a fresh live status with priority 1", func(t *testing.T) {
		state := fieldtrack.State{UserID: 7, VisitCardID: 10, Status: fieldtrack.LiveWorking, LastUpdateAt: at(9, 0), LastActionAt: at(10, 5)}

		a, err := reconciler.Reconcile(day, book, eng, state)

		require.NoError(t, err)
		require.Len(t, a.Tickets, 3, "unknown ticket ids are skipped")
		first := a.Tickets[0]
		assert.True(t, first.Overlaid)
		assert.Equal(t, ticket.Working, first.Status)
		assert.Equal(t, ticket.PriorityLive, first.Priority, "base priority 3 is replaced")
		assert.Equal(t, at(10, 5), a.ActionStartedAt)
		assert.Equal(t, services.IdleState{Idle: true, Since: day.Start()}, a.Baseline)

		for _, other := range a.Tickets[1:] {
			assert.False(t, other.Overlaid)
		}
	})

	t.Run("should keep store status when the live action predates the day", func(t *testing.T) {
		state := fieldtrack.State{UserID: 7, VisitCardID: 10, Status: fieldtrack.LiveWorking, LastUpdateAt: at(9, 0), LastActionAt: yesterday(18, 0)}

		a, err := reconciler.Reconcile(day, book, eng, state)

		require.NoError(t, err)
		assert.False(t, a.Tickets[0].Overlaid)
		assert.Equal(t, ticket.Open, a.Tickets[0].Status)
		assert.Equal(t, ticket.PriorityOpen, a.Tickets[0].Priority)
		assert.Equal(t, day.Start(), a.ActionStartedAt, "clamped to the day start")
	})

	t.Run("should overlay exactly at the day start", func(t *testing.T) {
		state := fieldtrack.State{UserID: 7, VisitCardID: 20, Status: fieldtrack.LiveDone, LastActionAt: day.Start()}

		a, err := reconciler.Reconcile(day, book, eng, state)

		require.NoError(t, err)
		assert.True(t, a.Tickets[1].Overlaid)
		assert.Equal(t, ticket.Done, a.Tickets[1].Status)
	})

	t.Run("should ignore live records about other tickets", func(t *testing.T) {
		state := fieldtrack.State{UserID: 7, VisitCardID: 999, Status: fieldtrack.LiveWorking, LastActionAt: at(10, 0)}

		a, err := reconciler.Reconcile(day, book, eng, state)

		require.NoError(t, err)
		for _, ta := range a.Tickets {
			assert.False(t, ta.Overlaid)
			assert.Contains(t, []ticket.Priority{0, 1, 2, 3}, ta.Priority)
		}
	})

	t.Run("idle engineers start their action at the last update", func(t *testing.T) {
		state := fieldtrack.State{UserID: 7, Status: fieldtrack.LiveIdle, LastUpdateAt: at(11, 40), LastActionAt: at(9, 0)}

		a, err := reconciler.Reconcile(day, book, eng, state)

		require.NoError(t, err)
		assert.Equal(t, at(11, 40), a.ActionStartedAt)
	})

	t.Run("should carry visit data for ranking and rendering", func(t *testing.T) {
		a, err := reconciler.Reconcile(day, book, eng, fieldtrack.State{})

		require.NoError(t, err)
		scheduled := a.Tickets[1]
		assert.True(t, scheduled.HasVisit)
		assert.Equal(t, at(14, 0), scheduled.VisitAt)
		assert.Equal(t, at(14, 0), scheduled.VisitPriority)
		assert.Equal(t, yesterday(16, 0).Add(24*time.Hour), a.Tickets[0].VisitPriority)
	})

	t.Run("should reject an unconstructed day", func(t *testing.T) {
		_, err := reconciler.Reconcile(kernel.OperativeDay{}, book, eng, fieldtrack.State{})
		assert.ErrorIs(t, err, kernel.ErrOperativeDayIsNotConstructed)
	})
}
