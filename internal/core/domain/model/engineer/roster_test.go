package engineer_test

import (
	"testing"

	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/domain/model/ticket"
	"opsworker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	rows := []engineer.RosterRow{
		{EmployeeID: "0201324", Name: "Mansyur Hakim", VisitCardUserID: 11},
		{EmployeeID: "0200601", Name: "Support Staff", VisitCardUserID: 12},
		{EmployeeID: "0202171", Name: "Hilmi Rahman", VisitCardUserID: 13},
		{EmployeeID: "0201324", Name: "Duplicate", VisitCardUserID: 99},
		{EmployeeID: "", Name: "Nobody"},
	}
	slots := []ticket.PicSlot{
		{TicketID: 100, Slot: 1},
		{TicketID: 101, Slot: 2},
		{TicketID: 102, Slot: 1},
	}

	t.Run("should build engineers in roster order without excluded ones", func(t *testing.T) {
		roster, skipped := engineer.Assemble(rows, engineer.NewIDSet("0200601"), slots, nil)

		require.Len(t, skipped, 1)
		assert.ErrorIs(t, skipped[0], errs.ErrValueIsRequired)
		require.Equal(t, 2, roster.Len())

		all := roster.All()
		assert.Equal(t, engineer.EmployeeID("0201324"), all[0].ID())
		assert.Equal(t, "Mansyur Hakim", all[0].Name(), "first roster row wins")
		assert.Equal(t, engineer.EmployeeID("0202171"), all[1].ID())

		_, ok := roster.Get("0200601")
		assert.False(t, ok)
	})

	t.Run("should attach tickets only for current slots and known engineers", func(t *testing.T) {
		assignments := []engineer.PicAssignment{
			{TicketID: 101, Slot: 2, EmployeeID: "0201324"},
			{TicketID: 100, Slot: 1, EmployeeID: "0201324"},
			{TicketID: 100, Slot: 2, EmployeeID: "0202171"}, // stale slot
			{TicketID: 102, Slot: 1, EmployeeID: "0200601"}, // excluded
			{TicketID: 102, Slot: 1, EmployeeID: "0202999"}, // unknown
			{TicketID: 101, Slot: 2, EmployeeID: "0201324"}, // duplicate
		}

		roster, _ := engineer.Assemble(rows, engineer.NewIDSet("0200601"), slots, assignments)

		mansyur, ok := roster.Get("0201324")
		require.True(t, ok)
		assert.Equal(t, []ticket.ID{101, 100}, mansyur.TicketIDs())
		hilmi, _ := roster.Get("0202171")
		assert.Equal(t, 0, hilmi.TicketCount())
	})

	t.Run("ticket ids are returned as a copy", func(t *testing.T) {
		assignments := []engineer.PicAssignment{{TicketID: 100, Slot: 1, EmployeeID: "0202171"}}
		roster, _ := engineer.Assemble(rows, nil, slots, assignments)

		e, _ := roster.Get("0202171")
		ids := e.TicketIDs()
		ids[0] = 999

		assert.Equal(t, []ticket.ID{100}, e.TicketIDs())
	})
}

func TestRoster_OnDuty(t *testing.T) {
	rows := []engineer.RosterRow{
		{EmployeeID: "a", Name: "A"},
		{EmployeeID: "b", Name: "B"},
		{EmployeeID: "c", Name: "C"},
	}
	roster, _ := engineer.Assemble(rows, nil, nil, nil)

	t.Run("should keep roster order and ignore unknown ids", func(t *testing.T) {
		onDuty := roster.OnDuty(engineer.NewIDSet("c", "x", "a"))

		require.Len(t, onDuty, 2)
		assert.Equal(t, engineer.EmployeeID("a"), onDuty[0].ID())
		assert.Equal(t, engineer.EmployeeID("c"), onDuty[1].ID())
	})

	t.Run("nobody present yields an empty list", func(t *testing.T) {
		assert.Empty(t, roster.OnDuty(nil))
	})
}

func TestNewEngineer(t *testing.T) {
	t.Run("should require an employee id", func(t *testing.T) {
		e, err := engineer.NewEngineer("", "x", 1)
		assert.Nil(t, e)
		assert.ErrorIs(t, err, engineer.ErrEmployeeIDIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var e engineer.Engineer
		assert.ErrorIs(t, e.Validate(), engineer.ErrEngineerIsNotConstructed)
	})
}
