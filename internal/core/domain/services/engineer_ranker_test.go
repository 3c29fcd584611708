package services_test

import (
	"testing"

	"opsworker/internal/core/domain/model/ticket"
	"opsworker/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestEngineerRanker_RankTickets(t *testing.T) {
	ranker := services.NewEngineerRanker()

	t.Run("should sort by priority then visit priority", func(t *testing.T) {
		in := []services.TicketAssessment{
			{TicketID: 1, Priority: ticket.PriorityOpen, VisitPriority: at(9, 0)},
			{TicketID: 2, Priority: ticket.PriorityScheduled, VisitPriority: at(15, 0)},
			{TicketID: 3, Priority: ticket.PriorityScheduled, VisitPriority: at(11, 0)},
			{TicketID: 4, Priority: ticket.PriorityLive, VisitPriority: at(17, 0)},
			{TicketID: 5, Priority: ticket.PriorityDeferred, VisitPriority: at(23, 0)},
		}

		out := ranker.RankTickets(in)

		var ids []ticket.ID
		for _, ta := range out {
			ids = append(ids, ta.TicketID)
		}
		assert.Equal(t, []ticket.ID{5, 4, 3, 2, 1}, ids)
		assert.Equal(t, ticket.ID(1), in[0].TicketID, "input is not reordered")

		for i := 1; i < len(out); i++ {
			prev, cur := out[i-1], out[i]
			ordered := prev.Priority < cur.Priority ||
				(prev.Priority == cur.Priority && !cur.VisitPriority.Before(prev.VisitPriority))
			assert.True(t, ordered, "position %d", i)
		}
	})

	t.Run("should keep input order for equal keys", func(t *testing.T) {
		in := []services.TicketAssessment{
			{TicketID: 8, Priority: ticket.PriorityOpen, VisitPriority: at(9, 0)},
			{TicketID: 7, Priority: ticket.PriorityOpen, VisitPriority: at(9, 0)},
		}

		out := ranker.RankTickets(in)

		assert.Equal(t, ticket.ID(8), out[0].TicketID)
		assert.Equal(t, ticket.ID(7), out[1].TicketID)
	})
}

func TestEngineerRanker_RankEngineers(t *testing.T) {
	ranker := services.NewEngineerRanker()

	t.Run("should list busy engineers before idle ones", func(t *testing.T) {
		in := []services.RankedEngineer{
			{EmployeeID: "idle", Idle: true, IdleSince: at(8, 30)},
			{EmployeeID: "busy", Idle: false, IdleSince: at(12, 0), Tickets: []string{"a", "b", "c"}},
		}

		out := ranker.RankEngineers(in)

		assert.Equal(t, "busy", out[0].EmployeeID.String())
		assert.Equal(t, "idle", out[1].EmployeeID.String())
	})

	t.Run("should list the longest idle first", func(t *testing.T) {
		in := []services.RankedEngineer{
			{EmployeeID: "late", Idle: true, IdleSince: at(11, 0)},
			{EmployeeID: "early", Idle: true, IdleSince: at(8, 30), Tickets: []string{"a", "b"}},
		}

		out := ranker.RankEngineers(in)

		assert.Equal(t, "early", out[0].EmployeeID.String())
	})

	t.Run("should list fewer tickets first on equal idle time", func(t *testing.T) {
		in := []services.RankedEngineer{
			{EmployeeID: "three", Idle: true, IdleSince: at(8, 30), Tickets: []string{"a", "b", "c"}},
			{EmployeeID: "one", Idle: true, IdleSince: at(8, 30), Tickets: []string{"d"}},
		}

		out := ranker.RankEngineers(in)

		assert.Equal(t, "one", out[0].EmployeeID.String())
		assert.Equal(t, "three", out[1].EmployeeID.String())
	})
}
