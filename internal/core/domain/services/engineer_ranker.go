package services

import (
	"slices"
	"time"

	"opsworker/internal/core/domain/model/engineer"
)

// RankedEngineer is an engineer's finished report line before rendering.
type RankedEngineer struct {
	EmployeeID engineer.EmployeeID
	Name       string
	Idle       bool
	IdleSince  time.Time
	Tickets    []string
}

// EngineerRanker orders tickets and engineers. Both sorts are stable, so
// equal keys keep their input order and identical input always ranks the
// same way.
type EngineerRanker struct{}

// NewEngineerRanker creates an EngineerRanker.
func NewEngineerRanker() EngineerRanker {
	return EngineerRanker{}
}

// RankTickets returns tickets sorted by priority band, then by visit
// priority, both ascending. The input is left untouched.
func (EngineerRanker) RankTickets(tickets []TicketAssessment) []TicketAssessment {
	out := slices.Clone(tickets)
	slices.SortStableFunc(out, func(a, b TicketAssessment) int {
		if a.Priority != b.Priority {
			return int(a.Priority) - int(b.Priority)
		}
		return a.VisitPriority.Compare(b.VisitPriority)
	})
	return out
}

// RankEngineers returns engineers with busy ones first, then by idle-since
// ascending, then by ticket count ascending. The input is left untouched.
func (EngineerRanker) RankEngineers(engineers []RankedEngineer) []RankedEngineer {
	out := slices.Clone(engineers)
	slices.SortStableFunc(out, func(a, b RankedEngineer) int {
		if a.Idle != b.Idle {
			if !a.Idle {
				return -1
			}
			return 1
		}
		if c := a.IdleSince.Compare(b.IdleSince); c != 0 {
			return c
		}
		return len(a.Tickets) - len(b.Tickets)
	})
	return out
}
