package services

import (
	"time"

	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/domain/model/fieldtrack"
	"opsworker/internal/core/domain/model/kernel"
	"opsworker/internal/core/domain/model/ticket"
)

// TicketAssessment is a ticket as seen by one engineer's report line after
// the live overlay has been applied.
type TicketAssessment struct {
	TicketID      ticket.ID
	Status        ticket.Status
	Priority      ticket.Priority
	VisitPriority time.Time
	VisitAt       time.Time
	HasVisit      bool
	Overlaid      bool
}

// IdleState is whether an engineer is idle and since when.
type IdleState struct {
	Idle  bool
	Since time.Time
}

// Assessment is the reconciled view of one engineer.
type Assessment struct {
	Engineer *engineer.Engineer
	Tickets  []TicketAssessment

	// ActionStartedAt is the start of the engineer's current field
	// activity, never earlier than the day start.
	ActionStartedAt time.Time

	// Baseline is the idle state before any ticket is rendered: idle
	// since the day start.
	Baseline IdleState
}

// StatusReconciler merges the ticketing store view with the live field feed.
//
// Business rules:
//   - the live status replaces a ticket's status only when the tracked visit
//     card resolves to that same ticket and the last action happened at or
//     after the day start; such tickets get PriorityLive
//   - other tickets keep the status and priority computed by ticket.Normalize
//   - ticket ids missing from the book are skipped
//
// Example:
//
//	reconciler := services.NewStatusReconciler()
//	assessment, err := reconciler.Reconcile(day, book, eng, lookup.State())
type StatusReconciler struct{}

// NewStatusReconciler creates a StatusReconciler.
func NewStatusReconciler() StatusReconciler {
	return StatusReconciler{}
}

// Reconcile builds the Assessment of eng. Tickets keep the engineer's
// assembly order; use EngineerRanker to order them.
func (StatusReconciler) Reconcile(
	day kernel.OperativeDay,
	book *ticket.Book,
	eng *engineer.Engineer,
	state fieldtrack.State,
) (Assessment, error) {
	if err := day.Validate(); err != nil {
		return Assessment{}, err
	}
	if err := eng.Validate(); err != nil {
		return Assessment{}, err
	}

	tracked, hasTracked := book.TicketByVisitCard(state.VisitCardID)
	fresh := day.IsWithin(state.LastActionAt)

	assessment := Assessment{
		Engineer:        eng,
		ActionStartedAt: day.Clamp(state.ActionAt()),
		Baseline:        IdleState{Idle: true, Since: day.Start()},
	}

	for _, id := range eng.TicketIDs() {
		t, ok := book.Get(id)
		if !ok {
			continue
		}

		ta := TicketAssessment{
			TicketID:      id,
			Status:        t.Status(),
			Priority:      t.Priority(),
			VisitPriority: t.VisitPriority(),
		}
		ta.VisitAt, ta.HasVisit = t.VisitAt()

		if hasTracked && tracked == id && fresh {
			ta.Status = state.Status.TicketStatus()
			ta.Priority = ticket.PriorityLive
			ta.Overlaid = true
		}

		assessment.Tickets = append(assessment.Tickets, ta)
	}

	return assessment, nil
}
