package ticket

import (
	"errors"
	"time"

	"opsworker/internal/pkg/errs"
)

// ErrTicketIsNotConstructed is returned when a Ticket was not built via NewTicket.
var ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket constructor")

// undatedVisitDelay pushes tickets without a scheduled visit behind dated ones
// of the same band.
const undatedVisitDelay = 24 * time.Hour

// ID identifies a ticket in the ticketing store.
type ID int64

// VisitCardID identifies the field-visit card linked to a ticket.
type VisitCardID int64

// Ticket is a ticket as normalized for one operative day. It is immutable;
// live overlays are applied to copies of its status during reconciliation.
type Ticket struct {
	id          ID
	visitCardID VisitCardID
	updatedAt   time.Time
	status      Status
	visitAt     time.Time
	hasVisit    bool
	priority    Priority

	isConstructed bool
}

// NewTicket builds a Ticket. visitAt may be nil for tickets without a
// scheduled visit.
func NewTicket(
	id ID,
	visitCardID VisitCardID,
	updatedAt time.Time,
	status Status,
	visitAt *time.Time,
	priority Priority,
) (*Ticket, error) {
	var problems []error
	if id <= 0 {
		problems = append(problems, errs.NewValueIsRequiredError("ticketId"))
	}
	if visitCardID <= 0 {
		problems = append(problems, errs.NewValueIsRequiredError("visitCardId"))
	}
	if updatedAt.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("updatedAt"))
	}
	if err := priority.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	t := &Ticket{
		id:            id,
		visitCardID:   visitCardID,
		updatedAt:     updatedAt,
		status:        status,
		priority:      priority,
		isConstructed: true,
	}
	if visitAt != nil && !visitAt.IsZero() {
		t.visitAt = *visitAt
		t.hasVisit = true
	}
	return t, nil
}

// Validate ensures the ticket was created through NewTicket.
func (t *Ticket) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTicketIsNotConstructed
	}
	return nil
}

func (t *Ticket) ID() ID                     { return t.id }
func (t *Ticket) VisitCardID() VisitCardID   { return t.visitCardID }
func (t *Ticket) UpdatedAt() time.Time       { return t.updatedAt }
func (t *Ticket) Status() Status             { return t.status }
func (t *Ticket) Priority() Priority         { return t.priority }
func (t *Ticket) VisitAt() (time.Time, bool) { return t.visitAt, t.hasVisit }

// VisitPriority is the secondary sort key inside a priority band: the
// scheduled visit time, or the last update plus one day for undated tickets.
func (t *Ticket) VisitPriority() time.Time {
	if t.hasVisit {
		return t.visitAt
	}
	return t.updatedAt.Add(undatedVisitDelay)
}
