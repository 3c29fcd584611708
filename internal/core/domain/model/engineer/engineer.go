package engineer

import (
	"errors"
	"slices"

	"opsworker/internal/core/domain/model/ticket"
	"opsworker/internal/pkg/errs"
	"opsworker/internal/pkg/guard"
)

var (
	// ErrEmployeeIDIsRequired is returned for roster rows without an employee id.
	ErrEmployeeIDIsRequired = errs.NewValueIsRequiredError("employeeId")
	// ErrEngineerIsNotConstructed is returned when using an improperly initialized Engineer.
	ErrEngineerIsNotConstructed = errors.New("Engineer must be created via NewEngineer constructor")
)

// EmployeeID is the HR employee number shared by the ticketing store and the
// attendance feed.
type EmployeeID string

func (id EmployeeID) String() string { return string(id) }

// VisitCardUserID is the engineer's account in the field-visit application.
type VisitCardUserID int64

// Engineer is one roster entry together with the tickets it is the person in
// charge of. The ticket list keeps assembly order; ranking happens later.
type Engineer struct {
	id              EmployeeID
	name            string
	visitCardUserID VisitCardUserID
	ticketIDs       []ticket.ID
	guard           guard.ConstructorGuard
}

// NewEngineer creates an Engineer with no tickets.
func NewEngineer(id EmployeeID, name string, visitCardUserID VisitCardUserID) (*Engineer, error) {
	if id == "" {
		return nil, ErrEmployeeIDIsRequired
	}
	return &Engineer{
		id:              id,
		name:            name,
		visitCardUserID: visitCardUserID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the engineer was created through NewEngineer.
func (e *Engineer) Validate() error {
	if e == nil {
		return ErrEngineerIsNotConstructed
	}
	return e.guard.Validate(ErrEngineerIsNotConstructed)
}

func (e *Engineer) ID() EmployeeID                   { return e.id }
func (e *Engineer) Name() string                     { return e.name }
func (e *Engineer) VisitCardUserID() VisitCardUserID { return e.visitCardUserID }

// TicketIDs returns a copy of the assigned ticket ids in assembly order.
func (e *Engineer) TicketIDs() []ticket.ID {
	return slices.Clone(e.ticketIDs)
}

// TicketCount is the number of tickets assigned to the engineer.
func (e *Engineer) TicketCount() int {
	return len(e.ticketIDs)
}

// attach appends id unless it is already assigned and reports whether the
// list changed.
func (e *Engineer) attach(id ticket.ID) bool {
	if slices.Contains(e.ticketIDs, id) {
		return false
	}
	e.ticketIDs = append(e.ticketIDs, id)
	return true
}
