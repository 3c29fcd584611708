package engineer

import (
	"opsworker/internal/core/domain/model/ticket"
)

// RosterRow is one engineer as listed by the ticketing store.
type RosterRow struct {
	EmployeeID      EmployeeID
	Name            string
	VisitCardUserID VisitCardUserID
}

// PicAssignment pairs a ticket's person-in-charge slot with the employee
// holding it.
type PicAssignment struct {
	TicketID   ticket.ID
	Slot       int
	EmployeeID EmployeeID
}

// IDSet is a set of employee ids, used for exclusion lists and the
// attendance feed.
type IDSet map[EmployeeID]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...EmployeeID) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Has reports whether id is in the set. A nil set contains nothing.
func (s IDSet) Has(id EmployeeID) bool {
	_, ok := s[id]
	return ok
}

// Roster is the assembled set of engineers for a run, in roster order.
type Roster struct {
	engineers map[EmployeeID]*Engineer
	order     []EmployeeID
}

// Assemble builds the roster for one run.
//
// One Engineer is created per roster row whose employee id is not in
// excluded; later rows repeating an employee id are ignored. A ticket id is
// appended to an engineer only when an assignment pairs a (ticket, slot) that
// is present in slots with that engineer's employee id. Assignments for
// unknown employees or for slots that are no longer current are skipped.
//
// Rows that cannot form an Engineer are returned as errors; they never abort
// assembly.
func Assemble(rows []RosterRow, excluded IDSet, slots []ticket.PicSlot, assignments []PicAssignment) (*Roster, []error) {
	roster := &Roster{engineers: make(map[EmployeeID]*Engineer, len(rows))}
	var skipped []error

	for _, row := range rows {
		if excluded.Has(row.EmployeeID) {
			continue
		}
		if _, dup := roster.engineers[row.EmployeeID]; dup {
			continue
		}
		e, err := NewEngineer(row.EmployeeID, row.Name, row.VisitCardUserID)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		roster.engineers[e.ID()] = e
		roster.order = append(roster.order, e.ID())
	}

	current := make(map[ticket.PicSlot]struct{}, len(slots))
	for _, s := range slots {
		current[s] = struct{}{}
	}

	for _, a := range assignments {
		if _, ok := current[ticket.PicSlot{TicketID: a.TicketID, Slot: a.Slot}]; !ok {
			continue
		}
		e, ok := roster.engineers[a.EmployeeID]
		if !ok {
			continue
		}
		e.attach(a.TicketID)
	}

	return roster, skipped
}

// Get returns the engineer with the given id.
func (r *Roster) Get(id EmployeeID) (*Engineer, bool) {
	e, ok := r.engineers[id]
	return e, ok
}

// Len is the number of engineers on the roster.
func (r *Roster) Len() int {
	return len(r.order)
}

// All returns every engineer in roster order.
func (r *Roster) All() []*Engineer {
	out := make([]*Engineer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.engineers[id])
	}
	return out
}

// OnDuty returns the engineers listed in present, in roster order. Present
// ids that are not on the roster are ignored.
func (r *Roster) OnDuty(present IDSet) []*Engineer {
	var out []*Engineer
	for _, id := range r.order {
		if present.Has(id) {
			out = append(out, r.engineers[id])
		}
	}
	return out
}
