// Package engineer models the field engineers that tickets are dispatched to.
//
// An Engineer is built once per dispatch run from a roster row and receives
// its ticket ids from the person-in-charge assignment table. After assembly
// the roster is read-only: ranking and rendering work on copies.
//
// Example:
//
//	roster, skipped := engineer.Assemble(rows, engineer.NewIDSet(excluded...), book.PicSlots(), assignments)
//	for _, e := range roster.OnDuty(present) {
//	    fmt.Println(e.ID(), e.TicketIDs())
//	}
package engineer
