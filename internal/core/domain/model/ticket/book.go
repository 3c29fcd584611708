package ticket

// PicSlot pairs a ticket with the person-in-charge slot currently assigned to
// it. The slot number is resolved to an employee by the PIC assignment table.
type PicSlot struct {
	TicketID ID
	Slot     int
}

// Book holds the tickets of one dispatch run keyed by id, together with the
// reverse index from visit card to ticket. A Book is filled by Normalize and is
// read-only afterwards.
type Book struct {
	tickets     map[ID]*Ticket
	order       []ID
	byVisitCard map[VisitCardID]ID
	slots       []PicSlot
}

func newBook() *Book {
	return &Book{
		tickets:     make(map[ID]*Ticket),
		byVisitCard: make(map[VisitCardID]ID),
	}
}

func (b *Book) add(t *Ticket, slot int) {
	b.tickets[t.ID()] = t
	b.order = append(b.order, t.ID())
	b.byVisitCard[t.VisitCardID()] = t.ID()
	b.slots = append(b.slots, PicSlot{TicketID: t.ID(), Slot: slot})
}

// Get returns the ticket with the given id.
func (b *Book) Get(id ID) (*Ticket, bool) {
	t, ok := b.tickets[id]
	return t, ok
}

// TicketByVisitCard resolves a visit card to the ticket it belongs to.
func (b *Book) TicketByVisitCard(id VisitCardID) (ID, bool) {
	ticketID, ok := b.byVisitCard[id]
	return ticketID, ok
}

// PicSlots returns the (ticket, slot) pairs in insertion order.
func (b *Book) PicSlots() []PicSlot {
	out := make([]PicSlot, len(b.slots))
	copy(out, b.slots)
	return out
}

// IDs returns the ticket ids in insertion order.
func (b *Book) IDs() []ID {
	out := make([]ID, len(b.order))
	copy(out, b.order)
	return out
}

// Len returns the number of tickets in the book.
func (b *Book) Len() int {
	return len(b.tickets)
}
