// Package ticket models trouble tickets as the dispatch run sees them: a
// deduplicated, day-filtered book built from the ticketing store's update log.
//
// The package includes:
//   - Status: raw ticketing-store states (Open, Pending, Call) and live
//     field-visit states (idle, working, pending, done, ontheway)
//   - Priority: the coarse 0..3 ordering band, lower sorts first
//   - Ticket: one ticket with its effective status and scheduled visit
//   - Book: tickets keyed by id, with the visit-card reverse index and the
//     PIC slot pairs used to resolve ownership
//   - Normalize: turns update rows into a Book for one operative day
package ticket
