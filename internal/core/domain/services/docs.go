// Package services provides the pure domain services of the worker. They work
// on fully fetched, in-memory snapshots and never perform I/O.
//
// The package includes:
//   - StatusReconciler: overlays the live field-visit state onto an engineer's tickets
//   - EngineerRanker: orders tickets within an engineer and engineers within a report
//   - ReportFormatter: renders ranked engineers into the dispatch notification
//   - DispatchBoard: runs the three steps above for every on-duty engineer
//   - IncidentGrouper: clusters alerts into mass-incident groups
//   - BirthdayCalendar: selects employees with a birthday in the coming week
package services
