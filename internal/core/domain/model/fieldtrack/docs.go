// Package fieldtrack holds the live field-visit state reported by the visit
// card application: which visit card each engineer is handling and what they
// are doing with it.
//
// The feed is fetched fresh on every dispatch run. Lookups are explicit about
// the three possible outcomes so that a missing or duplicated record for an
// engineer is reported instead of guessed.
//
// Example:
//
//	snapshot := fieldtrack.NewSnapshot(states)
//	lookup := snapshot.Lookup(eng.VisitCardUserID())
//	if err := lookup.Err(); err != nil {
//	    // report the anomaly for this engineer
//	}
//	state := lookup.State()
package fieldtrack
