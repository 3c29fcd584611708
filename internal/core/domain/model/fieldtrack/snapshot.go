package fieldtrack

import (
	"errors"
	"fmt"
	"time"

	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/domain/model/ticket"
	"opsworker/internal/pkg/errs"
)

// ErrAmbiguousTracking is matched by errors returned for users with more than
// one live record.
var ErrAmbiguousTracking = errors.New("ambiguous field tracking")

// AmbiguousTrackingError reports how many live records matched one user.
type AmbiguousTrackingError struct {
	UserID engineer.VisitCardUserID
	Count  int
}

func (e *AmbiguousTrackingError) Error() string {
	return fmt.Sprintf("%s: %d records for visit card user %d", ErrAmbiguousTracking, e.Count, e.UserID)
}

func (e *AmbiguousTrackingError) Unwrap() error {
	return ErrAmbiguousTracking
}

// State is one engineer's record in the live feed.
type State struct {
	UserID       engineer.VisitCardUserID
	VisitCardID  ticket.VisitCardID
	Status       LiveStatus
	LastUpdateAt time.Time
	LastActionAt time.Time
}

// ActionAt is the moment the current activity began: the last update for an
// idle engineer, the last action otherwise.
func (s State) ActionAt() time.Time {
	if s.Status == LiveIdle {
		return s.LastUpdateAt
	}
	return s.LastActionAt
}

// LookupResult tells Found, NotFound and Ambiguous lookups apart.
type LookupResult int

const (
	NotFound LookupResult = iota
	Found
	Ambiguous
)

func (r LookupResult) String() string {
	switch r {
	case Found:
		return "found"
	case Ambiguous:
		return "ambiguous"
	default:
		return "not found"
	}
}

// Lookup is the outcome of resolving a user in a Snapshot.
type Lookup struct {
	userID  engineer.VisitCardUserID
	result  LookupResult
	matches []State
}

func (l Lookup) Result() LookupResult { return l.result }

// State returns the matched record. It is only meaningful when Result is Found.
func (l Lookup) State() State {
	if l.result != Found {
		return State{}
	}
	return l.matches[0]
}

// Matches returns every record that matched the user.
func (l Lookup) Matches() []State {
	out := make([]State, len(l.matches))
	copy(out, l.matches)
	return out
}

// Err is nil for Found, an ObjectNotFoundError for NotFound and an
// AmbiguousTrackingError otherwise.
func (l Lookup) Err() error {
	switch l.result {
	case Found:
		return nil
	case Ambiguous:
		return &AmbiguousTrackingError{UserID: l.userID, Count: len(l.matches)}
	default:
		return errs.NewObjectNotFoundError("visitCardUserId", fmt.Sprint(l.userID))
	}
}

// Snapshot indexes one fetch of the live feed by user.
type Snapshot struct {
	byUser map[engineer.VisitCardUserID][]State
}

// NewSnapshot indexes states by user id, keeping feed order per user.
func NewSnapshot(states []State) *Snapshot {
	s := &Snapshot{byUser: make(map[engineer.VisitCardUserID][]State, len(states))}
	for _, st := range states {
		s.byUser[st.UserID] = append(s.byUser[st.UserID], st)
	}
	return s
}

// Lookup resolves the live record of a visit card user. Exactly one record
// must match for the result to be Found.
func (s *Snapshot) Lookup(userID engineer.VisitCardUserID) Lookup {
	matches := s.byUser[userID]
	l := Lookup{userID: userID, matches: matches}
	switch len(matches) {
	case 0:
		l.result = NotFound
	case 1:
		l.result = Found
	default:
		l.result = Ambiguous
	}
	return l
}

// Len is the number of records in the snapshot.
func (s *Snapshot) Len() int {
	n := 0
	for _, states := range s.byUser {
		n += len(states)
	}
	return n
}
