package ticket

import (
	"fmt"

	"opsworker/internal/pkg/errs"
)

// Status is the effective state of a ticket. The first three values come from
// the ticketing store; the rest are overlaid from the live field-visit feed.
// Their string forms differ only by case ("Pending" vs "pending"), matching the
// two upstream systems.
type Status int

const (
	// Unknown is any status string neither upstream system defines.
	Unknown Status = iota

	// Open tickets wait for an engineer.
	Open

	// Pending tickets were paused in the ticketing store.
	Pending

	// Call tickets are queued for a customer call-back.
	Call

	// Idle means the live feed references the ticket but nothing is in progress.
	Idle

	// Working means an engineer is on site.
	Working

	// PendingLive means the engineer paused the visit in the field app.
	PendingLive

	// Done means the engineer finished the visit in the field app.
	Done

	// OnTheWay means the engineer is travelling to the site.
	OnTheWay
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Open:        "Open",
		Pending:     "Pending",
		Call:        "Call",
		Idle:        "idle",
		Working:     "working",
		PendingLive: "pending",
		Done:        "done",
		OnTheWay:    "ontheway",
	}
}

// ParseStatus maps an upstream status string to a Status. Matching is case
// sensitive. Strings that are not recognised yield Unknown and a
// ValueIsInvalidError.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a ticket status", s))
}

// StoreStatusFromString maps a ticketing-store status onto Open, Pending or
// Call. Anything else, live-feed statuses included, is Unknown: only the
// field-visit overlay may make a ticket active.
func StoreStatusFromString(s string) Status {
	status, err := ParseStatus(s)
	if err != nil || !status.fromStore() {
		return Unknown
	}
	return status
}

func (s Status) fromStore() bool {
	return s == Open || s == Pending || s == Call
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the status means the engineer is busy right now.
func (s Status) IsActive() bool {
	return s == Working || s == OnTheWay
}

// ResetsIdle reports whether the status marks the end of a field action, which
// moves the engineer's idle baseline to the action time.
func (s Status) ResetsIdle() bool {
	return s == Done || s == PendingLive
}
