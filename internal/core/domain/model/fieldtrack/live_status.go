package fieldtrack

import (
	"fmt"

	"opsworker/internal/core/domain/model/ticket"
	"opsworker/internal/pkg/errs"
)

// LiveStatus is what the engineer is doing according to the field app.
type LiveStatus int

const (
	LiveUnknown LiveStatus = iota
	LiveIdle
	LiveWorking
	LivePending
	LiveDone
	LiveOnTheWay
)

var liveStatusStrings = map[LiveStatus]string{
	LiveIdle:     "idle",
	LiveWorking:  "working",
	LivePending:  "pending",
	LiveDone:     "done",
	LiveOnTheWay: "ontheway",
}

// ParseLiveStatus maps the field app's status string to a LiveStatus.
func ParseLiveStatus(s string) (LiveStatus, error) {
	for status, str := range liveStatusStrings {
		if str == s {
			return status, nil
		}
	}
	return LiveUnknown, errs.NewValueIsInvalidErrorWithCause("liveStatus", fmt.Errorf("%q is not a live status", s))
}

func (s LiveStatus) String() string {
	if str, ok := liveStatusStrings[s]; ok {
		return str
	}
	return "unknown"
}

// TicketStatus is the ticket status this live status overlays.
func (s LiveStatus) TicketStatus() ticket.Status {
	switch s {
	case LiveIdle:
		return ticket.Idle
	case LiveWorking:
		return ticket.Working
	case LivePending:
		return ticket.PendingLive
	case LiveDone:
		return ticket.Done
	case LiveOnTheWay:
		return ticket.OnTheWay
	default:
		return ticket.Unknown
	}
}
