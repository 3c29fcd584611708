package kernel

import (
	"fmt"
	"time"

	"opsworker/internal/pkg/errs"
	"opsworker/internal/pkg/guard"
)

// DefaultOperativeDayStart is the local clock time at which the dispatch day begins.
const DefaultOperativeDayStart = "08:30"

// ErrOperativeDayIsNotConstructed is returned when a zero OperativeDay is used.
var ErrOperativeDayIsNotConstructed = errs.NewValueIsRequiredError(
	"operative day must be created via NewOperativeDay")

// OperativeDay is the window a dispatch run reasons about. Every comparison
// against "today" in the ticket pipeline goes through its Start instant, which
// is the configured clock time on the run date in the configured location.
//
// Example:
//
//	loc, _ := time.LoadLocation("Asia/Jakarta")
//	day, err := kernel.NewOperativeDay(time.Now(), "08:30", loc)
//	if err != nil {
//	    return err
//	}
//	if day.IsBeforeStart(ticket.UpdatedAt()) {
//	    // yesterday's news
//	}
type OperativeDay struct {
	start time.Time
	guard guard.ConstructorGuard
}

// NewOperativeDay builds the operative day containing now. clock must be in
// HH:MM form; loc defaults to time.Local when nil.
func NewOperativeDay(now time.Time, clock string, loc *time.Location) (OperativeDay, error) {
	if loc == nil {
		loc = time.Local
	}
	if clock == "" {
		clock = DefaultOperativeDayStart
	}

	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return OperativeDay{}, errs.NewValueIsInvalidErrorWithCause("operative day start", err)
	}

	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc)

	return OperativeDay{
		start: start,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the day was built through NewOperativeDay.
func (d OperativeDay) Validate() error {
	return d.guard.Validate(ErrOperativeDayIsNotConstructed)
}

// Start returns the instant the operative day begins.
func (d OperativeDay) Start() time.Time {
	return d.start
}

// Location returns the time zone the day is expressed in.
func (d OperativeDay) Location() *time.Location {
	return d.start.Location()
}

// IsBeforeStart reports whether t happened strictly before the day started.
func (d OperativeDay) IsBeforeStart(t time.Time) bool {
	return t.Before(d.start)
}

// IsAfterStart reports whether t happened strictly after the day started.
func (d OperativeDay) IsAfterStart(t time.Time) bool {
	return t.After(d.start)
}

// IsWithin reports whether t is at or after the day start.
func (d OperativeDay) IsWithin(t time.Time) bool {
	return !t.Before(d.start)
}

// IsDueLater reports whether the calendar date of t lies after the operative
// day, i.e. midnight of t's date is later than the day start.
func (d OperativeDay) IsDueLater(t time.Time) bool {
	local := t.In(d.Location())
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, d.Location())
	return midnight.After(d.start)
}

// Clamp returns t when it is after the day start, otherwise the day start.
func (d OperativeDay) Clamp(t time.Time) time.Time {
	if t.After(d.start) {
		return t
	}
	return d.start
}

// ClockLabel renders t as HH:MM in the day's location.
func (d OperativeDay) ClockLabel(t time.Time) string {
	local := t.In(d.Location())
	return fmt.Sprintf("%02d:%02d", local.Hour(), local.Minute())
}

func (d OperativeDay) String() string {
	return fmt.Sprintf("OperativeDay(%s)", d.start.Format(time.RFC3339))
}
