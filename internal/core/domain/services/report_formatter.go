package services

import (
	"fmt"
	"strings"

	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/domain/model/kernel"
	"opsworker/internal/core/domain/model/ticket"
)

// Ticket glyphs shown in front of the ticket id.
const (
	glyphCall     = "☑"
	glyphPending  = "⏸"
	glyphDone     = "☑"
	glyphWorking  = "▶"
	glyphPaused   = "⏸"
	glyphOnTheWay = "🛫"
	glyphDefault  = "☐"
	glyphAnomaly  = "⚠"
)

// NameDirectory resolves display-name overrides for employees.
type NameDirectory interface {
	Nickname(id engineer.EmployeeID) (string, bool)
}

// ReportFormatter renders the dispatch notification.
//
// Ticket format: <prefix><id><suffix>
//   - Call: ☑
//   - Pending: ⏸
//   - done: [*HH:MM*]☑ and the engineer's idle-since moves to HH:MM
//   - working: [HH:MM]▶ and the engineer is no longer idle
//   - pending (live): [*HH:MM*]⏸ and the engineer's idle-since moves to HH:MM
//   - ontheway: [HH:MM]🛫 and the engineer is no longer idle
//   - anything else: ☐
//
// HH:MM is the start of the engineer's current field activity. The suffix
// [HH:MM] carries the visit time for non-Call tickets whose visit is after
// the day start.
//
// Line format:
//   - idle with tickets: *name* - t1, t2
//   - idle without tickets: *name*
//   - busy: name - t1, t2
type ReportFormatter struct {
	names NameDirectory
}

// NewReportFormatter creates a ReportFormatter. names may be nil.
func NewReportFormatter(names NameDirectory) ReportFormatter {
	return ReportFormatter{names: names}
}

// RenderTickets renders the tickets of a in their given order and returns
// the idle state that results from them, starting from a.Baseline.
func (f ReportFormatter) RenderTickets(day kernel.OperativeDay, a Assessment) ([]string, IdleState) {
	state := a.Baseline
	action := day.ClockLabel(a.ActionStartedAt)
	rendered := make([]string, 0, len(a.Tickets))

	for _, t := range a.Tickets {
		var prefix string
		switch t.Status {
		case ticket.Call:
			prefix = glyphCall
		case ticket.Pending:
			prefix = glyphPending
		case ticket.Done:
			prefix = "[*" + action + "*]" + glyphDone
			state.Since = a.ActionStartedAt
		case ticket.Working:
			prefix = "[" + action + "]" + glyphWorking
			state.Idle = false
		case ticket.PendingLive:
			prefix = "[*" + action + "*]" + glyphPaused
			state.Since = a.ActionStartedAt
		case ticket.OnTheWay:
			prefix = "[" + action + "]" + glyphOnTheWay
			state.Idle = false
		default:
			prefix = glyphDefault
		}

		var suffix string
		if t.HasVisit && t.Status != ticket.Call && day.IsAfterStart(t.VisitAt) {
			suffix = "[" + day.ClockLabel(t.VisitAt) + "]"
		}

		rendered = append(rendered, fmt.Sprintf("%s%d%s", prefix, t.TicketID, suffix))
	}

	return rendered, state
}

// DisplayName is the nickname override for e, or "<employee id> <name>".
func (f ReportFormatter) DisplayName(e *engineer.Engineer) string {
	if f.names != nil {
		if nick, ok := f.names.Nickname(e.ID()); ok && nick != "" {
			return nick
		}
	}
	return fmt.Sprintf("%s %s", e.ID(), e.Name())
}

// Line renders one engineer line.
func (f ReportFormatter) Line(r RankedEngineer) string {
	tickets := strings.Join(r.Tickets, ", ")
	switch {
	case !r.Idle:
		return r.Name + " - " + tickets
	case len(r.Tickets) > 0:
		return "*" + r.Name + "* - " + tickets
	default:
		return "*" + r.Name + "*"
	}
}

// AnomalyLine renders an engineer whose live record could not be resolved.
func (f ReportFormatter) AnomalyLine(a Anomaly) string {
	return fmt.Sprintf("%s %s: %v", glyphAnomaly, a.Name, a.Err)
}

// Report joins the engineer lines, followed by the anomaly lines, with
// newlines.
func (f ReportFormatter) Report(ranked []RankedEngineer, anomalies []Anomaly) string {
	lines := make([]string, 0, len(ranked)+len(anomalies))
	for _, r := range ranked {
		lines = append(lines, f.Line(r))
	}
	for _, a := range anomalies {
		lines = append(lines, f.AnomalyLine(a))
	}
	return strings.Join(lines, "\n")
}
