package services

import (
	"errors"

	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/domain/model/fieldtrack"
	"opsworker/internal/core/domain/model/kernel"
	"opsworker/internal/core/domain/model/ticket"
)

// ErrIncompleteSnapshot is returned when a DispatchSnapshot lacks one of its sources.
var ErrIncompleteSnapshot = errors.New("dispatch snapshot is incomplete")

// DispatchSnapshot is one fully fetched view of the three sources.
type DispatchSnapshot struct {
	Day      kernel.OperativeDay
	Book     *ticket.Book
	Roster   *engineer.Roster
	Present  engineer.IDSet
	Tracking *fieldtrack.Snapshot
}

// Anomaly is an on-duty engineer left out of the ranking because their live
// record could not be resolved.
type Anomaly struct {
	EmployeeID engineer.EmployeeID
	Name       string
	Err        error
}

// DispatchReport is the outcome of one board run.
type DispatchReport struct {
	Engineers []RankedEngineer
	Anomalies []Anomaly
	Text      string
}

// DispatchBoard turns a DispatchSnapshot into the ranked notification.
//
// For every on-duty engineer, in roster order:
//  1. resolve the live record (missing or duplicated records become an Anomaly)
//  2. reconcile ticket statuses with StatusReconciler
//  3. order tickets with EngineerRanker.RankTickets
//  4. render tickets with ReportFormatter, which also yields the idle state
//
// Engineers are then ordered with EngineerRanker.RankEngineers and rendered.
// The same snapshot always yields the same text.
type DispatchBoard struct {
	reconciler StatusReconciler
	ranker     EngineerRanker
	formatter  ReportFormatter
}

// NewDispatchBoard creates a DispatchBoard using names for display-name overrides.
func NewDispatchBoard(names NameDirectory) DispatchBoard {
	return DispatchBoard{
		reconciler: NewStatusReconciler(),
		ranker:     NewEngineerRanker(),
		formatter:  NewReportFormatter(names),
	}
}

// Build ranks every on-duty engineer of s.
func (b DispatchBoard) Build(s DispatchSnapshot) (DispatchReport, error) {
	if s.Book == nil || s.Roster == nil || s.Tracking == nil {
		return DispatchReport{}, ErrIncompleteSnapshot
	}
	if err := s.Day.Validate(); err != nil {
		return DispatchReport{}, err
	}

	var (
		ranked    []RankedEngineer
		anomalies []Anomaly
	)

	for _, eng := range s.Roster.OnDuty(s.Present) {
		name := b.formatter.DisplayName(eng)

		lookup := s.Tracking.Lookup(eng.VisitCardUserID())
		if err := lookup.Err(); err != nil {
			anomalies = append(anomalies, Anomaly{EmployeeID: eng.ID(), Name: name, Err: err})
			continue
		}

		assessment, err := b.reconciler.Reconcile(s.Day, s.Book, eng, lookup.State())
		if err != nil {
			return DispatchReport{}, err
		}
		assessment.Tickets = b.ranker.RankTickets(assessment.Tickets)

		tickets, idle := b.formatter.RenderTickets(s.Day, assessment)
		ranked = append(ranked, RankedEngineer{
			EmployeeID: eng.ID(),
			Name:       name,
			Idle:       idle.Idle,
			IdleSince:  idle.Since,
			Tickets:    tickets,
		})
	}

	ranked = b.ranker.RankEngineers(ranked)

	return DispatchReport{
		Engineers: ranked,
		Anomalies: anomalies,
		Text:      b.formatter.Report(ranked, anomalies),
	}, nil
}
