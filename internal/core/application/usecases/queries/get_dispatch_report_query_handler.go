package queries

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/domain/model/fieldtrack"
	"opsworker/internal/core/domain/model/kernel"
	"opsworker/internal/core/domain/model/ticket"
	"opsworker/internal/core/domain/services"
	"opsworker/internal/core/ports"
	"opsworker/internal/pkg/clock"

	"golang.org/x/sync/errgroup"
)

// DispatchSources bundles the collaborators the dispatch report reads from.
type DispatchSources struct {
	Tickets   ports.TicketSource
	Presence  ports.PresenceFeed
	Tracking  ports.FieldTrackingFeed
	Directory ports.EngineerDirectory
}

// GetDispatchReportQueryHandler builds the engineer dispatch report from one
// snapshot of the ticketing store, the attendance feed and the live
// field-visit feed.
//
// The four independent reads (ticket rows, roster, attendance, live feed) run
// concurrently; any failure aborts the query. PIC assignments are read once
// the ticket rows are normalized. Everything after that is in-memory work
// done by services.DispatchBoard.
//
// Example:
//
//	handler := NewGetDispatchReportQueryHandler(sources, clock.Real(), loc, "08:30", logger)
//	report, err := handler.Handle(ctx, NewGetDispatchReportQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Text)
type GetDispatchReportQueryHandler struct {
	sources  DispatchSources
	clock    clock.Clock
	location *time.Location
	dayStart string
	board    services.DispatchBoard
	logger   *slog.Logger
}

// NewGetDispatchReportQueryHandler creates the handler. dayStart is the
// "HH:MM" local time at which the operative day begins in location.
func NewGetDispatchReportQueryHandler(
	sources DispatchSources,
	clk clock.Clock,
	location *time.Location,
	dayStart string,
	logger *slog.Logger,
) GetDispatchReportQueryHandler {
	return GetDispatchReportQueryHandler{
		sources:  sources,
		clock:    clk,
		location: location,
		dayStart: dayStart,
		board:    services.NewDispatchBoard(sources.Directory),
		logger:   logger.With("component", "dispatch-report"),
	}
}

func (h GetDispatchReportQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchReportQuery,
) (services.DispatchReport, error) {
	if err := query.Validate(); err != nil {
		return services.DispatchReport{}, err
	}

	day, err := kernel.NewOperativeDay(h.clock.Now(), h.dayStart, h.location)
	if err != nil {
		return services.DispatchReport{}, err
	}

	var (
		rows     []ticket.UpdateRow
		roster   []engineer.RosterRow
		present  engineer.IDSet
		tracking []fieldtrack.State
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if rows, err = h.sources.Tickets.FetchTicketRows(gctx, day); err != nil {
			return fmt.Errorf("fetch ticket rows: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if roster, err = h.sources.Tickets.FetchRoster(gctx); err != nil {
			return fmt.Errorf("fetch roster: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if present, err = h.sources.Presence.FetchPresentEmployeeIDs(gctx); err != nil {
			return fmt.Errorf("fetch presence: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if tracking, err = h.sources.Tracking.FetchFieldTrackingSnapshot(gctx); err != nil {
			return fmt.Errorf("fetch field tracking: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return services.DispatchReport{}, err
	}

	book, excluded := ticket.Normalize(rows, day)
	for _, e := range excluded {
		if e.Reason == ticket.ExcludedMalformed {
			h.logger.Warn("skipping ticket row", "ticket_id", e.TicketID, "reason", e.Reason, "error", e.Err)
			continue
		}
		h.logger.Debug("ticket excluded", "ticket_id", e.TicketID, "reason", e.Reason)
	}

	var assignments []engineer.PicAssignment
	if slots := book.PicSlots(); len(slots) > 0 {
		if assignments, err = h.sources.Tickets.FetchPicAssignments(ctx, slots); err != nil {
			return services.DispatchReport{}, fmt.Errorf("fetch pic assignments: %w", err)
		}
	}

	assembled, skipped := engineer.Assemble(roster, h.sources.Directory.Excluded(), book.PicSlots(), assignments)
	for _, err := range skipped {
		h.logger.Warn("skipping roster row", "error", err)
	}

	report, err := h.board.Build(services.DispatchSnapshot{
		Day:      day,
		Book:     book,
		Roster:   assembled,
		Present:  present,
		Tracking: fieldtrack.NewSnapshot(tracking),
	})
	if err != nil {
		return services.DispatchReport{}, err
	}

	for _, a := range report.Anomalies {
		h.logger.Warn("field tracking anomaly", "employee_id", a.EmployeeID, "error", a.Err)
	}

	h.logger.Info("dispatch report built",
		"day", day.String(),
		"tickets", book.Len(),
		"excluded", len(excluded),
		"engineers", len(report.Engineers),
		"anomalies", len(report.Anomalies),
	)
	return report, nil
}
