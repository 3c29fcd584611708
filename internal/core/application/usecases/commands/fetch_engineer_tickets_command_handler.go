package commands

import (
	"context"
	"log/slog"

	"opsworker/internal/core/application/usecases/queries"
	"opsworker/internal/core/domain/services"
	"opsworker/internal/core/ports"
)

// DispatchReporter builds the engineer dispatch report.
type DispatchReporter interface {
	Handle(ctx context.Context, query queries.GetDispatchReportQuery) (services.DispatchReport, error)
}

// FetchEngineerTicketsCommandHandler builds the engineer dispatch report and
// sends it to the command's notify address.
//
// Delivery is fire-and-forget: a failed send is logged and does not fail the
// command. A report without engineers is not sent.
//
// Example:
//
//	reporter := queries.NewGetDispatchReportQueryHandler(sources, clock.Real(), loc, "08:30", logger)
//	handler := NewFetchEngineerTicketsCommandHandler(reporter, notifier, logger)
//	cmd, _ := NewFetchEngineerTicketsCommand("6281234567890")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // source fetch failed, the job should be retried
//	}
type FetchEngineerTicketsCommandHandler struct {
	reporter DispatchReporter
	notifier ports.Notifier
	logger   *slog.Logger
}

func NewFetchEngineerTicketsCommandHandler(
	reporter DispatchReporter,
	notifier ports.Notifier,
	logger *slog.Logger,
) FetchEngineerTicketsCommandHandler {
	return FetchEngineerTicketsCommandHandler{
		reporter: reporter,
		notifier: notifier,
		logger:   logger.With("component", "fetch-engineer-tickets"),
	}
}

func (h FetchEngineerTicketsCommandHandler) Handle(ctx context.Context, cmd FetchEngineerTicketsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	report, err := h.reporter.Handle(ctx, queries.NewGetDispatchReportQuery())
	if err != nil {
		return err
	}

	if report.Text == "" {
		h.logger.Info("no engineer on duty, nothing to send")
		return nil
	}

	if err := h.notifier.Send(ctx, cmd.Notify(), report.Text); err != nil {
		h.logger.Error("failed to send dispatch report", "to", cmd.Notify(), "error", err)
	}
	return nil
}
