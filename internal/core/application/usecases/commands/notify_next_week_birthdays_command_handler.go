package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"opsworker/internal/core/domain/services"
	"opsworker/internal/core/ports"
	"opsworker/internal/pkg/clock"
)

const birthdayHeader = "Next week birthday:"

// NotifyNextWeekBirthdaysCommandHandler sends the list of next week's
// birthdays to every configured recipient:
//
//	Next week birthday:
//	05-19 Full Name
//	05-23 Other Name
type NotifyNextWeekBirthdaysCommandHandler struct {
	hr         ports.HRDirectory
	calendar   services.BirthdayCalendar
	notifier   ports.Notifier
	clock      clock.Clock
	recipients []string
	logger     *slog.Logger
}

func NewNotifyNextWeekBirthdaysCommandHandler(
	hr ports.HRDirectory,
	calendar services.BirthdayCalendar,
	notifier ports.Notifier,
	clk clock.Clock,
	recipients []string,
	logger *slog.Logger,
) NotifyNextWeekBirthdaysCommandHandler {
	return NotifyNextWeekBirthdaysCommandHandler{
		hr:         hr,
		calendar:   calendar,
		notifier:   notifier,
		clock:      clk,
		recipients: recipients,
		logger:     logger.With("component", "next-week-birthdays"),
	}
}

func (h NotifyNextWeekBirthdaysCommandHandler) Handle(ctx context.Context, cmd NotifyNextWeekBirthdaysCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	employees, err := h.hr.ListActiveEmployees(ctx)
	if err != nil {
		return fmt.Errorf("list active employees: %w", err)
	}

	birthdays := h.calendar.NextWeek(employees, h.clock.Now())
	if len(birthdays) == 0 {
		h.logger.Info("no birthdays next week")
		return nil
	}

	lines := make([]string, 0, len(birthdays)+1)
	lines = append(lines, birthdayHeader)
	for _, b := range birthdays {
		lines = append(lines, b.Label())
	}
	msg := strings.Join(lines, "\n")

	for _, to := range h.recipients {
		if err := h.notifier.Send(ctx, to, msg); err != nil {
			h.logger.Error("failed to send birthday notification", "to", to, "error", err)
		}
	}

	h.logger.Info("birthday notification sent", "birthdays", len(birthdays), "recipients", len(h.recipients))
	return nil
}
