package commands

import (
	"context"
	"log/slog"

	"opsworker/internal/core/domain/model/alert"
	"opsworker/internal/core/ports"
	"opsworker/internal/pkg/clock"
)

// SilencedReply is sent to the requester once the silence is created.
const SilencedReply = "silenced"

// SilenceAlertCommandHandler turns a chat request into an alert manager
// silence. Every outcome, success or failure, is answered on the notify
// address instead of failing the job.
type SilenceAlertCommandHandler struct {
	silences ports.SilenceSubmitter
	notifier ports.Notifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewSilenceAlertCommandHandler(
	silences ports.SilenceSubmitter,
	notifier ports.Notifier,
	clk clock.Clock,
	logger *slog.Logger,
) SilenceAlertCommandHandler {
	return SilenceAlertCommandHandler{
		silences: silences,
		notifier: notifier,
		clock:    clk,
		logger:   logger.With("component", "silence-alert"),
	}
}

func (h SilenceAlertCommandHandler) Handle(ctx context.Context, cmd SilenceAlertCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	reply := SilencedReply
	silence, err := alert.NewSilence(cmd.Attributes(), cmd.Contact(), h.clock.Now())
	if err == nil {
		var id string
		if id, err = h.silences.CreateSilence(ctx, silence); err == nil {
			h.logger.Info("silence created", "silence_id", id, "created_by", cmd.Contact(), "ends_at", silence.EndsAt)
		}
	}
	if err != nil {
		h.logger.Warn("silence rejected", "created_by", cmd.Contact(), "error", err)
		reply = err.Error()
	}

	if err := h.notifier.Send(ctx, cmd.Notify(), reply); err != nil {
		h.logger.Error("failed to send silence reply", "to", cmd.Notify(), "error", err)
	}
	return nil
}
