package commands

import (
	"context"
	"fmt"
	"log/slog"

	"opsworker/internal/core/domain/model/contact"
	"opsworker/internal/core/ports"
)

// SyncContactCommandHandler looks the phone up in billing and pushes the
// formatted customer card. Short phones and unknown customers are skipped.
// Sync failures are logged; retrying them is the ContactSync adapter's job.
type SyncContactCommandHandler struct {
	contacts ports.ContactRepository
	sync     ports.ContactSync
	logger   *slog.Logger
}

func NewSyncContactCommandHandler(
	contacts ports.ContactRepository,
	sync ports.ContactSync,
	logger *slog.Logger,
) SyncContactCommandHandler {
	return SyncContactCommandHandler{
		contacts: contacts,
		sync:     sync,
		logger:   logger.With("component", "sync-contact"),
	}
}

func (h SyncContactCommandHandler) Handle(ctx context.Context, cmd SyncContactCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	phone := cmd.Phone()
	if len(phone) < contact.MinPhoneDigits {
		h.logger.Debug("phone too short, skipping", "phone", phone)
		return nil
	}

	detail, err := h.contacts.FindByPhone(ctx, phone)
	if err != nil {
		return fmt.Errorf("find contact: %w", err)
	}
	if detail.IsEmpty() {
		h.logger.Debug("no customer for phone", "phone", phone)
		return nil
	}

	payload, err := contact.Format(phone, detail)
	if err != nil {
		return err
	}

	if err := h.sync.Sync(ctx, payload); err != nil {
		h.logger.Warn("contact sync failed", "phone", phone, "error", err)
		return nil
	}

	h.logger.Info("contact synced", "phone", phone, "customers", len(detail.CustomerIDs))
	return nil
}
