package commands

import (
	"context"
	"fmt"
	"log/slog"

	"opsworker/internal/core/ports"
)

// SyncEmployeePhonesCommandHandler updates the billing system's employee
// phones wherever HR has a different, non-empty number for an active
// employee. A failed update is logged and the sync moves on.
type SyncEmployeePhonesCommandHandler struct {
	phones ports.EmployeePhoneRepository
	hr     ports.HRDirectory
	logger *slog.Logger
}

func NewSyncEmployeePhonesCommandHandler(
	phones ports.EmployeePhoneRepository,
	hr ports.HRDirectory,
	logger *slog.Logger,
) SyncEmployeePhonesCommandHandler {
	return SyncEmployeePhonesCommandHandler{
		phones: phones,
		hr:     hr,
		logger: logger.With("component", "sync-employee-phones"),
	}
}

func (h SyncEmployeePhonesCommandHandler) Handle(ctx context.Context, cmd SyncEmployeePhonesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	records, err := h.phones.ListPhones(ctx)
	if err != nil {
		return fmt.Errorf("list billing phones: %w", err)
	}

	employees, err := h.hr.ListFieldBranchEmployees(ctx)
	if err != nil {
		return fmt.Errorf("list hr employees: %w", err)
	}

	hrPhones := make(map[string]string, len(employees))
	for _, e := range employees {
		if !e.IsActive() {
			continue
		}
		if phone := e.Phone(); phone != "" {
			hrPhones[e.EmployeeID] = phone
		}
	}

	updated := 0
	for _, r := range records {
		phone, ok := hrPhones[r.EmployeeID]
		if !ok || phone == r.PhoneNumber {
			continue
		}

		h.logger.Info("updating employee phone", "employee_id", r.EmployeeID, "from", r.PhoneNumber, "to", phone)
		if err := h.phones.UpdatePhone(ctx, r.EmployeeID, phone); err != nil {
			h.logger.Error("failed to update employee phone", "employee_id", r.EmployeeID, "error", err)
			continue
		}
		updated++
	}

	h.logger.Info("employee phones synced", "checked", len(records), "updated", updated)
	return nil
}
