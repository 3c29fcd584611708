package commands

import (
	"errors"

	"opsworker/internal/pkg/guard"
)

var ErrSyncEmployeePhonesCommandIsNotConstructed = errors.New(
	"SyncEmployeePhonesCommand must be created via NewSyncEmployeePhonesCommand constructor",
)

// SyncEmployeePhonesCommand copies employee phone numbers from HR into the
// billing system.
type SyncEmployeePhonesCommand struct {
	guard guard.ConstructorGuard
}

func NewSyncEmployeePhonesCommand() SyncEmployeePhonesCommand {
	return SyncEmployeePhonesCommand{guard: guard.NewConstructorGuard()}
}

func (c SyncEmployeePhonesCommand) Validate() error {
	return c.guard.Validate(ErrSyncEmployeePhonesCommandIsNotConstructed)
}
