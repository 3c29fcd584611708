package commands

import (
	"errors"

	"opsworker/internal/pkg/errs"
	"opsworker/internal/pkg/guard"
)

var (
	ErrSyncContactCommandIsNotConstructed = errors.New(
		"SyncContactCommand must be created via NewSyncContactCommand constructor",
	)
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// SyncContactCommand pushes the customer card of phone to the support inbox.
type SyncContactCommand struct { //nolint:recvcheck //using for validation
	phone string

	guard guard.ConstructorGuard
}

func NewSyncContactCommand(phone string) (SyncContactCommand, error) {
	cmd := SyncContactCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setPhone(phone); err != nil {
		return SyncContactCommand{}, err
	}
	return cmd, nil
}

func (c SyncContactCommand) Validate() error {
	return c.guard.Validate(ErrSyncContactCommandIsNotConstructed)
}

func (c SyncContactCommand) Phone() string {
	return c.phone
}

func (c *SyncContactCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
