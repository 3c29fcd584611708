package commands

import (
	"errors"

	"opsworker/internal/pkg/guard"
)

var ErrNotifyNextWeekBirthdaysCommandIsNotConstructed = errors.New(
	"NotifyNextWeekBirthdaysCommand must be created via NewNotifyNextWeekBirthdaysCommand constructor",
)

// NotifyNextWeekBirthdaysCommand announces next week's birthdays.
type NotifyNextWeekBirthdaysCommand struct {
	guard guard.ConstructorGuard
}

func NewNotifyNextWeekBirthdaysCommand() NotifyNextWeekBirthdaysCommand {
	return NotifyNextWeekBirthdaysCommand{guard: guard.NewConstructorGuard()}
}

func (c NotifyNextWeekBirthdaysCommand) Validate() error {
	return c.guard.Validate(ErrNotifyNextWeekBirthdaysCommandIsNotConstructed)
}
