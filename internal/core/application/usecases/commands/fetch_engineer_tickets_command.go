package commands

import (
	"errors"

	"opsworker/internal/pkg/errs"
	"opsworker/internal/pkg/guard"
)

var (
	ErrFetchEngineerTicketsCommandIsNotConstructed = errors.New(
		"FetchEngineerTicketsCommand must be created via NewFetchEngineerTicketsCommand constructor",
	)
	ErrNotifyIsRequired = errs.NewValueIsRequiredError("notify")
)

// FetchEngineerTicketsCommand builds the engineer dispatch report and sends
// it to notify.
type FetchEngineerTicketsCommand struct { //nolint:recvcheck //using for validation
	notify string

	guard guard.ConstructorGuard
}

func NewFetchEngineerTicketsCommand(notify string) (FetchEngineerTicketsCommand, error) {
	cmd := FetchEngineerTicketsCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setNotify(notify); err != nil {
		return FetchEngineerTicketsCommand{}, err
	}
	return cmd, nil
}

func (c FetchEngineerTicketsCommand) Validate() error {
	return c.guard.Validate(ErrFetchEngineerTicketsCommandIsNotConstructed)
}

func (c FetchEngineerTicketsCommand) Notify() string {
	return c.notify
}

func (c *FetchEngineerTicketsCommand) setNotify(notify string) error {
	if notify == "" {
		return ErrNotifyIsRequired
	}
	c.notify = notify
	return nil
}
