package commands

import (
	"errors"

	"opsworker/internal/pkg/errs"
	"opsworker/internal/pkg/guard"
)

var (
	ErrSilenceAlertCommandIsNotConstructed = errors.New(
		"SilenceAlertCommand must be created via NewSilenceAlertCommand constructor",
	)
	ErrContactIsRequired = errs.NewValueIsRequiredError("contact")
)

// SilenceAlertCommand creates an alert silence on behalf of contact and
// reports the outcome to notify. The attribute string is validated by the
// handler so that its errors reach the requester.
type SilenceAlertCommand struct { //nolint:recvcheck //using for validation
	attributes string
	contact    string
	notify     string

	guard guard.ConstructorGuard
}

func NewSilenceAlertCommand(attributes, contact, notify string) (SilenceAlertCommand, error) {
	cmd := SilenceAlertCommand{
		attributes: attributes,
		guard:      guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		cmd.setContact(contact),
		cmd.setNotify(notify),
	); err != nil {
		return SilenceAlertCommand{}, err
	}
	return cmd, nil
}

func (c SilenceAlertCommand) Validate() error {
	return c.guard.Validate(ErrSilenceAlertCommandIsNotConstructed)
}

func (c SilenceAlertCommand) Attributes() string { return c.attributes }
func (c SilenceAlertCommand) Contact() string    { return c.contact }
func (c SilenceAlertCommand) Notify() string     { return c.notify }

func (c *SilenceAlertCommand) setContact(contact string) error {
	if contact == "" {
		return ErrContactIsRequired
	}
	c.contact = contact
	return nil
}

func (c *SilenceAlertCommand) setNotify(notify string) error {
	if notify == "" {
		return ErrNotifyIsRequired
	}
	c.notify = notify
	return nil
}
