package commands

import (
	"errors"

	"opsworker/internal/pkg/guard"
)

var ErrDeleteDeadGraphLinksCommandIsNotConstructed = errors.New(
	"DeleteDeadGraphLinksCommand must be created via NewDeleteDeadGraphLinksCommand constructor",
)

// DeleteDeadGraphLinksCommand removes subscription links to graphs that no
// longer exist in monitoring.
type DeleteDeadGraphLinksCommand struct {
	guard guard.ConstructorGuard
}

func NewDeleteDeadGraphLinksCommand() DeleteDeadGraphLinksCommand {
	return DeleteDeadGraphLinksCommand{guard: guard.NewConstructorGuard()}
}

func (c DeleteDeadGraphLinksCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeadGraphLinksCommandIsNotConstructed)
}
