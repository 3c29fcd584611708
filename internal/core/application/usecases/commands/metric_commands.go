package commands

import (
	"errors"

	"opsworker/internal/pkg/guard"
)

var (
	ErrGenerateOverSpeedMetricsCommandIsNotConstructed = errors.New(
		"GenerateOverSpeedMetricsCommand must be created via NewGenerateOverSpeedMetricsCommand constructor",
	)
	ErrGenerateGamasMetricsCommandIsNotConstructed = errors.New(
		"GenerateGamasMetricsCommand must be created via NewGenerateGamasMetricsCommand constructor",
	)
	ErrGenerateNusacontactQueueMetricsCommandIsNotConstructed = errors.New(
		"GenerateNusacontactQueueMetricsCommand must be created via NewGenerateNusacontactQueueMetricsCommand constructor",
	)
)

// GenerateOverSpeedMetricsCommand exports blocked subscribers that still
// move traffic.
type GenerateOverSpeedMetricsCommand struct {
	guard guard.ConstructorGuard
}

func NewGenerateOverSpeedMetricsCommand() GenerateOverSpeedMetricsCommand {
	return GenerateOverSpeedMetricsCommand{guard: guard.NewConstructorGuard()}
}

func (c GenerateOverSpeedMetricsCommand) Validate() error {
	return c.guard.Validate(ErrGenerateOverSpeedMetricsCommandIsNotConstructed)
}

// GenerateGamasMetricsCommand exports mass-incident groups.
type GenerateGamasMetricsCommand struct {
	guard guard.ConstructorGuard
}

func NewGenerateGamasMetricsCommand() GenerateGamasMetricsCommand {
	return GenerateGamasMetricsCommand{guard: guard.NewConstructorGuard()}
}

func (c GenerateGamasMetricsCommand) Validate() error {
	return c.guard.Validate(ErrGenerateGamasMetricsCommandIsNotConstructed)
}

// GenerateNusacontactQueueMetricsCommand exports the support inbox queues.
type GenerateNusacontactQueueMetricsCommand struct {
	guard guard.ConstructorGuard
}

func NewGenerateNusacontactQueueMetricsCommand() GenerateNusacontactQueueMetricsCommand {
	return GenerateNusacontactQueueMetricsCommand{guard: guard.NewConstructorGuard()}
}

func (c GenerateNusacontactQueueMetricsCommand) Validate() error {
	return c.guard.Validate(ErrGenerateNusacontactQueueMetricsCommandIsNotConstructed)
}
