package commands

import (
	"context"
	"fmt"
	"log/slog"

	"opsworker/internal/core/domain/model/network"
	"opsworker/internal/core/ports"
)

// DeleteDeadGraphLinksCommandHandler compares the graphs linked in billing
// with the graphs monitoring still knows and deletes the dangling links in
// one transaction.
type DeleteDeadGraphLinksCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	monitor    ports.GraphMonitor
	logger     *slog.Logger
}

func NewDeleteDeadGraphLinksCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	monitor ports.GraphMonitor,
	logger *slog.Logger,
) DeleteDeadGraphLinksCommandHandler {
	return DeleteDeadGraphLinksCommandHandler{
		uowFactory: uowFactory,
		monitor:    monitor,
		logger:     logger.With("component", "delete-dead-graph-links"),
	}
}

func (h DeleteDeadGraphLinksCommandHandler) Handle(ctx context.Context, cmd DeleteDeadGraphLinksCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	links := uow.GraphLinkRepository()
	linked, err := links.ListLinkedGraphIDs(ctx)
	if err != nil {
		return fmt.Errorf("list linked graphs: %w", err)
	}
	if len(linked) == 0 {
		return nil
	}

	existing, err := h.monitor.ExistingGraphs(ctx, linked)
	if err != nil {
		return fmt.Errorf("check graphs in monitoring: %w", err)
	}

	dead := network.Missing(linked, existing)
	if len(dead) == 0 {
		h.logger.Info("no dead graph links", "linked", len(linked))
		return nil
	}

	deleted, err := links.DeleteLinks(ctx, dead)
	if err != nil {
		return fmt.Errorf("delete dead graph links: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("dead graph links deleted", "graphs", len(dead), "rows", deleted)
	return nil
}
