package ports

import (
	"context"
	"time"

	"opsworker/internal/core/domain/model/network"
)

// GraphLinkRepository reads and writes the graph links of customer
// subscriptions in the billing system.
type GraphLinkRepository interface {
	// ListLinkedGraphIDs returns the graphs linked to active subscriptions.
	ListLinkedGraphIDs(ctx context.Context) ([]network.GraphID, error)

	// ListBlockedSubscriberGraphs returns the graph links of blocked
	// subscriptions, ordered by subscription.
	ListBlockedSubscriberGraphs(ctx context.Context) ([]network.SubscriberGraph, error)

	// DeleteLinks removes every link to the given graphs and returns the
	// number of rows removed.
	DeleteLinks(ctx context.Context, ids []network.GraphID) (int64, error)
}

// GraphMonitor queries the monitoring database.
type GraphMonitor interface {
	// ExistingGraphs returns the subset of ids that still exist.
	ExistingGraphs(ctx context.Context, ids []network.GraphID) ([]network.GraphID, error)

	// OverSpeedGraphs returns the subset of ids with any item whose value
	// exceeded threshold after since.
	OverSpeedGraphs(ctx context.Context, ids []network.GraphID, threshold uint64, since time.Time) ([]network.GraphID, error)
}
