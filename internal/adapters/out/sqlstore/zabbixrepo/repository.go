// Package zabbixrepo queries the Zabbix monitoring database for graphs and
// their traffic history. The queries only touch the lower-case Zabbix schema
// and run unchanged on MySQL and PostgreSQL.
package zabbixrepo

import (
	"context"
	"math"
	"time"

	"opsworker/internal/core/domain/model/network"

	"gorm.io/gorm"
)

type graphItemDTO struct {
	GraphID int64 `gorm:"column:graphid"`
	ItemID  int64 `gorm:"column:itemid"`
}

// GormZabbixRepository implements ports.GraphMonitor.
type GormZabbixRepository struct {
	db *gorm.DB
}

func NewGormZabbixRepository(db *gorm.DB) *GormZabbixRepository {
	return &GormZabbixRepository{db: db}
}

// ExistingGraphs returns the ids that are still present in the graphs table,
// in the order given.
func (r *GormZabbixRepository) ExistingGraphs(ctx context.Context, ids []network.GraphID) ([]network.GraphID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []int64
	if err := r.db.WithContext(ctx).Raw(
		`SELECT graphid FROM graphs WHERE graphid IN ?`, raw(ids),
	).Scan(&found).Error; err != nil {
		return nil, err
	}

	present := make(map[network.GraphID]struct{}, len(found))
	for _, id := range found {
		present[network.GraphID(id)] = struct{}{}
	}
	return keep(ids, present), nil
}

// OverSpeedGraphs returns the ids having an item whose recorded value
// exceeded threshold after since, in the order given.
func (r *GormZabbixRepository) OverSpeedGraphs(
	ctx context.Context,
	ids []network.GraphID,
	threshold uint64,
	since time.Time,
) ([]network.GraphID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	db := r.db.WithContext(ctx)

	var links []graphItemDTO
	if err := db.Raw(
		`SELECT graphid, itemid FROM graphs_items WHERE graphid IN ?`, raw(ids),
	).Scan(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, nil
	}

	graphsByItem := make(map[int64][]network.GraphID, len(links))
	itemIDs := make([]int64, 0, len(links))
	for _, l := range links {
		if _, ok := graphsByItem[l.ItemID]; !ok {
			itemIDs = append(itemIDs, l.ItemID)
		}
		graphsByItem[l.ItemID] = append(graphsByItem[l.ItemID], network.GraphID(l.GraphID))
	}

	limit := int64(math.MaxInt64)
	if threshold < math.MaxInt64 {
		limit = int64(threshold)
	}

	var hot []int64
	if err := db.Raw(`
		SELECT DISTINCT itemid
		FROM history_uint
		WHERE clock > ? AND value > ? AND itemid IN ?
	`, since.Unix(), limit, itemIDs).Scan(&hot).Error; err != nil {
		return nil, err
	}

	over := make(map[network.GraphID]struct{})
	for _, item := range hot {
		for _, g := range graphsByItem[item] {
			over[g] = struct{}{}
		}
	}
	return keep(ids, over), nil
}

func raw(ids []network.GraphID) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}
	return out
}

func keep(ids []network.GraphID, set map[network.GraphID]struct{}) []network.GraphID {
	var out []network.GraphID
	for _, id := range ids {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
