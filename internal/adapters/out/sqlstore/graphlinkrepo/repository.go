// Package graphlinkrepo reads and deletes the monitoring graph links of
// customer subscriptions in the billing database.
package graphlinkrepo

import (
	"context"

	"opsworker/internal/core/domain/model/network"

	"gorm.io/gorm"
)

const branchID = "020"

type subscriberGraphDTO struct {
	CSID    string `gorm:"column:csid"`
	Account string `gorm:"column:acc"`
	GraphID int64  `gorm:"column:graphId"`
}

// GormGraphLinkRepository implements ports.GraphLinkRepository.
type GormGraphLinkRepository struct {
	db *gorm.DB
}

func NewGormGraphLinkRepository(db *gorm.DB) *GormGraphLinkRepository {
	return &GormGraphLinkRepository{db: db}
}

// ListLinkedGraphIDs returns the distinct graphs linked to subscriptions of
// the branch that are not terminated.
func (r *GormGraphLinkRepository) ListLinkedGraphIDs(ctx context.Context) ([]network.GraphID, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT cszg.GraphId
		FROM CustomerServicesZabbixGraph cszg
		LEFT JOIN CustomerServices cs ON cszg.CustServId = cs.CustServId
		LEFT JOIN Customer c ON cs.CustId = c.CustId
		WHERE NOT (cs.CustStatus = 'NA') AND c.BranchId = ?
		ORDER BY cszg.GraphId
	`, branchID).Scan(&ids).Error; err != nil {
		return nil, err
	}
	return toGraphIDs(ids), nil
}

// ListBlockedSubscriberGraphs returns the graph links of blocked
// subscriptions of the branch, ordered by subscription.
func (r *GormGraphLinkRepository) ListBlockedSubscriberGraphs(ctx context.Context) ([]network.SubscriberGraph, error) {
	var dtos []subscriberGraphDTO
	if err := r.db.WithContext(ctx).Raw(`
		SELECT cs.CustAccName acc, cs.CustServId csid, cszg.GraphId graphId
		FROM CustomerServicesZabbixGraph cszg
		LEFT JOIN CustomerServices cs ON cszg.CustServId = cs.CustServId
		LEFT JOIN Customer c ON cs.CustId = c.CustId
		WHERE cs.CustStatus = 'BL' AND c.BranchId = ?
		ORDER BY cs.CustServId, cszg.Id
	`, branchID).Scan(&dtos).Error; err != nil {
		return nil, err
	}

	links := make([]network.SubscriberGraph, 0, len(dtos))
	for _, dto := range dtos {
		links = append(links, network.SubscriberGraph{
			Subscriber: network.Subscriber{CSID: dto.CSID, Account: dto.Account},
			GraphID:    network.GraphID(dto.GraphID),
		})
	}
	return links, nil
}

// DeleteLinks removes every link to ids.
func (r *GormGraphLinkRepository) DeleteLinks(ctx context.Context, ids []network.GraphID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Exec(`DELETE FROM CustomerServicesZabbixGraph WHERE GraphId IN ?`, fromGraphIDs(ids))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func toGraphIDs(ids []int64) []network.GraphID {
	out := make([]network.GraphID, 0, len(ids))
	for _, id := range ids {
		out = append(out, network.GraphID(id))
	}
	return out
}

func fromGraphIDs(ids []network.GraphID) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}
	return out
}
