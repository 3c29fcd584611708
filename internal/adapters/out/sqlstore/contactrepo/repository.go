// Package contactrepo assembles the customer behind a phone number from the
// billing database.
package contactrepo

import (
	"context"
	"slices"
	"strings"

	"opsworker/internal/core/domain/model/contact"

	"gorm.io/gorm"
)

type phonebookDTO struct {
	Name       string `gorm:"column:name"`
	CustomerID string `gorm:"column:customerId"`
}

type customerDTO struct {
	CustomerID string `gorm:"column:customerId"`
	Company    string `gorm:"column:company"`
	Branch     string `gorm:"column:branch"`
}

type subscriptionDTO struct {
	SubscriptionID string `gorm:"column:subscriptionId"`
	Service        string `gorm:"column:service"`
	Account        string `gorm:"column:account"`
	Address        string `gorm:"column:address"`
}

// GormContactRepository implements ports.ContactRepository.
type GormContactRepository struct {
	db *gorm.DB
}

func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// FindByPhone looks phone up in the SMS phonebook, newest entry first, and
// collects the companies, branches and live subscriptions of every customer
// found. The name is taken from the newest phonebook entry.
func (r *GormContactRepository) FindByPhone(ctx context.Context, phone string) (contact.Detail, error) {
	db := r.db.WithContext(ctx)

	var entries []phonebookDTO
	if err := db.Raw(`
		SELECT name, custId customerId
		FROM sms_phonebook
		WHERE phone LIKE ? AND custId IS NOT NULL
		ORDER BY insertTime DESC
	`, "%"+phone).Scan(&entries).Error; err != nil {
		return contact.Detail{}, err
	}

	var detail contact.Detail
	for _, e := range entries {
		if detail.Name == "" {
			detail.Name = e.Name
		}
		if !slices.Contains(detail.CustomerIDs, e.CustomerID) {
			detail.CustomerIDs = append(detail.CustomerIDs, e.CustomerID)
		}
	}
	if detail.IsEmpty() {
		return contact.Detail{}, nil
	}

	var customers []customerDTO
	if err := db.Raw(`
		SELECT CustId customerId, CustCompany company, IFNULL(DisplayBranchId, BranchId) branch
		FROM Customer
		WHERE CustId IN ?
		ORDER BY CustId
	`, detail.CustomerIDs).Scan(&customers).Error; err != nil {
		return contact.Detail{}, err
	}
	for _, c := range customers {
		if company := strings.TrimSpace(c.Company); company != "" {
			detail.Companies = append(detail.Companies, contact.Ref{ID: c.CustomerID, Name: company})
		}
		detail.AddBranch(c.Branch)
	}

	var subscriptions []subscriptionDTO
	if err := db.Raw(`
		SELECT
			cs.CustServId subscriptionId,
			IFNULL(s.ServiceType, '') service,
			cs.CustAccName account,
			IFNULL(cs.installation_address, '') address
		FROM CustomerServices cs
		LEFT JOIN Services s ON cs.ServiceId = s.ServiceId
		WHERE cs.CustId IN ? AND cs.CustStatus != 'NA'
		ORDER BY cs.CustServId
	`, detail.CustomerIDs).Scan(&subscriptions).Error; err != nil {
		return contact.Detail{}, err
	}
	for _, s := range subscriptions {
		if address := collapseSpaces(s.Address); address != "" {
			detail.Addresses = append(detail.Addresses, contact.Ref{ID: s.SubscriptionID, Name: address})
		}
		detail.Services = append(detail.Services, contact.Ref{ID: s.SubscriptionID, Name: s.Service})
		detail.Accounts = append(detail.Accounts, contact.Ref{ID: s.SubscriptionID, Name: strings.TrimSpace(s.Account)})
	}

	return detail, nil
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
