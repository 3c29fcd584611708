// Package contact builds the customer card pushed to the support inbox when a
// customer writes in from a phone number.
package contact

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// MinPhoneDigits is the shortest phone number that is looked up at all.
const MinPhoneDigits = 10

const (
	defaultTimezone = "Asia/Jakarta"
	// easternBranch customers live one hour ahead.
	easternBranch   = "062"
	easternTimezone = "Asia/Makassar"

	customerLinkPrefix     = "https://isx.nusa.net.id/customer.php?custId="
	customerLinkSuffix     = "&pid=profile&module=customer"
	subscriptionLinkPrefix = "https://isx.nusa.net.id/v2/customer/service/"
	subscriptionLinkSuffix = "/detail"
)

// Ref is an id with a human-readable label.
type Ref struct {
	ID   string
	Name string
}

// Detail is everything the billing store knows about the owner of a phone
// number.
type Detail struct {
	Name        string
	CustomerIDs []string
	Branches    []string
	Companies   []Ref
	Services    []Ref
	Accounts    []Ref
	Addresses   []Ref
}

// IsEmpty reports whether d identifies no customer.
func (d Detail) IsEmpty() bool {
	return d.Name == "" || len(d.CustomerIDs) == 0
}

// AddBranch records branch once.
func (d *Detail) AddBranch(branch string) {
	if branch == "" || slices.Contains(d.Branches, branch) {
		return
	}
	d.Branches = append(d.Branches, branch)
}

// SyncPayload is the body accepted by the contact sync endpoint.
type SyncPayload struct {
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
	Timezone    string `json:"timezone"`
	BranchCode  string `json:"branch_code"`
	Attributes  string `json:"attributes"`
}

type attributes struct {
	IDs       string `json:"ids"`
	Companies string `json:"companies"`
	Services  string `json:"services,omitempty"`
	Accounts  string `json:"accounts,omitempty"`
	Addresses string `json:"addresses,omitempty"`
}

// Format renders d as a SyncPayload for phone. Attributes are a JSON object
// of markdown links into the billing UI.
func Format(phone string, d Detail) (SyncPayload, error) {
	payload := SyncPayload{
		PhoneNumber: phone,
		Name:        d.Name,
		Timezone:    defaultTimezone,
		BranchCode:  strings.Join(d.Branches, ", "),
	}
	if slices.Contains(d.Branches, easternBranch) {
		payload.Timezone = easternTimezone
	}

	ids := make([]Ref, 0, len(d.CustomerIDs))
	for _, id := range d.CustomerIDs {
		ids = append(ids, Ref{ID: id, Name: id})
	}

	attrs := attributes{
		IDs:       joinLinks(ids, customerLinkPrefix, customerLinkSuffix),
		Companies: joinLinks(d.Companies, customerLinkPrefix, customerLinkSuffix),
		Services:  joinLinks(d.Services, subscriptionLinkPrefix, subscriptionLinkSuffix),
		Accounts:  joinLinks(d.Accounts, subscriptionLinkPrefix, subscriptionLinkSuffix),
		Addresses: joinLinks(d.Addresses, subscriptionLinkPrefix, subscriptionLinkSuffix),
	}
	raw, err := json.Marshal(attrs)
	if err != nil {
		return SyncPayload{}, fmt.Errorf("encode contact attributes: %w", err)
	}
	payload.Attributes = string(raw)

	return payload, nil
}

func joinLinks(refs []Ref, prefix, suffix string) string {
	links := make([]string, 0, len(refs))
	for _, r := range refs {
		links = append(links, fmt.Sprintf("[%s](%s%s%s)", r.Name, prefix, r.ID, suffix))
	}
	return strings.Join(links, ", ")
}
