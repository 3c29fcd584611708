package ports

import (
	"context"

	"opsworker/internal/core/domain/model/contact"
)

// ContactRepository looks customers up in the billing system.
type ContactRepository interface {
	// FindByPhone returns the customer detail for phone. An unknown phone
	// yields an empty Detail and no error.
	FindByPhone(ctx context.Context, phone string) (contact.Detail, error)
}

// ContactSync pushes customer cards to the support inbox.
type ContactSync interface {
	Sync(ctx context.Context, payload contact.SyncPayload) error
}

// SupportQueue reads the conversations waiting in the support inbox.
type SupportQueue interface {
	FetchWaiting(ctx context.Context) ([]contact.Waiting, error)
}
