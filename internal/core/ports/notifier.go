package ports

import "context"

// Notifier delivers a text message to a phone-like address.
type Notifier interface {
	Send(ctx context.Context, to, msg string) error
}
