package ports

import (
	"context"

	"opsworker/internal/core/domain/model/alert"
)

// AlertSource reads firing alerts from the alert manager.
type AlertSource interface {
	FetchAlerts(ctx context.Context) ([]alert.Alert, error)
}

// SilenceSubmitter creates silences in the alert manager.
type SilenceSubmitter interface {
	// CreateSilence submits s and returns the silence id.
	CreateSilence(ctx context.Context, s alert.Silence) (string, error)
}
