package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"opsworker/internal/core/domain/services"
	"opsworker/internal/core/ports"
	"opsworker/internal/pkg/clock"
)

// gamasStartLayout renders the group start in the configured location.
const gamasStartLayout = "2006-01-02 15:04"

// GamasMetricsConfig locates and names the mass-incident metric.
type GamasMetricsConfig struct {
	MetricName string
	FilePath   string
	Location   *time.Location
}

// GenerateGamasMetricsCommandHandler groups firing alerts into mass
// incidents and writes one gauge per group above the threshold:
//
//	<name>{link="...",region="...",start="YYYY-MM-DD HH:MM"} <hosts>
type GenerateGamasMetricsCommandHandler struct {
	alerts  ports.AlertSource
	grouper services.IncidentGrouper
	writer  ports.MetricFileWriter
	clock   clock.Clock
	config  GamasMetricsConfig
	logger  *slog.Logger
}

func NewGenerateGamasMetricsCommandHandler(
	alerts ports.AlertSource,
	grouper services.IncidentGrouper,
	writer ports.MetricFileWriter,
	clk clock.Clock,
	config GamasMetricsConfig,
	logger *slog.Logger,
) GenerateGamasMetricsCommandHandler {
	if config.Location == nil {
		config.Location = time.Local
	}
	return GenerateGamasMetricsCommandHandler{
		alerts:  alerts,
		grouper: grouper,
		writer:  writer,
		clock:   clk,
		config:  config,
		logger:  logger.With("component", "gamas-metrics"),
	}
}

func (h GenerateGamasMetricsCommandHandler) Handle(ctx context.Context, cmd GenerateGamasMetricsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	alerts, err := h.alerts.FetchAlerts(ctx)
	if err != nil {
		return fmt.Errorf("fetch alerts: %w", err)
	}

	groups := h.grouper.MassIncidents(alerts, h.clock.Now())

	family := ports.GaugeFamily{
		Name:       h.config.MetricName,
		Help:       "Hosts affected by a mass incident on one link.",
		LabelNames: []string{"region", "link", "start"},
	}
	for _, g := range groups {
		family.Samples = append(family.Samples, ports.GaugeSample{
			LabelValues: []string{g.Region, g.Link, g.StartsAtMin.In(h.config.Location).Format(gamasStartLayout)},
			Value:       float64(g.Count()),
		})
	}

	if err := h.writer.WriteGauges(ctx, h.config.FilePath, family); err != nil {
		return fmt.Errorf("write %s: %w", h.config.FilePath, err)
	}

	h.logger.Info("gamas metrics written",
		"alerts", len(alerts),
		"incidents", len(groups),
		"path", h.config.FilePath,
	)
	return nil
}
