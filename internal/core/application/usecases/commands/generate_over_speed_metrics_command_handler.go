package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"opsworker/internal/core/domain/model/network"
	"opsworker/internal/core/ports"
	"opsworker/internal/pkg/clock"
)

// OverSpeedMetricsConfig locates and names the over-speed metric.
type OverSpeedMetricsConfig struct {
	MetricName string
	FilePath   string
	// Threshold is the traffic value above which a blocked subscriber
	// counts as over speed.
	Threshold uint64
	// Window is how far back traffic history is inspected.
	Window time.Duration
}

// GenerateOverSpeedMetricsCommandHandler writes one gauge per blocked
// subscriber whose graphs exceeded the threshold within the window:
//
//	<name>{acc="...",csid="..."} 1
type GenerateOverSpeedMetricsCommandHandler struct {
	links   ports.GraphLinkRepository
	monitor ports.GraphMonitor
	writer  ports.MetricFileWriter
	clock   clock.Clock
	config  OverSpeedMetricsConfig
	logger  *slog.Logger
}

func NewGenerateOverSpeedMetricsCommandHandler(
	links ports.GraphLinkRepository,
	monitor ports.GraphMonitor,
	writer ports.MetricFileWriter,
	clk clock.Clock,
	config OverSpeedMetricsConfig,
	logger *slog.Logger,
) GenerateOverSpeedMetricsCommandHandler {
	return GenerateOverSpeedMetricsCommandHandler{
		links:   links,
		monitor: monitor,
		writer:  writer,
		clock:   clk,
		config:  config,
		logger:  logger.With("component", "over-speed-metrics"),
	}
}

func (h GenerateOverSpeedMetricsCommandHandler) Handle(ctx context.Context, cmd GenerateOverSpeedMetricsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	links, err := h.links.ListBlockedSubscriberGraphs(ctx)
	if err != nil {
		return fmt.Errorf("list blocked subscriber graphs: %w", err)
	}

	var overSpeed []network.GraphID
	if ids := network.GraphIDs(links); len(ids) > 0 {
		since := h.clock.Now().Add(-h.config.Window)
		if overSpeed, err = h.monitor.OverSpeedGraphs(ctx, ids, h.config.Threshold, since); err != nil {
			return fmt.Errorf("find over speed graphs: %w", err)
		}
	}

	family := ports.GaugeFamily{
		Name:       h.config.MetricName,
		Help:       "Blocked subscribers with traffic above the speed threshold.",
		LabelNames: []string{"csid", "acc"},
	}
	for _, s := range network.SubscribersOf(links, overSpeed) {
		family.Samples = append(family.Samples, ports.GaugeSample{
			LabelValues: []string{s.CSID, s.Account},
			Value:       1,
		})
	}

	if err := h.writer.WriteGauges(ctx, h.config.FilePath, family); err != nil {
		return fmt.Errorf("write %s: %w", h.config.FilePath, err)
	}

	h.logger.Info("over speed metrics written", "subscribers", len(family.Samples), "path", h.config.FilePath)
	return nil
}
