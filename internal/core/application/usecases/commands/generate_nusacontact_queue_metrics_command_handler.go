package commands

import (
	"context"
	"fmt"
	"log/slog"

	"opsworker/internal/core/domain/model/contact"
	"opsworker/internal/core/ports"
)

// NusacontactQueueMetricsConfig locates and names the inbox queue metric.
type NusacontactQueueMetricsConfig struct {
	MetricName string
	FilePath   string
}

// GenerateNusacontactQueueMetricsCommandHandler writes how many
// conversations wait for each support team:
//
//	<name>{tag="helpdesk"} 3
type GenerateNusacontactQueueMetricsCommandHandler struct {
	queue  ports.SupportQueue
	writer ports.MetricFileWriter
	config NusacontactQueueMetricsConfig
	logger *slog.Logger
}

func NewGenerateNusacontactQueueMetricsCommandHandler(
	queue ports.SupportQueue,
	writer ports.MetricFileWriter,
	config NusacontactQueueMetricsConfig,
	logger *slog.Logger,
) GenerateNusacontactQueueMetricsCommandHandler {
	return GenerateNusacontactQueueMetricsCommandHandler{
		queue:  queue,
		writer: writer,
		config: config,
		logger: logger.With("component", "nusacontact-queue-metrics"),
	}
}

func (h GenerateNusacontactQueueMetricsCommandHandler) Handle(ctx context.Context, cmd GenerateNusacontactQueueMetricsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	waiting, err := h.queue.FetchWaiting(ctx)
	if err != nil {
		return fmt.Errorf("fetch inbox queue: %w", err)
	}

	family := ports.GaugeFamily{
		Name:       h.config.MetricName,
		Help:       "Conversations waiting for an agent, per team tag.",
		LabelNames: []string{"tag"},
	}
	for _, c := range contact.CountEnqueued(waiting, contact.QueueTags) {
		family.Samples = append(family.Samples, ports.GaugeSample{
			LabelValues: []string{c.Tag},
			Value:       float64(c.Count),
		})
	}

	if err := h.writer.WriteGauges(ctx, h.config.FilePath, family); err != nil {
		return fmt.Errorf("write %s: %w", h.config.FilePath, err)
	}

	h.logger.Info("nusacontact queue metrics written",
		"waiting", len(waiting),
		"tags", len(family.Samples),
		"path", h.config.FilePath,
	)
	return nil
}
