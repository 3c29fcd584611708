// Package textfile writes gauges in the Prometheus text format for the node
// exporter text-file collector.
package textfile

import (
	"bytes"
	"context"
	"fmt"

	"opsworker/internal/core/ports"

	"github.com/natefinch/atomic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

var _ ports.MetricFileWriter = Writer{}

// Writer renders each family through a private registry and replaces the
// target file atomically.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() Writer {
	return Writer{}
}

// WriteGauges replaces the file at path with family.
func (Writer) WriteGauges(ctx context.Context, path string, family ports.GaugeFamily) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	help := family.Help
	if help == "" {
		help = family.Name
	}
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: family.Name, Help: help}, family.LabelNames)

	registry := prometheus.NewRegistry()
	if err := registry.Register(gauge); err != nil {
		return fmt.Errorf("register %s: %w", family.Name, err)
	}
	for _, s := range family.Samples {
		g, err := gauge.GetMetricWithLabelValues(s.LabelValues...)
		if err != nil {
			return fmt.Errorf("sample of %s: %w", family.Name, err)
		}
		g.Set(s.Value)
	}

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather %s: %w", family.Name, err)
	}

	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return fmt.Errorf("encode %s: %w", family.Name, err)
		}
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
