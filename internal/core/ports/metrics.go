package ports

import "context"

// GaugeSample is one labelled value of a gauge family. LabelValues follow
// the family's LabelNames.
type GaugeSample struct {
	LabelValues []string
	Value       float64
}

// GaugeFamily is a gauge metric with all of its samples.
type GaugeFamily struct {
	Name       string
	Help       string
	LabelNames []string
	Samples    []GaugeSample
}

// MetricFileWriter publishes metrics for a node exporter text-file collector.
type MetricFileWriter interface {
	// WriteGauges replaces the file at path with family. Readers never see
	// a partially written file.
	WriteGauges(ctx context.Context, path string, family GaugeFamily) error
}
