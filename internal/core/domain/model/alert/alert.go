package alert

import "time"

// Well-known label names.
const (
	LabelHost   = "host"
	LabelLink   = "link"
	LabelRegion = "region"
)

// Alert is one firing alert as reported by the alert manager.
type Alert struct {
	StartsAt time.Time
	Labels   map[string]string
}

func (a Alert) Host() string   { return a.Labels[LabelHost] }
func (a Alert) Link() string   { return a.Labels[LabelLink] }
func (a Alert) Region() string { return a.Labels[LabelRegion] }
