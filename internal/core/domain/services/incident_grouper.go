package services

import (
	"slices"
	"time"

	"opsworker/internal/core/domain/model/alert"
	"opsworker/internal/pkg/errs"
)

// IncidentGroup is a cluster of alerts on one (region, link) that started
// close together.
type IncidentGroup struct {
	Region      string
	Link        string
	Hosts       []string
	StartsAtMin time.Time
	StartsAtMax time.Time
}

// Count is the number of distinct hosts in the group.
func (g IncidentGroup) Count() int {
	return len(g.Hosts)
}

// IncidentGrouper clusters alerts into mass-incident (gamas) groups.
//
// Alerts are processed oldest first; alerts older than maxAge are dropped. An
// alert joins the first group with the same region and link whose earliest or
// latest start is within period of the alert's start; otherwise it opens a new
// group. A host is counted once per group.
type IncidentGrouper struct {
	period    time.Duration
	maxAge    time.Duration
	threshold int
}

// NewIncidentGrouper creates an IncidentGrouper. Groups with more than
// threshold hosts are mass incidents.
func NewIncidentGrouper(period, maxAge time.Duration, threshold int) (IncidentGrouper, error) {
	if period <= 0 {
		return IncidentGrouper{}, errs.NewValueIsOutOfRangeError("period", period.String(), "1s", "")
	}
	if maxAge <= 0 {
		return IncidentGrouper{}, errs.NewValueIsOutOfRangeError("maxAge", maxAge.String(), "1s", "")
	}
	if threshold < 0 {
		return IncidentGrouper{}, errs.NewValueIsOutOfRangeError("threshold", threshold, 0, "")
	}
	return IncidentGrouper{period: period, maxAge: maxAge, threshold: threshold}, nil
}

// Group clusters alerts as seen at now. Groups are returned in creation order.
func (g IncidentGrouper) Group(alerts []alert.Alert, now time.Time) []IncidentGroup {
	sorted := slices.Clone(alerts)
	slices.SortStableFunc(sorted, func(a, b alert.Alert) int {
		return a.StartsAt.Compare(b.StartsAt)
	})

	var groups []IncidentGroup
	for _, a := range sorted {
		if !within(a.StartsAt, now, g.maxAge) {
			continue
		}

		idx := slices.IndexFunc(groups, func(grp IncidentGroup) bool {
			return grp.Region == a.Region() && grp.Link == a.Link() &&
				(within(grp.StartsAtMin, a.StartsAt, g.period) || within(grp.StartsAtMax, a.StartsAt, g.period))
		})
		if idx < 0 {
			groups = append(groups, IncidentGroup{
				Region:      a.Region(),
				Link:        a.Link(),
				Hosts:       []string{a.Host()},
				StartsAtMin: a.StartsAt,
				StartsAtMax: a.StartsAt,
			})
			continue
		}

		grp := &groups[idx]
		if slices.Contains(grp.Hosts, a.Host()) {
			continue
		}
		grp.Hosts = append(grp.Hosts, a.Host())
		if a.StartsAt.Before(grp.StartsAtMin) {
			grp.StartsAtMin = a.StartsAt
		}
		if a.StartsAt.After(grp.StartsAtMax) {
			grp.StartsAtMax = a.StartsAt
		}
	}
	return groups
}

// MassIncidents returns the groups with more hosts than the threshold.
func (g IncidentGrouper) MassIncidents(alerts []alert.Alert, now time.Time) []IncidentGroup {
	var out []IncidentGroup
	for _, grp := range g.Group(alerts, now) {
		if grp.Count() > g.threshold {
			out = append(out, grp)
		}
	}
	return out
}

func within(a, b time.Time, tolerance time.Duration) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
