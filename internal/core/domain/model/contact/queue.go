package contact

import "strings"

// QueueTags are the inbox teams whose waiting queues are exported.
var QueueTags = []string{"helpdesk", "billing", "nusaid"}

const enqueuedType = "enqueued"

// Waiting is one sample of the inbox waiting-time metric.
type Waiting struct {
	Type string
	Tags string
}

// Enqueued reports whether the conversation still waits for an agent.
func (w Waiting) Enqueued() bool {
	return w.Type == enqueuedType
}

// TagCount is the number of enqueued conversations carrying one tag.
type TagCount struct {
	Tag   string
	Count int
}

// CountEnqueued counts enqueued conversations per tag, in the order of tags.
// A conversation whose tags label mentions several tags counts once for
// each. Tags nobody is waiting on are left out.
func CountEnqueued(waiting []Waiting, tags []string) []TagCount {
	counts := make([]TagCount, 0, len(tags))
	for _, tag := range tags {
		n := 0
		for _, w := range waiting {
			if w.Enqueued() && strings.Contains(w.Tags, tag) {
				n++
			}
		}
		if n > 0 {
			counts = append(counts, TagCount{Tag: tag, Count: n})
		}
	}
	return counts
}
