// Package network models the monitoring graphs linked to customer
// subscriptions in the billing system.
package network

// GraphID identifies a monitoring graph.
type GraphID int64

// Subscriber is a customer subscription.
type Subscriber struct {
	CSID    string
	Account string
}

// SubscriberGraph links a subscription to one of its graphs. A subscription
// may have several graphs and a graph may be shared.
type SubscriberGraph struct {
	Subscriber Subscriber
	GraphID    GraphID
}

// GraphIDs returns the distinct graph ids of links in first-seen order.
func GraphIDs(links []SubscriberGraph) []GraphID {
	seen := make(map[GraphID]struct{}, len(links))
	var ids []GraphID
	for _, l := range links {
		if _, ok := seen[l.GraphID]; ok {
			continue
		}
		seen[l.GraphID] = struct{}{}
		ids = append(ids, l.GraphID)
	}
	return ids
}

// SubscribersOf returns the distinct subscribers linked to any of graphs,
// ordered by graphs and then by link order. Subscribers are distinct by CSID.
func SubscribersOf(links []SubscriberGraph, graphs []GraphID) []Subscriber {
	byGraph := make(map[GraphID][]Subscriber)
	for _, l := range links {
		byGraph[l.GraphID] = append(byGraph[l.GraphID], l.Subscriber)
	}

	seen := make(map[string]struct{})
	var out []Subscriber
	for _, g := range graphs {
		for _, s := range byGraph[g] {
			if _, ok := seen[s.CSID]; ok {
				continue
			}
			seen[s.CSID] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// Missing returns the ids of linked that are absent from existing, in
// linked order.
func Missing(linked, existing []GraphID) []GraphID {
	present := make(map[GraphID]struct{}, len(existing))
	for _, id := range existing {
		present[id] = struct{}{}
	}
	var out []GraphID
	for _, id := range linked {
		if _, ok := present[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
