package domain

import "sort"

// Facets holds the distinct filterable values present in an event table,
// each sorted ascending.
type Facets struct {
	Variants []string `json:"variants"`
	Channels []string `json:"channels"`
	Segments []string `json:"segments"`
}

func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// FacetValues collects the distinct variant, channel, and segment values of t.
func (t EventTable) FacetValues() Facets {
	variants := make([]string, 0, len(t))
	channels := make([]string, 0, len(t))
	segments := make([]string, 0, len(t))
	for _, e := range t {
		variants = append(variants, e.Variant)
		channels = append(channels, e.Channel)
		segments = append(segments, e.Segment)
	}
	return Facets{
		Variants: distinct(variants),
		Channels: distinct(channels),
		Segments: distinct(segments),
	}
}
