package domain

// Step is a stage of the conversion funnel.
type Step string

const (
	StepImpression Step = "impression"
	StepClick      Step = "click"
	StepApply      Step = "apply"
	StepApprove    Step = "approve"
)

// Steps lists the recognized funnel steps in funnel order.
var Steps = []Step{StepImpression, StepClick, StepApply, StepApprove}

// IsValidStep reports whether s is one of the recognized funnel steps.
func IsValidStep(s string) bool {
	switch Step(s) {
	case StepImpression, StepClick, StepApply, StepApprove:
		return true
	}
	return false
}

// Event represents a single normalized funnel event. Date is always in
// YYYY-MM-DD form and all other string fields are lowercased and trimmed.
type Event struct {
	Date    string `json:"date"`
	UserID  string `json:"user_id"`
	Variant string `json:"variant"`
	Channel string `json:"channel"`
	Segment string `json:"segment"`
	Step    Step   `json:"step"`
}

// EventTable is an ordered, read-only collection of normalized events.
// Downstream computations never mutate it; filtering returns a new table.
type EventTable []Event

// Filter selects a subset of an event table. Empty (or "all") facet values
// match everything; date bounds compare the canonical YYYY-MM-DD strings,
// so lexicographic order is chronological order.
type Filter struct {
	Variant   string
	Channel   string
	Segment   string
	StartDate string
	EndDate   string
}

func facetMatch(selected, value string) bool {
	return selected == "" || selected == "all" || selected == value
}

// Apply returns the rows of t matching f. The receiver is not modified.
func (t EventTable) Apply(f Filter) EventTable {
	out := make(EventTable, 0, len(t))
	for _, e := range t {
		if !facetMatch(f.Variant, e.Variant) {
			continue
		}
		if !facetMatch(f.Channel, e.Channel) {
			continue
		}
		if !facetMatch(f.Segment, e.Segment) {
			continue
		}
		if f.StartDate != "" && e.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && e.Date > f.EndDate {
			continue
		}
		out = append(out, e)
	}
	return out
}

// WhereVariant returns the rows of t with the given variant.
func (t EventTable) WhereVariant(variant string) EventTable {
	return t.Apply(Filter{Variant: variant})
}
