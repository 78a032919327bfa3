package analytics

import "github.com/BarkinBalci/funnel-analytics-service/internal/domain"

// Rate metric names, in display order. The same order is used by the lift
// table and the CSV exports.
const (
	RateClickOverImpression   = "click_over_impression"
	RateApplyOverClick        = "apply_over_click"
	RateApproveOverApply      = "approve_over_apply"
	RateApproveOverImpression = "approve_over_impression"
)

// RateNames lists the four conversion rate metrics in fixed order.
var RateNames = []string{
	RateClickOverImpression,
	RateApplyOverClick,
	RateApproveOverApply,
	RateApproveOverImpression,
}

// FunnelSummary holds distinct-user counts per funnel step and the derived
// conversion rates.
type FunnelSummary struct {
	Counts map[domain.Step]int `json:"counts"`
	Rates  map[string]float64  `json:"rates"`
}

// safeRate divides n by d, saturating to 0.0 on a zero denominator so
// downstream consumers never see NaN or Inf.
func safeRate(n, d int) float64 {
	if d <= 0 {
		return 0.0
	}
	return float64(n) / float64(d)
}

// Summarize counts distinct users per funnel step and derives the four
// conversion rates. A user appearing multiple times at the same step counts
// once. The input table is not modified.
func Summarize(table domain.EventTable) *FunnelSummary {
	users := make(map[domain.Step]map[string]struct{}, len(domain.Steps))
	for _, step := range domain.Steps {
		users[step] = make(map[string]struct{})
	}
	for _, e := range table {
		users[e.Step][e.UserID] = struct{}{}
	}

	counts := make(map[domain.Step]int, len(domain.Steps))
	for _, step := range domain.Steps {
		counts[step] = len(users[step])
	}

	rates := map[string]float64{
		RateClickOverImpression:   safeRate(counts[domain.StepClick], counts[domain.StepImpression]),
		RateApplyOverClick:        safeRate(counts[domain.StepApply], counts[domain.StepClick]),
		RateApproveOverApply:      safeRate(counts[domain.StepApprove], counts[domain.StepApply]),
		RateApproveOverImpression: safeRate(counts[domain.StepApprove], counts[domain.StepImpression]),
	}

	return &FunnelSummary{Counts: counts, Rates: rates}
}
