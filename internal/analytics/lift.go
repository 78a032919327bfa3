package analytics

import "github.com/BarkinBalci/funnel-analytics-service/internal/domain"

const (
	variantControl = "control"
	variantTest    = "test"
)

// LiftRow compares one conversion rate metric between the control and test
// variants.
type LiftRow struct {
	Metric  string  `json:"metric"`
	Control float64 `json:"control"`
	Test    float64 `json:"test"`
	LiftPct float64 `json:"lift_pct"`
}

// Lift computes the relative lift of the test variant over control for each
// conversion rate metric, in fixed metric order. Rows with variants other
// than control/test are ignored; if none remain the result is empty.
//
// When the control rate is 0.0 the lift is defined as 0.0 regardless of the
// test rate. This saturation is a deliberate contract, not a fallback: a
// zero-baseline comparison has no meaningful relative lift and must not
// surface as +Inf or an error.
func Lift(table domain.EventTable) []LiftRow {
	var sub domain.EventTable
	for _, e := range table {
		if e.Variant == variantControl || e.Variant == variantTest {
			sub = append(sub, e)
		}
	}
	if len(sub) == 0 {
		return []LiftRow{}
	}

	control := Summarize(sub.WhereVariant(variantControl)).Rates
	test := Summarize(sub.WhereVariant(variantTest)).Rates

	rows := make([]LiftRow, 0, len(RateNames))
	for _, metric := range RateNames {
		cv := control[metric]
		tv := test[metric]
		lift := 0.0
		if cv > 0 {
			lift = (tv - cv) / cv
		}
		rows = append(rows, LiftRow{Metric: metric, Control: cv, Test: tv, LiftPct: lift})
	}
	return rows
}
