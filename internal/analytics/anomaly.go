package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultZThreshold is the z-score magnitude at which a day is flagged.
const DefaultZThreshold = 3.0

// anomalyFallbackWindow is how many trailing rows of the z-score table are
// returned when no day crosses the threshold, so the anomaly view always
// shows recent context instead of an empty result.
const anomalyFallbackWindow = 14

// AnomalyRow is the z-score of one day's metric value, flagged "ANOMALY"
// when the score magnitude crosses the detection threshold.
type AnomalyRow struct {
	Date   string  `json:"date"`
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Z      float64 `json:"z"`
	Flag   string  `json:"flag"`
}

// metricValue extracts the named metric column from a daily series row.
func metricValue(row DailySeriesRow, metric string) (float64, bool) {
	switch metric {
	case "impressions":
		return float64(row.Impressions), true
	case "clicks":
		return float64(row.Clicks), true
	case "applies":
		return float64(row.Applies), true
	case "approves":
		return float64(row.Approves), true
	case "approve_rate_over_impression":
		return row.ApproveRateOverImpression, true
	}
	return 0, false
}

// DetectAnomalies z-scores the chosen metric column of a daily series
// against the population mean and population (N-divisor) standard deviation,
// flagging days where |z| >= threshold. A constant series has every z
// defined as 0 and flags nothing.
//
// If no day is flagged, the trailing 14 rows of the full z-score table are
// returned instead of an empty result. An empty series or an unknown metric
// yields an empty sequence.
func DetectAnomalies(series []DailySeriesRow, metric string, threshold float64) []AnomalyRow {
	if len(series) == 0 {
		return []AnomalyRow{}
	}
	if _, ok := metricValue(series[0], metric); !ok {
		return []AnomalyRow{}
	}

	values := make([]float64, len(series))
	for i, row := range series {
		values[i], _ = metricValue(row, metric)
	}

	mu := stat.Mean(values, nil)
	sigma := stat.PopStdDev(values, nil)

	rows := make([]AnomalyRow, len(series))
	var flagged []AnomalyRow
	for i, row := range series {
		z := 0.0
		if sigma > 0 {
			z = (values[i] - mu) / sigma
		}
		out := AnomalyRow{Date: row.Date, Metric: metric, Value: values[i], Z: z}
		if math.Abs(z) >= threshold {
			out.Flag = "ANOMALY"
			flagged = append(flagged, out)
		}
		rows[i] = out
	}

	if len(flagged) > 0 {
		return flagged
	}
	if len(rows) > anomalyFallbackWindow {
		rows = rows[len(rows)-anomalyFallbackWindow:]
	}
	return rows
}
