package dto

// FilterRequest carries the dataset filters shared by every read endpoint.
// Facet values default to "all"; date bounds are inclusive YYYY-MM-DD strings.
type FilterRequest struct {
	Variant   string `form:"variant,default=all" example:"control"`
	Channel   string `form:"channel,default=all" example:"paid_social"`
	Segment   string `form:"segment,default=all" example:"new_user"`
	StartDate string `form:"start_date" example:"2025-06-01"`
	EndDate   string `form:"end_date" example:"2025-06-30"`
}

// AnomalyRequest selects the daily metric column to z-score and the flag
// threshold, on top of the shared dataset filters.
type AnomalyRequest struct {
	FilterRequest
	Metric    string  `form:"metric,default=approve_rate_over_impression" example:"approve_rate_over_impression"`
	Threshold float64 `form:"threshold,default=3.0" example:"3.0"`
}
