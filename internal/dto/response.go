package dto

import (
	"github.com/BarkinBalci/funnel-analytics-service/internal/analytics"
	"github.com/BarkinBalci/funnel-analytics-service/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"missing required columns: segment"`
}

// UploadResponse confirms an uploaded dataset was validated and promoted
type UploadResponse struct {
	Status string `json:"status" example:"active"`
	Events int    `json:"events" example:"1200"`
}

// DatasetResponse reports which dataset is currently active
type DatasetResponse struct {
	Dataset string `json:"dataset" example:"sample"`
}

// FunnelResponse is the funnel summary for the filtered dataset
type FunnelResponse struct {
	Counts map[domain.Step]int `json:"counts"`
	Rates  map[string]float64  `json:"rates"`
}

// LiftResponse is the control-vs-test lift table for the filtered dataset
type LiftResponse struct {
	Rows []analytics.LiftRow `json:"rows"`
}

// DailyResponse is the per-day funnel series for the filtered dataset
type DailyResponse struct {
	Rows []analytics.DailySeriesRow `json:"rows"`
}

// AnomalyResponse is the anomaly view for one daily metric column
type AnomalyResponse struct {
	Metric    string                 `json:"metric" example:"approve_rate_over_impression"`
	Threshold float64                `json:"threshold" example:"3.0"`
	Rows      []analytics.AnomalyRow `json:"rows"`
}

// DashboardResponse bundles every analytics view plus the facet values
// available for filtering
type DashboardResponse struct {
	Funnel    FunnelResponse             `json:"funnel"`
	Lift      []analytics.LiftRow        `json:"lift"`
	Daily     []analytics.DailySeriesRow `json:"daily"`
	Anomalies []analytics.AnomalyRow     `json:"anomalies"`
	Facets    domain.Facets              `json:"facets"`
}
