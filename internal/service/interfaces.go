package service

import (
	"io"

	"github.com/BarkinBalci/funnel-analytics-service/internal/dto"
)

// AnalyticsServicer defines the interface for funnel analytics operations
type AnalyticsServicer interface {
	UploadDataset(filename string, r io.Reader) (int, error)
	ResetDataset() error
	Funnel(req *dto.FilterRequest) (*dto.FunnelResponse, error)
	Lift(req *dto.FilterRequest) (*dto.LiftResponse, error)
	Daily(req *dto.FilterRequest) (*dto.DailyResponse, error)
	Anomalies(req *dto.AnomalyRequest) (*dto.AnomalyResponse, error)
	Dashboard(req *dto.AnomalyRequest) (*dto.DashboardResponse, error)
}
