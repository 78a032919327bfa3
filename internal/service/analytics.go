package service

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/BarkinBalci/funnel-analytics-service/internal/analytics"
	"github.com/BarkinBalci/funnel-analytics-service/internal/domain"
	"github.com/BarkinBalci/funnel-analytics-service/internal/dto"
	"github.com/BarkinBalci/funnel-analytics-service/internal/store"
)

// AnalyticsService represents the funnel analytics service
type AnalyticsService struct {
	datasets store.DatasetStore
	log      *zap.Logger
}

// NewAnalyticsService creates a new funnel analytics service
func NewAnalyticsService(datasets store.DatasetStore, log *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		datasets: datasets,
		log:      log,
	}
}

func filterFromRequest(req *dto.FilterRequest) domain.Filter {
	return domain.Filter{
		Variant:   req.Variant,
		Channel:   req.Channel,
		Segment:   req.Segment,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
}

// activeFiltered loads the active dataset and applies the request filters.
// Every call reloads from the store; results are always computed fresh.
func (s *AnalyticsService) activeFiltered(req *dto.FilterRequest) (domain.EventTable, error) {
	table, err := s.datasets.Active()
	if err != nil {
		return nil, fmt.Errorf("failed to load active dataset: %w", err)
	}
	return table.Apply(filterFromRequest(req)), nil
}

// UploadDataset validates an uploaded CSV and promotes it to the current
// active dataset. The raw upload is kept on disk either way; an invalid
// upload leaves the previous dataset untouched.
func (s *AnalyticsService) UploadDataset(filename string, r io.Reader) (int, error) {
	path, err := s.datasets.SaveUpload(filename, r)
	if err != nil {
		return 0, fmt.Errorf("failed to save upload: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	table, err := analytics.Load(f)
	if err != nil {
		s.log.Warn("Rejected uploaded dataset",
			zap.String("filename", filename),
			zap.Error(err))
		return 0, err
	}

	if err := s.datasets.Promote(table); err != nil {
		return 0, fmt.Errorf("failed to promote dataset: %w", err)
	}

	s.log.Info("Dataset uploaded",
		zap.String("filename", filename),
		zap.Int("events", len(table)))

	return len(table), nil
}

// ResetDataset switches the active dataset back to the bundled sample.
func (s *AnalyticsService) ResetDataset() error {
	return s.datasets.Reset()
}

// Funnel computes the funnel summary over the filtered active dataset.
func (s *AnalyticsService) Funnel(req *dto.FilterRequest) (*dto.FunnelResponse, error) {
	table, err := s.activeFiltered(req)
	if err != nil {
		return nil, err
	}

	summary := analytics.Summarize(table)
	return &dto.FunnelResponse{Counts: summary.Counts, Rates: summary.Rates}, nil
}

// Lift computes the control-vs-test lift table over the filtered dataset.
func (s *AnalyticsService) Lift(req *dto.FilterRequest) (*dto.LiftResponse, error) {
	table, err := s.activeFiltered(req)
	if err != nil {
		return nil, err
	}

	return &dto.LiftResponse{Rows: analytics.Lift(table)}, nil
}

// Daily computes the per-day funnel series over the filtered dataset.
func (s *AnalyticsService) Daily(req *dto.FilterRequest) (*dto.DailyResponse, error) {
	table, err := s.activeFiltered(req)
	if err != nil {
		return nil, err
	}

	return &dto.DailyResponse{Rows: analytics.DailySeries(table)}, nil
}

// Anomalies z-scores one daily metric column over the filtered dataset.
func (s *AnalyticsService) Anomalies(req *dto.AnomalyRequest) (*dto.AnomalyResponse, error) {
	table, err := s.activeFiltered(&req.FilterRequest)
	if err != nil {
		return nil, err
	}

	series := analytics.DailySeries(table)
	rows := analytics.DetectAnomalies(series, req.Metric, req.Threshold)

	return &dto.AnomalyResponse{
		Metric:    req.Metric,
		Threshold: req.Threshold,
		Rows:      rows,
	}, nil
}

// Dashboard bundles the funnel, lift, daily, and anomaly views computed over
// the filtered dataset, plus the facet values of the unfiltered dataset for
// the filter controls.
func (s *AnalyticsService) Dashboard(req *dto.AnomalyRequest) (*dto.DashboardResponse, error) {
	table, err := s.datasets.Active()
	if err != nil {
		return nil, fmt.Errorf("failed to load active dataset: %w", err)
	}

	filtered := table.Apply(filterFromRequest(&req.FilterRequest))

	summary := analytics.Summarize(filtered)
	daily := analytics.DailySeries(filtered)

	s.log.Info("Dashboard computed",
		zap.Int("events", len(filtered)),
		zap.Int("days", len(daily)),
		zap.String("metric", req.Metric))

	return &dto.DashboardResponse{
		Funnel:    dto.FunnelResponse{Counts: summary.Counts, Rates: summary.Rates},
		Lift:      analytics.Lift(filtered),
		Daily:     daily,
		Anomalies: analytics.DetectAnomalies(daily, req.Metric, req.Threshold),
		Facets:    table.FacetValues(),
	}, nil
}
