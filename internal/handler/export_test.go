package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/BarkinBalci/funnel-analytics-service/internal/analytics"
	"github.com/BarkinBalci/funnel-analytics-service/internal/domain"
	"github.com/BarkinBalci/funnel-analytics-service/internal/dto"
)

func TestHandler_ExportFunnelCSV(t *testing.T) {
	mockService := new(MockAnalyticsService)
	handler := NewHandler(mockService, testMaxUploadBytes, zap.NewNop())

	mockService.On("Funnel", &dto.FilterRequest{
		Variant: "all", Channel: "all", Segment: "all",
	}).Return(&dto.FunnelResponse{
		Counts: map[domain.Step]int{
			domain.StepImpression: 100,
			domain.StepClick:      40,
			domain.StepApply:      10,
			domain.StepApprove:    4,
		},
		Rates: map[string]float64{},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/export/funnel.csv", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "funnel_summary.csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Equal(t, "step,users", lines[0])
	assert.Equal(t, "impression,100", lines[1])
	assert.Equal(t, "approve,4", lines[4])
}

func TestHandler_ExportLiftCSV(t *testing.T) {
	mockService := new(MockAnalyticsService)
	handler := NewHandler(mockService, testMaxUploadBytes, zap.NewNop())

	mockService.On("Lift", &dto.FilterRequest{
		Variant: "all", Channel: "all", Segment: "all",
	}).Return(&dto.LiftResponse{
		Rows: []analytics.LiftRow{
			{Metric: analytics.RateClickOverImpression, Control: 0.25, Test: 0.5, LiftPct: 1},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/export/lift.csv", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "lift_summary.csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Equal(t, "metric,control,test,lift_pct", lines[0])
	assert.Equal(t, "click_over_impression,0.25,0.5,1", lines[1])
}
