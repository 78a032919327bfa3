package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BarkinBalci/funnel-analytics-service/internal/analytics"
	"github.com/BarkinBalci/funnel-analytics-service/internal/domain"
	"github.com/BarkinBalci/funnel-analytics-service/internal/dto"
)

const testMaxUploadBytes int64 = 1 << 20

// MockAnalyticsService is a mock implementation of service.AnalyticsServicer
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) UploadDataset(filename string, r io.Reader) (int, error) {
	args := m.Called(filename, r)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsService) ResetDataset() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockAnalyticsService) Funnel(req *dto.FilterRequest) (*dto.FunnelResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FunnelResponse), args.Error(1)
}

func (m *MockAnalyticsService) Lift(req *dto.FilterRequest) (*dto.LiftResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LiftResponse), args.Error(1)
}

func (m *MockAnalyticsService) Daily(req *dto.FilterRequest) (*dto.DailyResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DailyResponse), args.Error(1)
}

func (m *MockAnalyticsService) Anomalies(req *dto.AnomalyRequest) (*dto.AnomalyResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnomalyResponse), args.Error(1)
}

func (m *MockAnalyticsService) Dashboard(req *dto.AnomalyRequest) (*dto.DashboardResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardResponse), args.Error(1)
}

func multipartBody(t *testing.T, fieldName, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHandler_HealthCheck(t *testing.T) {
	mockService := new(MockAnalyticsService)
	handler := NewHandler(mockService, testMaxUploadBytes, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}

func TestHandler_GetFunnel_Success(t *testing.T) {
	mockService := new(MockAnalyticsService)
	handler := NewHandler(mockService, testMaxUploadBytes, zap.NewNop())

	expected := &dto.FunnelResponse{
		Counts: map[domain.Step]int{domain.StepImpression: 100, domain.StepClick: 40, domain.StepApply: 10, domain.StepApprove: 4},
		Rates:  map[string]float64{analytics.RateClickOverImpression: 0.4},
	}
	mockService.On("Funnel", &dto.FilterRequest{
		Variant: "test", Channel: "all", Segment: "all",
	}).Return(expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/funnel?variant=test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.FunnelResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 100, response.Counts[domain.StepImpression])
	mockService.AssertExpectations(t)
}

func TestHandler_GetFunnel_InvalidDataset(t *testing.T) {
	mockService := new(MockAnalyticsService)
	handler := NewHandler(mockService, testMaxUploadBytes, zap.NewNop())

	loadErr := &analytics.SchemaError{Missing: []string{"segment"}}
	mockService.On("Funnel", mock.Anything).Return(nil, loadErr)

	req := httptest.NewRequest(http.MethodGet, "/funnel", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "invalid_dataset", response.Error)
	assert.Contains(t, response.Message, "segment")
}

func TestHandler_GetFunnel_StoreFailure(t *testing.T) {
	mockService := new(MockAnalyticsService)
	handler := NewHandler(mockService, testMaxUploadBytes, zap.NewNop())

	mockService.On("Funnel", mock.Anything).Return(nil, errors.New("disk on fire"))

	req := httptest.NewRequest(http.MethodGet, "/funnel", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_GetAnomalies_Defaults(t *testing.T) {
	mockService := new(MockAnalyticsService)
	handler := NewHandler(mockService, testMaxUploadBytes, zap.NewNop())

	mockService.On("Anomalies", &dto.AnomalyRequest{
		FilterRequest: dto.FilterRequest{Variant: "all", Channel: "all", Segment: "all"},
		Metric:        "approve_rate_over_impression",
		Threshold:     3.0,
	}).Return(&dto.AnomalyResponse{
		Metric:    "approve_rate_over_impression",
		Threshold: 3.0,
		Rows:      []analytics.AnomalyRow{},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/anomalies", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_GetDashboard_Success(t *testing.T) {
	mockService := new(MockAnalyticsService)
	handler := NewHandler(mockService, testMaxUploadBytes, zap.NewNop())

	mockService.On("Dashboard", mock.Anything).Return(&dto.DashboardResponse{
		Funnel: dto.FunnelResponse{
			Counts: map[domain.Step]int{domain.StepImpression: 5},
			Rates:  map[string]float64{},
		},
		Lift:      []analytics.LiftRow{},
		Daily:     []analytics.DailySeriesRow{},
		Anomalies: []analytics.AnomalyRow{},
		Facets:    domain.Facets{Variants: []string{"control", "test"}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard?channel=web", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.DashboardResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, []string{"control", "test"}, response.Facets.Variants)
}

func TestHandler_UploadDataset_Success(t *testing.T) {
	mockService := new(MockAnalyticsService)
	handler := NewHandler(mockService, testMaxUploadBytes, zap.NewNop())

	mockService.On("UploadDataset", "events.csv", mock.Anything).Return(42, nil)

	body, contentType := multipartBody(t, "file", "events.csv", "date,user_id,variant,channel,segment,step\n")
	req := httptest.NewRequest(http.MethodPost, "/datasets/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.UploadResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "active", response.Status)
	assert.Equal(t, 42, response.Events)
	mockService.AssertExpectations(t)
}

func TestHandler_UploadDataset_MissingFile(t *testing.T) {
	mockService := new(MockAnalyticsService)
	handler := NewHandler(mockService, testMaxUploadBytes, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/datasets/upload", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "UploadDataset", mock.Anything, mock.Anything)
}

func TestHandler_UploadDataset_RejectsNonCSV(t *testing.T) {
	mockService := new(MockAnalyticsService)
	handler := NewHandler(mockService, testMaxUploadBytes, zap.NewNop())

	body, contentType := multipartBody(t, "file", "events.xlsx", "not a csv")
	req := httptest.NewRequest(http.MethodPost, "/datasets/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "UploadDataset", mock.Anything, mock.Anything)
}

func TestHandler_UploadDataset_InvalidCSV(t *testing.T) {
	mockService := new(MockAnalyticsService)
	handler := NewHandler(mockService, testMaxUploadBytes, zap.NewNop())

	loadErr := &analytics.DateParseError{Value: "junk", Line: 2}
	mockService.On("UploadDataset", "events.csv", mock.Anything).Return(0, loadErr)

	body, contentType := multipartBody(t, "file", "events.csv", "date,user_id,variant,channel,segment,step\njunk,u1,c,web,n,impression\n")
	req := httptest.NewRequest(http.MethodPost, "/datasets/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "invalid_dataset", response.Error)
}

func TestHandler_UseSampleDataset(t *testing.T) {
	mockService := new(MockAnalyticsService)
	handler := NewHandler(mockService, testMaxUploadBytes, zap.NewNop())

	mockService.On("ResetDataset").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/datasets/sample", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.DatasetResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "sample", response.Dataset)
	mockService.AssertExpectations(t)
}
