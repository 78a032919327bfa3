package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/BarkinBalci/funnel-analytics-service/docs"
	"github.com/BarkinBalci/funnel-analytics-service/internal/analytics"
	"github.com/BarkinBalci/funnel-analytics-service/internal/dto"
	"github.com/BarkinBalci/funnel-analytics-service/internal/service"
)

type Handler struct {
	analyticsService service.AnalyticsServicer
	router           *gin.Engine
	maxUploadBytes   int64
	log              *zap.Logger
}

func NewHandler(analyticsService service.AnalyticsServicer, maxUploadBytes int64, log *zap.Logger) *Handler {
	h := &Handler{
		analyticsService: analyticsService,
		router:           gin.Default(),
		maxUploadBytes:   maxUploadBytes,
		log:              log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/datasets/upload", h.uploadDataset)
	h.router.POST("/datasets/sample", h.useSampleDataset)
	h.router.GET("/dashboard", h.getDashboard)
	h.router.GET("/funnel", h.getFunnel)
	h.router.GET("/lift", h.getLift)
	h.router.GET("/daily", h.getDaily)
	h.router.GET("/anomalies", h.getAnomalies)
	h.router.GET("/export/funnel.csv", h.exportFunnelCSV)
	h.router.GET("/export/lift.csv", h.exportLiftCSV)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// loadError maps a dataset load failure to an HTTP response. Loader errors
// are the caller's fault (400); anything else is ours (500).
func (h *Handler) loadError(c *gin.Context, err error) {
	var schemaErr *analytics.SchemaError
	var dateErr *analytics.DateParseError
	if errors.As(err, &schemaErr) || errors.As(err, &dateErr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_dataset",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	})
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// uploadDataset handles POST /datasets/upload
// @Summary Upload a dataset
// @Description Upload a funnel event CSV and make it the current active dataset
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Event CSV with date, user_id, variant, channel, segment, step columns"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /datasets/upload [post]
func (h *Handler) uploadDataset(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.log.Warn("Missing upload file", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "no file uploaded",
		})
		return
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "only .csv files are supported",
		})
		return
	}

	if fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "file too large",
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.log.Error("Failed to open upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	defer f.Close()

	events, err := h.analyticsService.UploadDataset(fileHeader.Filename, f)
	if err != nil {
		h.log.Warn("Failed to load uploaded dataset",
			zap.Error(err),
			zap.String("filename", fileHeader.Filename))
		h.loadError(c, err)
		return
	}

	h.log.Info("Dataset uploaded",
		zap.String("filename", fileHeader.Filename),
		zap.Int("events", events))

	c.JSON(http.StatusOK, dto.UploadResponse{
		Status: "active",
		Events: events,
	})
}

// useSampleDataset handles POST /datasets/sample
// @Summary Reset to the sample dataset
// @Description Discard the uploaded dataset and serve the bundled sample
// @Tags datasets
// @Produce json
// @Success 200 {object} dto.DatasetResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /datasets/sample [post]
func (h *Handler) useSampleDataset(c *gin.Context) {
	if err := h.analyticsService.ResetDataset(); err != nil {
		h.log.Error("Failed to reset dataset", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.DatasetResponse{Dataset: "sample"})
}

// getDashboard handles GET /dashboard
// @Summary Full dashboard
// @Description Funnel summary, lift table, daily series, anomaly view, and filter facets in one response
// @Tags analytics
// @Produce json
// @Param variant query string false "Variant filter" default(all)
// @Param channel query string false "Channel filter" default(all)
// @Param segment query string false "Segment filter" default(all)
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param metric query string false "Daily metric for anomaly detection" default(approve_rate_over_impression)
// @Param threshold query number false "Anomaly z-score threshold" default(3.0)
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	var req dto.AnomalyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.analyticsService.Dashboard(&req)
	if err != nil {
		h.log.Error("Failed to compute dashboard", zap.Error(err))
		h.loadError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// getFunnel handles GET /funnel
// @Summary Funnel summary
// @Description Distinct users per funnel step and conversion rates for the filtered dataset
// @Tags analytics
// @Produce json
// @Param variant query string false "Variant filter" default(all)
// @Param channel query string false "Channel filter" default(all)
// @Param segment query string false "Segment filter" default(all)
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.FunnelResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /funnel [get]
func (h *Handler) getFunnel(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.analyticsService.Funnel(&req)
	if err != nil {
		h.log.Error("Failed to compute funnel", zap.Error(err))
		h.loadError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// getLift handles GET /lift
// @Summary Lift table
// @Description Control-vs-test relative lift per conversion rate metric
// @Tags analytics
// @Produce json
// @Param channel query string false "Channel filter" default(all)
// @Param segment query string false "Segment filter" default(all)
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.LiftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /lift [get]
func (h *Handler) getLift(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.analyticsService.Lift(&req)
	if err != nil {
		h.log.Error("Failed to compute lift", zap.Error(err))
		h.loadError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// getDaily handles GET /daily
// @Summary Daily series
// @Description Distinct users per funnel step by calendar date with daily approval rate
// @Tags analytics
// @Produce json
// @Param variant query string false "Variant filter" default(all)
// @Param channel query string false "Channel filter" default(all)
// @Param segment query string false "Segment filter" default(all)
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /daily [get]
func (h *Handler) getDaily(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.analyticsService.Daily(&req)
	if err != nil {
		h.log.Error("Failed to compute daily series", zap.Error(err))
		h.loadError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// getAnomalies handles GET /anomalies
// @Summary Anomaly view
// @Description Z-score anomaly flags for one daily metric column, falling back to the recent window when nothing is flagged
// @Tags analytics
// @Produce json
// @Param variant query string false "Variant filter" default(all)
// @Param channel query string false "Channel filter" default(all)
// @Param segment query string false "Segment filter" default(all)
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param metric query string false "Daily metric column" default(approve_rate_over_impression)
// @Param threshold query number false "Z-score threshold" default(3.0)
// @Success 200 {object} dto.AnomalyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /anomalies [get]
func (h *Handler) getAnomalies(c *gin.Context) {
	var req dto.AnomalyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.analyticsService.Anomalies(&req)
	if err != nil {
		h.log.Error("Failed to detect anomalies", zap.Error(err))
		h.loadError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
