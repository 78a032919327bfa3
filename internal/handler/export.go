package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BarkinBalci/funnel-analytics-service/internal/domain"
	"github.com/BarkinBalci/funnel-analytics-service/internal/dto"
)

func writeCSVAttachment(c *gin.Context, filename string, records [][]string) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	for _, record := range records {
		if err := cw.Write(record); err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "internal_error",
				Message: err.Error(),
			})
			return
		}
	}
	cw.Flush()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// exportFunnelCSV handles GET /export/funnel.csv
// @Summary Export funnel summary as CSV
// @Description Download the per-step distinct user counts for the filtered dataset
// @Tags export
// @Produce text/csv
// @Param variant query string false "Variant filter" default(all)
// @Param channel query string false "Channel filter" default(all)
// @Param segment query string false "Segment filter" default(all)
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /export/funnel.csv [get]
func (h *Handler) exportFunnelCSV(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	funnel, err := h.analyticsService.Funnel(&req)
	if err != nil {
		h.log.Error("Failed to export funnel", zap.Error(err))
		h.loadError(c, err)
		return
	}

	records := [][]string{{"step", "users"}}
	for _, step := range domain.Steps {
		records = append(records, []string{string(step), strconv.Itoa(funnel.Counts[step])})
	}

	writeCSVAttachment(c, "funnel_summary.csv", records)
}

// exportLiftCSV handles GET /export/lift.csv
// @Summary Export lift table as CSV
// @Description Download the control-vs-test lift table for the filtered dataset
// @Tags export
// @Produce text/csv
// @Param channel query string false "Channel filter" default(all)
// @Param segment query string false "Segment filter" default(all)
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /export/lift.csv [get]
func (h *Handler) exportLiftCSV(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	lift, err := h.analyticsService.Lift(&req)
	if err != nil {
		h.log.Error("Failed to export lift", zap.Error(err))
		h.loadError(c, err)
		return
	}

	records := [][]string{{"metric", "control", "test", "lift_pct"}}
	for _, row := range lift.Rows {
		records = append(records, []string{
			row.Metric,
			strconv.FormatFloat(row.Control, 'f', -1, 64),
			strconv.FormatFloat(row.Test, 'f', -1, 64),
			strconv.FormatFloat(row.LiftPct, 'f', -1, 64),
		})
	}

	writeCSVAttachment(c, "lift_summary.csv", records)
}
