package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"supportpulse-be/internal/repository"
	"supportpulse-be/internal/services"
	"supportpulse-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	store     repository.ReportStore
	query     *services.QueryService
	reports   *services.ReportService
	scheduler *services.Scheduler
}

func NewReportHandler(store repository.ReportStore, query *services.QueryService, reports *services.ReportService, scheduler *services.Scheduler) *ReportHandler {
	return &ReportHandler{
		store:     store,
		query:     query,
		reports:   reports,
		scheduler: scheduler,
	}
}

// List godoc
// @Summary List daily reports
// @Description Returns a page of daily reports with pagination metadata and a summary over the whole filtered range
// @Tags reports
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (1-100)" default(10)
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Param sort_order query string false "asc or desc" default(desc)
// @Success 200 {object} models.ReportListResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /reports/list [get]
func (h *ReportHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrTagValidation, "page must be an integer")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrTagValidation, "limit must be an integer")
		return
	}

	resp, err := h.query.List(c.Request.Context(), services.ListParams{
		Page:      page,
		Limit:     limit,
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	})
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			respondError(c, http.StatusBadRequest, ErrTagValidation, vErr.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, ErrTagGeneration, "failed to list reports: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDaily godoc
// @Summary Get one daily report
// @Tags reports
// @Param date path string true "Report date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /reports/daily/{date} [get]
func (h *ReportHandler) GetDaily(c *gin.Context) {
	date, ok := h.pathDate(c)
	if !ok {
		return
	}

	report, err := h.store.Get(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, ErrTagNotFound,
				fmt.Sprintf("No daily report found for %s. Generate it first using /reports/generate/%s", date, date))
			return
		}
		respondError(c, http.StatusInternalServerError, ErrTagGeneration, "failed to read report: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"date":    date,
		"data":    report,
	})
}

// GetAdmin godoc
// @Summary Get the formatted admin text report
// @Tags reports
// @Produce plain
// @Param date path string true "Report date (YYYY-MM-DD)"
// @Success 200 {string} string
// @Failure 404 {object} models.ErrorResponse
// @Router /reports/admin/{date} [get]
func (h *ReportHandler) GetAdmin(c *gin.Context) {
	date, ok := h.pathDate(c)
	if !ok {
		return
	}

	report, err := h.store.Get(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, ErrTagNotFound,
				fmt.Sprintf("No daily report found for %s. Generate it first using /reports/generate/%s", date, date))
			return
		}
		respondError(c, http.StatusInternalServerError, ErrTagGeneration, "failed to read report: "+err.Error())
		return
	}

	c.String(http.StatusOK, services.FormatAdminReport(report))
}

// LatestSummary godoc
// @Summary Latest report summary with trends
// @Tags reports
// @Success 200 {object} models.LatestSummaryResponse
// @Router /reports/summary/latest [get]
func (h *ReportHandler) LatestSummary(c *gin.Context) {
	resp, err := h.query.LatestSummary(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, ErrTagGeneration, "failed to build summary: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SchedulerStatus godoc
// @Summary Scheduler introspection
// @Tags scheduler
// @Success 200 {object} map[string]interface{}
// @Router /reports/scheduler/status [get]
func (h *ReportHandler) SchedulerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"scheduler": h.scheduler.Status(),
	})
}

// GenerateNow godoc
// @Summary Generate a report synchronously
// @Description Runs the aggregation pipeline in the request context and returns the stored report
// @Tags reports
// @Param target_date query string false "Date to generate (YYYY-MM-DD), defaults to yesterday IST"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /reports/generate/now [post]
func (h *ReportHandler) GenerateNow(c *gin.Context) {
	date := c.Query("target_date")
	if date == "" {
		date = utils.YesterdayIST(time.Now())
	} else if _, err := utils.ParseDate(date); err != nil {
		respondError(c, http.StatusBadRequest, ErrTagValidation, err.Error())
		return
	}

	report, err := h.reports.Generate(c.Request.Context(), date)
	if err != nil {
		respondError(c, http.StatusInternalServerError, ErrTagGeneration, "report generation failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Daily report generated successfully for %s", date),
		"date":    date,
		"data":    report,
	})
}

// GenerateForDate godoc
// @Summary Generate a report asynchronously for a specific date
// @Tags reports
// @Param date path string true "Date to generate (YYYY-MM-DD)"
// @Success 202 {object} models.GenerationAck
// @Failure 400 {object} models.ErrorResponse
// @Router /reports/generate/{date} [post]
func (h *ReportHandler) GenerateForDate(c *gin.Context) {
	date, ok := h.pathDate(c)
	if !ok {
		return
	}

	go h.generateDetached(date)

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"message": fmt.Sprintf("Daily report generation started for %s", date),
		"date":    date,
		"status":  "processing",
	})
}

// Trigger godoc
// @Summary Trigger the scheduled pipeline out-of-band
// @Description Enqueues generation for yesterday (IST) without moving the periodic schedule
// @Tags scheduler
// @Success 202 {object} models.GenerationAck
// @Router /reports/scheduler/trigger [post]
func (h *ReportHandler) Trigger(c *gin.Context) {
	date := h.scheduler.TriggerNow()

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"message": "Scheduled daily report generation started",
		"date":    date,
		"status":  "processing",
	})
}

// generateDetached runs the pipeline outside any request context; errors
// are logged by the report service.
func (h *ReportHandler) generateDetached(date string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	_, _ = h.reports.Generate(ctx, date)
}

func (h *ReportHandler) pathDate(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if _, err := utils.ParseDate(date); err != nil {
		respondError(c, http.StatusBadRequest, ErrTagValidation, err.Error())
		return "", false
	}
	return date, true
}
