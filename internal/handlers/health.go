package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"supportpulse-be/internal/models"
	"supportpulse-be/internal/repository"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store repository.ReportStore
}

func NewHealthHandler(store repository.ReportStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health godoc
// @Summary Reports system health
// @Description Probes store connectivity and reports counts. Always answers with a body; an unreachable store yields status "unhealthy", not a 500.
// @Tags health
// @Success 200 {object} models.HealthResponse
// @Router /reports/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Health(ctx); err != nil {
		c.JSON(http.StatusOK, models.HealthResponse{
			Success:           false,
			Status:            "unhealthy",
			DatabaseConnected: false,
			Error:             err.Error(),
		})
		return
	}

	resp := models.HealthResponse{
		Success:           true,
		Status:            "healthy",
		DatabaseConnected: true,
	}

	if total, err := h.store.Count(ctx); err == nil {
		resp.TotalReports = total
	}
	latest, err := h.store.Latest(ctx)
	if err == nil {
		resp.LatestReportDate = latest.ReportDate
	} else if !errors.Is(err, repository.ErrNotFound) {
		resp.Success = false
		resp.Status = "unhealthy"
		resp.Error = err.Error()
	}

	c.JSON(http.StatusOK, resp)
}
