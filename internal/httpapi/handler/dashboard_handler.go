package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/dto"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.RecordAnalytics)
	rg.GET("/user/:user_id", h.GetOverview)
	rg.GET("/user/:user_id/genres", h.GetGenreHistogram)
	rg.GET("/user/:user_id/heatmap", h.GetWeekdayHeatmap)
	rg.GET("/user/:user_id/time/:period", h.GetReadingTime)
}

func (h *DashboardHandler) RecordAnalytics(c *gin.Context) {
	var req dto.RecordAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	record, err := h.dashboardService.Record(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "analytics recorded", "data": record})
}

func (h *DashboardHandler) GetOverview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	overview, err := h.dashboardService.Overview(ctx, c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": overview})
}

func (h *DashboardHandler) GetGenreHistogram(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	histogram, err := h.dashboardService.GenreHistogram(ctx, c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": histogram})
}

func (h *DashboardHandler) GetWeekdayHeatmap(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	heatmap, err := h.dashboardService.WeekdayHeatmap(ctx, c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": heatmap})
}

func (h *DashboardHandler) GetReadingTime(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	total, err := h.dashboardService.ReadingTimeByPeriod(ctx, c.Param("user_id"), c.Param("period"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"period": c.Param("period"), "reading_time": total}})
}
