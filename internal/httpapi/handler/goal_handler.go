package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/dto"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/service"
)

type GoalHandler struct {
	goalService service.GoalService
}

func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// RegisterRoutes registers the reading-goal routes
func (h *GoalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.CreateGoal)
	rg.GET("/:goal_id", h.GetGoal)
	rg.PUT("/:goal_id/progress", h.UpdateProgress)
	rg.POST("/:goal_id/abandon", h.AbandonGoal)
	rg.DELETE("/:goal_id", h.DeleteGoal)
	rg.GET("/user/:user_id", h.GetUserGoals)
	rg.GET("/user/:user_id/stats", h.GetStatistics)
}

func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	goal, err := h.goalService.Create(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "reading goal created", "data": goal})
}

func (h *GoalHandler) GetGoal(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	goal, err := h.goalService.Get(ctx, c.Param("goal_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": goal})
}

func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	var req dto.GoalUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	goal, err := h.goalService.UpdateProgress(ctx, c.Param("goal_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "goal progress updated", "data": goal})
}

func (h *GoalHandler) AbandonGoal(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	goal, err := h.goalService.Abandon(ctx, c.Param("goal_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reading goal abandoned", "data": goal})
}

func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.goalService.Delete(ctx, c.Param("goal_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reading goal deleted"})
}

func (h *GoalHandler) GetUserGoals(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	goals, err := h.goalService.GetAllByUser(ctx, c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": goals})
}

func (h *GoalHandler) GetStatistics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.goalService.Statistics(ctx, c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}
