package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/repository"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/service"
)

// respondError maps service error families onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrGoalTerminal),
		errors.Is(err, service.ErrEmailInUse),
		errors.Is(err, repository.ErrStaleRecord):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
