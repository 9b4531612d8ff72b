package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellspring/internal/service"
)

type KarmaHandler interface {
	GetHistory(c *gin.Context)
}

type karmaHandler struct {
	service service.KarmaService
	logger  *zap.Logger
}

func NewKarmaHandler(service service.KarmaService, logger *zap.Logger) KarmaHandler {
	return &karmaHandler{service: service, logger: logger}
}

// GetHistory handles GET /api/karma/history.
func (h *karmaHandler) GetHistory(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	history, err := h.service.History(userID)
	if err != nil {
		h.logger.Error("Failed to fetch karma history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch karma history"})
		return
	}

	c.JSON(http.StatusOK, history)
}
