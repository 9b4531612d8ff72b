package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellspring/internal/repository"
)

type AnalyticsHandler interface {
	GetGlobalStats(c *gin.Context)
}

type analyticsHandler struct {
	repo   repository.StatsRepository
	logger *zap.Logger
}

func NewAnalyticsHandler(repo repository.StatsRepository, logger *zap.Logger) AnalyticsHandler {
	return &analyticsHandler{repo: repo, logger: logger}
}

// GetGlobalStats handles GET /api/analytics/global (public).
func (h *analyticsHandler) GetGlobalStats(c *gin.Context) {
	stats, err := h.repo.GetGlobalStats()
	if err != nil {
		h.logger.Error("Failed to fetch global stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
