package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellspring/internal/models"
	"wellspring/internal/repository"
	"wellspring/internal/service"
)

type EnvironmentalHandler interface {
	AddImpact(c *gin.Context)
	GetUserImpact(c *gin.Context)
}

type environmentalHandler struct {
	repo         repository.EnvironmentalRepository
	karmaService service.KarmaService
	logger       *zap.Logger
}

func NewEnvironmentalHandler(repo repository.EnvironmentalRepository, karmaService service.KarmaService, logger *zap.Logger) EnvironmentalHandler {
	return &environmentalHandler{repo: repo, karmaService: karmaService, logger: logger}
}

type addImpactRequest struct {
	CarbonOffset *float64 `json:"carbon_offset" binding:"omitempty,min=0"`
	WaterSaved   *float64 `json:"water_saved" binding:"omitempty,min=0"`
	TreesPlanted int      `json:"trees_planted" binding:"omitempty,min=0"`
	ActivityType *string  `json:"activity_type"`
	Description  *string  `json:"description"`
}

// AddImpact handles POST /api/environmental/impact.
func (h *environmentalHandler) AddImpact(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req addImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	impact := &models.EnvironmentalImpact{
		UserID:       userID,
		CarbonOffset: req.CarbonOffset,
		WaterSaved:   req.WaterSaved,
		TreesPlanted: req.TreesPlanted,
		ActivityType: req.ActivityType,
		Description:  req.Description,
	}
	if err := h.repo.AddImpact(impact); err != nil {
		h.logger.Error("Failed to record environmental impact", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record impact"})
		return
	}

	karmaEarned, err := h.karmaService.AwardForActivity(userID, "environmental_action", nil, nil,
		"Recorded environmental impact", impact.ID, "environmental_impact")
	if err != nil {
		h.logger.Error("Failed to award environmental karma", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record karma"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"impact": impact, "karma_earned": karmaEarned})
}

// GetUserImpact handles GET /api/environmental/impact.
func (h *environmentalHandler) GetUserImpact(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	impacts, err := h.repo.GetUserImpact(userID)
	if err != nil {
		h.logger.Error("Failed to fetch environmental impact", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch impact"})
		return
	}

	c.JSON(http.StatusOK, impacts)
}
