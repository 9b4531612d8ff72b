package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellspring/internal/models"
	"wellspring/internal/repository"
	"wellspring/internal/service"
	"wellspring/internal/wellness"
	"wellspring/internal/ws"
)

type ActivityHandler interface {
	CreateActivity(c *gin.Context)
	GetUserActivities(c *gin.Context)
}

type activityHandler struct {
	repo         repository.ActivityRepository
	calculator   *wellness.RewardCalculator
	karmaService service.KarmaService
	hub          *ws.Hub
	logger       *zap.Logger
}

func NewActivityHandler(
	repo repository.ActivityRepository,
	calculator *wellness.RewardCalculator,
	karmaService service.KarmaService,
	hub *ws.Hub,
	logger *zap.Logger,
) ActivityHandler {
	return &activityHandler{
		repo:         repo,
		calculator:   calculator,
		karmaService: karmaService,
		hub:          hub,
		logger:       logger,
	}
}

type createActivityRequest struct {
	Type      string  `json:"type" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Duration  *int    `json:"duration" binding:"omitempty,min=0"`
	Intensity *string `json:"intensity" binding:"omitempty,oneof=low medium high"`
	Mood      *string `json:"mood"`
	Notes     *string `json:"notes"`
}

// CreateActivity handles POST /api/activities. The karma reward is computed
// from the activity type, duration and intensity, persisted on the row, and
// appended to the user's ledger.
func (h *activityHandler) CreateActivity(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var quality *int
	if req.Intensity != nil {
		q := wellness.IntensityQuality(*req.Intensity)
		quality = &q
	}
	karmaEarned := h.calculator.Calculate(req.Type, req.Duration, quality)

	activity := &models.WellnessActivity{
		UserID:      userID,
		Type:        req.Type,
		Name:        req.Name,
		Duration:    req.Duration,
		Intensity:   req.Intensity,
		Mood:        req.Mood,
		Notes:       req.Notes,
		KarmaEarned: karmaEarned,
	}
	if err := h.repo.CreateActivity(activity); err != nil {
		h.logger.Error("Failed to create activity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}

	if err := h.karmaService.AwardFixed(userID, karmaEarned, activity.Type,
		"Completed wellness activity: "+activity.Name, activity.ID, "activity"); err != nil {
		h.logger.Error("Failed to award activity karma", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record karma"})
		return
	}

	h.hub.Broadcast(ws.Event{
		Type: ws.EventWellnessAchievement,
		Data: gin.H{
			"user_id":      userID,
			"activity":     activity.Name,
			"type":         activity.Type,
			"karma_earned": karmaEarned,
		},
	})

	c.JSON(http.StatusCreated, activity)
}

// GetUserActivities handles GET /api/activities?limit=.
func (h *activityHandler) GetUserActivities(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	activities, err := h.repo.GetUserActivities(userID, limit)
	if err != nil {
		h.logger.Error("Failed to fetch activities", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
		return
	}

	c.JSON(http.StatusOK, activities)
}
