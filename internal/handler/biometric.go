package handler

import (
	"database/sql"
	"errors"
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

type BiometricHandler interface {
	CreateBiometric(c *gin.Context)
	GetLatest(c *gin.Context)
	GetHistory(c *gin.Context)
}

type biometricHandler struct {
	repo         repository.BiometricRepository
	analyzer     *wellness.Analyzer
	karmaService service.KarmaService
	hub          *ws.Hub
	logger       *zap.Logger
}

func NewBiometricHandler(repo repository.BiometricRepository, analyzer *wellness.Analyzer, karmaService service.KarmaService, hub *ws.Hub, logger *zap.Logger) BiometricHandler {
	return &biometricHandler{
		repo:         repo,
		analyzer:     analyzer,
		karmaService: karmaService,
		hub:          hub,
		logger:       logger,
	}
}

type CreateBiometricRequest struct {
	HeartRate          *int     `json:"heart_rate" binding:"omitempty,min=0"`
	SleepHours         *float64 `json:"sleep_hours" binding:"omitempty,min=0"`
	SleepQuality       *int     `json:"sleep_quality" binding:"omitempty,min=0,max=100"`
	StressLevel        *int     `json:"stress_level" binding:"omitempty,min=0,max=100"`
	Steps              *int     `json:"steps" binding:"omitempty,min=0"`
	MindfulnessMinutes *int     `json:"mindfulness_minutes" binding:"omitempty,min=0"`
	Mood               *string  `json:"mood" binding:"omitempty,oneof=very_sad sad neutral happy very_happy"`
}

// CreateBiometric handles POST /api/biometrics: stores the reading, runs the
// wellness analysis and awards karma for logging.
func (h *biometricHandler) CreateBiometric(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req CreateBiometricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind biometric JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	biometric := &models.Biometric{
		UserID:             userID,
		HeartRate:          req.HeartRate,
		SleepHours:         req.SleepHours,
		SleepQuality:       req.SleepQuality,
		StressLevel:        req.StressLevel,
		Steps:              req.Steps,
		MindfulnessMinutes: req.MindfulnessMinutes,
		Mood:               req.Mood,
	}
	if err := h.repo.CreateBiometric(biometric); err != nil {
		h.logger.Error("Failed to create biometric", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create biometric entry"})
		return
	}

	analysis := h.analyzer.Analyze(c.Request.Context(), wellness.BiometricData{
		HeartRate:    biometric.HeartRate,
		SleepHours:   biometric.SleepHours,
		SleepQuality: biometric.SleepQuality,
		StressLevel:  biometric.StressLevel,
		Steps:        biometric.Steps,
		Mood:         biometric.Mood,
	})

	quality := analysis.OverallScore
	karmaEarned, err := h.karmaService.AwardForActivity(userID, "biometric_logging", nil, &quality,
		"Logged biometric data", biometric.ID, "biometric")
	if err != nil {
		h.logger.Error("Failed to award biometric karma", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record karma"})
		return
	}

	h.hub.Broadcast(ws.Event{
		Type: ws.EventBiometricUpdate,
		Data: map[string]interface{}{"user_id": userID, "overall_score": analysis.OverallScore},
	})

	c.JSON(http.StatusOK, gin.H{
		"biometric":    biometric,
		"analysis":     analysis,
		"karma_earned": karmaEarned,
	})
}

// GetLatest handles GET /api/biometrics/latest.
func (h *biometricHandler) GetLatest(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	biometric, err := h.repo.GetLatest(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusOK, nil)
			return
		}
		h.logger.Error("Failed to fetch latest biometric", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch biometrics"})
		return
	}

	c.JSON(http.StatusOK, biometric)
}

// GetHistory handles GET /api/biometrics/history?days=7.
func (h *biometricHandler) GetHistory(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days <= 0 || days > 365 {
		days = 7
	}

	history, err := h.repo.GetHistory(userID, days)
	if err != nil {
		h.logger.Error("Failed to fetch biometric history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch biometric history"})
		return
	}

	c.JSON(http.StatusOK, history)
}
