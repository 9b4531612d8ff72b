package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellspring/internal/models"
	"wellspring/internal/notify"
	"wellspring/internal/repository"
	"wellspring/internal/service"
)

type CrisisHandler interface {
	RequestSupport(c *gin.Context)
	GetIncidents(c *gin.Context)
	GetIncident(c *gin.Context)
	UpdateIncidentStatus(c *gin.Context)
}

type crisisHandler struct {
	repo         repository.CrisisRepository
	karmaService service.KarmaService
	alerter      *notify.CrisisAlerter
	safetyMsg    string
	logger       *zap.Logger
}

func NewCrisisHandler(
	repo repository.CrisisRepository,
	karmaService service.KarmaService,
	alerter *notify.CrisisAlerter,
	safetyMessage string,
	logger *zap.Logger,
) CrisisHandler {
	return &crisisHandler{
		repo:         repo,
		karmaService: karmaService,
		alerter:      alerter,
		safetyMsg:    safetyMessage,
		logger:       logger,
	}
}

type requestSupportRequest struct {
	Severity string  `json:"severity" binding:"required,oneof=low medium high critical"`
	Type     string  `json:"type" binding:"required,oneof=suicidal self_harm substance_abuse emotional"`
	Details  *string `json:"details"`
}

// RequestSupport handles POST /api/crisis/support. Reaching out is itself
// rewarded; the incident is recorded and the on-call channel alerted.
func (h *crisisHandler) RequestSupport(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req requestSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supportProvided := "User requested crisis support"
	incident := &models.CrisisIncident{
		UserID:           userID,
		Severity:         req.Severity,
		Type:             req.Type,
		SupportProvided:  &supportProvided,
		FollowUpRequired: req.Severity == "high" || req.Severity == "critical",
	}
	if err := h.repo.CreateIncident(incident); err != nil {
		h.logger.Error("Failed to record crisis incident", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record incident"})
		return
	}

	h.alerter.AlertIncident(incident)

	karmaEarned, err := h.karmaService.AwardForActivity(userID, "crisis_support", nil, nil,
		"seeking_help", incident.ID, "crisis_incident")
	if err != nil {
		h.logger.Error("Failed to award crisis support karma", zap.Error(err))
		// The safety response must still go out.
		karmaEarned = 0
	}

	c.JSON(http.StatusCreated, gin.H{
		"incident":     incident,
		"message":      h.safetyMsg,
		"karma_earned": karmaEarned,
	})
}

// GetIncidents handles GET /api/crisis/incidents?status=.
func (h *crisisHandler) GetIncidents(c *gin.Context) {
	status := c.Query("status")

	var (
		incidents []*models.CrisisIncident
		err       error
	)
	if status != "" {
		if !validIncidentStatuses[status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		incidents, err = h.repo.GetIncidentsByStatus(status)
	} else {
		incidents, err = h.repo.GetAllIncidents()
	}
	if err != nil {
		h.logger.Error("Failed to fetch crisis incidents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch incidents"})
		return
	}

	c.JSON(http.StatusOK, incidents)
}

// GetIncident handles GET /api/crisis/incidents/:id.
func (h *crisisHandler) GetIncident(c *gin.Context) {
	id := c.Param("id")

	incident, err := h.repo.GetIncidentByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Incident not found"})
			return
		}
		h.logger.Error("Failed to fetch crisis incident", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch incident"})
		return
	}

	c.JSON(http.StatusOK, incident)
}

var validIncidentStatuses = map[string]bool{
	"new":          true,
	"acknowledged": true,
	"resolved":     true,
}

type updateIncidentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateIncidentStatus handles PUT /api/crisis/incidents/:id/status.
func (h *crisisHandler) UpdateIncidentStatus(c *gin.Context) {
	id := c.Param("id")

	var req updateIncidentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validIncidentStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	if _, err := h.repo.GetIncidentByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Incident not found"})
			return
		}
		h.logger.Error("Failed to fetch crisis incident", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch incident"})
		return
	}

	if err := h.repo.UpdateIncidentStatus(id, req.Status); err != nil {
		h.logger.Error("Failed to update incident status",
			zap.String("id", id),
			zap.String("status", req.Status),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update incident"})
		return
	}

	incident, err := h.repo.GetIncidentByID(id)
	if err != nil {
		h.logger.Error("Failed to reload incident", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch incident"})
		return
	}

	c.JSON(http.StatusOK, incident)
}
