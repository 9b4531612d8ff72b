package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellspring/internal/models"
	"wellspring/internal/service"
)

type TherapyHandler interface {
	CreateSession(c *gin.Context)
	GetSessions(c *gin.Context)
	GetMessages(c *gin.Context)
	PostMessage(c *gin.Context)
}

type therapyHandler struct {
	service service.TherapyService
	logger  *zap.Logger
}

func NewTherapyHandler(service service.TherapyService, logger *zap.Logger) TherapyHandler {
	return &therapyHandler{service: service, logger: logger}
}

type createSessionRequest struct {
	SessionType string  `json:"session_type" binding:"required,oneof=chat guided_meditation crisis_support"`
	Mood        *string `json:"mood"`
}

// CreateSession handles POST /api/therapy/sessions.
func (h *therapyHandler) CreateSession(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := &models.TherapySession{
		UserID:      userID,
		SessionType: req.SessionType,
		Mood:        req.Mood,
	}
	if err := h.service.CreateSession(session); err != nil {
		h.logger.Error("Failed to create therapy session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create therapy session"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSessions handles GET /api/therapy/sessions.
func (h *therapyHandler) GetSessions(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	sessions, err := h.service.Sessions(userID)
	if err != nil {
		h.logger.Error("Failed to fetch therapy sessions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch therapy sessions"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// GetMessages handles GET /api/therapy/sessions/:id/messages.
func (h *therapyHandler) GetMessages(c *gin.Context) {
	sessionID := c.Param("id")

	messages, err := h.service.Messages(sessionID)
	if err != nil {
		h.logger.Error("Failed to fetch therapy messages",
			zap.String("session_id", sessionID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

type postMessageRequest struct {
	SessionID string `json:"session_id" binding:"required,uuid"`
	Content   string `json:"content" binding:"required"`
}

// PostMessage handles POST /api/therapy/messages. The reply is generated
// synchronously; a critical crisis detection returns the safety message
// instead of an AI response.
func (h *therapyHandler) PostMessage(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.HandleUserMessage(c.Request.Context(), userID, req.SessionID, req.Content)
	if err != nil {
		h.logger.Error("Failed to process therapy message",
			zap.String("session_id", req.SessionID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return
	}

	c.JSON(http.StatusOK, result)
}
