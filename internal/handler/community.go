package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellspring/internal/repository"
	"wellspring/internal/service"
)

type CommunityHandler interface {
	GetGroups(c *gin.Context)
	JoinGroup(c *gin.Context)
}

type communityHandler struct {
	repo         repository.CommunityRepository
	karmaService service.KarmaService
	logger       *zap.Logger
}

func NewCommunityHandler(repo repository.CommunityRepository, karmaService service.KarmaService, logger *zap.Logger) CommunityHandler {
	return &communityHandler{repo: repo, karmaService: karmaService, logger: logger}
}

// GetGroups handles GET /api/community/groups?location= (public).
func (h *communityHandler) GetGroups(c *gin.Context) {
	location := c.Query("location")

	groups, err := h.repo.GetGroups(location)
	if err != nil {
		h.logger.Error("Failed to fetch community groups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch community groups"})
		return
	}

	c.JSON(http.StatusOK, groups)
}

// JoinGroup handles POST /api/community/groups/:id/join.
func (h *communityHandler) JoinGroup(c *gin.Context) {
	userID := c.MustGet("user_id").(string)
	groupID := c.Param("id")

	if err := h.repo.JoinGroup(userID, groupID); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyMember):
			c.JSON(http.StatusConflict, gin.H{"error": "Already a member of this group"})
		case errors.Is(err, repository.ErrGroupNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		default:
			h.logger.Error("Failed to join group",
				zap.String("group_id", groupID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join group"})
		}
		return
	}

	karmaEarned, err := h.karmaService.AwardForActivity(userID, "community_join", nil, nil,
		"Joined wellness community group", groupID, "group")
	if err != nil {
		h.logger.Error("Failed to award join karma", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record karma"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "karma_earned": karmaEarned})
}
