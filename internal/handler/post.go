package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellspring/internal/models"
	"wellspring/internal/repository"
	"wellspring/internal/service"
	"wellspring/internal/ws"
)

type PostHandler interface {
	CreatePost(c *gin.Context)
	GetPosts(c *gin.Context)
	GetFeaturedPosts(c *gin.Context)
	Engage(c *gin.Context)
}

type postHandler struct {
	repo         repository.PostRepository
	karmaService service.KarmaService
	hub          *ws.Hub
	logger       *zap.Logger
}

func NewPostHandler(repo repository.PostRepository, karmaService service.KarmaService, hub *ws.Hub, logger *zap.Logger) PostHandler {
	return &postHandler{repo: repo, karmaService: karmaService, hub: hub, logger: logger}
}

type CreatePostRequest struct {
	Type     string  `json:"type" binding:"required,oneof=text image video meditation workout"`
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Mood     *string `json:"mood" binding:"omitempty,oneof=very_sad sad neutral happy very_happy"`
	ImageURL *string `json:"image_url"`
	Location *string `json:"location"`
}

// Engagement kinds and their karma values.
var engagementKarma = map[string]int{
	"like":    1,
	"comment": 3,
	"share":   2,
}

// CreatePost handles POST /api/posts.
func (h *postHandler) CreatePost(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind post JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := &models.Post{
		UserID:   userID,
		Type:     req.Type,
		Title:    req.Title,
		Content:  req.Content,
		Mood:     req.Mood,
		ImageURL: req.ImageURL,
		Location: req.Location,
	}
	if err := h.repo.CreatePost(post); err != nil {
		h.logger.Error("Failed to create post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	karmaEarned, err := h.karmaService.AwardForActivity(userID, "community_post", nil, nil,
		"Created community post", post.ID, "post")
	if err != nil {
		h.logger.Error("Failed to award post karma", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record karma"})
		return
	}

	h.hub.Broadcast(ws.Event{
		Type: ws.EventCommunityActivity,
		Data: map[string]interface{}{"post_id": post.ID, "type": post.Type},
	})

	c.JSON(http.StatusOK, gin.H{"post": post, "karma_earned": karmaEarned})
}

// GetPosts handles GET /api/posts?limit=50 (public).
func (h *postHandler) GetPosts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}

	posts, err := h.repo.GetPosts(limit)
	if err != nil {
		h.logger.Error("Failed to fetch posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetFeaturedPosts handles GET /api/posts/featured (public).
func (h *postHandler) GetFeaturedPosts(c *gin.Context) {
	posts, err := h.repo.GetFeaturedPosts()
	if err != nil {
		h.logger.Error("Failed to fetch featured posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

type EngageRequest struct {
	Type string `json:"type" binding:"required,oneof=like comment share"`
}

// Engage handles POST /api/posts/:id/engage.
func (h *postHandler) Engage(c *gin.Context) {
	userID := c.MustGet("user_id").(string)
	postID := c.Param("id")

	var req EngageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid engagement type"})
		return
	}

	if err := h.repo.IncrementEngagement(postID, req.Type); err != nil {
		h.logger.Error("Failed to engage with post", zap.String("post_id", postID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to engage with post"})
		return
	}

	karmaEarned := engagementKarma[req.Type]
	if err := h.karmaService.AwardFixed(userID, karmaEarned, "community_engagement",
		req.Type+" on community post", postID, "post"); err != nil {
		h.logger.Error("Failed to award engagement karma", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record karma"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "karma_earned": karmaEarned})
}
