package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"wellspring/internal/models"
)

type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPosts(limit int) ([]*models.Post, error)
	GetUserPosts(userID string) ([]*models.Post, error)
	GetFeaturedPosts() ([]*models.Post, error)
	IncrementEngagement(postID, engagementType string) error
}

type postRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPostRepository(db *sqlx.DB, logger *zap.Logger) PostRepository {
	return &postRepository{db: db, logger: logger}
}

const postColumns = `id, user_id, type, title, content, mood, image_url, location, likes, comments, shares, featured, created_at, updated_at`

func (r *postRepository) CreatePost(post *models.Post) error {
	post.ID = uuid.NewString()
	query := `INSERT INTO posts (id, user_id, type, title, content, mood, image_url, location)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at, updated_at`
	return r.db.QueryRowx(query, post.ID, post.UserID, post.Type, post.Title, post.Content,
		post.Mood, post.ImageURL, post.Location).Scan(&post.CreatedAt, &post.UpdatedAt)
}

func (r *postRepository) GetPosts(limit int) ([]*models.Post, error) {
	var posts []*models.Post
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC LIMIT $1`
	err := r.db.Select(&posts, query, limit)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) GetUserPosts(userID string) ([]*models.Post, error) {
	var posts []*models.Post
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1 ORDER BY created_at DESC`
	err := r.db.Select(&posts, query, userID)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) GetFeaturedPosts() ([]*models.Post, error) {
	var posts []*models.Post
	query := `SELECT ` + postColumns + ` FROM posts WHERE featured = true ORDER BY created_at DESC LIMIT 10`
	err := r.db.Select(&posts, query)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// IncrementEngagement bumps the counter column matching the engagement type.
// The column name is chosen from a fixed set, never from user input directly.
func (r *postRepository) IncrementEngagement(postID, engagementType string) error {
	var column string
	switch engagementType {
	case "like":
		column = "likes"
	case "comment":
		column = "comments"
	case "share":
		column = "shares"
	default:
		return fmt.Errorf("unknown engagement type: %s", engagementType)
	}

	query := fmt.Sprintf(`UPDATE posts SET %s = %s + 1, updated_at = NOW() WHERE id = $1`, column, column)
	result, err := r.db.Exec(query, postID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("post not found: %s", postID)
	}
	return nil
}
