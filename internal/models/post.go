package models

import "time"

// Post represents a community feed entry stored in the 'posts' table.
type Post struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Type      string    `db:"type" json:"type"` // text, image, video, meditation, workout
	Title     *string   `db:"title" json:"title,omitempty"`
	Content   *string   `db:"content" json:"content,omitempty"`
	Mood      *string   `db:"mood" json:"mood,omitempty"`
	ImageURL  *string   `db:"image_url" json:"image_url,omitempty"`
	Location  *string   `db:"location" json:"location,omitempty"`
	Likes     int       `db:"likes" json:"likes"`
	Comments  int       `db:"comments" json:"comments"`
	Shares    int       `db:"shares" json:"shares"`
	Featured  bool      `db:"featured" json:"featured"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CommunityGroup represents a row in the 'community_groups' table.
type CommunityGroup struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Category    *string   `db:"category" json:"category,omitempty"` // meditation, fitness, support
	Location    *string   `db:"location" json:"location,omitempty"`
	MemberCount int       `db:"member_count" json:"member_count"`
	IsPublic    bool      `db:"is_public" json:"is_public"`
	CreatedBy   string    `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// GroupMembership links users to community groups.
type GroupMembership struct {
	ID       string    `db:"id" json:"id"`
	UserID   string    `db:"user_id" json:"user_id"`
	GroupID  string    `db:"group_id" json:"group_id"`
	Role     string    `db:"role" json:"role"` // member, moderator, admin
	JoinedAt time.Time `db:"joined_at" json:"joined_at"`
}
