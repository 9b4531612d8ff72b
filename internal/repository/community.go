package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"wellspring/internal/models"
)

var (
	ErrAlreadyMember = errors.New("user is already a member of this group")
	ErrGroupNotFound = errors.New("group not found")
)

type CommunityRepository interface {
	GetGroups(location string) ([]*models.CommunityGroup, error)
	GetUserGroups(userID string) ([]*models.CommunityGroup, error)
	// JoinGroup records the membership and bumps member_count in one
	// transaction.
	JoinGroup(userID, groupID string) error
}

type communityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCommunityRepository(db *sqlx.DB, logger *zap.Logger) CommunityRepository {
	return &communityRepository{db: db, logger: logger}
}

const groupColumns = `id, name, description, category, location, member_count, is_public, created_by, created_at`

func (r *communityRepository) GetGroups(location string) ([]*models.CommunityGroup, error) {
	var groups []*models.CommunityGroup
	if location != "" {
		query := `SELECT ` + groupColumns + ` FROM community_groups WHERE is_public = true AND location = $1 ORDER BY member_count DESC`
		if err := r.db.Select(&groups, query, location); err != nil {
			return nil, err
		}
		return groups, nil
	}
	query := `SELECT ` + groupColumns + ` FROM community_groups WHERE is_public = true ORDER BY member_count DESC`
	if err := r.db.Select(&groups, query); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *communityRepository) GetUserGroups(userID string) ([]*models.CommunityGroup, error) {
	var groups []*models.CommunityGroup
	query := `SELECT g.id, g.name, g.description, g.category, g.location, g.member_count, g.is_public, g.created_by, g.created_at
	          FROM community_groups g
	          JOIN group_memberships m ON m.group_id = g.id
	          WHERE m.user_id = $1 ORDER BY m.joined_at DESC`
	if err := r.db.Select(&groups, query, userID); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *communityRepository) JoinGroup(userID, groupID string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin join transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.Get(&exists, `SELECT EXISTS(SELECT 1 FROM group_memberships WHERE user_id = $1 AND group_id = $2)`, userID, groupID); err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if exists {
		return ErrAlreadyMember
	}

	if _, err := tx.Exec(`INSERT INTO group_memberships (id, user_id, group_id, role) VALUES ($1, $2, $3, 'member')`,
		uuid.NewString(), userID, groupID); err != nil {
		return fmt.Errorf("failed to insert membership: %w", err)
	}

	result, err := tx.Exec(`UPDATE community_groups SET member_count = member_count + 1 WHERE id = $1`, groupID)
	if err != nil {
		return fmt.Errorf("failed to update member count: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrGroupNotFound
	}

	return tx.Commit()
}
