package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"wellspring/internal/models"
)

type ActivityRepository interface {
	CreateActivity(activity *models.WellnessActivity) error
	GetUserActivities(userID string, limit int) ([]*models.WellnessActivity, error)
	CountActivities() (int, error)
}

type activityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewActivityRepository(db *sqlx.DB, logger *zap.Logger) ActivityRepository {
	return &activityRepository{db: db, logger: logger}
}

func (r *activityRepository) CreateActivity(activity *models.WellnessActivity) error {
	activity.ID = uuid.NewString()
	query := `INSERT INTO wellness_activities (id, user_id, type, name, duration, intensity, mood, notes, karma_earned)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING completed_at`
	return r.db.QueryRowx(query, activity.ID, activity.UserID, activity.Type, activity.Name,
		activity.Duration, activity.Intensity, activity.Mood, activity.Notes, activity.KarmaEarned).
		Scan(&activity.CompletedAt)
}

func (r *activityRepository) GetUserActivities(userID string, limit int) ([]*models.WellnessActivity, error) {
	var activities []*models.WellnessActivity
	query := `SELECT id, user_id, type, name, duration, intensity, mood, notes, karma_earned, completed_at
	          FROM wellness_activities WHERE user_id = $1 ORDER BY completed_at DESC LIMIT $2`
	err := r.db.Select(&activities, query, userID, limit)
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) CountActivities() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM wellness_activities`)
	if err != nil {
		return 0, err
	}
	return count, nil
}
