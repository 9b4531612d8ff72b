package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"wellspring/internal/models"
)

type EnvironmentalRepository interface {
	AddImpact(impact *models.EnvironmentalImpact) error
	GetUserImpact(userID string) ([]*models.EnvironmentalImpact, error)
}

type environmentalRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewEnvironmentalRepository(db *sqlx.DB, logger *zap.Logger) EnvironmentalRepository {
	return &environmentalRepository{db: db, logger: logger}
}

func (r *environmentalRepository) AddImpact(impact *models.EnvironmentalImpact) error {
	impact.ID = uuid.NewString()
	query := `INSERT INTO environmental_impact (id, user_id, carbon_offset, water_saved, trees_planted, activity_type, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING recorded_at`
	return r.db.QueryRowx(query, impact.ID, impact.UserID, impact.CarbonOffset, impact.WaterSaved,
		impact.TreesPlanted, impact.ActivityType, impact.Description).Scan(&impact.RecordedAt)
}

func (r *environmentalRepository) GetUserImpact(userID string) ([]*models.EnvironmentalImpact, error) {
	var impacts []*models.EnvironmentalImpact
	query := `SELECT id, user_id, carbon_offset, water_saved, trees_planted, activity_type, description, recorded_at
	          FROM environmental_impact WHERE user_id = $1 ORDER BY recorded_at DESC`
	err := r.db.Select(&impacts, query, userID)
	if err != nil {
		return nil, err
	}
	return impacts, nil
}
