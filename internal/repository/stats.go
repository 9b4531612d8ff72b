package repository

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// GlobalStats is the community-wide dashboard snapshot.
type GlobalStats struct {
	TotalUsers      int   `db:"total_users" json:"total_users"`
	ActiveToday     int   `db:"active_today" json:"active_today"`
	TotalKarma      int64 `db:"total_karma" json:"total_karma"`
	TotalActivities int   `db:"total_activities" json:"total_activities"`
}

type StatsRepository interface {
	GetGlobalStats() (*GlobalStats, error)
}

type statsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStatsRepository(db *sqlx.DB, logger *zap.Logger) StatsRepository {
	return &statsRepository{db: db, logger: logger}
}

func (r *statsRepository) GetGlobalStats() (*GlobalStats, error) {
	var stats GlobalStats
	query := `SELECT
	            (SELECT COUNT(*) FROM users) AS total_users,
	            (SELECT COUNT(DISTINCT user_id) FROM wellness_activities WHERE completed_at >= NOW() - INTERVAL '1 day') AS active_today,
	            (SELECT COALESCE(SUM(karma), 0) FROM users) AS total_karma,
	            (SELECT COUNT(*) FROM wellness_activities) AS total_activities`
	err := r.db.Get(&stats, query)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
