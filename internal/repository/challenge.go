package repository

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"wellspring/internal/models"
)

type ChallengeRepository interface {
	GetActiveChallenges() ([]*models.WellnessChallenge, error)
	// GetFinishedParticipations returns participations whose challenge has
	// ended with full progress but which were never marked complete.
	GetFinishedParticipations() ([]*models.ChallengeParticipation, error)
	MarkParticipationComplete(id string) error
}

type challengeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewChallengeRepository(db *sqlx.DB, logger *zap.Logger) ChallengeRepository {
	return &challengeRepository{db: db, logger: logger}
}

func (r *challengeRepository) GetActiveChallenges() ([]*models.WellnessChallenge, error) {
	var challenges []*models.WellnessChallenge
	query := `SELECT id, title, description, type, duration_days, karma_reward, participant_count, is_global, start_date, end_date, created_at
	          FROM wellness_challenges
	          WHERE start_date <= NOW() AND (end_date IS NULL OR end_date >= NOW())
	          ORDER BY start_date DESC`
	err := r.db.Select(&challenges, query)
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *challengeRepository) GetFinishedParticipations() ([]*models.ChallengeParticipation, error) {
	var participations []*models.ChallengeParticipation
	query := `SELECT p.id, p.user_id, p.challenge_id, p.progress, p.completed, p.joined_at, p.completed_at
	          FROM challenge_participations p
	          JOIN wellness_challenges c ON c.id = p.challenge_id
	          WHERE p.completed = false AND p.progress >= 100 AND c.end_date IS NOT NULL AND c.end_date < NOW()`
	err := r.db.Select(&participations, query)
	if err != nil {
		return nil, err
	}
	return participations, nil
}

func (r *challengeRepository) MarkParticipationComplete(id string) error {
	query := `UPDATE challenge_participations SET completed = true, completed_at = NOW() WHERE id = $1 AND completed = false`
	_, err := r.db.Exec(query, id)
	return err
}
