package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"wellspring/internal/models"
)

type BiometricRepository interface {
	CreateBiometric(b *models.Biometric) error
	GetLatest(userID string) (*models.Biometric, error)
	GetHistory(userID string, days int) ([]*models.Biometric, error)
}

type biometricRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBiometricRepository(db *sqlx.DB, logger *zap.Logger) BiometricRepository {
	return &biometricRepository{db: db, logger: logger}
}

func (r *biometricRepository) CreateBiometric(b *models.Biometric) error {
	b.ID = uuid.NewString()
	query := `INSERT INTO biometrics (id, user_id, heart_rate, sleep_hours, sleep_quality, stress_level, steps, mindfulness_minutes, mood)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING recorded_at`
	return r.db.QueryRowx(query, b.ID, b.UserID, b.HeartRate, b.SleepHours, b.SleepQuality,
		b.StressLevel, b.Steps, b.MindfulnessMinutes, b.Mood).Scan(&b.RecordedAt)
}

func (r *biometricRepository) GetLatest(userID string) (*models.Biometric, error) {
	var b models.Biometric
	query := `SELECT id, user_id, heart_rate, sleep_hours, sleep_quality, stress_level, steps, mindfulness_minutes, mood, recorded_at
	          FROM biometrics WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT 1`
	err := r.db.Get(&b, query, userID)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *biometricRepository) GetHistory(userID string, days int) ([]*models.Biometric, error) {
	var history []*models.Biometric
	query := fmt.Sprintf(`SELECT id, user_id, heart_rate, sleep_hours, sleep_quality, stress_level, steps, mindfulness_minutes, mood, recorded_at
	          FROM biometrics WHERE user_id = $1 AND recorded_at >= NOW() - INTERVAL '%d days' ORDER BY recorded_at DESC`, days)
	err := r.db.Select(&history, query, userID)
	if err != nil {
		return nil, err
	}
	return history, nil
}
