package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"wellspring/internal/models"
)

type KarmaRepository interface {
	// Award appends a ledger entry and increments the user's running total
	// in a single transaction.
	Award(tx *models.KarmaTransaction) error
	GetUserHistory(userID string) ([]*models.KarmaTransaction, error)
	GetTotalKarma() (int64, error)
}

type karmaRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewKarmaRepository(db *sqlx.DB, logger *zap.Logger) KarmaRepository {
	return &karmaRepository{db: db, logger: logger}
}

func (r *karmaRepository) Award(entry *models.KarmaTransaction) error {
	dbTx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin karma transaction: %w", err)
	}
	defer dbTx.Rollback()

	entry.ID = uuid.NewString()
	query := `INSERT INTO karma_transactions (id, user_id, amount, reason, description, related_id, related_type)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	if err := dbTx.QueryRowx(query, entry.ID, entry.UserID, entry.Amount, entry.Reason,
		entry.Description, entry.RelatedID, entry.RelatedType).Scan(&entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert karma transaction: %w", err)
	}

	if _, err := dbTx.Exec(`UPDATE users SET karma = karma + $1, updated_at = NOW() WHERE id = $2`,
		entry.Amount, entry.UserID); err != nil {
		return fmt.Errorf("failed to update user karma: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit karma transaction: %w", err)
	}
	return nil
}

func (r *karmaRepository) GetUserHistory(userID string) ([]*models.KarmaTransaction, error) {
	var history []*models.KarmaTransaction
	query := `SELECT id, user_id, amount, reason, description, related_id, related_type, created_at
	          FROM karma_transactions WHERE user_id = $1 ORDER BY created_at DESC`
	err := r.db.Select(&history, query, userID)
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (r *karmaRepository) GetTotalKarma() (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(amount), 0) FROM karma_transactions`
	err := r.db.Get(&total, query)
	if err != nil {
		return 0, err
	}
	return total, nil
}
