package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"wellspring/internal/models"
)

type TherapyRepository interface {
	CreateSession(session *models.TherapySession) error
	GetSessions(userID string) ([]*models.TherapySession, error)
	GetSessionByID(id string) (*models.TherapySession, error)
	AddMessage(message *models.TherapyMessage) error
	GetMessages(sessionID string) ([]*models.TherapyMessage, error)
}

type therapyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTherapyRepository(db *sqlx.DB, logger *zap.Logger) TherapyRepository {
	return &therapyRepository{db: db, logger: logger}
}

func (r *therapyRepository) CreateSession(session *models.TherapySession) error {
	session.ID = uuid.NewString()
	query := `INSERT INTO therapy_sessions (id, user_id, session_type, mood, summary)
	          VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	return r.db.QueryRowx(query, session.ID, session.UserID, session.SessionType,
		session.Mood, session.Summary).Scan(&session.CreatedAt)
}

func (r *therapyRepository) GetSessions(userID string) ([]*models.TherapySession, error) {
	var sessions []*models.TherapySession
	query := `SELECT id, user_id, session_type, mood, summary, created_at
	          FROM therapy_sessions WHERE user_id = $1 ORDER BY created_at DESC`
	err := r.db.Select(&sessions, query, userID)
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *therapyRepository) GetSessionByID(id string) (*models.TherapySession, error) {
	var session models.TherapySession
	query := `SELECT id, user_id, session_type, mood, summary, created_at FROM therapy_sessions WHERE id = $1`
	err := r.db.Get(&session, query, id)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *therapyRepository) AddMessage(message *models.TherapyMessage) error {
	message.ID = uuid.NewString()
	query := `INSERT INTO therapy_messages (id, session_id, role, content)
	          VALUES ($1, $2, $3, $4) RETURNING created_at`
	return r.db.QueryRowx(query, message.ID, message.SessionID, message.Role, message.Content).
		Scan(&message.CreatedAt)
}

func (r *therapyRepository) GetMessages(sessionID string) ([]*models.TherapyMessage, error) {
	var messages []*models.TherapyMessage
	query := `SELECT id, session_id, role, content, created_at
	          FROM therapy_messages WHERE session_id = $1 ORDER BY created_at ASC`
	err := r.db.Select(&messages, query, sessionID)
	if err != nil {
		return nil, err
	}
	return messages, nil
}
