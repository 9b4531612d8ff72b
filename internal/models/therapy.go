package models

import "time"

// TherapySession represents a row in the 'therapy_sessions' table.
type TherapySession struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	SessionType string    `db:"session_type" json:"session_type"` // chat, guided_meditation, crisis_support
	Mood        *string   `db:"mood" json:"mood,omitempty"`
	Summary     *string   `db:"summary" json:"summary,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// TherapyMessage represents a single message in a therapy session.
type TherapyMessage struct {
	ID        string    `db:"id" json:"id"`
	SessionID string    `db:"session_id" json:"session_id"`
	Role      string    `db:"role" json:"role"` // user, assistant
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
