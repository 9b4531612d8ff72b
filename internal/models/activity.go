package models

import "time"

// WellnessActivity represents a completed activity stored in the
// 'wellness_activities' table.
type WellnessActivity struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Type        string    `db:"type" json:"type"` // meditation, workout, breathing, journaling
	Name        string    `db:"name" json:"name"`
	Duration    *int      `db:"duration" json:"duration,omitempty"` // minutes
	Intensity   *string   `db:"intensity" json:"intensity,omitempty"` // low, medium, high
	Mood        *string   `db:"mood" json:"mood,omitempty"`
	Notes       *string   `db:"notes" json:"notes,omitempty"`
	KarmaEarned int       `db:"karma_earned" json:"karma_earned"`
	CompletedAt time.Time `db:"completed_at" json:"completed_at"`
}

// EnvironmentalImpact represents a row in the 'environmental_impact' table.
type EnvironmentalImpact struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	CarbonOffset *float64  `db:"carbon_offset" json:"carbon_offset,omitempty"` // lbs
	WaterSaved   *float64  `db:"water_saved" json:"water_saved,omitempty"`     // gallons
	TreesPlanted int       `db:"trees_planted" json:"trees_planted"`
	ActivityType *string   `db:"activity_type" json:"activity_type,omitempty"`
	Description  *string   `db:"description" json:"description,omitempty"`
	RecordedAt   time.Time `db:"recorded_at" json:"recorded_at"`
}

// WellnessChallenge represents a row in the 'wellness_challenges' table.
type WellnessChallenge struct {
	ID               string     `db:"id" json:"id"`
	Title            string     `db:"title" json:"title"`
	Description      *string    `db:"description" json:"description,omitempty"`
	Type             string     `db:"type" json:"type"` // meditation, fitness, digital_detox
	DurationDays     *int       `db:"duration_days" json:"duration_days,omitempty"`
	KarmaReward      int        `db:"karma_reward" json:"karma_reward"`
	ParticipantCount int        `db:"participant_count" json:"participant_count"`
	IsGlobal         bool       `db:"is_global" json:"is_global"`
	StartDate        *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate          *time.Time `db:"end_date" json:"end_date,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

// ChallengeParticipation links users to challenges.
type ChallengeParticipation struct {
	ID          string     `db:"id" json:"id"`
	UserID      string     `db:"user_id" json:"user_id"`
	ChallengeID string     `db:"challenge_id" json:"challenge_id"`
	Progress    int        `db:"progress" json:"progress"` // percentage 0-100
	Completed   bool       `db:"completed" json:"completed"`
	JoinedAt    time.Time  `db:"joined_at" json:"joined_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}
