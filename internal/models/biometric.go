package models

import "time"

// Biometric represents a reading stored in the 'biometrics' table.
// All measurement fields are nullable - wearables report partial data.
type Biometric struct {
	ID                 string    `db:"id" json:"id"`
	UserID             string    `db:"user_id" json:"user_id"`
	HeartRate          *int      `db:"heart_rate" json:"heart_rate,omitempty"`
	SleepHours         *float64  `db:"sleep_hours" json:"sleep_hours,omitempty"`
	SleepQuality       *int      `db:"sleep_quality" json:"sleep_quality,omitempty"` // 0-100
	StressLevel        *int      `db:"stress_level" json:"stress_level,omitempty"`   // 0-100
	Steps              *int      `db:"steps" json:"steps,omitempty"`
	MindfulnessMinutes *int      `db:"mindfulness_minutes" json:"mindfulness_minutes,omitempty"`
	Mood               *string   `db:"mood" json:"mood,omitempty"` // very_sad, sad, neutral, happy, very_happy
	RecordedAt         time.Time `db:"recorded_at" json:"recorded_at"`
}
