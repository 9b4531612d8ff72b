package models

import "time"

// CrisisIncident represents a row in the 'crisis_incidents' table.
// Created once per detection; the classifier itself never writes these.
type CrisisIncident struct {
	ID               string     `db:"id" json:"id"`
	UserID           string     `db:"user_id" json:"user_id"`
	Severity         string     `db:"severity" json:"severity"` // low, medium, high, critical
	Type             string     `db:"type" json:"type"`         // emotional, anxiety, depression, suicidal
	SupportProvided  *string    `db:"support_provided" json:"support_provided,omitempty"`
	FollowUpRequired bool       `db:"follow_up_required" json:"follow_up_required"`
	Resolved         bool       `db:"resolved" json:"resolved"`
	Status           string     `db:"status" json:"status"` // new, acknowledged, resolved
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	ResolvedAt       *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
}
