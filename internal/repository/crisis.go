package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"wellspring/internal/models"
)

type CrisisRepository interface {
	CreateIncident(incident *models.CrisisIncident) error
	GetIncidentByID(id string) (*models.CrisisIncident, error)
	GetAllIncidents() ([]*models.CrisisIncident, error)
	GetIncidentsByStatus(status string) ([]*models.CrisisIncident, error)
	UpdateIncidentStatus(id, status string) error
}

type crisisRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCrisisRepository(db *sqlx.DB, logger *zap.Logger) CrisisRepository {
	return &crisisRepository{db: db, logger: logger}
}

const incidentColumns = `id, user_id, severity, type, support_provided, follow_up_required, resolved, status, created_at, resolved_at`

func (r *crisisRepository) CreateIncident(incident *models.CrisisIncident) error {
	incident.ID = uuid.NewString()
	query := `INSERT INTO crisis_incidents (id, user_id, severity, type, support_provided, follow_up_required)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING status, created_at`
	return r.db.QueryRowx(query, incident.ID, incident.UserID, incident.Severity, incident.Type,
		incident.SupportProvided, incident.FollowUpRequired).Scan(&incident.Status, &incident.CreatedAt)
}

func (r *crisisRepository) GetIncidentByID(id string) (*models.CrisisIncident, error) {
	var incident models.CrisisIncident
	query := `SELECT ` + incidentColumns + ` FROM crisis_incidents WHERE id = $1`
	err := r.db.Get(&incident, query, id)
	if err != nil {
		return nil, err
	}
	return &incident, nil
}

func (r *crisisRepository) GetAllIncidents() ([]*models.CrisisIncident, error) {
	var incidents []*models.CrisisIncident
	query := `SELECT ` + incidentColumns + ` FROM crisis_incidents ORDER BY created_at DESC`
	err := r.db.Select(&incidents, query)
	if err != nil {
		return nil, err
	}
	return incidents, nil
}

func (r *crisisRepository) GetIncidentsByStatus(status string) ([]*models.CrisisIncident, error) {
	var incidents []*models.CrisisIncident
	query := `SELECT ` + incidentColumns + ` FROM crisis_incidents WHERE status = $1 ORDER BY created_at DESC`
	err := r.db.Select(&incidents, query, status)
	if err != nil {
		return nil, err
	}
	return incidents, nil
}

func (r *crisisRepository) UpdateIncidentStatus(id, status string) error {
	query := `UPDATE crisis_incidents
	          SET status = $1,
	              resolved = ($1 = 'resolved'),
	              resolved_at = CASE WHEN $1 = 'resolved' THEN NOW() ELSE NULL END
	          WHERE id = $2`
	_, err := r.db.Exec(query, status, id)
	return err
}
