package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wellspring/internal/config"
	"wellspring/internal/models"
	"wellspring/internal/wellness"
)

type fakeTherapyRepo struct {
	sessions []*models.TherapySession
	messages []*models.TherapyMessage
	addErr   error
}

func (f *fakeTherapyRepo) CreateSession(s *models.TherapySession) error {
	s.ID = "session-1"
	f.sessions = append(f.sessions, s)
	return nil
}

func (f *fakeTherapyRepo) GetSessions(userID string) ([]*models.TherapySession, error) {
	return f.sessions, nil
}

func (f *fakeTherapyRepo) GetSessionByID(id string) (*models.TherapySession, error) {
	for _, s := range f.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeTherapyRepo) AddMessage(m *models.TherapyMessage) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeTherapyRepo) GetMessages(sessionID string) ([]*models.TherapyMessage, error) {
	return f.messages, nil
}

type fakeCrisisRepo struct {
	incidents []*models.CrisisIncident
	createErr error
}

func (f *fakeCrisisRepo) CreateIncident(i *models.CrisisIncident) error {
	if f.createErr != nil {
		return f.createErr
	}
	i.ID = "incident-1"
	i.Status = "new"
	f.incidents = append(f.incidents, i)
	return nil
}

func (f *fakeCrisisRepo) GetIncidentByID(id string) (*models.CrisisIncident, error) {
	return nil, errors.New("not found")
}

func (f *fakeCrisisRepo) GetAllIncidents() ([]*models.CrisisIncident, error) {
	return f.incidents, nil
}

func (f *fakeCrisisRepo) GetIncidentsByStatus(status string) ([]*models.CrisisIncident, error) {
	return f.incidents, nil
}

func (f *fakeCrisisRepo) UpdateIncidentStatus(id, status string) error { return nil }

func newTestTherapyService(repo *fakeTherapyRepo, crisisRepo *fakeCrisisRepo) TherapyService {
	cfg := config.CrisisConfig{
		SuicideKeywords:  config.DefaultSuicideKeywords(),
		SelfHarmKeywords: config.DefaultSelfHarmKeywords(),
		SafetyMessage:    config.DefaultSafetyMessage,
	}
	logger := zap.NewNop()
	classifier := wellness.NewClassifier(nil, cfg, logger)
	therapist := wellness.NewTherapist(nil, logger)
	return NewTherapyService(repo, crisisRepo, classifier, therapist, nil,
		cfg.SafetyMessage, logger)
}

func TestHandleUserMessage_NormalFlow(t *testing.T) {
	repo := &fakeTherapyRepo{}
	crisisRepo := &fakeCrisisRepo{}
	svc := newTestTherapyService(repo, crisisRepo)

	result, err := svc.HandleUserMessage(context.Background(), "user-1", "session-1",
		"I had a stressful day and could use someone to talk to")

	require.NoError(t, err)
	assert.False(t, result.CrisisDetected)
	assert.Empty(t, result.CrisisResponse)
	require.NotNil(t, result.AIMessage)
	assert.Equal(t, "assistant", result.AIMessage.Role)
	assert.NotEmpty(t, result.AIMessage.Content)

	// Both the user message and the reply are persisted.
	require.Len(t, repo.messages, 2)
	assert.Equal(t, "user", repo.messages[0].Role)
	assert.Equal(t, "assistant", repo.messages[1].Role)
	assert.Empty(t, crisisRepo.incidents)
}

func TestHandleUserMessage_CriticalCrisisShortCircuits(t *testing.T) {
	repo := &fakeTherapyRepo{}
	crisisRepo := &fakeCrisisRepo{}
	svc := newTestTherapyService(repo, crisisRepo)

	result, err := svc.HandleUserMessage(context.Background(), "user-1", "session-1",
		"I think everyone would be better off dead without me")

	require.NoError(t, err)
	assert.True(t, result.CrisisDetected)
	assert.Equal(t, config.DefaultSafetyMessage, result.CrisisResponse)
	assert.Nil(t, result.AIMessage)

	// Only the user message is stored, no AI reply.
	require.Len(t, repo.messages, 1)
	assert.Equal(t, "user", repo.messages[0].Role)

	require.Len(t, crisisRepo.incidents, 1)
	incident := crisisRepo.incidents[0]
	assert.Equal(t, "user-1", incident.UserID)
	assert.Equal(t, "critical", incident.Severity)
	assert.Equal(t, "suicidal", incident.Type)
	assert.True(t, incident.FollowUpRequired)
}

func TestHandleUserMessage_HighSeverityStillGetsReply(t *testing.T) {
	repo := &fakeTherapyRepo{}
	crisisRepo := &fakeCrisisRepo{}
	svc := newTestTherapyService(repo, crisisRepo)

	// Self-harm keywords classify as high, not critical; the chat continues.
	result, err := svc.HandleUserMessage(context.Background(), "user-1", "session-1",
		"sometimes I think about cutting")

	require.NoError(t, err)
	assert.False(t, result.CrisisDetected)
	require.NotNil(t, result.AIMessage)
	assert.Empty(t, crisisRepo.incidents)
}

func TestHandleUserMessage_IncidentWriteFailureStillReturnsSafetyMessage(t *testing.T) {
	repo := &fakeTherapyRepo{}
	crisisRepo := &fakeCrisisRepo{createErr: errors.New("db down")}
	svc := newTestTherapyService(repo, crisisRepo)

	result, err := svc.HandleUserMessage(context.Background(), "user-1", "session-1",
		"I want to end it all")

	require.NoError(t, err)
	assert.True(t, result.CrisisDetected)
	assert.Equal(t, config.DefaultSafetyMessage, result.CrisisResponse)
}

func TestHandleUserMessage_MessagePersistFailure(t *testing.T) {
	repo := &fakeTherapyRepo{addErr: errors.New("db down")}
	svc := newTestTherapyService(repo, &fakeCrisisRepo{})

	_, err := svc.HandleUserMessage(context.Background(), "user-1", "session-1", "hello")

	assert.Error(t, err)
}
