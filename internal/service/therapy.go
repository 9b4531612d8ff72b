package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"wellspring/internal/models"
	"wellspring/internal/notify"
	"wellspring/internal/repository"
	"wellspring/internal/wellness"
)

// TherapyResult is the outcome of processing one user chat message.
type TherapyResult struct {
	UserMessage    *models.TherapyMessage `json:"user_message"`
	AIMessage      *models.TherapyMessage `json:"ai_message,omitempty"`
	CrisisDetected bool                   `json:"crisis_detected"`
	CrisisResponse string                 `json:"crisis_response,omitempty"`
}

// TherapyService owns the chat flow: crisis screening first, then the
// AI-generated reply. A critical detection short-circuits reply generation
// and records an incident with follow-up required.
type TherapyService interface {
	CreateSession(session *models.TherapySession) error
	Sessions(userID string) ([]*models.TherapySession, error)
	Messages(sessionID string) ([]*models.TherapyMessage, error)
	HandleUserMessage(ctx context.Context, userID, sessionID, content string) (*TherapyResult, error)
}

type therapyService struct {
	repo       repository.TherapyRepository
	crisisRepo repository.CrisisRepository
	classifier *wellness.Classifier
	therapist  *wellness.Therapist
	alerter    *notify.CrisisAlerter // nil when alerts are disabled
	safetyMsg  string
	logger     *zap.Logger
}

func NewTherapyService(
	repo repository.TherapyRepository,
	crisisRepo repository.CrisisRepository,
	classifier *wellness.Classifier,
	therapist *wellness.Therapist,
	alerter *notify.CrisisAlerter,
	safetyMessage string,
	logger *zap.Logger,
) TherapyService {
	return &therapyService{
		repo:       repo,
		crisisRepo: crisisRepo,
		classifier: classifier,
		therapist:  therapist,
		alerter:    alerter,
		safetyMsg:  safetyMessage,
		logger:     logger,
	}
}

func (s *therapyService) CreateSession(session *models.TherapySession) error {
	if err := s.repo.CreateSession(session); err != nil {
		return fmt.Errorf("failed to create therapy session: %w", err)
	}
	return nil
}

func (s *therapyService) Sessions(userID string) ([]*models.TherapySession, error) {
	return s.repo.GetSessions(userID)
}

func (s *therapyService) Messages(sessionID string) ([]*models.TherapyMessage, error) {
	return s.repo.GetMessages(sessionID)
}

func (s *therapyService) HandleUserMessage(ctx context.Context, userID, sessionID, content string) (*TherapyResult, error) {
	assessment := s.classifier.Classify(ctx, content)

	userMessage := &models.TherapyMessage{
		SessionID: sessionID,
		Role:      "user",
		Content:   content,
	}
	if err := s.repo.AddMessage(userMessage); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}

	if assessment.IsCrisis && assessment.Severity == wellness.SeverityCritical {
		supportProvided := "Crisis detected in AI therapy session"
		incident := &models.CrisisIncident{
			UserID:           userID,
			Severity:         assessment.Severity,
			Type:             assessment.Type,
			SupportProvided:  &supportProvided,
			FollowUpRequired: true,
		}
		if err := s.crisisRepo.CreateIncident(incident); err != nil {
			// The user still gets the safety message even if the record
			// could not be written.
			s.logger.Error("Failed to record crisis incident",
				zap.String("user_id", userID),
				zap.Error(err))
		} else {
			s.alerter.AlertIncident(incident)
		}

		s.logger.Warn("Critical crisis detected in therapy session",
			zap.String("session_id", sessionID),
			zap.String("type", assessment.Type),
			zap.Float64("confidence", assessment.Confidence))

		return &TherapyResult{
			UserMessage:    userMessage,
			CrisisDetected: true,
			CrisisResponse: s.safetyMsg,
		}, nil
	}

	reply := s.therapist.Respond(ctx, content, wellness.SessionContext{SessionType: "chat"})

	aiMessage := &models.TherapyMessage{
		SessionID: sessionID,
		Role:      "assistant",
		Content:   reply,
	}
	if err := s.repo.AddMessage(aiMessage); err != nil {
		return nil, fmt.Errorf("failed to store assistant message: %w", err)
	}

	return &TherapyResult{
		UserMessage: userMessage,
		AIMessage:   aiMessage,
	}, nil
}
