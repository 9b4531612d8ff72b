package service

import (
	"fmt"

	"go.uber.org/zap"

	"wellspring/internal/models"
	"wellspring/internal/repository"
	"wellspring/internal/wellness"
)

// KarmaService turns completed actions into persisted ledger entries. The
// reward amount comes from the pure calculator; this layer owns the ledger
// write and the running-total update.
type KarmaService interface {
	// AwardForActivity computes the reward for an activity and persists it.
	// Returns the awarded amount.
	AwardForActivity(userID, activityType string, durationMinutes, qualityScore *int, description, relatedID, relatedType string) (int, error)
	// AwardFixed persists a fixed, pre-computed award (e.g. post engagement).
	AwardFixed(userID string, amount int, reason, description, relatedID, relatedType string) error
	History(userID string) ([]*models.KarmaTransaction, error)
}

type karmaService struct {
	calculator *wellness.RewardCalculator
	repo       repository.KarmaRepository
	logger     *zap.Logger
}

func NewKarmaService(calculator *wellness.RewardCalculator, repo repository.KarmaRepository, logger *zap.Logger) KarmaService {
	return &karmaService{calculator: calculator, repo: repo, logger: logger}
}

func (s *karmaService) AwardForActivity(userID, activityType string, durationMinutes, qualityScore *int, description, relatedID, relatedType string) (int, error) {
	amount := s.calculator.Calculate(activityType, durationMinutes, qualityScore)
	if err := s.AwardFixed(userID, amount, activityType, description, relatedID, relatedType); err != nil {
		return 0, err
	}
	return amount, nil
}

func (s *karmaService) AwardFixed(userID string, amount int, reason, description, relatedID, relatedType string) error {
	entry := &models.KarmaTransaction{
		UserID: userID,
		Amount: amount,
		Reason: reason,
	}
	if description != "" {
		entry.Description = &description
	}
	if relatedID != "" {
		entry.RelatedID = &relatedID
	}
	if relatedType != "" {
		entry.RelatedType = &relatedType
	}

	if err := s.repo.Award(entry); err != nil {
		s.logger.Error("Failed to persist karma award",
			zap.String("user_id", userID),
			zap.String("reason", reason),
			zap.Error(err))
		return fmt.Errorf("failed to award karma: %w", err)
	}
	return nil
}

func (s *karmaService) History(userID string) ([]*models.KarmaTransaction, error) {
	return s.repo.GetUserHistory(userID)
}
