package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"wellspring/internal/config"
	"wellspring/internal/models"
	"wellspring/internal/repository"
	"wellspring/internal/wellness"
	"wellspring/internal/ws"
)

// Scheduler runs the background jobs: sweeping finished challenge
// participations and broadcasting the global stats snapshot.
type Scheduler struct {
	cron          *cron.Cron
	challengeRepo repository.ChallengeRepository
	karmaRepo     repository.KarmaRepository
	statsRepo     repository.StatsRepository
	calculator    *wellness.RewardCalculator
	hub           *ws.Hub
	logger        *zap.Logger
}

func NewScheduler(
	cfg *config.Config,
	challengeRepo repository.ChallengeRepository,
	karmaRepo repository.KarmaRepository,
	statsRepo repository.StatsRepository,
	calculator *wellness.RewardCalculator,
	hub *ws.Hub,
	logger *zap.Logger,
) (*Scheduler, error) {
	s := &Scheduler{
		cron:          cron.New(),
		challengeRepo: challengeRepo,
		karmaRepo:     karmaRepo,
		statsRepo:     statsRepo,
		calculator:    calculator,
		hub:           hub,
		logger:        logger,
	}

	if _, err := s.cron.AddFunc(cfg.Jobs.ChallengeSweepSpec, s.sweepChallenges); err != nil {
		return nil, fmt.Errorf("failed to schedule challenge sweep: %w", err)
	}
	if _, err := s.cron.AddFunc(cfg.Jobs.StatsBroadcastSpec, s.broadcastStats); err != nil {
		return nil, fmt.Errorf("failed to schedule stats broadcast: %w", err)
	}

	return s, nil
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Job scheduler started")
}

// Stop halts the cron loop, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Job scheduler stopped")
}

// sweepChallenges marks fully-progressed participations of ended challenges
// as complete and awards the completion karma.
func (s *Scheduler) sweepChallenges() {
	participations, err := s.challengeRepo.GetFinishedParticipations()
	if err != nil {
		s.logger.Error("Failed to load finished participations", zap.Error(err))
		return
	}

	for _, p := range participations {
		if err := s.challengeRepo.MarkParticipationComplete(p.ID); err != nil {
			s.logger.Error("Failed to mark participation complete",
				zap.String("participation_id", p.ID),
				zap.Error(err))
			continue
		}

		amount := s.calculator.Calculate("challenge_completion", nil, nil)
		description := "Completed wellness challenge"
		relatedType := "challenge"
		entry := &models.KarmaTransaction{
			UserID:      p.UserID,
			Amount:      amount,
			Reason:      "challenge_completion",
			Description: &description,
			RelatedID:   &p.ChallengeID,
			RelatedType: &relatedType,
		}
		if err := s.karmaRepo.Award(entry); err != nil {
			s.logger.Error("Failed to award challenge karma",
				zap.String("user_id", p.UserID),
				zap.Error(err))
			continue
		}

		s.hub.Broadcast(ws.Event{
			Type: ws.EventWellnessAchievement,
			Data: map[string]interface{}{
				"user_id":      p.UserID,
				"challenge_id": p.ChallengeID,
				"karma_earned": amount,
			},
		})
	}

	if len(participations) > 0 {
		s.logger.Info("Challenge sweep completed", zap.Int("completions", len(participations)))
	}
}

// broadcastStats pushes a global stats snapshot over the live feed.
func (s *Scheduler) broadcastStats() {
	stats, err := s.statsRepo.GetGlobalStats()
	if err != nil {
		s.logger.Error("Failed to load global stats", zap.Error(err))
		return
	}
	s.hub.Broadcast(ws.Event{Type: ws.EventGlobalStats, Data: stats})
}
