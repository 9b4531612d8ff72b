package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"wellspring/internal/config"
	"wellspring/internal/models"
)

// CrisisAlerter pushes critical crisis incidents to an on-call care channel.
// A nil alerter is valid and does nothing, so callers never need to check the
// enabled flag themselves.
type CrisisAlerter struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewCrisisAlerter creates the alert bot. Returns (nil, nil) when alerts are
// disabled or no token is configured.
func NewCrisisAlerter(cfg *config.Config, logger *zap.Logger) (*CrisisAlerter, error) {
	if !cfg.Alerts.Enabled || cfg.Alerts.TelegramBotToken == "" {
		logger.Info("Crisis alert bot is disabled (alerts.enabled=false or token is empty)")
		return nil, nil
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Alerts.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}

	logger.Info("Crisis alert bot authorized", zap.String("username", botAPI.Self.UserName))

	return &CrisisAlerter{
		api:    botAPI,
		chatID: cfg.Alerts.TelegramChatID,
		logger: logger,
	}, nil
}

// AlertIncident notifies the care channel about a new critical incident.
// Failures are logged, never propagated - alerting must not break the
// user-facing crisis flow.
func (a *CrisisAlerter) AlertIncident(incident *models.CrisisIncident) {
	if a == nil {
		return
	}

	text := fmt.Sprintf(
		"🚨 Critical crisis incident\n\nIncident: %s\nSeverity: %s\nType: %s\nFollow-up required: %t\nCreated: %s",
		incident.ID,
		incident.Severity,
		incident.Type,
		incident.FollowUpRequired,
		incident.CreatedAt.Format("2006-01-02 15:04:05 MST"),
	)

	msg := tgbotapi.NewMessage(a.chatID, text)
	if _, err := a.api.Send(msg); err != nil {
		a.logger.Error("Failed to send crisis alert",
			zap.String("incident_id", incident.ID),
			zap.Error(err))
	}
}
