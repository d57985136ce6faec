package pipeline

import (
	"context"

	"github.com/rewired-gh/surfbot/internal/config"
	"github.com/rewired-gh/surfbot/internal/logger"
	"github.com/rewired-gh/surfbot/internal/slack"
	"github.com/rewired-gh/surfbot/internal/telegram"
)

type slackNotifier struct {
	client *slack.Client
}

func (n slackNotifier) Name() string { return "slack" }

func (n slackNotifier) Send(ctx context.Context, text string) error {
	return n.client.Send(ctx, text)
}

type telegramNotifier struct {
	client *telegram.Client
}

func (n telegramNotifier) Name() string { return "telegram" }

func (n telegramNotifier) Send(_ context.Context, text string) error {
	return n.client.Send(text)
}

// Notifiers builds a notifier for every enabled sink. A sink that cannot be
// set up is logged, counted as a failed delivery and left out.
func Notifiers(cfg *config.Config, rec FailureRecorder) []Notifier {
	var notifiers []Notifier

	if cfg.Slack.Enabled {
		notifiers = append(notifiers, slackNotifier{client: slack.NewClient(
			cfg.Slack.WebhookURL,
			cfg.Slack.Channel,
			cfg.Slack.Username,
			cfg.Slack.IconEmoji,
			cfg.Slack.Timeout,
		)})
		logger.Debug("Slack notifications enabled")
	}

	if cfg.Telegram.Enabled {
		client, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			logger.Error("Failed to initialize Telegram client: %v", err)
			if rec != nil {
				rec.ObserveNotificationFailure("telegram")
			}
		} else {
			notifiers = append(notifiers, telegramNotifier{client: client})
			logger.Debug("Telegram notifications enabled")
		}
	}

	return notifiers
}
