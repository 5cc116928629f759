package messaging

import (
	"context"
	"os"
	"strconv"
	"strings"

	"entregaswoo/internal/usecase/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrMissingTelegramBotToken = errors.New("missing TELEGRAM_BOT_TOKEN")
var ErrTelegramNotConfigured = errors.New("telegram notifier not configured")

// TelegramNotifier delivers order notifications through the Telegram Bot
// API. With NOTIFIER_MOCK enabled it only logs the message, which keeps
// local runs and CI free of bot credentials.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	mockMode bool
}

var _ interfaces.INotifier = (*TelegramNotifier)(nil)

func NewTelegramNotifier(botToken string) (*TelegramNotifier, error) {
	if isNotifierMockEnabled() {
		log.Info("telegram notifier: mock mode enabled")
		return &TelegramNotifier{mockMode: true}, nil
	}

	if botToken == "" {
		return nil, ErrMissingTelegramBotToken
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, errors.Wrap(err, "initializing telegram bot api")
	}
	log.WithField("bot", bot.Self.UserName).Info("telegram notifier initialized")

	return &TelegramNotifier{bot: bot}, nil
}

func (n *TelegramNotifier) Send(_ context.Context, chatID string, text string) error {
	if n != nil && n.mockMode {
		log.WithFields(log.Fields{"chat_id": chatID, "len": len(text)}).Info("telegram notifier: mock send")
		return nil
	}
	if n == nil || n.bot == nil {
		return ErrTelegramNotConfigured
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid telegram chat id %q", chatID)
	}

	msg := tgbotapi.NewMessage(id, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.bot.Send(msg); err != nil {
		return errors.Wrapf(err, "sending telegram message to chat %s", chatID)
	}
	return nil
}

func isNotifierMockEnabled() bool {
	for _, key := range []string{"NOTIFIER_MOCK", "TELEGRAM_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
