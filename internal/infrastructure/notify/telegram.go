package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"delta-detect/internal/domain/port"
)

// TelegramNotifier pushes frame alerts to a Telegram chat.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier authorizes the bot for the given token.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &TelegramNotifier{api: api, chatID: chatID}, nil
}

// Notify sends the alert message to the configured chat.
func (n *TelegramNotifier) Notify(ctx context.Context, message string) error {
	_ = ctx
	msg := tgbotapi.NewMessage(n.chatID, "⚠️ "+message)
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send alert: %w", err)
	}
	return nil
}

var _ port.AlertNotifier = (*TelegramNotifier)(nil)
