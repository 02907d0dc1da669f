package services

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lumistudio/backend-studio/models"
)

// TelegramNotifier sends new-booking messages to the studio's admin chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) BookingCreated(req models.SubmitBookingRequest) error {
	text := fmt.Sprintf("New booking: %s %s\n%s\n%s / %s", req.Date, req.Time, req.Name, req.Email, req.Phone)
	if req.Request != "" {
		text += "\n\n" + req.Request
	}
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
