package notify

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Telegram posts order notifications to a Telegram chat through the Bot API.
type Telegram struct {
	chatID string
	client *resty.Client
}

// NewTelegram creates a notifier for the given bot token and chat.
func NewTelegram(botToken, chatID string) *Telegram {
	return &Telegram{
		chatID: chatID,
		client: resty.New().SetBaseURL("https://api.telegram.org/bot" + botToken),
	}
}

// OrderCreated reports an accepted order.
func (t *Telegram) OrderCreated(orderNumber, amount, currency, status string) error {
	text := fmt.Sprintf(
		"🧾 New order\n\nOrder: %s\nAmount: %s %s\nStatus: %s",
		orderNumber, amount, currency, status,
	)
	return t.send(text)
}

func (t *Telegram) send(text string) error {
	resp, err := t.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"chat_id":    t.chatID,
			"text":       text,
			"parse_mode": "HTML",
		}).
		Post("/sendMessage")
	if err != nil {
		return fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("telegram sendMessage returned %s", resp.Status())
	}
	return nil
}
