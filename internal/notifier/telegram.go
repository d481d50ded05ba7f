package notifier

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/malwis/venue_backend/internal/model"
	"go.uber.org/zap"
)

// Telegram уведомляет персонал площадки в админском чате о новых
// бронированиях, отменах и заявках. Необязательный компонент: без токена
// сервис работает, уведомления просто не отправляются.
type Telegram struct {
	bot    *bot.Bot
	chatID int64
	logger *zap.Logger
}

// NewTelegram создаёт нотификатор. Пустой токен или нулевой чат — nil,
// все методы nil-безопасны.
func NewTelegram(token string, chatID int64, logger *zap.Logger) (*Telegram, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}

	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Telegram{
		bot:    b,
		chatID: chatID,
		logger: logger,
	}, nil
}

func (t *Telegram) send(ctx context.Context, text string) {
	if t == nil {
		return
	}

	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: t.chatID,
		Text:   text,
	})
	if err != nil {
		t.logger.Warn("Failed to send staff notification", zap.Error(err))
	}
}

// BookingCreated сообщает о новом бронировании
func (t *Telegram) BookingCreated(ctx context.Context, b *model.Booking) {
	t.send(ctx, fmt.Sprintf(
		"📅 New booking %s\n%s, slot %s (%s)\n%s, %s",
		b.ID, b.Date, b.SlotID, model.SlotLabels[b.SlotID], b.Name, b.Phone,
	))
}

// BookingCancelled сообщает об отмене бронирования
func (t *Telegram) BookingCancelled(ctx context.Context, b *model.Booking) {
	t.send(ctx, fmt.Sprintf(
		"❌ Booking cancelled %s\n%s, slot %s",
		b.ID, b.Date, b.SlotID,
	))
}

// InquiryReceived сообщает о новой заявке с контактной формы
func (t *Telegram) InquiryReceived(ctx context.Context, inq *model.Inquiry) {
	t.send(ctx, fmt.Sprintf(
		"✉️ New inquiry %s\n%s, %s\n%s",
		inq.ID, inq.Name, inq.Email, inq.Message,
	))
}
