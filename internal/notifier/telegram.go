package notifier

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/interview_scheduler/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// MessageSender часть *bot.Bot, которая нужна нотификатору
type MessageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// TelegramNotifier отправляет подтверждения в чат рекрутеров
type TelegramNotifier struct {
	sender MessageSender
	chatID int64
	logger *zap.Logger
}

func NewTelegramNotifier(sender MessageSender, chatID int64, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		sender: sender,
		chatID: chatID,
		logger: logger,
	}
}

func (n *TelegramNotifier) NotifyInterviewScheduled(ctx context.Context, c *model.InterviewConfirmation) error {
	if err := n.send(ctx, FormatConfirmation(c)); err != nil {
		return fmt.Errorf("send interview confirmation: %w", err)
	}

	n.logger.Info("Interview confirmation sent",
		zap.Int64("chat_id", n.chatID),
		zap.Int64("slot_id", c.Slot.ID),
	)
	return nil
}

// SendAgenda отправляет список собеседований в чат рекрутеров
func (n *TelegramNotifier) SendAgenda(ctx context.Context, title string, slots []*model.InterviewSlot) error {
	if err := n.send(ctx, FormatAgenda(title, slots)); err != nil {
		return fmt.Errorf("send agenda: %w", err)
	}
	return nil
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	_, err := n.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	return err
}
