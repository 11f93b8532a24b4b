package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// isRecruiterChat команды планирования доступны только из чата рекрутеров
func (h *Handlers) isRecruiterChat(chatID int64) bool {
	return h.recruiterChatID == 0 || chatID == h.recruiterChatID
}

// requireRecruiter проверяет что команда пришла из чата рекрутеров
func (h *Handlers) requireRecruiter(ctx context.Context, b *bot.Bot, update *models.Update) bool {
	if update.Message == nil {
		return false
	}

	if !h.isRecruiterChat(update.Message.Chat.ID) {
		h.logger.Warn("Command from foreign chat",
			zap.Int64("chat_id", update.Message.Chat.ID),
			zap.String("text", update.Message.Text))
		h.send(ctx, b, update.Message.Chat.ID, "❌ Эта команда доступна только в чате рекрутеров.")
		return false
	}

	return true
}

// send отправляет сообщение и логирует если не удалось
func (h *Handlers) send(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
