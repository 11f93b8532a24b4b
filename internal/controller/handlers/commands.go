package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const upcomingDays = 7

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.send(ctx, b, update.Message.Chat.ID, fmt.Sprintf(
		"👋 Бот назначает собеседования кандидатам, прошедшим отбор.\n\n"+
			"Chat ID: %d\n\n"+
			"/help - Справка",
		update.Message.Chat.ID,
	))
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Справка по командам:\n\n" +
		"/schedule <email> <роль> - Назначить собеседование на ближайший свободный час\n" +
		"/upcoming - Собеседования на неделю вперёд\n" +
		"/help - Показать эту справку\n\n" +
		"Собеседования назначаются не раньше завтрашнего дня, с 09:00 до 17:00 (UTC+7)."

	h.send(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleSchedule обрабатывает команду /schedule
func (h *Handlers) HandleSchedule(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireRecruiter(ctx, b, update) {
		return
	}

	h.send(ctx, b, update.Message.Chat.ID, h.schedule(ctx, update.Message.Text))
}

// HandleUpcoming обрабатывает команду /upcoming
func (h *Handlers) HandleUpcoming(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireRecruiter(ctx, b, update) {
		return
	}

	h.send(ctx, b, update.Message.Chat.ID, h.upcoming(ctx))
}

func (h *Handlers) schedule(ctx context.Context, text string) string {
	req, err := parseScheduleArgs(h.validate, text)
	if err != nil {
		return "❌ " + err.Error()
	}

	confirmation, err := h.workflow.ScheduleInterview(ctx, req.Candidate, req.Role)
	if err != nil {
		h.logger.Error("Schedule command failed",
			zap.String("candidate", req.Candidate),
			zap.String("role", req.Role),
			zap.Error(err))
	}

	return scheduleReplyText(confirmation, err)
}

func (h *Handlers) upcoming(ctx context.Context) string {
	slots, err := h.workflow.UpcomingInterviews(ctx, upcomingDays)
	if err != nil {
		h.logger.Error("Failed to list upcoming interviews", zap.Error(err))
		return "❌ Не удалось загрузить расписание. Попробуйте позже."
	}

	return upcomingText(slots)
}
