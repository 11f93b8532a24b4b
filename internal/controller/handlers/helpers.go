package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Freeeeeet/interview_scheduler/internal/model"
	"github.com/Freeeeeet/interview_scheduler/internal/notifier"
	"github.com/Freeeeeet/interview_scheduler/internal/service"
)

var errUsage = errors.New("usage: /schedule <email> <role>")

// scheduleRequest аргументы команды /schedule; длина email ограничена колонкой candidate_email
type scheduleRequest struct {
	Candidate string `validate:"required,email,max=255"`
	Role      string `validate:"required,max=100"`
}

// parseScheduleArgs разбирает "/schedule alice@example.com backend engineer".
// Роль может состоять из нескольких слов.
func parseScheduleArgs(validate *validator.Validate, text string) (*scheduleRequest, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return nil, errUsage
	}

	req := &scheduleRequest{
		Candidate: fields[1],
		Role:      strings.Join(fields[2:], " "),
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("invalid %s %q", strings.ToLower(verrs[0].Field()), verrs[0].Value())
		}
		return nil, err
	}

	return req, nil
}

// scheduleReplyText ответ рекрутеру по результату ScheduleInterview
func scheduleReplyText(c *model.InterviewConfirmation, err error) string {
	switch {
	case err == nil:
		return "✅ " + notifier.FormatConfirmation(c)
	case errors.Is(err, service.ErrNotificationFailed) && c != nil:
		return "⚠️ Собеседование назначено, но уведомление не отправлено.\n\n" + notifier.FormatConfirmation(c)
	case errors.Is(err, service.ErrNoAvailabilityFound):
		return "❌ Свободных слотов не найдено. Нужно назначить собеседование вручную."
	default:
		return "❌ Не удалось назначить собеседование. Попробуйте ещё раз."
	}
}

func upcomingText(slots []*model.InterviewSlot) string {
	return notifier.FormatAgenda("🗓 Ближайшие собеседования:", slots)
}
