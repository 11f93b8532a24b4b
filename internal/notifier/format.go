package notifier

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/interview_scheduler/internal/model"
)

const dateTimeLayout = "02.01.2006 15:04"

// FormatConfirmation текст подтверждения собеседования
func FormatConfirmation(c *model.InterviewConfirmation) string {
	var sb strings.Builder

	sb.WriteString("📅 Назначено собеседование\n\n")
	fmt.Fprintf(&sb, "👤 Кандидат: %s\n", c.Slot.CandidateIdentity)
	fmt.Fprintf(&sb, "💼 Позиция: %s\n", c.Role)
	fmt.Fprintf(&sb, "🕘 Время: %s–%s (UTC+7)\n",
		c.Slot.StartTime.Format(dateTimeLayout),
		c.Slot.EndTime().Format("15:04"),
	)

	if c.MeetingLink != "" {
		fmt.Fprintf(&sb, "🔗 Ссылка: %s\n", c.MeetingLink)
	}
	if c.Passcode != "" {
		fmt.Fprintf(&sb, "🔑 Код доступа: %s\n", c.Passcode)
	}

	fmt.Fprintf(&sb, "\nСобеседования проходят с %02d:00 до %02d:00 (UTC+7).",
		model.BusinessOpenHour, model.BusinessCloseHour)

	return sb.String()
}

// FormatAgenda список собеседований на день
func FormatAgenda(title string, slots []*model.InterviewSlot) string {
	if len(slots) == 0 {
		return title + "\n\nСобеседований нет."
	}

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n")

	for _, s := range slots {
		fmt.Fprintf(&sb, "\n• %s — %s", s.StartTime.Format(dateTimeLayout), s.CandidateIdentity)
	}

	return sb.String()
}
