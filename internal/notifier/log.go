package notifier

import (
	"context"

	"github.com/Freeeeeet/interview_scheduler/internal/model"
	"go.uber.org/zap"
)

// LogNotifier пишет подтверждения в лог. Используется, когда бот не настроен
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyInterviewScheduled(_ context.Context, c *model.InterviewConfirmation) error {
	n.logger.Info("Interview confirmation",
		zap.String("candidate", c.Slot.CandidateIdentity),
		zap.String("role", c.Role),
		zap.Time("start_time", c.Slot.StartTime),
		zap.String("meeting_link", c.MeetingLink),
	)
	return nil
}

func (n *LogNotifier) SendAgenda(_ context.Context, title string, slots []*model.InterviewSlot) error {
	n.logger.Info(title, zap.Int("interviews", len(slots)))
	for _, s := range slots {
		n.logger.Info("Agenda item",
			zap.Int64("slot_id", s.ID),
			zap.String("candidate", s.CandidateIdentity),
			zap.Time("start_time", s.StartTime),
		)
	}
	return nil
}
