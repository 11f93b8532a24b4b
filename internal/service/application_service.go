package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/interview_scheduler/internal/metrics"
	"github.com/Freeeeeet/interview_scheduler/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MeetingConfig единственная пара ссылка/пароль для всех собеседований
type MeetingConfig struct {
	Link     string
	Passcode string
}

// ApplicationService доводит одобренного кандидата до назначенного собеседования:
// бронирует слот и передаёт подтверждение в нотификатор.
type ApplicationService struct {
	scheduler SlotScheduler
	lister    SlotLister
	notifier  Notifier
	meeting   MeetingConfig
	hours     model.BusinessHours
	clock     Clock
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewApplicationService(
	scheduler SlotScheduler,
	lister SlotLister,
	notifier Notifier,
	meeting MeetingConfig,
	hours model.BusinessHours,
	clock Clock,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ApplicationService {
	if clock == nil {
		clock = SystemClock()
	}

	return &ApplicationService{
		scheduler: scheduler,
		lister:    lister,
		notifier:  notifier,
		meeting:   meeting,
		hours:     hours,
		clock:     clock,
		metrics:   m,
		logger:    logger,
	}
}

// ScheduleInterview назначает собеседование кандидату и уведомляет о нём.
// Если слот забронирован, а уведомление не ушло, возвращается и подтверждение, и ErrNotificationFailed.
func (s *ApplicationService) ScheduleInterview(ctx context.Context, candidate, role string) (*model.InterviewConfirmation, error) {
	logger := s.logger.With(zap.String("request_id", uuid.NewString()))

	logger.Info("Scheduling interview",
		zap.String("candidate", candidate),
		zap.String("role", role),
	)

	slot, err := s.scheduler.FindAndReserveSlot(ctx, candidate, role)
	if err != nil {
		logger.Error("Interview was not scheduled",
			zap.String("candidate", candidate),
			zap.Error(err),
		)
		return nil, fmt.Errorf("schedule interview: %w", err)
	}

	confirmation := &model.InterviewConfirmation{
		Slot:        slot,
		Role:        role,
		MeetingLink: s.meeting.Link,
		Passcode:    s.meeting.Passcode,
	}

	if err := s.notifier.NotifyInterviewScheduled(ctx, confirmation); err != nil {
		s.metrics.NotificationFailed()
		logger.Error("Failed to send interview confirmation",
			zap.Int64("slot_id", slot.ID),
			zap.Error(err),
		)
		return confirmation, fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	logger.Info("Interview scheduled",
		zap.Int64("slot_id", slot.ID),
		zap.Time("start_time", slot.StartTime),
	)

	return confirmation, nil
}

// UpcomingInterviews собеседования на ближайшие days дней, включая сегодня
func (s *ApplicationService) UpcomingInterviews(ctx context.Context, days int) ([]*model.InterviewSlot, error) {
	if days <= 0 {
		days = 1
	}

	today := s.hours.NextDay(s.clock.Now()).AddDate(0, 0, -1)

	slots, err := s.lister.ListBetween(ctx, today, today.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("list upcoming interviews: %w", err)
	}

	return slots, nil
}

// InterviewsOn собеседования на конкретный день
func (s *ApplicationService) InterviewsOn(ctx context.Context, day time.Time) ([]*model.InterviewSlot, error) {
	from := s.hours.SlotAt(day, 0)

	slots, err := s.lister.ListBetween(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list interviews on %s: %w", from.Format("2006-01-02"), err)
	}

	return slots, nil
}

// Tomorrow полночь завтрашнего дня в рабочей зоне
func (s *ApplicationService) Tomorrow() time.Time {
	return s.hours.NextDay(s.clock.Now())
}
