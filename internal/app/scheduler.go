package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Freeeeeet/interview_scheduler/internal/model"
	"go.uber.org/zap"
)

type agendaSource interface {
	InterviewsOn(ctx context.Context, day time.Time) ([]*model.InterviewSlot, error)
	Tomorrow() time.Time
}

type agendaSender interface {
	SendAgenda(ctx context.Context, title string, slots []*model.InterviewSlot) error
}

// Scheduler фоновая рассылка повестки: раз в interval отправляет рекрутерам собеседования на завтра.
// Слоты он не бронирует.
type Scheduler struct {
	source   agendaSource
	sender   agendaSender
	interval time.Duration
	logger   *zap.Logger

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(source agendaSource, sender agendaSender, interval time.Duration, logger *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	return &Scheduler{
		source:   source,
		sender:   sender,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start запускает фоновую задачу
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting agenda scheduler", zap.Duration("interval", s.interval))

	go s.runAgendaTask(ctx)
}

// Stop останавливает задачу и ждёт её завершения
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping agenda scheduler")
		close(s.stopChan)
	})
	<-s.done
}

func (s *Scheduler) runAgendaTask(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.sendAgenda(ctx); err != nil {
				s.logger.Error("Failed to send agenda", zap.Error(err))
			}
		case <-s.stopChan:
			s.logger.Info("Agenda task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Agenda task cancelled")
			return
		}
	}
}

// sendAgenda отправляет список собеседований на завтра
func (s *Scheduler) sendAgenda(ctx context.Context) error {
	day := s.source.Tomorrow()

	slots, err := s.source.InterviewsOn(ctx, day)
	if err != nil {
		return fmt.Errorf("load agenda: %w", err)
	}

	title := fmt.Sprintf("🗓 Собеседования на %s", day.Format("02.01.2006"))
	if err := s.sender.SendAgenda(ctx, title, slots); err != nil {
		return err
	}

	s.logger.Info("Agenda sent",
		zap.Time("day", day),
		zap.Int("interviews", len(slots)),
	)
	return nil
}
