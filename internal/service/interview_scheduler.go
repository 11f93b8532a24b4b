package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/interview_scheduler/internal/metrics"
	"github.com/Freeeeeet/interview_scheduler/internal/model"
	"github.com/Freeeeeet/interview_scheduler/internal/repository"
	"go.uber.org/zap"
)

const (
	DefaultMaxScanDays        = 365
	DefaultMaxConflictRetries = 3
)

// SchedulerConfig ограничения поиска свободного слота
type SchedulerConfig struct {
	// MaxScanDays сколько дней вперёд (начиная с завтра) просматриваем
	MaxScanDays int
	// MaxConflictRetries сколько раз повторяем поиск после конфликта на вставке
	MaxConflictRetries int
}

type InterviewScheduler struct {
	store   SlotStore
	hours   model.BusinessHours
	clock   Clock
	cfg     SchedulerConfig
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewInterviewScheduler(
	store SlotStore,
	hours model.BusinessHours,
	clock Clock,
	cfg SchedulerConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) *InterviewScheduler {
	if cfg.MaxScanDays <= 0 {
		cfg.MaxScanDays = DefaultMaxScanDays
	}
	if cfg.MaxConflictRetries <= 0 {
		cfg.MaxConflictRetries = DefaultMaxConflictRetries
	}
	if clock == nil {
		clock = SystemClock()
	}

	return &InterviewScheduler{
		store:   store,
		hours:   hours,
		clock:   clock,
		cfg:     cfg,
		metrics: m,
		logger:  logger,
	}
}

// FindAndReserveSlot бронирует ближайший свободный час в рабочее время, начиная с завтрашнего дня.
// Роль используется только для логов.
func (s *InterviewScheduler) FindAndReserveSlot(ctx context.Context, candidate, role string) (*model.InterviewSlot, error) {
	candidate = strings.TrimSpace(candidate)
	role = strings.TrimSpace(role)

	if candidate == "" || role == "" {
		s.metrics.SchedulingFailed(metrics.ReasonInvalidRequest)
		return nil, fmt.Errorf("%w: candidate and role are required", ErrInvalidRequest)
	}

	// Сегодня никогда не назначаем
	firstDay := s.hours.NextDay(s.clock.Now())
	from := s.hours.SlotAt(firstDay, s.hours.OpenHour)

	for attempt := 0; ; attempt++ {
		start, err := s.findFreeSlot(ctx, firstDay, from)
		if err != nil {
			s.fail(err, candidate, role)
			return nil, err
		}

		slot, err := s.store.Insert(ctx, candidate, start)
		if err == nil {
			leadDays := int(start.Sub(firstDay).Hours() / 24)
			s.metrics.SlotReserved(leadDays)

			s.logger.Info("Interview slot reserved",
				zap.Int64("slot_id", slot.ID),
				zap.String("candidate", candidate),
				zap.String("role", role),
				zap.Time("start_time", slot.StartTime),
				zap.Int("attempt", attempt+1),
			)
			return slot, nil
		}

		if !errors.Is(err, repository.ErrDuplicateSlot) {
			if errors.Is(err, repository.ErrOutsideBusinessHours) {
				// Сюда попасть нельзя: поиск генерирует только часы из [Open, Close)
				return nil, fmt.Errorf("reserve slot: %w", err)
			}
			err = fmt.Errorf("%w: reserve slot: %w", ErrStorageUnavailable, err)
			s.fail(err, candidate, role)
			return nil, err
		}

		// Кто-то успел занять этот час между проверкой и вставкой
		s.metrics.InsertConflict()
		s.logger.Warn("Interview slot taken concurrently, searching again",
			zap.String("candidate", candidate),
			zap.Time("start_time", start),
			zap.Int("attempt", attempt+1),
		)

		if attempt >= s.cfg.MaxConflictRetries {
			err = fmt.Errorf("%w: %d retries exhausted at %s",
				ErrSchedulingConflict, s.cfg.MaxConflictRetries, start.Format(time.RFC3339))
			s.fail(err, candidate, role)
			return nil, err
		}

		// Продолжаем с того же часа: он уже занят и будет пропущен проверкой
		from = start
	}
}

// findFreeSlot ищет первый час без брони, начиная с from.
// firstDay фиксирует границу MaxScanDays, чтобы повторы не сдвигали её.
func (s *InterviewScheduler) findFreeSlot(ctx context.Context, firstDay, from time.Time) (time.Time, error) {
	limit := firstDay.AddDate(0, 0, s.cfg.MaxScanDays)
	day := s.hours.SlotAt(from, 0)

	for ; day.Before(limit); day = day.AddDate(0, 0, 1) {
		for _, hour := range s.hours.Hours() {
			start := s.hours.SlotAt(day, hour)
			if start.Before(from) {
				continue
			}

			count, err := s.store.CountAt(ctx, start)
			if err != nil {
				return time.Time{}, fmt.Errorf("%w: check slot %s: %w",
					ErrStorageUnavailable, start.Format(time.RFC3339), err)
			}

			if count == 0 {
				return start, nil
			}
		}
	}

	return time.Time{}, fmt.Errorf("%w: scanned %d days from %s",
		ErrNoAvailabilityFound, s.cfg.MaxScanDays, firstDay.Format("2006-01-02"))
}

func (s *InterviewScheduler) fail(err error, candidate, role string) {
	reason := metrics.ReasonStorage
	switch {
	case errors.Is(err, ErrNoAvailabilityFound):
		reason = metrics.ReasonNoAvailability
	case errors.Is(err, ErrSchedulingConflict):
		reason = metrics.ReasonConflict
	}
	s.metrics.SchedulingFailed(reason)

	s.logger.Error("Failed to schedule interview",
		zap.String("candidate", candidate),
		zap.String("role", role),
		zap.String("reason", reason),
		zap.Error(err),
	)
}
