package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/interview_scheduler/internal/model"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=service

// SlotStore хранилище слотов собеседований
type SlotStore interface {
	CountAt(ctx context.Context, startTime time.Time) (int, error)
	Insert(ctx context.Context, candidate string, startTime time.Time) (*model.InterviewSlot, error)
}

// SlotLister выборка забронированных слотов за период
type SlotLister interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]*model.InterviewSlot, error)
}

// SlotScheduler находит и бронирует ближайший свободный слот
type SlotScheduler interface {
	FindAndReserveSlot(ctx context.Context, candidate, role string) (*model.InterviewSlot, error)
}

// Notifier отправляет подтверждение о назначенном собеседовании
type Notifier interface {
	NotifyInterviewScheduled(ctx context.Context, confirmation *model.InterviewConfirmation) error
}

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock часы на основе time.Now
func SystemClock() Clock {
	return systemClock{}
}
