package service

import "errors"

var (
	// ErrInvalidRequest пустой кандидат или роль
	ErrInvalidRequest = errors.New("invalid scheduling request")
	// ErrStorageUnavailable хранилище недоступно; слот точно не забронирован
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrSchedulingConflict исчерпаны повторы после конфликтов при вставке
	ErrSchedulingConflict = errors.New("scheduling conflict")
	// ErrNoAvailabilityFound не нашли свободный час за MaxScanDays дней
	ErrNoAvailabilityFound = errors.New("no interview availability found")
	// ErrNotificationFailed слот забронирован, но уведомление не отправлено
	ErrNotificationFailed = errors.New("interview notification failed")
)
