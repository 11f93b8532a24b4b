package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/interview_scheduler/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrDuplicateSlot на это время уже есть собеседование (сработал UNIQUE на start_time)
	ErrDuplicateSlot = errors.New("interview slot already taken")
	// ErrOutsideBusinessHours ошибка вызывающего кода: слот вне 09:00–17:00
	ErrOutsideBusinessHours = errors.New("slot start is outside business hours")
	// ErrConnection не удалось получить соединение с БД
	ErrConnection = errors.New("database connection unavailable")
)

type InterviewSlotRepository struct {
	pool  *pgxpool.Pool
	hours model.BusinessHours
}

func NewInterviewSlotRepository(pool *pgxpool.Pool, hours model.BusinessHours) *InterviewSlotRepository {
	return &InterviewSlotRepository{pool: pool, hours: hours}
}

// acquire берёт соединение из пула на время одной операции.
// Вызывающий обязан вызвать release через defer.
func (r *InterviewSlotRepository) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return conn, nil
}

// CountAt количество слотов, начинающихся ровно в startTime
func (r *InterviewSlotRepository) CountAt(ctx context.Context, startTime time.Time) (int, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	query := `SELECT COUNT(*) FROM interview_slots WHERE start_time = $1`

	var count int
	if err := conn.QueryRow(ctx, query, startTime).Scan(&count); err != nil {
		return 0, fmt.Errorf("count slots at %s: %w", startTime.Format(time.RFC3339), err)
	}

	return count, nil
}

// Insert бронирует слот. UNIQUE (start_time) гарантирует отсутствие двойной записи
func (r *InterviewSlotRepository) Insert(ctx context.Context, candidate string, startTime time.Time) (*model.InterviewSlot, error) {
	if !r.hours.Contains(startTime) {
		return nil, fmt.Errorf("%w: %s", ErrOutsideBusinessHours, startTime.Format(time.RFC3339))
	}

	conn, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		INSERT INTO interview_slots (candidate_email, start_time)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	slot := &model.InterviewSlot{
		CandidateIdentity: candidate,
		StartTime:         startTime.In(r.hours.Location),
	}

	err = conn.QueryRow(ctx, query, candidate, startTime).Scan(&slot.ID, &slot.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlot, startTime.Format(time.RFC3339))
		}
		return nil, fmt.Errorf("insert interview slot: %w", err)
	}

	slot.CreatedAt = slot.CreatedAt.In(r.hours.Location)

	return slot, nil
}

// ListBetween слоты с началом в [from, to), по возрастанию времени
func (r *InterviewSlotRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*model.InterviewSlot, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, candidate_email, start_time, created_at
		FROM interview_slots
		WHERE start_time >= $1
		  AND start_time < $2
		ORDER BY start_time
	`

	rows, err := conn.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list interview slots: %w", err)
	}
	defer rows.Close()

	var slots []*model.InterviewSlot
	for rows.Next() {
		var slot model.InterviewSlot
		err := rows.Scan(
			&slot.ID,
			&slot.CandidateIdentity,
			&slot.StartTime,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan interview slot: %w", err)
		}
		slot.StartTime = slot.StartTime.In(r.hours.Location)
		slot.CreatedAt = slot.CreatedAt.In(r.hours.Location)
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interview slots: %w", err)
	}

	return slots, nil
}

// Count общее количество забронированных слотов
func (r *InterviewSlotRepository) Count(ctx context.Context) (int64, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var count int64
	if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM interview_slots`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count interview slots: %w", err)
	}

	return count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
