package repository

import (
	"context"

	"event-ticketing/internal/model"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)

	// Transaction methods
	IncrementRegistered(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (event_id, name, date, location, capacity, registered_count, price, currency, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, event_id, name, date, location, capacity, registered_count,
			price, currency, status, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		event.EventID, event.Name, event.Date, event.Location,
		event.Capacity, event.RegisteredCount, event.Price, event.Currency, event.Status,
	).Scan(
		&event.ID,
		&event.EventID,
		&event.Name,
		&event.Date,
		&event.Location,
		&event.Capacity,
		&event.RegisteredCount,
		&event.Price,
		&event.Currency,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	query := `
		SELECT id, event_id, name, date, location, capacity, registered_count,
			price, currency, status, created_at, updated_at
		FROM events
		WHERE event_id = $1
	`

	var event model.Event
	err := r.pool.QueryRow(ctx, query, eventID).Scan(
		&event.ID,
		&event.EventID,
		&event.Name,
		&event.Date,
		&event.Location,
		&event.Capacity,
		&event.RegisteredCount,
		&event.Price,
		&event.Currency,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

// IncrementRegistered 條件式遞增報名人數：名額檢查與遞增在同一條 UPDATE 內完成，
// WHERE 條件不成立時不影響任何 row，視為名額已滿
func (r *EventRepositoryImpl) IncrementRegistered(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) error {
	query := `
		UPDATE events
		SET registered_count = registered_count + 1, updated_at = now()
		WHERE event_id = $1 AND status = 'active' AND registered_count < capacity
	`

	result, err := tx.Exec(ctx, query, eventID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCapacityExceeded
	}

	return nil
}
