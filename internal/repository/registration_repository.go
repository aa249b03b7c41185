package repository

import (
	"context"
	"fmt"
	"time"

	"event-ticketing/internal/model"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RegistrationRepository interface {
	FindByRegistrationID(ctx context.Context, registrationID uuid.UUID) (*model.Registration, error)
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.Registration, error)
	ListByUserID(ctx context.Context, userID string) ([]*model.Registration, error)
	BindPaymentIntent(ctx context.Context, registrationID uuid.UUID, paymentIntentID string) error
	ClaimTicket(ctx context.Context, registrationID uuid.UUID, ticketID string) (bool, error)
	ReleaseTicketClaim(ctx context.Context, registrationID uuid.UUID, ticketID string) error
	CompleteTicketIssuance(ctx context.Context, registrationID uuid.UUID, ticketID string) error

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, registration *model.Registration) (*model.Registration, error)
}

type RegistrationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRegistrationRepository(pool *pgxpool.Pool) RegistrationRepository {
	return &RegistrationRepositoryImpl{
		pool: pool,
	}
}

const registrationColumns = `id, registration_id, event_id, user_id, user_name, user_email,
		event_name, event_date, amount, currency, payment_intent_id, payment_status,
		ticket_id, registered_at, updated_at`

func scanRegistration(row pgx.Row) (*model.Registration, error) {
	var registration model.Registration
	err := row.Scan(
		&registration.ID,
		&registration.RegistrationID,
		&registration.EventID,
		&registration.UserID,
		&registration.UserName,
		&registration.UserEmail,
		&registration.EventName,
		&registration.EventDate,
		&registration.Amount,
		&registration.Currency,
		&registration.PaymentIntentID,
		&registration.PaymentStatus,
		&registration.TicketID,
		&registration.RegisteredAt,
		&registration.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

func (r *RegistrationRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, registration *model.Registration) (*model.Registration, error) {
	query := `
		INSERT INTO registrations (
			registration_id, event_id, user_id, user_name, user_email,
			event_name, event_date, amount, currency, payment_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + registrationColumns

	created, err := scanRegistration(tx.QueryRow(ctx, query,
		registration.RegistrationID, registration.EventID, registration.UserID,
		registration.UserName, registration.UserEmail, registration.EventName,
		registration.EventDate, registration.Amount, registration.Currency,
		registration.PaymentStatus,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	return created, nil
}

func (r *RegistrationRepositoryImpl) FindByRegistrationID(ctx context.Context, registrationID uuid.UUID) (*model.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE registration_id = $1
	`

	registration, err := scanRegistration(r.pool.QueryRow(ctx, query, registrationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, err
	}

	return registration, nil
}

func (r *RegistrationRepositoryImpl) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE event_id = $1
		ORDER BY registered_at DESC
	`
	return r.list(ctx, query, eventID)
}

func (r *RegistrationRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]*model.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE user_id = $1
		ORDER BY registered_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *RegistrationRepositoryImpl) list(ctx context.Context, query string, arg interface{}) ([]*model.Registration, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrations := make([]*model.Registration, 0)

	for rows.Next() {
		registration, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, registration)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}

func (r *RegistrationRepositoryImpl) BindPaymentIntent(ctx context.Context, registrationID uuid.UUID, paymentIntentID string) error {
	query := `
		UPDATE registrations
		SET payment_intent_id = $1, payment_status = $2, updated_at = $3
		WHERE registration_id = $4
	`

	result, err := r.pool.Exec(ctx, query, paymentIntentID, model.PaymentStatusPending, time.Now().UTC(), registrationID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// ClaimTicket 以 set-if-absent 認領出票權：ticket_id 已被寫入時不影響任何 row，
// 回傳 false 表示出票權已被先前的請求取得
func (r *RegistrationRepositoryImpl) ClaimTicket(ctx context.Context, registrationID uuid.UUID, ticketID string) (bool, error) {
	query := `
		UPDATE registrations
		SET ticket_id = $1, updated_at = $2
		WHERE registration_id = $3 AND ticket_id IS NULL
	`

	result, err := r.pool.Exec(ctx, query, ticketID, time.Now().UTC(), registrationID)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

// ReleaseTicketClaim 出票失敗時釋放認領，讓重試可以重新出票
func (r *RegistrationRepositoryImpl) ReleaseTicketClaim(ctx context.Context, registrationID uuid.UUID, ticketID string) error {
	query := `
		UPDATE registrations
		SET ticket_id = NULL, updated_at = $1
		WHERE registration_id = $2 AND ticket_id = $3
	`

	_, err := r.pool.Exec(ctx, query, time.Now().UTC(), registrationID, ticketID)
	return err
}

func (r *RegistrationRepositoryImpl) CompleteTicketIssuance(ctx context.Context, registrationID uuid.UUID, ticketID string) error {
	query := `
		UPDATE registrations
		SET ticket_id = $1, payment_status = $2, updated_at = $3
		WHERE registration_id = $4
	`

	result, err := r.pool.Exec(ctx, query, ticketID, model.PaymentStatusCompleted, time.Now().UTC(), registrationID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}
