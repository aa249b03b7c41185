package repository

import (
	"context"
	"time"

	"event-ticketing/internal/model"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	FindByTicketID(ctx context.Context, ticketID string) (*model.Ticket, error)
	MarkUsed(ctx context.Context, ticketID string, usedAt time.Time) (*model.Ticket, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

const ticketColumns = `ticket_id, registration_id, event_id, user_id, event_name,
		attendee_name, attendee_email, qr_payload, status, artifact_key, issued_at, used_at`

func scanTicket(row pgx.Row) (*model.Ticket, error) {
	var ticket model.Ticket
	err := row.Scan(
		&ticket.TicketID,
		&ticket.RegistrationID,
		&ticket.EventID,
		&ticket.UserID,
		&ticket.EventName,
		&ticket.AttendeeName,
		&ticket.AttendeeEmail,
		&ticket.QRPayload,
		&ticket.Status,
		&ticket.ArtifactKey,
		&ticket.IssuedAt,
		&ticket.UsedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		INSERT INTO tickets (
			ticket_id, registration_id, event_id, user_id, event_name,
			attendee_name, attendee_email, qr_payload, status, artifact_key, issued_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + ticketColumns

	created, err := scanTicket(r.pool.QueryRow(ctx, query,
		ticket.TicketID, ticket.RegistrationID, ticket.EventID, ticket.UserID,
		ticket.EventName, ticket.AttendeeName, ticket.AttendeeEmail,
		ticket.QRPayload, ticket.Status, ticket.ArtifactKey, ticket.IssuedAt,
	))
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *TicketRepositoryImpl) FindByTicketID(ctx context.Context, ticketID string) (*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE ticket_id = $1
	`

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, ticketID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return ticket, nil
}

// MarkUsed 單一條件式 UPDATE 完成 valid → used 的轉換，兩次並發掃描只會有一次成功。
// 沒有命中任何 row 時回查票券，區分「票不存在」與「已被使用」
func (r *TicketRepositoryImpl) MarkUsed(ctx context.Context, ticketID string, usedAt time.Time) (*model.Ticket, error) {
	query := `
		UPDATE tickets
		SET status = $1, used_at = $2
		WHERE ticket_id = $3 AND status = $4
		RETURNING ` + ticketColumns

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query,
		model.TicketStatusUsed, usedAt, ticketID, model.TicketStatusValid,
	))
	if err == nil {
		return ticket, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}

	existing, findErr := r.FindByTicketID(ctx, ticketID)
	if findErr != nil {
		return nil, findErr
	}

	return existing, apperrors.ErrTicketAlreadyUsed
}
