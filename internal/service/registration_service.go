package service

import (
	"context"
	"time"

	"event-ticketing/internal/model"
	"event-ticketing/internal/repository"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RegistrationService interface {
	// 建立報名：名額檢查與遞增由條件式 UPDATE 在同一交易內完成
	CreateRegistration(ctx context.Context, eventID uuid.UUID, requester model.Requester) (*model.Registration, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Registration, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Registration, error)
}

type RegistrationServiceImpl struct {
	pool       *pgxpool.Pool
	events     repository.EventRepository
	repository repository.RegistrationRepository
}

func NewRegistrationService(
	pool *pgxpool.Pool,
	events repository.EventRepository,
	registrations repository.RegistrationRepository,
) RegistrationService {
	return &RegistrationServiceImpl{
		pool:       pool,
		events:     events,
		repository: registrations,
	}
}

func (s *RegistrationServiceImpl) CreateRegistration(ctx context.Context, eventID uuid.UUID, requester model.Requester) (*model.Registration, error) {
	if requester.UserID == "" {
		return nil, apperrors.ErrInvalidInput
	}

	event, err := s.events.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != model.EventStatusActive {
		return nil, apperrors.ErrEventNotActive
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 條件式遞增：registered_count >= capacity 時不命中任何 row，回傳 ErrCapacityExceeded
	if err := s.events.IncrementRegistered(ctx, tx, eventID); err != nil {
		return nil, err
	}

	registration := &model.Registration{
		RegistrationID: uuid.New(),
		EventID:        event.EventID,
		UserID:         requester.UserID,
		UserName:       requester.Name,
		UserEmail:      requester.Email,
		EventName:      event.Name,
		EventDate:      event.Date,
		Amount:         event.Price,
		Currency:       event.Currency,
		PaymentStatus:  model.PaymentStatusPending,
		RegisteredAt:   time.Now().UTC(),
	}

	created, err := s.repository.Create(ctx, tx, registration)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *RegistrationServiceImpl) ListByUser(ctx context.Context, userID string) ([]*model.Registration, error) {
	if userID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repository.ListByUserID(ctx, userID)
}

func (s *RegistrationServiceImpl) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Registration, error) {
	if _, err := s.events.FindByEventID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.repository.ListByEventID(ctx, eventID)
}
