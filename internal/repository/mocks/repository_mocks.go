package mocks

import (
	"context"
	"testing"
	"time"

	"event-ticketing/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MockEventRepository struct {
	mock.Mock
}

func NewMockEventRepository(t *testing.T) *MockEventRepository {
	m := &MockEventRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) IncrementRegistered(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) error {
	args := m.Called(ctx, tx, eventID)
	return args.Error(0)
}

type MockRegistrationRepository struct {
	mock.Mock
}

func NewMockRegistrationRepository(t *testing.T) *MockRegistrationRepository {
	m := &MockRegistrationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRegistrationRepository) Create(ctx context.Context, tx pgx.Tx, registration *model.Registration) (*model.Registration, error) {
	args := m.Called(ctx, tx, registration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) FindByRegistrationID(ctx context.Context, registrationID uuid.UUID) (*model.Registration, error) {
	args := m.Called(ctx, registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.Registration, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) ListByUserID(ctx context.Context, userID string) ([]*model.Registration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) BindPaymentIntent(ctx context.Context, registrationID uuid.UUID, paymentIntentID string) error {
	args := m.Called(ctx, registrationID, paymentIntentID)
	return args.Error(0)
}

func (m *MockRegistrationRepository) ClaimTicket(ctx context.Context, registrationID uuid.UUID, ticketID string) (bool, error) {
	args := m.Called(ctx, registrationID, ticketID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRegistrationRepository) ReleaseTicketClaim(ctx context.Context, registrationID uuid.UUID, ticketID string) error {
	args := m.Called(ctx, registrationID, ticketID)
	return args.Error(0)
}

func (m *MockRegistrationRepository) CompleteTicketIssuance(ctx context.Context, registrationID uuid.UUID, ticketID string) error {
	args := m.Called(ctx, registrationID, ticketID)
	return args.Error(0)
}

type MockTicketRepository struct {
	mock.Mock
}

func NewMockTicketRepository(t *testing.T) *MockTicketRepository {
	m := &MockTicketRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	args := m.Called(ctx, ticket)
	if rf, ok := args.Get(0).(func(context.Context, *model.Ticket) (*model.Ticket, error)); ok {
		return rf(ctx, ticket)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByTicketID(ctx context.Context, ticketID string) (*model.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) MarkUsed(ctx context.Context, ticketID string, usedAt time.Time) (*model.Ticket, error) {
	args := m.Called(ctx, ticketID, usedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}
