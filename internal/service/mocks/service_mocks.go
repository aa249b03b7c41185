package mocks

import (
	"context"
	"testing"

	"event-ticketing/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockEventService struct {
	mock.Mock
}

func NewMockEventService(t *testing.T) *MockEventService {
	m := &MockEventService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEventService) Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

type MockRegistrationService struct {
	mock.Mock
}

func NewMockRegistrationService(t *testing.T) *MockRegistrationService {
	m := &MockRegistrationService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRegistrationService) CreateRegistration(ctx context.Context, eventID uuid.UUID, requester model.Requester) (*model.Registration, error) {
	args := m.Called(ctx, eventID, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Registration), args.Error(1)
}

func (m *MockRegistrationService) ListByUser(ctx context.Context, userID string) ([]*model.Registration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Registration), args.Error(1)
}

func (m *MockRegistrationService) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Registration, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Registration), args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func NewMockPaymentService(t *testing.T) *MockPaymentService {
	m := &MockPaymentService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPaymentService) CreatePaymentIntent(ctx context.Context, req model.CreatePaymentIntentRequest) (*model.PaymentIntentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentIntentResponse), args.Error(1)
}

type MockIssuanceService struct {
	mock.Mock
}

func NewMockIssuanceService(t *testing.T) *MockIssuanceService {
	m := &MockIssuanceService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIssuanceService) IssueTicket(ctx context.Context, registrationID uuid.UUID, eventID uuid.UUID) (*model.Ticket, bool, error) {
	args := m.Called(ctx, registrationID, eventID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Ticket), args.Bool(1), args.Error(2)
}

type MockValidationService struct {
	mock.Mock
}

func NewMockValidationService(t *testing.T) *MockValidationService {
	m := &MockValidationService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockValidationService) ValidateTicket(ctx context.Context, identifier string) (*model.ValidationResult, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ValidationResult), args.Error(1)
}

type MockRetrievalService struct {
	mock.Mock
}

func NewMockRetrievalService(t *testing.T) *MockRetrievalService {
	m := &MockRetrievalService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRetrievalService) GetDownloadHandle(ctx context.Context, ticketID string) (*model.DownloadHandle, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DownloadHandle), args.Error(1)
}
