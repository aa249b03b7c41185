package service

import (
	"context"

	"event-ticketing/internal/model"
	"event-ticketing/internal/repository"

	"github.com/google/uuid"
)

type EventService interface {
	Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
}

type EventServiceImpl struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &EventServiceImpl{repo: repo}
}

func (s *EventServiceImpl) Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	event := &model.Event{
		EventID:         uuid.New(),
		Name:            req.Name,
		Date:            req.Date,
		Location:        req.Location,
		Capacity:        req.Capacity,
		RegisteredCount: 0,
		Price:           req.Price,
		Currency:        currency,
		Status:          model.EventStatusActive,
	}
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	return s.repo.FindByEventID(ctx, eventID)
}
