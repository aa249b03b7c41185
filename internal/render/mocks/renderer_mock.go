package mocks

import (
	"context"
	"testing"

	"event-ticketing/internal/render"

	"github.com/stretchr/testify/mock"
)

type MockTicketRenderer struct {
	mock.Mock
}

func NewMockTicketRenderer(t *testing.T) *MockTicketRenderer {
	m := &MockTicketRenderer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTicketRenderer) Render(ctx context.Context, data render.TicketData) ([]byte, string, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
