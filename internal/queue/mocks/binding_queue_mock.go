package mocks

import (
	"context"
	"testing"

	"event-ticketing/internal/queue"

	"github.com/stretchr/testify/mock"
)

type MockBindingQueue struct {
	mock.Mock
}

func NewMockBindingQueue(t *testing.T) *MockBindingQueue {
	m := &MockBindingQueue{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBindingQueue) PublishBinding(ctx context.Context, binding *queue.IntentBinding) error {
	args := m.Called(ctx, binding)
	return args.Error(0)
}

func (m *MockBindingQueue) SubscribeBindings(ctx context.Context) (<-chan queue.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan queue.Delivery), args.Error(1)
}
