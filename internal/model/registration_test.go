package model_test

import (
	"testing"

	"event-ticketing/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusTransitions(t *testing.T) {
	t.Run("pending 可以向前轉換", func(t *testing.T) {
		assert.True(t, model.PaymentStatusPending.CanTransitionTo(model.PaymentStatusCompleted))
		assert.True(t, model.PaymentStatusPending.CanTransitionTo(model.PaymentStatusFailed))
	})

	t.Run("終態不可再轉換", func(t *testing.T) {
		assert.False(t, model.PaymentStatusCompleted.CanTransitionTo(model.PaymentStatusPending))
		assert.False(t, model.PaymentStatusCompleted.CanTransitionTo(model.PaymentStatusFailed))
		assert.False(t, model.PaymentStatusFailed.CanTransitionTo(model.PaymentStatusCompleted))
	})
}

func TestRegistrationHasTicket(t *testing.T) {
	ticketID := "TKT-1765432100000-abcd1234"
	empty := ""

	assert.False(t, (&model.Registration{}).HasTicket())
	assert.False(t, (&model.Registration{TicketID: &empty}).HasTicket())
	assert.True(t, (&model.Registration{TicketID: &ticketID}).HasTicket())
}

func TestEventIsFull(t *testing.T) {
	assert.False(t, (&model.Event{Capacity: 100, RegisteredCount: 99}).IsFull())
	assert.True(t, (&model.Event{Capacity: 100, RegisteredCount: 100}).IsFull())
}
