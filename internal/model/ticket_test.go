package model_test

import (
	"regexp"
	"testing"
	"time"

	"event-ticketing/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketID(t *testing.T) {
	pattern := regexp.MustCompile(`^TKT-\d+-[0-9a-f]{8}$`)

	t.Run("Format", func(t *testing.T) {
		id := model.NewTicketID()
		assert.Regexp(t, pattern, id)
	})

	t.Run("Unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := model.NewTicketID()
			assert.False(t, seen[id], "duplicate ticket id: %s", id)
			seen[id] = true
		}
	})
}

func TestQRPayload(t *testing.T) {
	t.Run("Encode and Parse", func(t *testing.T) {
		eventID := uuid.New()
		issuedAt := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

		encoded, err := model.QRPayload{
			TicketID: "TKT-1765432100000-abcd1234",
			EventID:  eventID,
			UserID:   "user-42",
			IssuedAt: issuedAt,
		}.Encode()
		require.NoError(t, err)
		assert.Contains(t, encoded, `"ticketId":"TKT-1765432100000-abcd1234"`)
		assert.Contains(t, encoded, `"userId":"user-42"`)

		payload, ok := model.ParseQRPayload(encoded)
		require.True(t, ok)
		assert.Equal(t, "TKT-1765432100000-abcd1234", payload.TicketID)
		assert.Equal(t, eventID, payload.EventID)
		assert.Equal(t, "user-42", payload.UserID)
		assert.True(t, payload.IssuedAt.Equal(issuedAt))
	})

	t.Run("Parse - 非 JSON 輸入視為原始票券 ID", func(t *testing.T) {
		_, ok := model.ParseQRPayload("TKT-1765432100000-abcd1234")
		assert.False(t, ok)
	})

	t.Run("Parse - 缺少 ticketId 的 JSON", func(t *testing.T) {
		_, ok := model.ParseQRPayload(`{"userId":"user-42"}`)
		assert.False(t, ok)
	})
}

func TestTicketStatusTransitions(t *testing.T) {
	assert.True(t, model.TicketStatusValid.CanTransitionTo(model.TicketStatusUsed))
	assert.False(t, model.TicketStatusUsed.CanTransitionTo(model.TicketStatusValid))
	assert.False(t, model.TicketStatusUsed.CanTransitionTo(model.TicketStatusUsed))
}
