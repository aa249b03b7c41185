package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"event-ticketing/internal/model"
	repoMocks "event-ticketing/internal/repository/mocks"
	"event-ticketing/internal/service"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidationService_ValidateTicket(t *testing.T) {
	ctx := context.Background()
	ticketID := "TKT-1765432100000-abcd1234"
	eventID := uuid.New()

	t.Run("Success - 原始票券 ID", func(t *testing.T) {
		ticketRepo := repoMocks.NewMockTicketRepository(t)
		validationService := service.NewValidationService(ticketRepo)

		ticketRepo.On("MarkUsed", ctx, ticketID, mock.Anything).Return(&model.Ticket{
			TicketID:     ticketID,
			EventID:      eventID,
			EventName:    "Go Conference",
			AttendeeName: "Test User",
			Status:       model.TicketStatusUsed,
		}, nil).Once()

		result, err := validationService.ValidateTicket(ctx, ticketID)

		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, "Ticket validated successfully", result.Message)
		require.NotNil(t, result.Ticket)
		assert.Equal(t, ticketID, result.Ticket.TicketID)
	})

	t.Run("Success - QR 載荷輸入", func(t *testing.T) {
		ticketRepo := repoMocks.NewMockTicketRepository(t)
		validationService := service.NewValidationService(ticketRepo)

		encoded, err := model.QRPayload{
			TicketID: ticketID,
			EventID:  eventID,
			UserID:   "user-42",
			IssuedAt: time.Now().UTC(),
		}.Encode()
		require.NoError(t, err)

		// 從載荷取出 ticketId 後才打到儲存層
		ticketRepo.On("MarkUsed", ctx, ticketID, mock.Anything).Return(&model.Ticket{
			TicketID: ticketID,
			Status:   model.TicketStatusUsed,
		}, nil).Once()

		result, err := validationService.ValidateTicket(ctx, encoded)

		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("票不存在回傳 valid=false", func(t *testing.T) {
		ticketRepo := repoMocks.NewMockTicketRepository(t)
		validationService := service.NewValidationService(ticketRepo)

		ticketRepo.On("MarkUsed", ctx, "TKT-unknown", mock.Anything).
			Return(nil, apperrors.ErrTicketNotFound).Once()

		result, err := validationService.ValidateTicket(ctx, "TKT-unknown")

		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, "Ticket not found or invalid", result.Message)
		assert.Nil(t, result.Ticket)
	})

	t.Run("重複掃描回傳 valid=false 與使用時間", func(t *testing.T) {
		ticketRepo := repoMocks.NewMockTicketRepository(t)
		validationService := service.NewValidationService(ticketRepo)

		usedAt := time.Now().UTC().Add(-time.Minute)
		ticketRepo.On("MarkUsed", ctx, ticketID, mock.Anything).Return(&model.Ticket{
			TicketID: ticketID,
			Status:   model.TicketStatusUsed,
			UsedAt:   &usedAt,
		}, apperrors.ErrTicketAlreadyUsed).Once()

		result, err := validationService.ValidateTicket(ctx, ticketID)

		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, "Ticket has already been used", result.Message)
		require.NotNil(t, result.Ticket)
		require.NotNil(t, result.Ticket.UsedAt)
		assert.True(t, result.Ticket.UsedAt.Equal(usedAt))
	})

	t.Run("Failed - 空白輸入", func(t *testing.T) {
		ticketRepo := repoMocks.NewMockTicketRepository(t)
		validationService := service.NewValidationService(ticketRepo)

		_, err := validationService.ValidateTicket(ctx, "   ")

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		ticketRepo.AssertNotCalled(t, "MarkUsed")
	})

	t.Run("Failed - 儲存層錯誤", func(t *testing.T) {
		ticketRepo := repoMocks.NewMockTicketRepository(t)
		validationService := service.NewValidationService(ticketRepo)

		ticketRepo.On("MarkUsed", ctx, ticketID, mock.Anything).
			Return(nil, errors.New("db unavailable")).Once()

		_, err := validationService.ValidateTicket(ctx, ticketID)

		require.Error(t, err)
	})
}
