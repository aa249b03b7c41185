package service_test

import (
	"context"
	"errors"
	"testing"

	"event-ticketing/internal/model"
	"event-ticketing/internal/payment"
	paymentMocks "event-ticketing/internal/payment/mocks"
	"event-ticketing/internal/queue"
	queueMocks "event-ticketing/internal/queue/mocks"
	repoMocks "event-ticketing/internal/repository/mocks"
	"event-ticketing/internal/service"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_CreatePaymentIntent(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	registrationID := uuid.New()
	req := model.CreatePaymentIntentRequest{
		Amount:         25.00,
		Currency:       "usd",
		EventID:        eventID,
		RegistrationID: registrationID,
	}

	t.Run("Success", func(t *testing.T) {
		provider := paymentMocks.NewMockProvider(t)
		registrationRepo := repoMocks.NewMockRegistrationRepository(t)
		bindingQueue := queueMocks.NewMockBindingQueue(t)
		paymentService := service.NewPaymentService(provider, registrationRepo, bindingQueue)

		// 金額以最小貨幣單位傳給協作方：25.00 元 -> 2500
		provider.On("CreateIntent", ctx, int64(2500), "usd", map[string]string{
			"eventId":        eventID.String(),
			"registrationId": registrationID.String(),
		}).Return(&payment.Intent{
			ID:           "pi_abc123",
			ClientSecret: "pi_abc123_secret_xyz",
			Amount:       2500,
			Currency:     "usd",
			Status:       payment.IntentStatusRequiresConfirmation,
		}, nil).Once()
		registrationRepo.On("BindPaymentIntent", ctx, registrationID, "pi_abc123").Return(nil).Once()

		// 執行
		resp, err := paymentService.CreatePaymentIntent(ctx, req)

		// 驗證結果
		require.NoError(t, err)
		assert.Equal(t, "pi_abc123", resp.PaymentIntentID)
		assert.Equal(t, "pi_abc123_secret_xyz", resp.ClientSecret)
		bindingQueue.AssertNotCalled(t, "PublishBinding")
	})

	t.Run("Failed - ErrPaymentProvider", func(t *testing.T) {
		provider := paymentMocks.NewMockProvider(t)
		registrationRepo := repoMocks.NewMockRegistrationRepository(t)
		bindingQueue := queueMocks.NewMockBindingQueue(t)
		paymentService := service.NewPaymentService(provider, registrationRepo, bindingQueue)

		provider.On("CreateIntent", ctx, int64(2500), "usd", mock.Anything).
			Return(nil, errors.New("provider unreachable")).Once()

		// 執行
		_, err := paymentService.CreatePaymentIntent(ctx, req)

		// 驗證結果
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrPaymentProvider)
		registrationRepo.AssertNotCalled(t, "BindPaymentIntent")
	})

	t.Run("綁定失敗仍回傳 client secret 並送入重試隊列", func(t *testing.T) {
		provider := paymentMocks.NewMockProvider(t)
		registrationRepo := repoMocks.NewMockRegistrationRepository(t)
		bindingQueue := queueMocks.NewMockBindingQueue(t)
		paymentService := service.NewPaymentService(provider, registrationRepo, bindingQueue)

		provider.On("CreateIntent", ctx, int64(2500), "usd", mock.Anything).Return(&payment.Intent{
			ID:           "pi_abc123",
			ClientSecret: "pi_abc123_secret_xyz",
		}, nil).Once()
		registrationRepo.On("BindPaymentIntent", ctx, registrationID, "pi_abc123").
			Return(errors.New("db unavailable")).Once()
		bindingQueue.On("PublishBinding", mock.Anything, &queue.IntentBinding{
			RegistrationID:  registrationID,
			PaymentIntentID: "pi_abc123",
		}).Return(nil).Once()

		// 執行
		resp, err := paymentService.CreatePaymentIntent(ctx, req)

		// 驗證結果
		require.NoError(t, err)
		assert.Equal(t, "pi_abc123", resp.PaymentIntentID)
	})

	t.Run("綁定與隊列都失敗仍不阻斷付款流程", func(t *testing.T) {
		provider := paymentMocks.NewMockProvider(t)
		registrationRepo := repoMocks.NewMockRegistrationRepository(t)
		bindingQueue := queueMocks.NewMockBindingQueue(t)
		paymentService := service.NewPaymentService(provider, registrationRepo, bindingQueue)

		provider.On("CreateIntent", ctx, int64(2500), "usd", mock.Anything).Return(&payment.Intent{
			ID:           "pi_abc123",
			ClientSecret: "pi_abc123_secret_xyz",
		}, nil).Once()
		registrationRepo.On("BindPaymentIntent", ctx, registrationID, "pi_abc123").
			Return(errors.New("db unavailable")).Once()
		bindingQueue.On("PublishBinding", mock.Anything, mock.Anything).
			Return(errors.New("queue unavailable")).Once()

		// 執行
		resp, err := paymentService.CreatePaymentIntent(ctx, req)

		// 驗證結果
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ClientSecret)
	})
}
