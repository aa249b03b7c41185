package service

import (
	"context"
	"fmt"

	"event-ticketing/internal/model"
	"event-ticketing/internal/payment"
	"event-ticketing/internal/queue"
	"event-ticketing/internal/repository"
	apperrors "event-ticketing/pkg/app_errors"
	"event-ticketing/pkg/logger"

	"go.uber.org/zap"
)

type PaymentService interface {
	// 建立付款意圖並把 intent id 綁回報名（綁定為 best-effort）
	CreatePaymentIntent(ctx context.Context, req model.CreatePaymentIntentRequest) (*model.PaymentIntentResponse, error)
}

type PaymentServiceImpl struct {
	provider     payment.Provider
	repository   repository.RegistrationRepository
	bindingQueue queue.BindingQueue
}

func NewPaymentService(
	provider payment.Provider,
	registrations repository.RegistrationRepository,
	bindingQueue queue.BindingQueue,
) PaymentService {
	return &PaymentServiceImpl{
		provider:     provider,
		repository:   registrations,
		bindingQueue: bindingQueue,
	}
}

func (s *PaymentServiceImpl) CreatePaymentIntent(ctx context.Context, req model.CreatePaymentIntentRequest) (*model.PaymentIntentResponse, error) {
	intent, err := s.provider.CreateIntent(ctx, payment.MinorUnits(req.Amount), req.Currency, map[string]string{
		"eventId":        req.EventID.String(),
		"registrationId": req.RegistrationID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPaymentProvider, err)
	}

	// 綁定失敗不能擋下 client secret 的回傳，改送隊列由 worker 重試。
	// 隊列使用 context.Background()：用戶斷線也要保證綁定最終落盤
	if err := s.repository.BindPaymentIntent(ctx, req.RegistrationID, intent.ID); err != nil {
		log := logger.WithComponent("service").With(
			zap.String("registration_id", req.RegistrationID.String()),
			zap.String("payment_intent_id", intent.ID))
		log.Warn("bind payment intent failed, enqueue for retry", zap.Error(err))

		binding := &queue.IntentBinding{
			RegistrationID:  req.RegistrationID,
			PaymentIntentID: intent.ID,
		}
		if pubErr := s.bindingQueue.PublishBinding(context.Background(), binding); pubErr != nil {
			log.Error("publish binding retry failed", zap.Error(pubErr))
		}
	}

	return &model.PaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}
