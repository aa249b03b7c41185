package worker

import (
	"context"
	"errors"

	"event-ticketing/internal/queue"
	"event-ticketing/internal/repository"
	apperrors "event-ticketing/pkg/app_errors"
	"event-ticketing/pkg/logger"

	"go.uber.org/zap"
)

type BindingWorker interface {
	// 訂閱綁定隊列
	Start(ctx context.Context) error
}

type BindingWorkerImpl struct {
	registrations repository.RegistrationRepository
	queue         queue.BindingQueue
}

func NewBindingWorker(registrations repository.RegistrationRepository, queue queue.BindingQueue) BindingWorker {
	return &BindingWorkerImpl{
		registrations: registrations,
		queue:         queue,
	}
}

// Start 重放建立付款意圖時未能落盤的綁定。報名不存在時直接 Ack 丟棄，
// 其餘錯誤 Nack 重回隊列延遲重試
func (w *BindingWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeBindings(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("worker")
		for msg := range msgs {
			binding := msg.Data
			err := w.registrations.BindPaymentIntent(ctx, binding.RegistrationID, binding.PaymentIntentID)

			switch {
			case err == nil:
				msg.Ack()
			case errors.Is(err, apperrors.ErrRegistrationNotFound):
				log.Warn("drop binding for missing registration",
					zap.String("registration_id", binding.RegistrationID.String()),
					zap.String("payment_intent_id", binding.PaymentIntentID))
				msg.Ack()
			default:
				log.Error("rebind payment intent failed",
					zap.String("registration_id", binding.RegistrationID.String()),
					zap.Error(err))
				msg.Nack(true)
			}
		}
	}()
	return nil
}
