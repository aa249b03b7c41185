package queue

import (
	"context"

	"github.com/google/uuid"
)

// IntentBinding 付款意圖與報名的綁定紀錄。綁定寫入是 best-effort，
// 失敗時進入隊列由 worker 重試，避免後續對帳缺少 payment_intent_id
type IntentBinding struct {
	RegistrationID  uuid.UUID `json:"registration_id"`
	PaymentIntentID string    `json:"payment_intent_id"`
}

type Delivery struct {
	Data *IntentBinding
	Ack  func()
	Nack func(requeue bool)
}

type BindingQueue interface {
	// 發送綁定紀錄到隊列
	PublishBinding(ctx context.Context, binding *IntentBinding) error
	// 訂閱綁定隊列
	SubscribeBindings(ctx context.Context) (<-chan Delivery, error)
}

type BindingQueueImpl struct {
	// 使用 Go channel 的記憶體版隊列
	ch chan *IntentBinding
}

func NewBindingQueue(bufferSize int) BindingQueue {
	return &BindingQueueImpl{
		ch: make(chan *IntentBinding, bufferSize),
	}
}

func (q *BindingQueueImpl) PublishBinding(ctx context.Context, binding *IntentBinding) error {
	q.ch <- binding
	return nil
}

func (q *BindingQueueImpl) SubscribeBindings(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case binding, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: binding,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- binding // 簡單模擬重回隊列
						}
					},
				}
			}
		}
	}()

	return out, nil
}
