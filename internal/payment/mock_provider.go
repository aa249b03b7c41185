package payment

import (
	"context"
	"fmt"
	"strings"
	"sync"

	apperrors "event-ticketing/pkg/app_errors"

	"github.com/google/uuid"
)

// MockProvider 確定性的付款協作方：意圖保存在記憶體，
// CreateIntent 後需 ConfirmIntent 才會進入 succeeded
type MockProvider struct {
	mu        sync.Mutex
	secretKey string
	intents   map[string]*Intent
}

func NewMockProvider(secretKey string) *MockProvider {
	return &MockProvider{
		secretKey: secretKey,
		intents:   map[string]*Intent{},
	}
}

func (p *MockProvider) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrPaymentProvider)
	}
	if currency == "" {
		return nil, fmt.Errorf("%w: currency required", apperrors.ErrPaymentProvider)
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	intent := &Intent{
		ID:           "pi_" + token,
		ClientSecret: fmt.Sprintf("pi_%s_secret_%s", token, strings.Split(uuid.NewString(), "-")[0]),
		Amount:       amount,
		Currency:     strings.ToLower(currency),
		Status:       IntentStatusRequiresConfirmation,
		Metadata:     metadata,
	}

	p.mu.Lock()
	p.intents[intent.ID] = intent
	p.mu.Unlock()

	return intent, nil
}

func (p *MockProvider) ConfirmIntent(ctx context.Context, intentID string) (*Intent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	intent, ok := p.intents[intentID]
	if !ok {
		return nil, apperrors.ErrPaymentIntentNotFound
	}

	intent.Status = IntentStatusSucceeded
	copied := *intent
	return &copied, nil
}

func (p *MockProvider) GetIntent(ctx context.Context, intentID string) (*Intent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	intent, ok := p.intents[intentID]
	if !ok {
		return nil, apperrors.ErrPaymentIntentNotFound
	}

	copied := *intent
	return &copied, nil
}
