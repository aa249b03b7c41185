package payment

import (
	"context"
	"math"
)

// IntentStatus 付款意圖狀態
type IntentStatus string

const (
	IntentStatusRequiresConfirmation IntentStatus = "requires_confirmation"
	IntentStatusSucceeded            IntentStatus = "succeeded"
)

// Intent 付款意圖，金額以最小貨幣單位計
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       IntentStatus
	Metadata     map[string]string
}

// Captured 檢查款項是否已入帳
func (i *Intent) Captured() bool {
	return i.Status == IntentStatusSucceeded
}

// Provider 付款協作方介面（真實處理器或確定性 mock）
type Provider interface {
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error)
	ConfirmIntent(ctx context.Context, intentID string) (*Intent, error)
	GetIntent(ctx context.Context, intentID string) (*Intent, error)
}

// MinorUnits 將金額換算為最小貨幣單位（四捨五入取整）
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
