package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus 付款狀態類型
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// IsValid 驗證狀態是否有效
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態（只允許向前轉換）
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	transitions := map[PaymentStatus][]PaymentStatus{
		PaymentStatusPending:   {PaymentStatusCompleted, PaymentStatusFailed},
		PaymentStatusCompleted: {},
		PaymentStatusFailed:    {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Requester 來自外部 authorizer 的使用者宣告（sub / email / name）
type Requester struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Registration 報名模型，一筆非 failed 的報名佔用一個活動名額。
// ticket_id 由出票服務以 set-if-absent 條件寫入認領，保證出票冪等。
type Registration struct {
	ID              int           `json:"id" db:"id"`
	RegistrationID  uuid.UUID     `json:"registration_id" db:"registration_id"`
	EventID         uuid.UUID     `json:"event_id" db:"event_id"`
	UserID          string        `json:"user_id" db:"user_id"`
	UserName        string        `json:"user_name" db:"user_name"`
	UserEmail       string        `json:"user_email" db:"user_email"`
	EventName       string        `json:"event_name" db:"event_name"`
	EventDate       time.Time     `json:"event_date" db:"event_date"`
	Amount          float64       `json:"amount" db:"amount"`
	Currency        string        `json:"currency" db:"currency"`
	PaymentIntentID *string       `json:"payment_intent_id,omitempty" db:"payment_intent_id"`
	PaymentStatus   PaymentStatus `json:"payment_status" db:"payment_status"`
	TicketID        *string       `json:"ticket_id,omitempty" db:"ticket_id"`
	RegisteredAt    time.Time     `json:"registered_at" db:"registered_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// HasTicket 檢查報名是否已出票
func (r *Registration) HasTicket() bool {
	return r.TicketID != nil && *r.TicketID != ""
}

// CreateRegistrationRequest 建立報名請求
type CreateRegistrationRequest struct {
	EventID uuid.UUID `json:"event_id" binding:"required"`
}

// CreatePaymentIntentRequest 建立付款意圖請求
type CreatePaymentIntentRequest struct {
	Amount         float64   `json:"amount" binding:"required"`
	Currency       string    `json:"currency" binding:"required"`
	EventID        uuid.UUID `json:"event_id" binding:"required"`
	RegistrationID uuid.UUID `json:"registration_id" binding:"required"`
}

// PaymentIntentResponse 付款意圖響應
type PaymentIntentResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}
