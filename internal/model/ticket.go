package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TicketStatus 票券狀態類型
type TicketStatus string

const (
	TicketStatusValid TicketStatus = "valid"
	TicketStatusUsed  TicketStatus = "used"
)

// IsValid 驗證狀態是否有效
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusValid, TicketStatusUsed:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態（used 為終態）
func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	return s == TicketStatusValid && target == TicketStatusUsed
}

// Ticket 票券模型（單次使用的入場憑證）。
// valid → used 的轉換必須經由單一條件式 UPDATE，一張票最多驗證成功一次。
type Ticket struct {
	TicketID       string       `json:"ticket_id" db:"ticket_id"`
	RegistrationID uuid.UUID    `json:"registration_id" db:"registration_id"`
	EventID        uuid.UUID    `json:"event_id" db:"event_id"`
	UserID         string       `json:"user_id" db:"user_id"`
	EventName      string       `json:"event_name" db:"event_name"`
	AttendeeName   string       `json:"attendee_name" db:"attendee_name"`
	AttendeeEmail  string       `json:"attendee_email" db:"attendee_email"`
	QRPayload      string       `json:"qr_payload" db:"qr_payload"`
	Status         TicketStatus `json:"status" db:"status"`
	ArtifactKey    string       `json:"artifact_key" db:"artifact_key"`
	IssuedAt       time.Time    `json:"issued_at" db:"issued_at"`
	UsedAt         *time.Time   `json:"used_at,omitempty" db:"used_at"`
}

// NewTicketID 產生全域唯一票券識別碼：TKT-<毫秒時間戳>-<隨機尾碼>
func NewTicketID() string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("TKT-%d-%s", time.Now().UnixMilli(), suffix)
}

// QRPayload 掃描用的票券載荷，序列化為固定欄位順序的 JSON
type QRPayload struct {
	TicketID string    `json:"ticketId"`
	EventID  uuid.UUID `json:"eventId"`
	UserID   string    `json:"userId"`
	IssuedAt time.Time `json:"issuedAt"`
}

// Encode 序列化 QR 載荷
func (p QRPayload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseQRPayload 嘗試把輸入解析為 QR 載荷；失敗時呼叫端應把原始輸入視為票券 ID
func ParseQRPayload(raw string) (QRPayload, bool) {
	var payload QRPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return QRPayload{}, false
	}
	if payload.TicketID == "" {
		return QRPayload{}, false
	}
	return payload, true
}

// IssueTicketRequest 出票請求
type IssueTicketRequest struct {
	RegistrationID uuid.UUID `json:"registration_id" binding:"required"`
	EventID        uuid.UUID `json:"event_id" binding:"required"`
}

// IssueTicketResponse 出票響應
type IssueTicketResponse struct {
	Message     string `json:"message"`
	TicketID    string `json:"ticket_id"`
	ArtifactKey string `json:"artifact_key"`
}

// ValidateTicketRequest 驗票請求：qr_data 或 ticket_id 擇一
type ValidateTicketRequest struct {
	QRData   string `json:"qr_data"`
	TicketID string `json:"ticket_id"`
}

// TicketMetadata 驗票結果附帶的票券資訊
type TicketMetadata struct {
	TicketID     string       `json:"ticket_id"`
	EventID      uuid.UUID    `json:"event_id"`
	EventName    string       `json:"event_name"`
	AttendeeName string       `json:"attendee_name"`
	Status       TicketStatus `json:"status"`
	UsedAt       *time.Time   `json:"used_at,omitempty"`
}

// ValidationResult 驗票結果。票不存在或已使用不是錯誤，而是 valid=false 的成功響應
type ValidationResult struct {
	Valid   bool            `json:"valid"`
	Message string          `json:"message"`
	Ticket  *TicketMetadata `json:"ticket,omitempty"`
}

// DownloadHandle 票券下載連結（有時效）
type DownloadHandle struct {
	TicketID    string       `json:"ticket_id"`
	DownloadURL string       `json:"download_url"`
	ExpiresIn   int          `json:"expires_in"`
	Status      TicketStatus `json:"status"`
}
