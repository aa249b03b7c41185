package model

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus 活動狀態類型
type EventStatus string

const (
	EventStatusActive   EventStatus = "active"
	EventStatusInactive EventStatus = "inactive"
)

// IsValid 驗證狀態是否有效
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusActive, EventStatusInactive:
		return true
	}
	return false
}

// Event 活動模型，registered_count 只允許透過條件式 UPDATE 遞增，
// 不變量：registered_count <= capacity
type Event struct {
	ID              int         `json:"id" db:"id"`
	EventID         uuid.UUID   `json:"event_id" db:"event_id"`
	Name            string      `json:"name" db:"name"`
	Date            time.Time   `json:"date" db:"date"`
	Location        string      `json:"location" db:"location"`
	Capacity        int         `json:"capacity" db:"capacity"`
	RegisteredCount int         `json:"registered_count" db:"registered_count"`
	Price           float64     `json:"price" db:"price"`
	Currency        string      `json:"currency" db:"currency"`
	Status          EventStatus `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
}

// IsFull 檢查活動是否已滿
func (e *Event) IsFull() bool {
	return e.RegisteredCount >= e.Capacity
}

// CreateEventRequest 建立活動請求
type CreateEventRequest struct {
	Name     string    `json:"name" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Location string    `json:"location" binding:"required"`
	Capacity int       `json:"capacity" binding:"required,min=1"`
	Price    float64   `json:"price" binding:"min=0"`
	Currency string    `json:"currency"`
}
