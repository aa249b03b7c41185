package render

import (
	"context"
	"time"
)

// TicketData 工件上必須呈現的內容；版面細節由實作決定
type TicketData struct {
	TicketID      string
	EventName     string
	EventDate     time.Time
	EventLocation string
	Price         float64
	Currency      string
	AttendeeName  string
	AttendeeEmail string
	QRPayload     string
	IssuedAt      time.Time
}

// TicketRenderer 票券工件渲染介面，回傳工件內容與 content type
type TicketRenderer interface {
	Render(ctx context.Context, data TicketData) ([]byte, string, error)
}
