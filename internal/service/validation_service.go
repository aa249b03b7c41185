package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"event-ticketing/internal/model"
	"event-ticketing/internal/repository"
	apperrors "event-ticketing/pkg/app_errors"
)

type ValidationService interface {
	// 驗票：輸入可以是 QR 載荷或原始票券 ID。
	// 票不存在與已使用是 valid=false 的成功結果，不是錯誤
	ValidateTicket(ctx context.Context, identifier string) (*model.ValidationResult, error)
}

type ValidationServiceImpl struct {
	repository repository.TicketRepository
}

func NewValidationService(tickets repository.TicketRepository) ValidationService {
	return &ValidationServiceImpl{repository: tickets}
}

func (s *ValidationServiceImpl) ValidateTicket(ctx context.Context, identifier string) (*model.ValidationResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, apperrors.ErrInvalidInput
	}

	// 先嘗試解析 QR 載荷，失敗則視為原始票券 ID
	ticketID := identifier
	if payload, ok := model.ParseQRPayload(identifier); ok {
		ticketID = payload.TicketID
	}

	// valid → used 由單一條件式 UPDATE 完成，重複掃描只有第一次成功
	ticket, err := s.repository.MarkUsed(ctx, ticketID, time.Now().UTC())
	switch {
	case err == nil:
		return &model.ValidationResult{
			Valid:   true,
			Message: "Ticket validated successfully",
			Ticket:  ticketMetadata(ticket),
		}, nil
	case errors.Is(err, apperrors.ErrTicketNotFound):
		return &model.ValidationResult{
			Valid:   false,
			Message: "Ticket not found or invalid",
		}, nil
	case errors.Is(err, apperrors.ErrTicketAlreadyUsed):
		return &model.ValidationResult{
			Valid:   false,
			Message: "Ticket has already been used",
			Ticket:  ticketMetadata(ticket),
		}, nil
	default:
		return nil, err
	}
}

func ticketMetadata(ticket *model.Ticket) *model.TicketMetadata {
	if ticket == nil {
		return nil
	}
	return &model.TicketMetadata{
		TicketID:     ticket.TicketID,
		EventID:      ticket.EventID,
		EventName:    ticket.EventName,
		AttendeeName: ticket.AttendeeName,
		Status:       ticket.Status,
		UsedAt:       ticket.UsedAt,
	}
}
