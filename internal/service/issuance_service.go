package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-ticketing/internal/model"
	"event-ticketing/internal/payment"
	"event-ticketing/internal/render"
	"event-ticketing/internal/repository"
	"event-ticketing/internal/storage"
	apperrors "event-ticketing/pkg/app_errors"
	"event-ticketing/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IssuanceService interface {
	// 出票：認領 → 渲染 → 存工件 → 寫票券 → 完成報名。
	// 重複呼叫回傳既有票券，created=false
	IssueTicket(ctx context.Context, registrationID uuid.UUID, eventID uuid.UUID) (*model.Ticket, bool, error)
}

type IssuanceServiceImpl struct {
	registrations  repository.RegistrationRepository
	tickets        repository.TicketRepository
	events         repository.EventRepository
	provider       payment.Provider
	blobStore      storage.BlobStore
	renderer       render.TicketRenderer
	artifactPrefix string
}

func NewIssuanceService(
	registrations repository.RegistrationRepository,
	tickets repository.TicketRepository,
	events repository.EventRepository,
	provider payment.Provider,
	blobStore storage.BlobStore,
	renderer render.TicketRenderer,
	artifactPrefix string,
) IssuanceService {
	return &IssuanceServiceImpl{
		registrations:  registrations,
		tickets:        tickets,
		events:         events,
		provider:       provider,
		blobStore:      blobStore,
		renderer:       renderer,
		artifactPrefix: artifactPrefix,
	}
}

func (s *IssuanceServiceImpl) IssueTicket(ctx context.Context, registrationID uuid.UUID, eventID uuid.UUID) (*model.Ticket, bool, error) {
	log := logger.WithComponent("service").With(zap.String("registration_id", registrationID.String()))

	registration, err := s.registrations.FindByRegistrationID(ctx, registrationID)
	if err != nil {
		return nil, false, err
	}
	if registration.EventID != eventID {
		return nil, false, apperrors.ErrRegistrationNotFound
	}

	if registration.HasTicket() {
		ticket, err := s.tickets.FindByTicketID(ctx, *registration.TicketID)
		if err != nil {
			return nil, false, err
		}
		return ticket, false, nil
	}

	if err := s.verifyCapture(ctx, registration, log); err != nil {
		return nil, false, err
	}

	// set-if-absent 認領出票權，輸掉競爭的請求回傳先行者的票券
	ticketID := model.NewTicketID()
	claimed, err := s.registrations.ClaimTicket(ctx, registrationID, ticketID)
	if err != nil {
		return nil, false, err
	}
	if !claimed {
		return s.existingTicket(ctx, registrationID)
	}

	ticket, err := s.mintTicket(ctx, registration, ticketID)
	if err != nil {
		// 認領已取得但出票失敗：釋放認領讓重試可以重新出票
		if releaseErr := s.registrations.ReleaseTicketClaim(ctx, registrationID, ticketID); releaseErr != nil {
			log.Error("release ticket claim failed", zap.String("ticket_id", ticketID), zap.Error(releaseErr))
		}
		return nil, false, err
	}

	if err := s.registrations.CompleteTicketIssuance(ctx, registrationID, ticketID); err != nil {
		// 票券已落盤即出票成功；報名標記失敗只記錄，票券是驗票的唯一事實來源
		log.Warn("mark registration completed failed", zap.String("ticket_id", ticketID), zap.Error(err))
	}

	return ticket, true, nil
}

// verifyCapture 出票前向付款協作方確認款項已入帳；
// 報名沒有綁定 intent 時放行（綁定是 best-effort，可能尚未落盤）
func (s *IssuanceServiceImpl) verifyCapture(ctx context.Context, registration *model.Registration, log *zap.Logger) error {
	if registration.PaymentIntentID == nil || *registration.PaymentIntentID == "" {
		log.Warn("no payment intent bound, issuing on caller's word")
		return nil
	}

	intent, err := s.provider.GetIntent(ctx, *registration.PaymentIntentID)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPaymentProvider, err)
	}
	if !intent.Captured() {
		return apperrors.ErrPaymentNotCaptured
	}
	return nil
}

const (
	claimLoserRetries   = 5
	claimLoserRetryWait = 100 * time.Millisecond
)

// existingTicket 輸掉認領競爭後讀取先行者的票券。
// 勝者可能尚未把票券落盤，在有限次數內輪詢再放棄
func (s *IssuanceServiceImpl) existingTicket(ctx context.Context, registrationID uuid.UUID) (*model.Ticket, bool, error) {
	for attempt := 0; attempt < claimLoserRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, false, ctx.Err()
			case <-time.After(claimLoserRetryWait):
			}
		}

		registration, err := s.registrations.FindByRegistrationID(ctx, registrationID)
		if err != nil {
			return nil, false, err
		}
		if !registration.HasTicket() {
			continue
		}

		ticket, err := s.tickets.FindByTicketID(ctx, *registration.TicketID)
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			continue
		}
		if err != nil {
			return nil, false, err
		}
		return ticket, false, nil
	}
	return nil, false, apperrors.ErrInternalServerError
}

func (s *IssuanceServiceImpl) mintTicket(ctx context.Context, registration *model.Registration, ticketID string) (*model.Ticket, error) {
	issuedAt := time.Now().UTC()

	// 活動缺失以占位值容錯，不阻斷出票
	eventName := "Event"
	eventDate := issuedAt
	eventLocation := ""
	eventPrice := registration.Amount
	event, err := s.events.FindByEventID(ctx, registration.EventID)
	if err == nil {
		eventName = event.Name
		eventDate = event.Date
		eventLocation = event.Location
		eventPrice = event.Price
	} else if !errors.Is(err, apperrors.ErrEventNotFound) {
		return nil, err
	}

	qrPayload, err := model.QRPayload{
		TicketID: ticketID,
		EventID:  registration.EventID,
		UserID:   registration.UserID,
		IssuedAt: issuedAt,
	}.Encode()
	if err != nil {
		return nil, err
	}

	artifact, contentType, err := s.renderer.Render(ctx, render.TicketData{
		TicketID:      ticketID,
		EventName:     eventName,
		EventDate:     eventDate,
		EventLocation: eventLocation,
		Price:         eventPrice,
		Currency:      registration.Currency,
		AttendeeName:  registration.UserName,
		AttendeeEmail: registration.UserEmail,
		QRPayload:     qrPayload,
		IssuedAt:      issuedAt,
	})
	if err != nil {
		return nil, err
	}

	artifactKey := fmt.Sprintf("%s/%s.pdf", s.artifactPrefix, ticketID)
	if err := s.blobStore.PutObject(ctx, artifactKey, artifact, contentType); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.Create(ctx, &model.Ticket{
		TicketID:       ticketID,
		RegistrationID: registration.RegistrationID,
		EventID:        registration.EventID,
		UserID:         registration.UserID,
		EventName:      eventName,
		AttendeeName:   registration.UserName,
		AttendeeEmail:  registration.UserEmail,
		QRPayload:      qrPayload,
		Status:         model.TicketStatusValid,
		ArtifactKey:    artifactKey,
		IssuedAt:       issuedAt,
	})
	if err != nil {
		// 票券紀錄沒寫成就不能宣告成功；工件清掉，避免殘留被引用
		if delErr := s.blobStore.Delete(ctx, artifactKey); delErr != nil {
			logger.WithComponent("service").Warn("cleanup orphan artifact failed",
				zap.String("artifact_key", artifactKey), zap.Error(delErr))
		}
		return nil, err
	}

	return ticket, nil
}
