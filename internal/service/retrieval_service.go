package service

import (
	"context"
	"time"

	"event-ticketing/internal/model"
	"event-ticketing/internal/repository"
	"event-ticketing/internal/storage"
	apperrors "event-ticketing/pkg/app_errors"
)

type RetrievalService interface {
	// 取得票券工件的時效性下載連結
	GetDownloadHandle(ctx context.Context, ticketID string) (*model.DownloadHandle, error)
}

type RetrievalServiceImpl struct {
	repository repository.TicketRepository
	blobStore  storage.BlobStore
	urlExpiry  time.Duration
}

func NewRetrievalService(
	tickets repository.TicketRepository,
	blobStore storage.BlobStore,
	urlExpiry time.Duration,
) RetrievalService {
	return &RetrievalServiceImpl{
		repository: tickets,
		blobStore:  blobStore,
		urlExpiry:  urlExpiry,
	}
}

func (s *RetrievalServiceImpl) GetDownloadHandle(ctx context.Context, ticketID string) (*model.DownloadHandle, error) {
	if ticketID == "" {
		return nil, apperrors.ErrInvalidInput
	}

	ticket, err := s.repository.FindByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	url, err := s.blobStore.SignedURL(ctx, ticket.ArtifactKey, s.urlExpiry)
	if err != nil {
		return nil, err
	}

	return &model.DownloadHandle{
		TicketID:    ticket.TicketID,
		DownloadURL: url,
		ExpiresIn:   int(s.urlExpiry.Seconds()),
		Status:      ticket.Status,
	}, nil
}
