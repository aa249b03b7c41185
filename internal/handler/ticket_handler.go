package handler

import (
	"errors"
	"net/http"

	"event-ticketing/internal/model"
	"event-ticketing/internal/service"
	apperrors "event-ticketing/pkg/app_errors"
	"event-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TicketHandler struct {
	issuance   service.IssuanceService
	validation service.ValidationService
	retrieval  service.RetrievalService
}

func NewTicketHandler(
	issuance service.IssuanceService,
	validation service.ValidationService,
	retrieval service.RetrievalService,
) *TicketHandler {
	return &TicketHandler{
		issuance:   issuance,
		validation: validation,
		retrieval:  retrieval,
	}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("tickets/issue", h.IssueTicket)
		router.POST("tickets/validate", h.ValidateTicket)
		router.GET("tickets/:ticketId/download", h.GetDownloadHandle)
	}
}

func (h *TicketHandler) IssueTicket(c *gin.Context) {
	var req model.IssueTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	ticket, created, err := h.issuance.IssueTicket(c, req.RegistrationID, req.EventID)
	if err != nil {
		h.handleError(c, err, "IssueTicket")
		return
	}

	status := http.StatusCreated
	message := "Ticket generated"
	if !created {
		status = http.StatusOK
		message = "Ticket already issued"
	}
	c.JSON(status, model.IssueTicketResponse{
		Message:     message,
		TicketID:    ticket.TicketID,
		ArtifactKey: ticket.ArtifactKey,
	})
}

func (h *TicketHandler) ValidateTicket(c *gin.Context) {
	var req model.ValidateTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	identifier := req.QRData
	if identifier == "" {
		identifier = req.TicketID
	}
	if identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": "Ticket ID or QR data required",
		})
		return
	}

	result, err := h.validation.ValidateTicket(c, identifier)
	if err != nil {
		h.handleError(c, err, "ValidateTicket")
		return
	}

	// 票不存在或已使用也是 200：讓閘口人員看到失敗原因
	c.JSON(http.StatusOK, result)
}

func (h *TicketHandler) GetDownloadHandle(c *gin.Context) {
	handle, err := h.retrieval.GetDownloadHandle(c, c.Param("ticketId"))
	if err != nil {
		h.handleError(c, err, "GetDownloadHandle")
		return
	}

	c.JSON(http.StatusOK, handle)
}

func (h *TicketHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrRegistrationNotFound):
		log.Warn("Registration not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
	case errors.Is(err, apperrors.ErrTicketNotFound):
		log.Warn("Ticket not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
	case errors.Is(err, apperrors.ErrArtifactNotFound):
		log.Warn("Artifact not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket artifact not found"})
	case errors.Is(err, apperrors.ErrPaymentNotCaptured):
		log.Warn("Payment not captured")
		c.JSON(http.StatusConflict, gin.H{"error": "Payment has not been captured"})
	case errors.Is(err, apperrors.ErrPaymentProvider):
		log.Error("Payment provider error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment service unavailable, please try again"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
