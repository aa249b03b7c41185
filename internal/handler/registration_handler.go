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

type RegistrationHandler struct {
	service service.RegistrationService
}

func NewRegistrationHandler(service service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

func (h *RegistrationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("registrations", h.CreateRegistration)
		router.GET("registrations/me", h.GetMyRegistrations)
	}
}

func (h *RegistrationHandler) CreateRegistration(c *gin.Context) {
	requester, ok := RequesterFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req model.CreateRegistrationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.CreateRegistration(c, req.EventID, requester)
	if err != nil {
		h.handleError(c, err, "CreateRegistration")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Registration created successfully",
		"registration": created,
	})
}

func (h *RegistrationHandler) GetMyRegistrations(c *gin.Context) {
	requester, ok := RequesterFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	registrations, err := h.service.ListByUser(c, requester.UserID)
	if err != nil {
		h.handleError(c, err, "GetMyRegistrations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"registrations": registrations,
		"count":         len(registrations),
	})
}

func (h *RegistrationHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		log.Warn("Event capacity exceeded")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event is at full capacity"})
	case errors.Is(err, apperrors.ErrEventNotActive):
		log.Warn("Event not active")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event is not open for registration"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
