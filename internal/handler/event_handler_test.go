package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"event-ticketing/internal/handler"
	"event-ticketing/internal/model"
	"event-ticketing/internal/service/mocks"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupEventTestRouter(events *mocks.MockEventService, registrations *mocks.MockRegistrationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	eventHandler := handler.NewEventHandler(events, registrations)
	eventHandler.RegisterRoutes(router)

	return router
}

func TestCreateEvent(t *testing.T) {
	createRequest := model.CreateEventRequest{
		Name:     "Go Conference",
		Date:     time.Now().Add(30 * 24 * time.Hour).UTC(),
		Location: "Taipei",
		Capacity: 500,
		Price:    25.00,
	}

	t.Run("Success", func(t *testing.T) {
		events := mocks.NewMockEventService(t)
		registrations := mocks.NewMockRegistrationService(t)
		router := setupEventTestRouter(events, registrations)

		events.On("Create", mock.Anything, mock.Anything).Return(&model.Event{
			EventID:  uuid.New(),
			Name:     "Go Conference",
			Capacity: 500,
			Status:   model.EventStatusActive,
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/events", createRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"active"`)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		events := mocks.NewMockEventService(t)
		registrations := mocks.NewMockRegistrationService(t)
		router := setupEventTestRouter(events, registrations)

		// capacity 為必填
		req := createJSONHTTPRequest("POST", "/api/v1/events", map[string]interface{}{"name": "X"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		events.AssertNotCalled(t, "Create")
	})
}

func TestGetEventRegistrations(t *testing.T) {
	eventID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		events := mocks.NewMockEventService(t)
		registrations := mocks.NewMockRegistrationService(t)
		router := setupEventTestRouter(events, registrations)

		registrations.On("ListByEvent", mock.Anything, eventID).Return([]*model.Registration{
			{RegistrationID: uuid.New(), EventID: eventID},
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/events/"+eventID.String()+"/registrations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":1`)
	})

	t.Run("Failed - 非 UUID 的 event id", func(t *testing.T) {
		events := mocks.NewMockEventService(t)
		registrations := mocks.NewMockRegistrationService(t)
		router := setupEventTestRouter(events, registrations)

		req := createJSONHTTPRequest("GET", "/api/v1/events/not-a-uuid/registrations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		registrations.AssertNotCalled(t, "ListByEvent")
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		events := mocks.NewMockEventService(t)
		registrations := mocks.NewMockRegistrationService(t)
		router := setupEventTestRouter(events, registrations)

		registrations.On("ListByEvent", mock.Anything, eventID).
			Return(nil, apperrors.ErrEventNotFound).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/events/"+eventID.String()+"/registrations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
