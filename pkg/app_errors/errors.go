package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrArtifactNotFound     = errors.New("artifact not found")

	ErrCapacityExceeded = errors.New("event capacity exceeded")
	ErrEventNotActive   = errors.New("event is not active")

	ErrTicketAlreadyUsed  = errors.New("ticket already used")
	ErrPaymentNotCaptured = errors.New("payment not captured")

	ErrPaymentProvider       = errors.New("payment provider error")
	ErrPaymentIntentNotFound = errors.New("payment intent not found")
	ErrInternalServerError   = errors.New("internal server error")
)
