package errx

import (
	"errors"
	"net/http"
)

const (
	SystemErrorMessage = "internal server error"
	StoreErrorMessage  = "device store operation failed"
	NotFoundMessage    = "not found"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// AppError is an error the HTTP layer can report: Status is the response
// code and Message is what the cashier sees. Err stays server-side.
type AppError struct {
	Err     error
	Status  int
	Message string
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Validation reports a rule violation caught before any network call.
func Validation(message string) *AppError {
	return New(ErrValidation, http.StatusBadRequest, message)
}

// NotFound reports a missing resource.
func NotFound(message string) *AppError {
	return New(ErrNotFound, http.StatusNotFound, message)
}

// Unauthorized reports a missing or invalid session.
func Unauthorized(message string) *AppError {
	return New(ErrUnauthorized, http.StatusUnauthorized, message)
}

// Status extracts the HTTP status carried by err, defaulting to 500.
// Errors that implement HTTPStatus() int are honoured too.
func Status(err error) int {
	var app *AppError
	if errors.As(err, &app) && app.Status != 0 {
		return app.Status
	}
	var st interface{ HTTPStatus() int }
	if errors.As(err, &st) {
		return st.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// Message extracts a user-facing message from err. Errors that are neither
// AppError nor expose UserMessage() collapse to SystemErrorMessage.
func Message(err error) string {
	var app *AppError
	if errors.As(err, &app) && app.Message != "" {
		return app.Message
	}
	var um interface{ UserMessage() string }
	if errors.As(err, &um) {
		return um.UserMessage()
	}
	return SystemErrorMessage
}
