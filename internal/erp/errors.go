package erp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	unreachableMessage = "Unable to reach the server. Please try again later."
	malformedMessage   = "Received an unexpected response from the server."

	MsgInvalidCredentials = "Invalid username or password"
	MsgServerError        = "Server error. Please try again later."
	MsgUnexpectedLogin    = "An unexpected error occurred. Please try again later."
	MsgInvalidOrderID     = "Received invalid order ID from the server"
)

// APIError is a failed ERP call. Message is safe to show to the cashier.
type APIError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("erp %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("erp %s: status %d: %s", e.Op, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) UserMessage() string {
	return e.Message
}

// HTTPStatus maps the upstream failure onto the status the terminal answers
// with. Auth failures pass through; everything else is a bad gateway.
func (e *APIError) HTTPStatus() int {
	switch e.Status {
	case http.StatusUnauthorized:
		return http.StatusUnauthorized
	case http.StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// serverMessage picks the message of a failed response: the JSON message
// field when present, the raw text when the body is not JSON, else fallback.
func serverMessage(body []byte, fallback string) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return fallback
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return text
	}
	if strings.TrimSpace(payload.Message) != "" {
		return payload.Message
	}
	return fallback
}

// jsonMessage is serverMessage without the raw-text fallback.
func jsonMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Message) != "" {
		return payload.Message
	}
	return fallback
}
