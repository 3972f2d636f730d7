// Package contact validates contact form submissions and relays them to the
// portfolio owner through EmailJS.
package contact

import (
	"errors"
	"fmt"
)

// User-facing notification messages.
const (
	MessageIncomplete   = "Please fill in all fields"
	MessageInvalidEmail = "Please enter a valid email address"
	MessageSent         = "Message sent successfully! I'll get back to you soon."
	MessageSendFailed   = "Failed to send message. Please try again."
)

// ErrRelayNotConfigured is returned when the relay tokens are missing or
// still hold placeholder values.
var ErrRelayNotConfigured = errors.New("email relay is not configured")

// ValidationError indicates a submission that was rejected before sending.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// SendError indicates the relay rejected the message or could not be reached.
type SendError struct {
	StatusCode int
	Body       string
	Cause      error
}

func (e *SendError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("email relay failed: %v", e.Cause)
	}
	return fmt.Sprintf("email relay returned HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *SendError) Unwrap() error {
	return e.Cause
}
