package types

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,contactemail"`
	Message string `json:"message" validate:"required"`
}

// Notification type values.
const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification is the transient, user-visible outcome of a contact submission.
type Notification struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Reference string `json:"reference,omitempty"`
}

// OK reports whether the notification signals success.
func (n Notification) OK() bool {
	return n.Type == NotificationSuccess
}
