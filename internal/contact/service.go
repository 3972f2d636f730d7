package contact

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/musantuli/portfolio/internal/types"
)

// Service turns contact form submissions into relayed emails.
type Service struct {
	relay     Relay
	ownerName string
	validator *validator.Validate
}

// NewService creates a Service addressing messages to ownerName.
func NewService(relay Relay, ownerName string) *Service {
	return &Service{
		relay:     relay,
		ownerName: ownerName,
		validator: NewValidator(),
	}
}

// Submit validates req and sends it once. The returned notification is what
// the visitor sees; the error, if any, is the underlying cause and is either
// a *ValidationError or a relay failure.
func (s *Service) Submit(ctx context.Context, req types.ContactRequest) (types.Notification, error) {
	req, err := Validate(s.validator, req)
	if err != nil {
		var ve *ValidationError
		msg := MessageIncomplete
		if errors.As(err, &ve) {
			msg = ve.Message
		}
		return types.Notification{Type: types.NotificationError, Message: msg}, err
	}

	ref := uuid.New().String()
	err = s.relay.Send(ctx, Message{
		FromName:  req.Name,
		FromEmail: req.Email,
		Body:      req.Message,
		ToName:    s.ownerName,
	})
	if err != nil {
		log.Printf("[contact] send %s failed: %v", ref, err)
		return types.Notification{Type: types.NotificationError, Message: MessageSendFailed, Reference: ref}, err
	}

	log.Printf("[contact] sent %s from %s", ref, req.Email)
	return types.Notification{Type: types.NotificationSuccess, Message: MessageSent, Reference: ref}, nil
}
