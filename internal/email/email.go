package email

import (
	"context"
	"log"

	"github.com/heliconnect/client-api/internal/kafka"
)

// Sender hands notification events to the delivery provider. Actual
// delivery lives outside this service; this sender only logs.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.NotificationEvent) error {
	log.Printf("notify %s (%s): %s %s", event.Email, event.Language, event.Entity, event.Action)
	return nil
}
