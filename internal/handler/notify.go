package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

// publishNotification hands a message to the notification queue. Failures
// are logged and swallowed: a lost email must never fail the mutation
// that triggered it.
func (h *Handler) publishNotification(msg domain.NotificationMessage) {
	body, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to serialize notification", "type", msg.Type, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.notifyChannel.PublishWithContext(
		ctx,
		"",
		"notification_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Error("failed to publish notification", "type", msg.Type, "error", err)
	}
}
