package notifications

import (
	"context"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// queuePublisher forwards relay events onto the durable reminder queue.
// Messages that downstream consumers reject end up on the dead letter queue.
type queuePublisher struct {
	channel *amqp091.Channel
	log     *zap.Logger
}

func NewQueuePublisher(conn *amqp091.Connection, logger *zap.Logger) (contracts.NotificationQueuePublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublishMessage(err, constvars.NotificationQueueName)
	}

	_, err = channel.QueueDeclare(
		constvars.NotificationDeadLetterQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublishMessage(err, constvars.NotificationDeadLetterQueueName)
	}

	_, err = channel.QueueDeclare(
		constvars.NotificationQueueName,
		true,
		false,
		false,
		false,
		amqp091.Table{
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": constvars.NotificationDeadLetterQueueName,
		},
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublishMessage(err, constvars.NotificationQueueName)
	}

	return &queuePublisher{channel: channel, log: logger}, nil
}

func (p *queuePublisher) PublishEvent(ctx context.Context, event models.NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",
		constvars.NotificationQueueName,
		false,
		false,
		amqp091.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.NotificationQueueName)
	}

	p.log.Debug("forwarded notification to reminder queue",
		zap.String("action", event.Action),
		zap.String(constvars.LoggingAppointmentIDKey, event.Appointment.ID),
	)
	return nil
}

// AttachQueueForwarder subscribes the publisher to the relay so every
// booking and cancellation is mirrored onto the durable queue. Queue
// failures are logged and swallowed; the in-process flow never blocks on
// the broker.
func AttachQueueForwarder(relay contracts.NotificationRelay, publisher contracts.NotificationQueuePublisher, logger *zap.Logger) func() {
	return relay.Subscribe(func(event models.NotificationEvent) {
		if err := publisher.PublishEvent(context.Background(), event); err != nil {
			logger.Warn("failed to forward notification to queue", zap.Error(err))
		}
	})
}
