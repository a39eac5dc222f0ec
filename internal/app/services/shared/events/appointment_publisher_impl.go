package events

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channelPublisher is the part of *amqp091.Channel the publisher needs.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type appointmentPublisher struct {
	Channel channelPublisher
	Queue   string
	Log     *zap.Logger
}

func NewAppointmentPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.AppointmentEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		return nil, err
	}
	return newAppointmentPublisher(channel, logger, queue), nil
}

func newAppointmentPublisher(channel channelPublisher, logger *zap.Logger, queue string) *appointmentPublisher {
	return &appointmentPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (s *appointmentPublisher) PublishAppointmentBooked(ctx context.Context, appointment models.Appointment) error {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("appointmentPublisher.PublishAppointmentBooked called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)

	body, err := json.Marshal(requests.AppointmentBookedEvent{
		Event:         constvars.EventAppointmentBooked,
		AppointmentID: appointment.ID,
		UserID:        appointment.UserID,
		ProviderID:    appointment.ProviderID,
		SlotDate:      appointment.SlotDate,
		SlotTime:      appointment.SlotTime,
		Amount:        appointment.Amount,
		BookedAt:      appointment.CreatedAt,
	})
	if err != nil {
		s.Log.Error("appointmentPublisher.PublishAppointmentBooked error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    appointment.ID,
		Type:         constvars.EventAppointmentBooked,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("appointmentPublisher.PublishAppointmentBooked error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("appointmentPublisher.PublishAppointmentBooked succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when no queue is configured.
func NewNoopPublisher() contracts.AppointmentEventPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishAppointmentBooked(ctx context.Context, appointment models.Appointment) error {
	return nil
}
