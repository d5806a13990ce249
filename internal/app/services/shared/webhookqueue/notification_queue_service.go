package webhookqueue

import (
	"context"
	"fmt"
	"sync"

	"lidio-service/internal/app/contracts"
	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/exceptions"
	"lidio-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	deadLetterSuffix = ".dlq"
	confirmBuffer    = 64
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	GetNextPublishSeqNo() uint64
	Close() error
}

// Service publishes verified payment notifications to a durable queue and
// waits for the broker to confirm every message.
type Service struct {
	ch       channel
	log      *zap.Logger
	queue    string
	confirms <-chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService declares the notification queue and its dead letter companion, then enables confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, queue string) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, name := range []string{queue, queue + deadLetterSuffix} {
		_, err = ch.QueueDeclare(
			name,  // name
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,   // args
		)
		if err != nil {
			ch.Close()
			return nil, err
		}
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, err
	}

	return newService(ch, ch.NotifyPublish(make(chan amqp.Confirmation, confirmBuffer)), log, queue), nil
}

func newService(ch channel, confirms <-chan amqp.Confirmation, log *zap.Logger, queue string) *Service {
	return &Service{ch: ch, confirms: confirms, log: log, queue: queue}
}

var _ contracts.NotificationPublisher = (*Service)(nil)

func (s *Service) Publish(ctx context.Context, message *contracts.NotificationMessage) error {
	s.log.Info("NotificationQueue.Publish called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingOrderIDKey, message.OrderID),
		zap.String(constvars.LoggingQueueKey, s.queue),
	)
	return s.publish(ctx, s.queue, message)
}

// PublishToDeadQueue parks a message that downstream consumers could not handle.
func (s *Service) PublishToDeadQueue(ctx context.Context, message *contracts.NotificationMessage) error {
	queue := s.queue + deadLetterSuffix
	s.log.Warn("NotificationQueue.PublishToDeadQueue called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingOrderIDKey, message.OrderID),
		zap.String(constvars.LoggingQueueKey, queue),
	)
	return s.publish(ctx, queue, message)
}

func (s *Service) Close() error {
	return s.ch.Close()
}

func (s *Service) publish(ctx context.Context, queue string, message *contracts.NotificationMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		MessageId:    message.ID,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	deliveryTag := s.ch.GetNextPublishSeqNo()
	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrPublishMessage(err)
	}
	return s.waitForConfirm(ctx, queue, deliveryTag)
}

// waitForConfirm drains confirmations until the one for deliveryTag arrives.
// Late confirmations of earlier publishes that gave up waiting are discarded.
func (s *Service) waitForConfirm(ctx context.Context, queue string, deliveryTag uint64) error {
	for {
		select {
		case confirmed, ok := <-s.confirms:
			if !ok {
				return exceptions.ErrPublishMessage(fmt.Errorf("confirm channel for %s closed", queue))
			}
			if confirmed.DeliveryTag < deliveryTag {
				s.log.Warn("NotificationQueue.publish discarded stale confirmation",
					zap.String(constvars.LoggingQueueKey, queue),
					zap.Uint64("delivery_tag", confirmed.DeliveryTag),
					zap.Bool("ack", confirmed.Ack),
				)
				continue
			}
			if confirmed.DeliveryTag != deliveryTag || !confirmed.Ack {
				return exceptions.ErrPublishMessage(fmt.Errorf("message %d to %s not confirmed", deliveryTag, queue))
			}
			return nil
		case <-ctx.Done():
			return exceptions.ErrPublishMessage(ctx.Err())
		}
	}
}
