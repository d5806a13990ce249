package webhookqueue

import (
	"context"
	"errors"
	"testing"
	"time"

	"lidio-service/internal/app/contracts"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	confirms   chan amqp.Confirmation
	ack        bool
	publishErr error
	published  map[string][]amqp.Publishing
	skipAck    bool
	seq        uint64
}

func newFakeChannel(ack bool) *fakeChannel {
	return &fakeChannel{
		confirms:  make(chan amqp.Confirmation, 4),
		ack:       ack,
		published: map[string][]amqp.Publishing{},
	}
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.seq++
	f.published[key] = append(f.published[key], msg)
	if !f.skipAck {
		f.confirms <- amqp.Confirmation{DeliveryTag: f.seq, Ack: f.ack}
	}
	return nil
}

func (f *fakeChannel) GetNextPublishSeqNo() uint64 { return f.seq + 1 }

func (f *fakeChannel) Close() error { return nil }

func testMessage() *contracts.NotificationMessage {
	return &contracts.NotificationMessage{
		ID:         "sig-1",
		OrderID:    "ORD-1",
		Action:     "Payment",
		Result:     "Success",
		Successful: true,
		Payload:    map[string]interface{}{"orderId": "ORD-1"},
	}
}

func TestServicePublish(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		ch := newFakeChannel(true)
		svc := newService(ch, ch.confirms, zap.NewNop(), "lidio.notifications")

		require.NoError(t, svc.Publish(context.Background(), testMessage()))
		require.Len(t, ch.published["lidio.notifications"], 1)

		msg := ch.published["lidio.notifications"][0]
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
		assert.Equal(t, "sig-1", msg.MessageId)

		var decoded contracts.NotificationMessage
		require.NoError(t, json.Unmarshal(msg.Body, &decoded))
		assert.Equal(t, "ORD-1", decoded.OrderID)
		assert.True(t, decoded.Successful)
	})

	t.Run("nacked", func(t *testing.T) {
		ch := newFakeChannel(false)
		svc := newService(ch, ch.confirms, zap.NewNop(), "lidio.notifications")

		err := svc.Publish(context.Background(), testMessage())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not confirmed")
	})

	t.Run("broker error", func(t *testing.T) {
		ch := newFakeChannel(true)
		ch.publishErr = errors.New("channel closed")
		svc := newService(ch, ch.confirms, zap.NewNop(), "lidio.notifications")

		err := svc.Publish(context.Background(), testMessage())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel closed")
	})

	t.Run("context cancelled while waiting for confirm", func(t *testing.T) {
		ch := newFakeChannel(true)
		ch.skipAck = true
		svc := newService(ch, ch.confirms, zap.NewNop(), "lidio.notifications")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := svc.Publish(ctx, testMessage())
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("dead queue", func(t *testing.T) {
		ch := newFakeChannel(true)
		svc := newService(ch, ch.confirms, zap.NewNop(), "lidio.notifications")

		require.NoError(t, svc.PublishToDeadQueue(context.Background(), testMessage()))
		assert.Len(t, ch.published["lidio.notifications.dlq"], 1)
	})

	t.Run("late confirmation of a timed out message is not reused", func(t *testing.T) {
		ch := newFakeChannel(true)
		ch.skipAck = true
		svc := newService(ch, ch.confirms, zap.NewNop(), "lidio.notifications")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := svc.Publish(ctx, testMessage())
		require.ErrorIs(t, err, context.DeadlineExceeded)

		// broker acks the first message after the caller gave up
		ch.confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: true}

		ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel2()
		err = svc.Publish(ctx2, testMessage())
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("stale confirmation skipped before own ack", func(t *testing.T) {
		ch := newFakeChannel(true)
		ch.skipAck = true
		svc := newService(ch, ch.confirms, zap.NewNop(), "lidio.notifications")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.Error(t, svc.Publish(ctx, testMessage()))

		ch.confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: true}
		ch.skipAck = false
		ch.ack = false

		err := svc.Publish(context.Background(), testMessage())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "message 2")
	})
}
