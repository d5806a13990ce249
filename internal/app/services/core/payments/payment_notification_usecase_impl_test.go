package payments

import (
	"context"
	"testing"
	"time"

	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/exceptions"
	"lidio-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedRecord(t *testing.T, repo *memoryRedis, record *paymentLinkRecord) {
	t.Helper()
	require.NoError(t, savePaymentLinkRecord(context.Background(), repo, record, time.Hour))
}

func TestPaymentNotificationUsecase_AcceptPaymentNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("verified notification is queued once", func(t *testing.T) {
		repo := newMemoryRedis()
		publisher := &recordingPublisher{}
		uc := NewPaymentNotificationUsecase(newTestClient(t, nil), repo, publisher, testInternalConfig(), zap.NewNop())

		body, header := signedNotification(t, notificationFixture())

		ack, err := uc.AcceptPaymentNotification(ctx, body, header)
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", ack.OrderID)
		assert.True(t, ack.Queued)
		assert.False(t, ack.Duplicate)

		require.Len(t, publisher.messages, 1)
		message := publisher.messages[0]
		assert.Equal(t, header.Get(constvars.LidioHeaderParametersHash), message.ID)
		assert.Equal(t, constvars.LidioActionPayment, message.Action)
		assert.True(t, message.Successful)
		assert.Equal(t, true, message.Payload["signaturesVerified"])
		assert.NotContains(t, message.Payload, "companyInfo")

		ack, err = uc.AcceptPaymentNotification(ctx, body, header)
		require.NoError(t, err)
		assert.True(t, ack.Duplicate)
		assert.False(t, ack.Queued)
		assert.Len(t, publisher.messages, 1)
	})

	t.Run("bad signature", func(t *testing.T) {
		publisher := &recordingPublisher{}
		uc := NewPaymentNotificationUsecase(newTestClient(t, nil), newMemoryRedis(), publisher, testInternalConfig(), zap.NewNop())

		body, header := signedNotification(t, notificationFixture())
		header.Set(constvars.LidioHeaderParametersHash, "forged")

		_, err := uc.AcceptPaymentNotification(ctx, body, header)
		require.Error(t, err)
		customErr, ok := exceptions.AsCustomError(err)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Empty(t, publisher.messages)
	})

	t.Run("wrong merchant key", func(t *testing.T) {
		payload := notificationFixture()
		payload["companyInfo"] = map[string]any{"merchantKey": "someone-else"}
		uc := NewPaymentNotificationUsecase(newTestClient(t, nil), newMemoryRedis(), &recordingPublisher{}, testInternalConfig(), zap.NewNop())

		body, header := signedNotification(t, payload)
		_, err := uc.AcceptPaymentNotification(ctx, body, header)
		require.Error(t, err)
	})

	t.Run("missing keys", func(t *testing.T) {
		payload := notificationFixture()
		delete(payload, "paymentList")
		uc := NewPaymentNotificationUsecase(newTestClient(t, nil), newMemoryRedis(), &recordingPublisher{}, testInternalConfig(), zap.NewNop())

		body, header := signedNotification(t, payload)
		_, err := uc.AcceptPaymentNotification(ctx, body, header)
		require.Error(t, err)
		assert.ErrorIs(t, err, exceptions.ErrKindParse)
		assert.Contains(t, err.Error(), "paymentList")
	})

	t.Run("checked against the recorded link", func(t *testing.T) {
		total := 150.0
		repo := newMemoryRedis()
		seedRecord(t, repo, &paymentLinkRecord{OrderID: "ORD-1", MerchantCustomField: "token-1", TotalAmount: &total})
		publisher := &recordingPublisher{}
		uc := NewPaymentNotificationUsecase(newTestClient(t, nil), repo, publisher, testInternalConfig(), zap.NewNop())

		body, header := signedNotification(t, notificationFixture())
		_, err := uc.AcceptPaymentNotification(ctx, body, header)
		require.NoError(t, err)

		require.Len(t, publisher.messages, 1)
		assert.Equal(t, true, publisher.messages[0].Payload["requestedAmountVerified"])
		assert.Equal(t, true, publisher.messages[0].Payload["merchantCustomFieldVerified"])
	})

	t.Run("requested amount mismatch", func(t *testing.T) {
		total := 99.99
		repo := newMemoryRedis()
		seedRecord(t, repo, &paymentLinkRecord{OrderID: "ORD-1", TotalAmount: &total})
		publisher := &recordingPublisher{}
		uc := NewPaymentNotificationUsecase(newTestClient(t, nil), repo, publisher, testInternalConfig(), zap.NewNop())

		body, header := signedNotification(t, notificationFixture())
		_, err := uc.AcceptPaymentNotification(ctx, body, header)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requested amount")
		assert.Empty(t, publisher.messages)
	})

	t.Run("merchant custom field mismatch", func(t *testing.T) {
		repo := newMemoryRedis()
		seedRecord(t, repo, &paymentLinkRecord{OrderID: "ORD-1", MerchantCustomField: "token-2"})
		uc := NewPaymentNotificationUsecase(newTestClient(t, nil), repo, &recordingPublisher{}, testInternalConfig(), zap.NewNop())

		body, header := signedNotification(t, notificationFixture())
		_, err := uc.AcceptPaymentNotification(ctx, body, header)
		require.Error(t, err)
		customErr, ok := exceptions.AsCustomError(err)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	})

	t.Run("publish failure releases the replay guard", func(t *testing.T) {
		repo := newMemoryRedis()
		publisher := &recordingPublisher{err: errBrokerDown}
		uc := NewPaymentNotificationUsecase(newTestClient(t, nil), repo, publisher, testInternalConfig(), zap.NewNop())

		body, header := signedNotification(t, notificationFixture())
		_, err := uc.AcceptPaymentNotification(ctx, body, header)
		require.ErrorIs(t, err, errBrokerDown)

		replayKey := utils.NotificationReplayKey(header.Get(constvars.LidioHeaderParametersHash))
		assert.Contains(t, repo.deleted, replayKey)

		publisher.err = nil
		ack, err := uc.AcceptPaymentNotification(ctx, body, header)
		require.NoError(t, err)
		assert.True(t, ack.Queued)
	})
}
