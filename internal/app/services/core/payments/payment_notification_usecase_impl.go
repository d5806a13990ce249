package payments

import (
	"context"
	"net/http"
	"time"

	"lidio-service/internal/app/config"
	"lidio-service/internal/app/contracts"
	"lidio-service/internal/app/services/shared/lidio"
	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/dto/responses"
	"lidio-service/internal/pkg/exceptions"
	"lidio-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type paymentNotificationUsecase struct {
	Lidio           *lidio.Client
	RedisRepository contracts.RedisRepository
	Publisher       contracts.NotificationPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	now             func() time.Time
}

func NewPaymentNotificationUsecase(
	lidioClient *lidio.Client,
	redisRepository contracts.RedisRepository,
	publisher contracts.NotificationPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentNotificationUsecase {
	return &paymentNotificationUsecase{
		Lidio:           lidioClient,
		RedisRepository: redisRepository,
		Publisher:       publisher,
		InternalConfig:  internalConfig,
		Log:             logger,
		now:             time.Now,
	}
}

// AcceptPaymentNotification verifies a notification and queues it once per signature.
func (uc *paymentNotificationUsecase) AcceptPaymentNotification(ctx context.Context, rawBody []byte, header http.Header) (*responses.PaymentNotificationAck, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentNotificationUsecase.AcceptPaymentNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	notification, err := uc.Lidio.HandleWebhook(rawBody, header)
	if err != nil {
		uc.Log.Warn("paymentNotificationUsecase.AcceptPaymentNotification malformed notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	orderID := notification.OrderID()
	if !notification.VerifySignatures() {
		utils.LogSecurityEvent(uc.Log, "payment_notification_signature_invalid", requestID, "high",
			zap.String(constvars.LoggingOrderIDKey, orderID),
		)
		return nil, exceptions.ErrNotificationSignature()
	}

	if err := uc.verifyAgainstRecord(ctx, notification); err != nil {
		utils.LogSecurityEvent(uc.Log, "payment_notification_mismatch", requestID, "medium",
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		return nil, err
	}

	replayKey := utils.NotificationReplayKey(notification.SignatureHeader())
	ttl := time.Duration(uc.InternalConfig.Notification.ReplayTTLInMinutes) * time.Minute
	acquired, err := uc.RedisRepository.TrySetNX(ctx, replayKey, orderID, ttl)
	if err != nil {
		uc.Log.Error("paymentNotificationUsecase.AcceptPaymentNotification error acquiring replay guard",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, replayKey),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		uc.Log.Info("paymentNotificationUsecase.AcceptPaymentNotification duplicate notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
		)
		return &responses.PaymentNotificationAck{OrderID: orderID, Duplicate: true}, nil
	}

	message := &contracts.NotificationMessage{
		ID:         notification.SignatureHeader(),
		OrderID:    orderID,
		Action:     notification.Action(),
		Result:     notification.PaymentResult(),
		Successful: notification.Successful(),
		Payload:    notification.ToMap(),
		ReceivedAt: uc.now().UTC().Format(time.RFC3339),
	}

	publishTimeout := time.Duration(uc.InternalConfig.Notification.PublishTimeoutInSecond) * time.Second
	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := uc.Publisher.Publish(publishCtx, message); err != nil {
		uc.Log.Error("paymentNotificationUsecase.AcceptPaymentNotification error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		// Release the guard so the gateway's retry is not swallowed as a duplicate.
		if delErr := uc.RedisRepository.Delete(ctx, replayKey); delErr != nil {
			uc.Log.Error("paymentNotificationUsecase.AcceptPaymentNotification error releasing replay guard",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, replayKey),
				zap.Error(delErr),
			)
		}
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "payment_notification_accepted", requestID,
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String(constvars.LoggingActionKey, notification.Action()),
		zap.String(constvars.LoggingPaymentResult, notification.PaymentResult()),
		zap.Any(constvars.LoggingVerificationKey, notification.Status()),
	)

	return &responses.PaymentNotificationAck{OrderID: orderID, Queued: true}, nil
}

// verifyAgainstRecord checks the requested amount and merchant custom field when the
// link was created through this service.
func (uc *paymentNotificationUsecase) verifyAgainstRecord(ctx context.Context, notification *lidio.PaymentNotification) error {
	orderID := notification.OrderID()
	record, err := findPaymentLinkRecord(ctx, uc.RedisRepository, orderID)
	if err != nil {
		uc.Log.Warn("paymentNotificationUsecase.verifyAgainstRecord error reading payment link record",
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		return nil
	}
	if record == nil {
		return nil
	}

	if record.TotalAmount != nil && !notification.VerifyRequestedAmount(*record.TotalAmount) {
		return exceptions.ErrNotificationMismatch(orderID, "requested amount")
	}
	if record.MerchantCustomField != "" && !notification.VerifyMerchantCustomField(record.MerchantCustomField) {
		return exceptions.ErrNotificationMismatch(orderID, "merchant custom field")
	}
	return nil
}
