package utils

import (
	"lidio-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// NotificationReplayKey is the redis key guarding one notification signature.
func NotificationReplayKey(signature string) string {
	return constvars.NotificationReplayKeyPrefix + signature
}

// PaymentLinkRecordKey is the redis key holding what was sent for an order.
func PaymentLinkRecordKey(orderID string) string {
	return constvars.PaymentLinkRecordKeyPrefix + orderID
}
