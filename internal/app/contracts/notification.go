package contracts

import (
	"context"
	"net/http"

	"lidio-service/internal/pkg/dto/responses"
)

type PaymentNotificationUsecase interface {
	AcceptPaymentNotification(ctx context.Context, rawBody []byte, header http.Header) (*responses.PaymentNotificationAck, error)
}

// NotificationPublisher hands verified notifications to downstream consumers.
type NotificationPublisher interface {
	Publish(ctx context.Context, message *NotificationMessage) error
}

type NotificationMessage struct {
	ID         string                 `json:"id"`
	OrderID    string                 `json:"order_id"`
	Action     string                 `json:"action"`
	Result     string                 `json:"payment_result"`
	Successful bool                   `json:"successful"`
	Payload    map[string]interface{} `json:"payload"`
	ReceivedAt string                 `json:"received_at"`
}
