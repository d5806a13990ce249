package payments

import (
	"context"
	"time"

	"lidio-service/internal/app/contracts"
	"lidio-service/internal/app/services/shared/lidio"
	"lidio-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// paymentLinkRecord keeps what was sent for an order so the matching
// notification can be checked against it.
type paymentLinkRecord struct {
	OrderID             string   `json:"orderId"`
	MerchantCustomField string   `json:"merchantCustomField,omitempty"`
	TotalAmount         *float64 `json:"totalAmount,omitempty"`
	Currency            string   `json:"currency,omitempty"`
}

func newPaymentLinkRecord(orderID string, request *lidio.WireRequest) *paymentLinkRecord {
	record := &paymentLinkRecord{OrderID: orderID}
	if value, ok := request.Get("merchantCustomField"); ok {
		record.MerchantCustomField, _ = value.(string)
	}
	if value, ok := request.Get("totalAmount"); ok {
		if amount, ok := value.(lidio.Amount); ok {
			total := amount.Float64()
			record.TotalAmount = &total
		}
	}
	if value, ok := request.Get("currency"); ok {
		record.Currency, _ = value.(string)
	}
	return record
}

func savePaymentLinkRecord(ctx context.Context, repo contracts.RedisRepository, record *paymentLinkRecord, ttl time.Duration) error {
	return repo.Set(ctx, utils.PaymentLinkRecordKey(record.OrderID), record, ttl)
}

// findPaymentLinkRecord returns nil when no link was created through this service for the order.
func findPaymentLinkRecord(ctx context.Context, repo contracts.RedisRepository, orderID string) (*paymentLinkRecord, error) {
	if orderID == "" {
		return nil, nil
	}
	raw, err := repo.Get(ctx, utils.PaymentLinkRecordKey(orderID))
	if err != nil || raw == "" {
		return nil, err
	}
	var record paymentLinkRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, err
	}
	return &record, nil
}
