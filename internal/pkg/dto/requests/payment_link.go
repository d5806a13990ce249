package requests

import "time"

// CreatePaymentLink represents the payload accepted by the payment link endpoints.
// Payment methods and basket items may come either from the typed lists or,
// set as is, from Fields; the builder reports whichever required field is missing.
type CreatePaymentLink struct {
	OrderID                     string                   `json:"orderId" validate:"omitempty,max=64"`
	MerchantProcessID           string                   `json:"merchantProcessId"`
	GenerateMerchantCustomField bool                     `json:"generateMerchantCustomField"`
	TotalAmount                 float64                  `json:"totalAmount" validate:"gte=0"`
	Currency                    string                   `json:"currency" validate:"omitempty,lidio_currency"`
	CustomerInfo                map[string]interface{}   `json:"customerInfo" validate:"required"`
	PaymentMethods              []PaymentMethod          `json:"paymentMethods" validate:"omitempty,dive"`
	CardOptions                 map[string]interface{}   `json:"cardOptions"`
	BasketItems                 []map[string]interface{} `json:"basketItems"`
	SendVia                     string                   `json:"sendVia" validate:"omitempty,lidio_send_via"`
	Language                    string                   `json:"language" validate:"omitempty,lidio_language"`
	NotificationURL             string                   `json:"notificationUrl" validate:"omitempty,url"`
	LinkExpireHours             int                      `json:"linkExpireHours" validate:"gte=0"`
	ExpireAt                    *time.Time               `json:"expireAt"`
	CustomParameters            map[string]string        `json:"customParameters"`

	// Fields holds any other allow-listed top level field, set as is.
	Fields map[string]interface{} `json:"fields"`
}

type PaymentMethod struct {
	Name    string                 `json:"name" validate:"required,lidio_instrument"`
	Options map[string]interface{} `json:"options"`
}
