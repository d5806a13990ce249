package responses

// PaymentLink is the data returned after the gateway created a link.
type PaymentLink struct {
	OrderID             string `json:"orderId"`
	SystemTransID       string `json:"systemTransId,omitempty"`
	LinkURL             string `json:"linkURL"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	MerchantCustomField string `json:"merchantCustomField,omitempty"`
}

// PaymentLinkPreview is the finalized body that would be sent to the gateway.
type PaymentLinkPreview struct {
	Fields []string    `json:"fields"`
	Body   interface{} `json:"body"`
}

// PaymentNotificationAck is returned to the gateway after a notification was handled.
type PaymentNotificationAck struct {
	OrderID   string `json:"orderId,omitempty"`
	Duplicate bool   `json:"duplicate"`
	Queued    bool   `json:"queued"`
}
