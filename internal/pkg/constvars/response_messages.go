package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	CreatePaymentLinkSuccessMessage     = "payment link created successfully"
	PreviewPaymentLinkSuccessMessage    = "payment link request built successfully"
	PaymentNotificationAcceptedMessage  = "payment notification accepted"
	PaymentNotificationDuplicateMessage = "payment notification already processed"
)
