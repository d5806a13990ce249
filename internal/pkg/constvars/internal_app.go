package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_RAW_BODY                 ContextKey = "raw_body"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "LIDIO_SVC_"
)

const (
	ResourcePaymentLinks = "payment-links"
	ResourceWebhooks     = "webhooks"
)

const (
	NotificationReplayKeyPrefix = "lidio:notification:"
	PaymentLinkRecordKeyPrefix  = "lidio:payment_link:"
)
