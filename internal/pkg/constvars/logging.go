package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingEndpointKey     = "endpoint"
	LoggingMethodKey       = "method"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingErrorTypeKey    = "error_type"
	LoggingOrderIDKey      = "order_id"
	LoggingResultCodeKey   = "result_code"
	LoggingActionKey       = "action"
	LoggingPaymentResult   = "payment_result"
	LoggingQueueKey        = "queue"
	LoggingRedisKey        = "redis_key"
	LoggingVerificationKey = "verification"
)
