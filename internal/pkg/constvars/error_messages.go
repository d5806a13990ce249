package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"url":      "must be a valid url",
	"min":      "must be at least %s",
	"max":      "maximum at %s",
	"oneof":    "must be one of %s",
	"gte":      "must be greater than or equal to %s",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientInvalidPaymentLinkRequest     = "payment link request is invalid"
	ErrClientPaymentGatewayUnavailable     = "payment gateway is unavailable, please try again later"
	ErrClientPaymentGatewayRejected        = "payment gateway rejected the request"
	ErrClientInvalidNotification           = "payment notification is invalid"
	ErrClientInvalidSignature              = "payment notification signature is invalid"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientUnsupportedMediaType          = "content type must be application/json"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevServerInternalError    = "internal server error"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevReadHTTPResponse       = "failed to read HTTP response"
	ErrDevReadRequestBody        = "failed to read request body"
	ErrDevUnsupportedMediaType   = "unsupported content type %s"
	ErrDevInternalPanic          = "recovered from panic"

	// Lidio request assembly
	ErrDevFieldNotAllowed           = "%s: value %v is not allowed, allowed values: %s"
	ErrDevUnknownField              = "unknown field %s"
	ErrDevInvalidFieldType          = "%s: expected %s, got %T"
	ErrDevRequiredFieldMissing      = "required field %s is missing"
	ErrDevMixedConstruction         = "%s: cannot mix direct set and incremental add"
	ErrDevInstrumentAlreadyAdded    = "payment instrument %s already added"
	ErrDevInstrumentOptionsSet      = "options for payment instrument %s already set"
	ErrDevCardOptionNotAllowed      = "card option %s is not allowed"
	ErrDevCardInstrumentRequired    = "card options require a card payment instrument"
	ErrDevNegativeAmount            = "%s must not be negative, got %s"
	ErrDevEmptyField                = "%s must not be empty"
	ErrDevUnknownCustomParameterKey = "custom parameter key %s is not allowed"

	// Lidio gateway
	ErrDevGatewayTransport = "lidio %s call failed"
	ErrDevGatewayResult    = "lidio returned result %s: %s"

	// Lidio notifications
	ErrDevNotificationMissingFields = "notification is missing required keys: %s"
	ErrDevNotificationSignature     = "notification signature verification failed"
	ErrDevNotificationMismatch      = "notification for order %s failed %s verification"

	// Configuration
	ErrDevConfigInvalid = "invalid configuration"

	// Infrastructure
	ErrDevRedisCommand    = "redis command failed"
	ErrDevPublishMessage  = "failed to publish message"
	ErrDevAPIKeyInvalid   = "INVALID_API_KEY"
	ErrDevAPIKeyRequired  = "API_KEY_REQUIRED"
	ErrDevTooManyRequests = "rate limit exceeded"
)
