package config

type InternalConfig struct {
	App          App             `mapstructure:"app"`
	Lidio        AppLidio        `mapstructure:"lidio"`
	Notification AppNotification `mapstructure:"notification"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	APIKey                     string `mapstructure:"api_key"`
}

// AppLidio holds the merchant credentials issued by Lidio.
type AppLidio struct {
	APIURL                  string `mapstructure:"api_url" validate:"required,url"`
	MerchantCode            string `mapstructure:"merchant_code" validate:"required"`
	AuthorizationKey        string `mapstructure:"authorization_key" validate:"required"`
	APIPassword             string `mapstructure:"api_password" validate:"required"`
	MerchantKey             string `mapstructure:"merchant_key" validate:"required"`
	RequestTimeoutInSeconds int    `mapstructure:"request_timeout_in_seconds" validate:"gte=1"`
	PaymentLinkTTLInHours   int    `mapstructure:"payment_link_ttl_in_hours" validate:"gte=1"`
}

// AppNotification configures inbound payment notification handling.
type AppNotification struct {
	Queue                  string  `mapstructure:"queue" validate:"required"`
	ReplayTTLInMinutes     int     `mapstructure:"replay_ttl_in_minutes" validate:"gte=1"`
	RateLimitPerSecond     float64 `mapstructure:"rate_limit_per_second" validate:"gt=0"`
	RateLimitBurst         int     `mapstructure:"rate_limit_burst" validate:"gte=1"`
	PublishTimeoutInSecond int     `mapstructure:"publish_timeout_in_second" validate:"gte=1"`
}
