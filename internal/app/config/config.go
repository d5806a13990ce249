package config

import (
	"strings"

	"lidio-service/internal/app/services/shared/lidio"
	"lidio-service/internal/pkg/exceptions"
	"lidio-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
			APIKey:                     utils.GetEnvString("APP_API_KEY", ""),
		},
		Lidio: AppLidio{
			APIURL:                  utils.GetEnvString("LIDIO_API_URL", ""),
			MerchantCode:            utils.GetEnvString("LIDIO_MERCHANT_CODE", ""),
			AuthorizationKey:        utils.GetEnvString("LIDIO_AUTHORIZATION_KEY", ""),
			APIPassword:             utils.GetEnvString("LIDIO_API_PASSWORD", ""),
			MerchantKey:             utils.GetEnvString("LIDIO_MERCHANT_KEY", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("LIDIO_REQUEST_TIMEOUT_IN_SECONDS", 30),
			PaymentLinkTTLInHours:   utils.GetEnvInt("LIDIO_PAYMENT_LINK_TTL_IN_HOURS", 168),
		},
		Notification: AppNotification{
			Queue:                  utils.GetEnvString("LIDIO_NOTIFICATION_QUEUE", "lidio.payment_notifications"),
			ReplayTTLInMinutes:     utils.GetEnvInt("LIDIO_NOTIFICATION_REPLAY_TTL_IN_MINUTES", 1440),
			RateLimitPerSecond:     utils.GetEnvFloat("LIDIO_NOTIFICATION_RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:         utils.GetEnvInt("LIDIO_NOTIFICATION_RATE_LIMIT_BURST", 10),
			PublishTimeoutInSecond: utils.GetEnvInt("LIDIO_NOTIFICATION_PUBLISH_TIMEOUT_IN_SECOND", 5),
		},
	}
}

// Validate rejects missing or malformed settings and normalizes the Lidio API root.
func (c *InternalConfig) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return exceptions.ErrConfigInvalid(err)
	}
	c.Lidio.APIURL = strings.TrimRight(c.Lidio.APIURL, "/")
	return nil
}

func (c *InternalConfig) LidioCredentials() lidio.Credentials {
	return lidio.Credentials{
		APIURL:           c.Lidio.APIURL,
		MerchantCode:     c.Lidio.MerchantCode,
		AuthorizationKey: c.Lidio.AuthorizationKey,
		APIPassword:      c.Lidio.APIPassword,
		MerchantKey:      c.Lidio.MerchantKey,
	}
}
