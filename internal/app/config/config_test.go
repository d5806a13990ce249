package config

import (
	"testing"

	"lidio-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setLidioEnv(t *testing.T) {
	t.Setenv("LIDIO_API_URL", "https://test.lidio.com/api/")
	t.Setenv("LIDIO_MERCHANT_CODE", "M-100")
	t.Setenv("LIDIO_AUTHORIZATION_KEY", "auth-key")
	t.Setenv("LIDIO_API_PASSWORD", "secret")
	t.Setenv("LIDIO_MERCHANT_KEY", "merchant-key")
}

func TestNewInternalConfig(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		setLidioEnv(t)
		t.Setenv("LIDIO_NOTIFICATION_QUEUE", "payments.lidio")

		cfg := NewInternalConfig()
		require.NoError(t, cfg.Validate())

		assert.Equal(t, "https://test.lidio.com/api", cfg.Lidio.APIURL)
		assert.Equal(t, "payments.lidio", cfg.Notification.Queue)

		creds := cfg.LidioCredentials()
		assert.Equal(t, "M-100", creds.MerchantCode)
		assert.Equal(t, "merchant-key", creds.MerchantKey)
	})

	t.Run("missing credential", func(t *testing.T) {
		setLidioEnv(t)
		t.Setenv("LIDIO_API_PASSWORD", "")

		err := NewInternalConfig().Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, exceptions.ErrKindConfig)
		assert.Contains(t, err.Error(), "APIPassword")
	})

	t.Run("malformed api url", func(t *testing.T) {
		setLidioEnv(t)
		t.Setenv("LIDIO_API_URL", "lidio")

		assert.ErrorIs(t, NewInternalConfig().Validate(), exceptions.ErrKindConfig)
	})
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")

	cfg := NewDriverConfig()
	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "localhost", cfg.RabbitMQ.Host)
}
