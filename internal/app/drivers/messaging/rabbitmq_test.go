package messaging

import (
	"testing"

	"lidio-service/internal/app/config"

	"github.com/stretchr/testify/assert"
)

func TestConnectionString(t *testing.T) {
	got := connectionString(config.RabbitMQ{Host: "mq", Port: "5672", Username: "lidio", Password: "pw"})
	assert.Equal(t, "amqp://lidio:pw@mq:5672/", got)
}
