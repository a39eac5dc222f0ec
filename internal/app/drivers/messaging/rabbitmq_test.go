package messaging

import (
	"booking-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRabbitMQURI(t *testing.T) {
	uri := RabbitMQURI(config.RabbitMQ{Host: "mq", Port: "5672", Username: "guest", Password: "guest"})
	assert.Equal(t, "amqp://guest:guest@mq:5672/", uri)
}
