package messaging

import (
	"booking-service/internal/app/config"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func NewRabbitMQ(driverConfig *config.DriverConfig, logger *zap.Logger) *amqp091.Connection {
	conn, err := amqp091.Dial(RabbitMQURI(driverConfig.RabbitMQ))
	if err != nil {
		logger.Fatal("Failed to connect to rabbitMQ", zap.Error(err))
	}
	logger.Info("Successfully connected to rabbitMQ", zap.String("host", driverConfig.RabbitMQ.Host))
	return conn
}

func RabbitMQURI(cfg config.RabbitMQ) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
}
